package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/toyz/strata/internal/lintfix"
	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/pipeline"
	"github.com/toyz/strata/internal/prompt"
	"github.com/toyz/strata/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		typeFlag    = flag.String("type", "", "Resource type to extend: component, route, or query")
		nameFlag    = flag.String("name", "", "Resource name, e.g. Header or ProductList")
		targetFlag  = flag.String("target", ".", "Path inside the module that receives the override")
		sourceFlag  = flag.String("source", "", "Pin the source module to this path instead of searching ancestors")
		jsFlag      = flag.Bool("js", false, "Generate plain JavaScript instead of TypeScript")
		listFlag    = flag.Bool("list", false, "List the resources of the given type visible from the target module")
		noFixFlag   = flag.Bool("no-fix", false, "Skip the prettier pass over generated files")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -type <type> -name <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Strata Override Generator\n")
		fmt.Fprintf(os.Stderr, "Extends a resource defined by an ancestor module: re-exports the parts you\n")
		fmt.Fprintf(os.Stderr, "keep and scaffolds the exports you choose to override.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -type component -name Header                # Extend the Header component\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type route -name Checkout -js              # Generate a JavaScript override\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type query -name Products -source ../base  # Extend from a specific module\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type component -list                       # Show extendable components\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *typeFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: -type is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	resourceType, err := models.ParseResourceType(*typeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	options := models.DefaultOptions()
	if *jsFlag {
		options.Dialect = models.DialectJavaScript
	}
	options.SkipLintFix = *noFixFlag

	var fixer lintfix.Fixer = lintfix.NewPrettierFixer()
	if *noFixFlag {
		fixer = lintfix.NoopFixer{}
	}

	extender := pipeline.NewExtender(prompt.NewTerminalInteractor(), fixer, diagnostics, options)

	if *listFlag {
		names, err := extender.ListResources(resourceType, *targetFlag)
		if err != nil {
			diagnostics.Error("%v", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			diagnostics.Info("No %ss found", resourceType)
			return
		}
		diagnostics.Section(fmt.Sprintf("Available %ss", resourceType))
		for _, name := range names {
			diagnostics.List("%s", name)
		}
		return
	}

	if *nameFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: -name is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	diagnostics.Header(fmt.Sprintf("extending %s %s", resourceType, *nameFlag))

	created, err := extender.Extend(pipeline.ExtendRequest{
		Type:       resourceType,
		Name:       *nameFlag,
		TargetPath: *targetFlag,
		SourceHint: *sourceFlag,
	})
	if err != nil {
		diagnostics.Error("Extend failed: %v", err)
		os.Exit(1)
	}

	for _, path := range created {
		diagnostics.Created(path)
	}

	summary := extender.Summary()
	stats := map[string]interface{}{
		"Files created": len(created),
		"Elapsed":       summary.Elapsed.Round(time.Millisecond).String(),
	}
	if skipped := summary.SkippedExisting + summary.SkippedNoExports +
		summary.SkippedNoSelection + summary.SkippedTypeOnly +
		summary.SkippedUnparsable; skipped > 0 {
		stats["Files skipped"] = skipped
	}
	diagnostics.Summary("Generation Summary", stats)

	if len(created) == 0 {
		diagnostics.Info("Nothing was generated")
		return
	}
	diagnostics.Success("Override ready")
}
