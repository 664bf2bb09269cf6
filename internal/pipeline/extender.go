// Package pipeline orchestrates one extend operation end to end: resolve the
// target module, locate the source resource, process its files one at a time,
// and hand the created paths to the lint fixer. Per-file problems, parse
// failures included, degrade to logged skips; only hard I/O failures abort
// the run.
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/toyz/strata/internal/analyzer"
	"github.com/toyz/strata/internal/errors"
	"github.com/toyz/strata/internal/lintfix"
	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/prompt"
	"github.com/toyz/strata/internal/synth"
	"github.com/toyz/strata/internal/utils/fileops"
	"github.com/toyz/strata/internal/workspace"
)

// Logger is the narrow logging capability the pipeline needs from its host
type Logger interface {
	Warn(format string, args ...interface{})
	Info(format string, args ...interface{})
	Verbose(format string, args ...interface{})
}

// State names the phase an extend operation is in. Transitions are strictly
// forward; there is no retry within a run.
type State int

const (
	StateResolvingModule State = iota
	StateLocatingSource
	StateValidatingExistence
	StateProcessingFiles
	StatePostProcessing
	StateDone
)

// String returns a human-readable phase name
func (s State) String() string {
	switch s {
	case StateResolvingModule:
		return "resolving module"
	case StateLocatingSource:
		return "locating source"
	case StateValidatingExistence:
		return "validating existence"
	case StateProcessingFiles:
		return "processing files"
	case StatePostProcessing:
		return "post-processing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ExtendRequest carries one extend invocation's inputs
type ExtendRequest struct {
	Type models.ResourceType
	Name string
	// TargetPath is any path inside the module that should receive the
	// override; the containing module is resolved from it
	TargetPath string
	// SourceHint, when non-empty, pins the source module instead of
	// walking the candidate chain
	SourceHint string
}

// Extender runs the override pipeline. All collaborators are injected so
// tests can substitute prompts and the lint fixer; the filesystem boundary
// stays behind FileOps.
type Extender struct {
	files        *fileops.FileOps
	resolver     *workspace.ModuleResolver
	locator      *workspace.ResourceLocator
	analyzer     *analyzer.Analyzer
	synthesizer  *synth.Synthesizer
	materializer *FileMaterializer
	style        *StyleDelegate
	ui           prompt.Interactor
	fixer        lintfix.Fixer
	log          Logger
	options      models.Options

	state   State
	summary models.Summary
}

// NewExtender wires the pipeline with the given capabilities and options
func NewExtender(ui prompt.Interactor, fixer lintfix.Fixer, log Logger, options models.Options) *Extender {
	files := fileops.NewFileOps()
	resolver := workspace.NewModuleResolver(files, options)
	materializer := NewFileMaterializer(files)
	return &Extender{
		files:        files,
		resolver:     resolver,
		locator:      workspace.NewResourceLocator(resolver, files, options),
		analyzer:     analyzer.New(),
		synthesizer:  synth.NewSynthesizer(),
		materializer: materializer,
		style:        NewStyleDelegate(materializer, files, ui, log),
		ui:           ui,
		fixer:        fixer,
		log:          log,
		options:      options,
		state:        StateDone,
	}
}

// State returns the phase the last (or current) run is in
func (e *Extender) State() State {
	return e.state
}

// Summary returns the statistics of the last run
func (e *Extender) Summary() models.Summary {
	return e.summary
}

// Extend performs one override generation and returns the absolute paths of
// every file it created, in creation order. A resource that no candidate
// module defines is not an error: the run logs a warning and returns an
// empty list, having written nothing. Files inside the resource are
// processed independently; a skipped file never prevents the next one.
func (e *Extender) Extend(req ExtendRequest) ([]string, error) {
	started := time.Now()
	e.summary = models.Summary{}
	created := []string{}
	defer func() {
		e.summary.CreatedFiles = created
		e.summary.Elapsed = time.Since(started)
		e.state = StateDone
	}()

	e.state = StateResolvingModule
	target, err := e.resolver.Resolve(req.TargetPath)
	if err != nil {
		return created, err
	}
	e.log.Verbose("target module %s at %s", target.Name, target.Root)

	e.state = StateLocatingSource
	source, resource, err := e.locator.Locate(req.Type, req.Name, target, req.SourceHint)

	e.state = StateValidatingExistence
	if err != nil {
		if errors.IsResourceNotFound(err) {
			e.log.Warn("%s %s not found in any reachable module, nothing to extend", req.Type, req.Name)
			return created, nil
		}
		return created, err
	}
	e.log.Info("extending %s %s from %s", req.Type, req.Name, source.Name)

	targetDir := filepath.Join(target.Root, workspace.ResourceDir(req.Type, req.Name))

	// Files are processed strictly in order; every prompt suspends the
	// loop, so two files are never in flight at once.
	e.state = StateProcessingFiles
	for _, fileName := range resource.Files {
		paths, err := e.processFile(req, source, resource, targetDir, fileName)
		created = append(created, paths...)
		if err != nil {
			return created, err
		}
	}

	e.state = StatePostProcessing
	if len(created) > 0 && !e.options.SkipLintFix {
		if err := e.fixer.Fix(created); err != nil {
			e.log.Warn("lint fix failed, generated files are unformatted: %v", err)
		}
	}

	return created, nil
}

// processFile runs the per-file flow for one source file and returns the
// paths it created (style file before code file). Skip outcomes return a nil
// error so the caller moves on.
func (e *Extender) processFile(req ExtendRequest, source models.Module, resource models.Resource, targetDir, fileName string) ([]string, error) {
	if e.options.Dialect == models.DialectJavaScript && workspace.IsTypeOnly(fileName) {
		e.log.Warn("skipping %s: type-only files are excluded in the javascript dialect", fileName)
		e.summary.SkippedTypeOnly++
		return nil, nil
	}

	targetName := workspace.TargetFileName(fileName, e.options.Dialect)
	targetPath := filepath.Join(targetDir, targetName)
	if e.files.Exists(targetPath) {
		e.log.Warn("skipping %s: %s already exists", fileName, targetPath)
		e.summary.SkippedExisting++
		return nil, nil
	}

	sourceText, err := e.files.ReadFile(filepath.Join(resource.SourceDir, fileName))
	if err != nil {
		return nil, err
	}

	exports, err := e.analyzer.Analyze(sourceText)
	if err != nil {
		e.log.Warn("%v, skipping", errors.WrapParseError(fileName, err))
		e.summary.SkippedUnparsable++
		return nil, nil
	}
	if len(exports.Named) == 0 {
		e.log.Warn("skipping %s: no named exports found", fileName)
		e.summary.SkippedNoExports++
		return nil, nil
	}

	choice, err := e.selectExports(fileName, exports)
	if err != nil {
		return nil, err
	}

	var created []string
	styleOption := models.StyleKeep
	styleFile := ""
	if req.Type.HasStyles() && workspace.IsPrimaryFile(req.Type, req.Name, fileName) {
		result, err := e.style.Run(req.Name, targetName, resource.SourceDir, targetDir, e.options.StyleExt)
		if err != nil {
			return created, err
		}
		styleOption = result.Option
		styleFile = result.FileName
		if result.CreatedPath != "" {
			created = append(created, result.CreatedPath)
		}
	}

	if choice.IsEmpty() {
		e.log.Warn("skipping %s: no exports selected", fileName)
		e.summary.SkippedNoSelection++
		return created, nil
	}

	content, err := e.synthesizer.Synthesize(synth.Context{
		ResourceType: req.Type,
		ResourceName: req.Name,
		FileName:     fileName,
		SourceModule: source,
		SourceText:   sourceText,
		Exports:      exports,
		Choice:       choice,
		StyleOption:  styleOption,
		StyleFile:    styleFile,
		Dialect:      e.options.Dialect,
	})
	if err != nil {
		return created, errors.WrapGenerateError(targetPath, err)
	}

	file := models.GeneratedFile{Path: targetPath, Content: content}
	if err := e.materializer.Materialize(&file); err != nil {
		return created, err
	}
	if !file.Created {
		e.log.Warn("skipping %s: %s already exists", fileName, targetPath)
		e.summary.SkippedExisting++
		return created, nil
	}

	e.log.Verbose("created %s", file.Path)
	created = append(created, file.Path)
	return created, nil
}

// selectExports asks the operator which named exports to extend and maps
// the answer back onto the export records, preserving source order
func (e *Extender) selectExports(fileName string, exports models.ExportMap) (models.ExtensionChoice, error) {
	options := make([]prompt.Option, len(exports.Named))
	for i, rec := range exports.Named {
		label := rec.Name
		if rec.Kind != "" {
			label = fmt.Sprintf("%s (%s)", rec.Name, rec.Kind)
		}
		options[i] = prompt.Option{Label: label, Value: rec.Name}
	}

	chosen, err := e.ui.MultiSelect(fmt.Sprintf("Select exports of %s to extend", fileName), options)
	if err != nil {
		return models.ExtensionChoice{}, err
	}

	picked := make(map[string]bool, len(chosen))
	for _, name := range chosen {
		picked[name] = true
	}
	var choice models.ExtensionChoice
	for _, rec := range exports.Named {
		if picked[rec.Name] {
			choice.Chosen = append(choice.Chosen, rec)
		}
	}
	return choice, nil
}

// ListResources enumerates the resources of a type visible from the module
// containing targetPath
func (e *Extender) ListResources(t models.ResourceType, targetPath string) ([]string, error) {
	target, err := e.resolver.Resolve(targetPath)
	if err != nil {
		return nil, err
	}
	return e.locator.ListResources(t, target), nil
}
