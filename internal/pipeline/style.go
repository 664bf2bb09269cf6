package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/prompt"
	"github.com/toyz/strata/internal/utils/fileops"
	"github.com/toyz/strata/internal/workspace"
)

// StyleDelegate handles the stylesheet artifact that accompanies the primary
// file of a style-bearing resource. It asks the operator what to do, then
// materializes at most one style file next to the override.
type StyleDelegate struct {
	materializer *FileMaterializer
	files        *fileops.FileOps
	ui           prompt.Interactor
	log          Logger
}

// NewStyleDelegate creates a new style delegate
func NewStyleDelegate(materializer *FileMaterializer, files *fileops.FileOps, ui prompt.Interactor, log Logger) *StyleDelegate {
	return &StyleDelegate{
		materializer: materializer,
		files:        files,
		ui:           ui,
		log:          log,
	}
}

// styleResult reports what the delegate decided and did for one file
type styleResult struct {
	// Option is the operator's choice, needed later so the synthesized
	// file imports the stylesheet only when one accompanies it
	Option models.StyleOption
	// CreatedPath is non-empty only when a new style file was written
	CreatedPath string
	// FileName is the stylesheet's base name, set for every non-keep choice
	FileName string
}

// Run prompts for the style handling of one primary file and applies the
// choice. Keeping the source styles writes nothing; empty and copy both
// create the stylesheet sibling in the target directory. An already-existing
// stylesheet is left alone with a warning, mirroring the code-file rule.
func (s *StyleDelegate) Run(resourceName, targetFileName, sourceDir, targetDir, styleExt string) (styleResult, error) {
	styleName := workspace.StyleFileName(targetFileName, styleExt)

	choice, err := s.ui.Select(
		fmt.Sprintf("Styles for %s", resourceName),
		[]prompt.Option{
			{Label: "Keep the source module's styles", Value: string(models.StyleKeep)},
			{Label: fmt.Sprintf("Create an empty %s", styleName), Value: string(models.StyleEmpty)},
			{Label: fmt.Sprintf("Copy %s from the source module", styleName), Value: string(models.StyleCopy)},
		},
	)
	if err != nil {
		return styleResult{}, err
	}

	option := models.StyleOption(choice)
	if option == models.StyleKeep {
		return styleResult{Option: option}, nil
	}

	content := ""
	if option == models.StyleCopy {
		sourcePath := filepath.Join(sourceDir, styleName)
		if s.files.IsFile(sourcePath) {
			content, err = s.files.ReadFile(sourcePath)
			if err != nil {
				return styleResult{}, err
			}
		} else {
			s.log.Warn("source resource has no %s, creating it empty", styleName)
		}
	}

	targetPath := filepath.Join(targetDir, styleName)
	created, err := s.materializer.Write(targetPath, content)
	if err != nil {
		return styleResult{}, err
	}
	result := styleResult{Option: option, FileName: styleName}
	if created {
		result.CreatedPath = targetPath
	} else {
		s.log.Warn("style file %s already exists, leaving it untouched", targetPath)
	}
	return result, nil
}
