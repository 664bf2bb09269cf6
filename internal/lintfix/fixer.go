// Package lintfix runs the best-effort formatting pass over newly created
// files. A fixer failure never invalidates the files already written.
package lintfix

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Fixer formats a batch of generated files in place
type Fixer interface {
	Fix(paths []string) error
}

// PrettierFixer shells out to prettier through npx, matching how front-end
// workspaces pin their formatter as a dev dependency
type PrettierFixer struct {
	command string
}

// NewPrettierFixer creates a fixer using the npx launcher on PATH
func NewPrettierFixer() *PrettierFixer {
	return &PrettierFixer{command: "npx"}
}

// Fix rewrites the given files with prettier. The caller treats any error
// as a warning, not a failure.
func (f *PrettierFixer) Fix(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	args := append([]string{"--yes", "prettier", "--write"}, paths...)
	cmd := exec.Command(f.command, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("prettier failed: %w: %s", err, stderr.String())
		}
		return fmt.Errorf("prettier failed: %w", err)
	}
	return nil
}

// NoopFixer skips the formatting pass entirely
type NoopFixer struct{}

// Fix does nothing
func (NoopFixer) Fix([]string) error {
	return nil
}
