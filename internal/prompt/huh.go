package prompt

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/toyz/strata/internal/errors"
)

// TerminalInteractor renders prompts with huh forms. Accessible mode is
// enabled automatically when stdin is not a terminal (command substitution,
// CI) or when the ACCESSIBLE environment variable is set, so prompts stay
// answerable over plain line input.
type TerminalInteractor struct {
	accessible bool
}

// NewTerminalInteractor creates an interactor bound to the current terminal
func NewTerminalInteractor() *TerminalInteractor {
	noTTY := !term.IsTerminal(int(os.Stdin.Fd()))
	return &TerminalInteractor{
		accessible: noTTY || os.Getenv("ACCESSIBLE") != "",
	}
}

// MultiSelect prompts for any subset of the options
func (t *TerminalInteractor) MultiSelect(title string, options []Option) ([]string, error) {
	var results []string

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title(title).
			Options(huhOptions(options)...).
			Value(&results),
	)).WithAccessible(t.accessible)

	if err := form.Run(); err != nil {
		return nil, errors.WrapPromptError(title, err)
	}
	return results, nil
}

// Select prompts for exactly one of the options
func (t *TerminalInteractor) Select(title string, options []Option) (string, error) {
	var result string

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huhOptions(options)...).
			Value(&result),
	)).WithAccessible(t.accessible)

	if err := form.Run(); err != nil {
		return "", errors.WrapPromptError(title, err)
	}
	return result, nil
}

func huhOptions(options []Option) []huh.Option[string] {
	huhOpts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt.Label, opt.Value)
	}
	return huhOpts
}
