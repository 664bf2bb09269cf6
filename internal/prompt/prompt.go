// Package prompt is the capability boundary for human interaction. The
// pipeline only ever sees chosen values, never the widgets, and treats an
// empty multi-select result as a normal outcome.
package prompt

// Option pairs a display label with the value returned on selection
type Option struct {
	Label string
	Value string
}

// Interactor exposes the interactive prompts the pipeline needs. Both calls
// block until the operator answers; there is no timeout and no cancellation
// path below the process itself.
type Interactor interface {
	// MultiSelect returns the chosen subset of option values; zero, one,
	// or many
	MultiSelect(title string, options []Option) ([]string, error)
	// Select returns exactly one chosen option value
	Select(title string, options []Option) (string, error)
}
