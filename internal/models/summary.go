package models

import "time"

// Summary collects per-run statistics for the final CLI report. The created
// path list, not the summary, is the authoritative record of what was
// written.
type Summary struct {
	CreatedFiles       []string
	SkippedExisting    int
	SkippedNoExports   int
	SkippedNoSelection int
	SkippedTypeOnly    int
	SkippedUnparsable  int
	Elapsed            time.Duration
}
