package types

import "time"

// ProcessingRequest represents a single report run over one input file
type ProcessingRequest struct {
	Analyzer     string
	Start        time.Time
	MaxLineBytes int
}
