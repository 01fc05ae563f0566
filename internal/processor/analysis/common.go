package analysis

import "time"

// Report is an analysis result that renders into a results body
type Report interface {
	Body(elapsed time.Duration) string
}
