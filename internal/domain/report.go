package domain

import "time"

// Report is a wellness report summary listed for staff. Report content
// itself is produced elsewhere; the API only serves summaries.
type Report struct {
	ID                   string
	ClientID             string
	ClientName           string
	Type                 string
	Status               string
	Deadline             *time.Time
	CreatedAt            time.Time
	LastModified         time.Time
	TemplateName         string
	CompletionPercentage float64
}
