package models

import "time"

// Report statuses, in triage order.
const (
	ReportSubmitted = "submitted"
	ReportVerified  = "verified"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// ValidReportStatus reports whether s is a known status.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportSubmitted, ReportVerified, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// Report is one geotagged flood observation.
type Report struct {
	ID           string
	UserID       string
	UserName     string
	Description  string
	WaterLevelCM float64
	Latitude     float64
	Longitude    float64
	PhotoURL     string
	Status       string
	CreatedAt    time.Time
}

// Comment is one message in a report's discussion thread.
type Comment struct {
	ID        string
	ReportID  string
	UserID    string
	UserName  string
	Body      string
	CreatedAt time.Time
}
