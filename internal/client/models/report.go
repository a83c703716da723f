package models

import "time"

// ReportStatus is the triage state of a flood report.
type ReportStatus string

const (
	StatusSubmitted ReportStatus = "submitted"
	StatusVerified  ReportStatus = "verified"
	StatusResolved  ReportStatus = "resolved"
	StatusDismissed ReportStatus = "dismissed"
)

// ValidReportStatus reports whether s is a member of the known status set.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case StatusSubmitted, StatusVerified, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Report is one geotagged flood observation.
type Report struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	UserName     string       `json:"userName"`
	Description  string       `json:"description"`
	WaterLevelCM float64      `json:"waterLevelCm"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	PhotoURL     string       `json:"photoUrl,omitempty"`
	Status       ReportStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Comment is one message in a report's discussion thread.
type Comment struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"reportId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
