package models

import "time"

// ReportStatus represents the status of an abuse report
type ReportStatus string

const (
	ReportStatusOpen        ReportStatus = "OPEN"
	ReportStatusUnderReview ReportStatus = "UNDER_REVIEW"
	ReportStatusResolved    ReportStatus = "RESOLVED"
	ReportStatusDismissed   ReportStatus = "DISMISSED"
)

// ValidReportStatuses defines allowed report statuses
var ValidReportStatuses = map[ReportStatus]bool{
	ReportStatusOpen:        true,
	ReportStatusUnderReview: true,
	ReportStatusResolved:    true,
	ReportStatusDismissed:   true,
}

// AbuseReportInput is the data a user submits when filing a report
type AbuseReportInput struct {
	ReporterID   string `json:"reporterId"`
	ReporterName string `json:"reporterName"`
	ReporterRole string `json:"reporterRole"`
	Subject      string `json:"subject"`
	Category     string `json:"category"`
	Description  string `json:"description"`
}

// AbuseReport is a stored abuse report
type AbuseReport struct {
	ID           string       `json:"id"`
	ReporterID   string       `json:"reporterId"`
	ReporterName string       `json:"reporterName"`
	ReporterRole string       `json:"reporterRole"`
	Subject      string       `json:"subject"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	DateReported time.Time    `json:"dateReported"`
	Status       ReportStatus `json:"status"`
}
