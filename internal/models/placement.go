package models

import "time"

// PlacementStatus is the approval state of a placement.
// Manual approval was removed, so every stored placement is APPROVED.
type PlacementStatus string

const PlacementApproved PlacementStatus = "APPROVED"

// PlacementDetails is the form data a student submits for a placement
type PlacementDetails struct {
	CompanyName     string `json:"companyName"`
	SupervisorName  string `json:"supervisorName"`
	SupervisorEmail string `json:"supervisorEmail"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Location        string `json:"location"`
}

// PlacementQueueItem is one record of the placement queue, keyed by StudentID
type PlacementQueueItem struct {
	StudentID       string          `json:"studentId"`
	StudentName     string          `json:"studentName"`
	CompanyName     string          `json:"companyName"`
	SupervisorName  string          `json:"supervisorName"`
	SupervisorEmail string          `json:"supervisorEmail"`
	SubmissionDate  time.Time       `json:"submissionDate"`
	Status          PlacementStatus `json:"status"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Location        string          `json:"location"`
}
