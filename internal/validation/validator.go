package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/internship-hub-portal/internal/models"
)

// DateLayout is the calendar date format used by placement forms
const DateLayout = "2006-01-02"

// MaxDescriptionWords caps an abuse report description
const MaxDescriptionWords = 500

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateLogin validates login credentials
func ValidateLogin(req *models.LoginRequest) []ValidationError {
	var errors []ValidationError

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: req.Email})
	}

	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

// ValidatePlacement validates a placement submission
func ValidatePlacement(details *models.PlacementDetails) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(details.CompanyName) == "" {
		errors = append(errors, ValidationError{Field: "companyName", Message: "companyName is required"})
	}
	if strings.TrimSpace(details.SupervisorName) == "" {
		errors = append(errors, ValidationError{Field: "supervisorName", Message: "supervisorName is required"})
	}

	if details.SupervisorEmail == "" {
		errors = append(errors, ValidationError{Field: "supervisorEmail", Message: "supervisorEmail is required"})
	} else if !emailRegex.MatchString(details.SupervisorEmail) {
		errors = append(errors, ValidationError{Field: "supervisorEmail", Message: "invalid email format", Value: details.SupervisorEmail})
	}

	start, startErr := parseDate("startDate", details.StartDate, &errors)
	end, endErr := parseDate("endDate", details.EndDate, &errors)
	if startErr == nil && endErr == nil && end.Before(start) {
		errors = append(errors, ValidationError{Field: "endDate", Message: "endDate must not be before startDate", Value: details.EndDate})
	}

	if strings.TrimSpace(details.Location) == "" {
		errors = append(errors, ValidationError{Field: "location", Message: "location is required"})
	}

	return errors
}

// ValidateAbuseReport validates an abuse report submission
func ValidateAbuseReport(input *models.AbuseReportInput) []ValidationError {
	var errors []ValidationError

	if input.ReporterID == "" {
		errors = append(errors, ValidationError{Field: "reporterId", Message: "reporterId is required"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{Field: "subject", Message: "subject is required"})
	}
	if input.Category == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	if strings.TrimSpace(input.Description) == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	} else if wordCount := len(strings.Fields(input.Description)); wordCount > MaxDescriptionWords {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description exceeds maximum of %d words (has %d)", MaxDescriptionWords, wordCount),
		})
	}

	return errors
}

// ValidateReportStatus validates a report status update
func ValidateReportStatus(status models.ReportStatus) []ValidationError {
	if status == "" {
		return []ValidationError{{Field: "status", Message: "status is required"}}
	}
	if !models.ValidReportStatuses[status] {
		return []ValidationError{{
			Field:   "status",
			Message: "invalid status, must be one of: OPEN, UNDER_REVIEW, RESOLVED, DISMISSED",
			Value:   status,
		}}
	}
	return nil
}

func parseDate(field, value string, errors *[]ValidationError) (time.Time, error) {
	if value == "" {
		err := fmt.Errorf("%s is required", field)
		*errors = append(*errors, ValidationError{Field: field, Message: err.Error()})
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		*errors = append(*errors, ValidationError{Field: field, Message: "invalid date format, expected YYYY-MM-DD", Value: value})
	}
	return t, err
}
