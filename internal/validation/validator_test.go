package validation

import (
	"strings"
	"testing"

	"github.com/internship-hub-portal/internal/models"
)

func fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidatePlacement(t *testing.T) {
	valid := models.PlacementDetails{
		CompanyName:     "Acme Ltd",
		SupervisorName:  "Jane Doe",
		SupervisorEmail: "jane@acme.com",
		StartDate:       "2026-06-01",
		EndDate:         "2026-08-31",
		Location:        "Accra",
	}

	tests := []struct {
		name       string
		mutate     func(d *models.PlacementDetails)
		wantFields []string
	}{
		{
			name:   "valid placement",
			mutate: func(d *models.PlacementDetails) {},
		},
		{
			name:       "missing company",
			mutate:     func(d *models.PlacementDetails) { d.CompanyName = "  " },
			wantFields: []string{"companyName"},
		},
		{
			name:       "invalid supervisor email",
			mutate:     func(d *models.PlacementDetails) { d.SupervisorEmail = "jane-at-acme" },
			wantFields: []string{"supervisorEmail"},
		},
		{
			name:       "bad date format",
			mutate:     func(d *models.PlacementDetails) { d.StartDate = "01/06/2026" },
			wantFields: []string{"startDate"},
		},
		{
			name:       "end before start",
			mutate:     func(d *models.PlacementDetails) { d.EndDate = "2026-05-01" },
			wantFields: []string{"endDate"},
		},
		{
			name: "multiple errors",
			mutate: func(d *models.PlacementDetails) {
				d.SupervisorName = ""
				d.EndDate = ""
				d.Location = ""
			},
			wantFields: []string{"supervisorName", "endDate", "location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := valid
			tt.mutate(&details)
			errs := ValidatePlacement(&details)

			got := fields(errs)
			if strings.Join(got, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("Expected error fields %v, got %v (%+v)", tt.wantFields, got, errs)
			}
		})
	}
}

func TestValidateAbuseReport(t *testing.T) {
	valid := models.AbuseReportInput{
		ReporterID:  "u1",
		Subject:     "Spam",
		Category:    "content",
		Description: "Unsolicited links in the logbook comments",
	}

	if errs := ValidateAbuseReport(&valid); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}

	empty := models.AbuseReportInput{}
	if got := fields(ValidateAbuseReport(&empty)); len(got) != 4 {
		t.Errorf("Expected 4 missing fields, got %v", got)
	}

	long := valid
	long.Description = strings.Repeat("word ", MaxDescriptionWords+1)
	errs := ValidateAbuseReport(&long)
	if len(errs) != 1 || errs[0].Field != "description" || !strings.Contains(errs[0].Message, "exceeds maximum") {
		t.Errorf("Expected word limit error, got %+v", errs)
	}
}

func TestValidateReportStatus(t *testing.T) {
	for status := range models.ValidReportStatuses {
		if errs := ValidateReportStatus(status); len(errs) != 0 {
			t.Errorf("Expected %s to be valid, got %+v", status, errs)
		}
	}

	if errs := ValidateReportStatus("resolved"); len(errs) != 1 {
		t.Error("Status values are case-sensitive")
	}
	if errs := ValidateReportStatus(""); len(errs) != 1 || errs[0].Message != "status is required" {
		t.Errorf("Expected required error, got %+v", errs)
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin(&models.LoginRequest{Email: "a@uni.edu", Password: "x"}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %+v", errs)
	}
	got := fields(ValidateLogin(&models.LoginRequest{Email: "bad"}))
	if strings.Join(got, ",") != "email,password" {
		t.Errorf("Expected email,password errors, got %v", got)
	}
}

func BenchmarkValidatePlacement(b *testing.B) {
	details := &models.PlacementDetails{
		CompanyName:     "Acme Ltd",
		SupervisorName:  "Jane Doe",
		SupervisorEmail: "jane@acme.com",
		StartDate:       "2026-06-01",
		EndDate:         "2026-08-31",
		Location:        "Accra",
	}
	for i := 0; i < b.N; i++ {
		ValidatePlacement(details)
	}
}
