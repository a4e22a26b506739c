package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/internship-hub-portal/internal/models"
)

func TestNormalizeRole_Synonyms(t *testing.T) {
	cases := map[string]models.Role{
		"admin":              models.RoleAdmin,
		"student":            models.RoleStudent,
		"lecturer":           models.RoleLecturer,
		"company_supervisor": models.RoleSupervisor,
		"supervisor":         models.RoleSupervisor,
		"hod":                models.RoleHOD,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			lower := models.NormalizeRole(strings.ToLower(raw))
			upper := models.NormalizeRole(strings.ToUpper(raw))
			if lower != upper {
				t.Errorf("NormalizeRole(%q) = %q, NormalizeRole(%q) = %q", strings.ToLower(raw), lower, strings.ToUpper(raw), upper)
			}
			if lower != want {
				t.Errorf("Expected %q, got %q", want, lower)
			}
		})
	}

	if got := models.NormalizeRole("Company_Supervisor"); got != models.RoleSupervisor {
		t.Errorf("Expected SUPERVISOR for mixed case, got %q", got)
	}
}

func TestNormalizeRole_Fallback(t *testing.T) {
	for _, raw := range []string{"dean", "Registrar", "teaching-assistant", ""} {
		if got := models.NormalizeRole(raw); string(got) != strings.ToUpper(raw) {
			t.Errorf("NormalizeRole(%q) = %q, want %q", raw, got, strings.ToUpper(raw))
		}
	}
	if models.NormalizeRole("dean").Valid() {
		t.Error("DEAN should not be a valid role")
	}
}

func TestParseRole(t *testing.T) {
	role, err := models.ParseRole("HoD")
	if err != nil {
		t.Fatalf("ParseRole failed: %v", err)
	}
	if role != models.RoleHOD {
		t.Errorf("Expected HOD, got %q", role)
	}

	_, err = models.ParseRole("dean")
	if !errors.Is(err, models.ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestRole_DashboardPath(t *testing.T) {
	if got := models.RoleStudent.DashboardPath(); got != "/student/dashboard" {
		t.Errorf("Expected /student/dashboard, got %s", got)
	}
	if got := models.Role("DEAN").DashboardPath(); got != "/dashboard" {
		t.Errorf("Expected /dashboard fallback, got %s", got)
	}
}

func BenchmarkNormalizeRole(b *testing.B) {
	inputs := []string{"admin", "Company_Supervisor", "HOD", "registrar"}
	for i := 0; i < b.N; i++ {
		models.NormalizeRole(inputs[i%len(inputs)])
	}
}
