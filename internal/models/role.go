package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the authorization category a portal user belongs to
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleStudent    Role = "STUDENT"
	RoleLecturer   Role = "LECTURER"
	RoleSupervisor Role = "SUPERVISOR"
	RoleHOD        Role = "HOD"
)

// ErrUnknownRole is returned by ParseRole for spellings outside the synonym table
var ErrUnknownRole = errors.New("unknown role")

// roleSynonyms maps lower-cased backend spellings to canonical roles
var roleSynonyms = map[string]Role{
	"admin":              RoleAdmin,
	"student":            RoleStudent,
	"lecturer":           RoleLecturer,
	"company_supervisor": RoleSupervisor,
	"supervisor":         RoleSupervisor,
	"hod":                RoleHOD,
}

// dashboardPaths is the landing page for each role
var dashboardPaths = map[Role]string{
	RoleAdmin:      "/admin/dashboard",
	RoleStudent:    "/student/dashboard",
	RoleLecturer:   "/lecturer/dashboard",
	RoleSupervisor: "/supervisor/dashboard",
	RoleHOD:        "/hod/dashboard",
}

// NormalizeRole maps a raw backend role to a canonical Role.
// Unrecognized input is upper-cased and returned as-is, so the result may
// fall outside the closed set; use Valid to check.
func NormalizeRole(raw string) Role {
	if role, ok := roleSynonyms[strings.ToLower(raw)]; ok {
		return role
	}
	return Role(strings.ToUpper(raw))
}

// ParseRole is the fail-closed variant of NormalizeRole
func ParseRole(raw string) (Role, error) {
	role := NormalizeRole(raw)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
	return role, nil
}

// Valid reports whether r is one of the canonical roles
func (r Role) Valid() bool {
	_, ok := dashboardPaths[r]
	return ok
}

// DashboardPath returns the role's landing page, or "/dashboard" for roles
// outside the closed set.
func (r Role) DashboardPath() string {
	if path, ok := dashboardPaths[r]; ok {
		return path
	}
	return "/dashboard"
}
