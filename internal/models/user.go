package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// UserProfile is the authenticated user as seen by the portal
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// FullName joins first and last name
func (u *UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// BackendUser is the user payload returned by the external API.
// Role is kept raw; ToProfile normalizes it.
type BackendUser struct {
	ID        FlexibleID `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	AvatarURL string     `json:"avatar_url,omitempty"`
}

// Empty reports whether the payload carries no usable identity
func (u *BackendUser) Empty() bool {
	return u == nil || (u.ID == "" && u.Email == "")
}

// ToProfile converts the backend payload into a UserProfile
func (u *BackendUser) ToProfile() *UserProfile {
	return &UserProfile{
		ID:        string(u.ID),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      NormalizeRole(u.Role),
		AvatarURL: u.AvatarURL,
	}
}

// FlexibleID accepts both string and numeric JSON identifiers
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

// LoginRequest is the credential body sent to POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /auth/login
type LoginResponse struct {
	User    *BackendUser `json:"user"`
	Session struct {
		AccessToken string `json:"access_token"`
	} `json:"session"`
}

// PendingStudent is a row of the backend's pending-students listing
type PendingStudent struct {
	ID        FlexibleID `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Status    string     `json:"status,omitempty"`
}
