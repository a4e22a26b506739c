package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/internship-hub-portal/internal/models"
)

// Me fetches the current user. A nil user with a nil error means the
// backend answered with an empty payload.
func (c *Client) Me(ctx context.Context) (*models.BackendUser, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/me"}, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   models.LoginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PendingStudents lists students awaiting approval
func (c *Client) PendingStudents(ctx context.Context) ([]models.PendingStudent, error) {
	var students []models.PendingStudent
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/students/pending"}, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.PendingStudent{}
	}
	return students, nil
}

// decodeUser accepts either a bare profile or one wrapped in {"user": ...}
func decodeUser(raw json.RawMessage) (*models.BackendUser, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return nil, nil
	}

	var wrapped struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: /auth/me payload: %w", ErrInvalidResponse, err)
	}
	if len(wrapped.User) > 0 {
		raw = bytes.TrimSpace(wrapped.User)
		if bytes.Equal(raw, []byte("null")) {
			return nil, nil
		}
	}

	var user models.BackendUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: /auth/me user: %w", ErrInvalidResponse, err)
	}
	if user.Empty() {
		return nil, nil
	}
	return &user, nil
}
