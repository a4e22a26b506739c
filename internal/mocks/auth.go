package mocks

import (
	"context"
	"sync"

	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/session"
)

// MockAuthClient is a mock implementation of session.AuthClient
type MockAuthClient struct {
	MeFunc    func(ctx context.Context) (*models.BackendUser, error)
	LoginFunc func(ctx context.Context, email, password string) (*models.LoginResponse, error)

	// Returned when the corresponding func is nil
	User     *models.BackendUser
	MeErr    error
	LoginErr error
	Token    string

	mu         sync.Mutex
	MeCalls    int
	LoginCalls int
}

// Verify interface compliance
var _ session.AuthClient = (*MockAuthClient)(nil)

func NewMockAuthClient() *MockAuthClient {
	return &MockAuthClient{}
}

func (m *MockAuthClient) Me(ctx context.Context) (*models.BackendUser, error) {
	m.mu.Lock()
	m.MeCalls++
	m.mu.Unlock()
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return m.User, m.MeErr
}

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	m.mu.Lock()
	m.LoginCalls++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	resp := &models.LoginResponse{User: m.User}
	resp.Session.AccessToken = m.Token
	return resp, nil
}

// MeCallCount returns the number of Me calls so far
func (m *MockAuthClient) MeCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.MeCalls
}
