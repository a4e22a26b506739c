// Package gate decides, for a session state and a requested path, whether a
// page renders, waits or redirects to the login page.
package gate

import (
	"strings"

	"github.com/internship-hub-portal/internal/models"
)

// LoginPath is where unauthenticated users are sent
const LoginPath = "/login"

// Action is the outcome of a gate decision
type Action string

const (
	ActionLoading  Action = "LOADING"
	ActionRender   Action = "RENDER"
	ActionRedirect Action = "REDIRECT"
)

// Decision is what the page layer should do with a request
type Decision struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
}

var publicPaths = map[string]bool{
	"/":         true,
	"/login":    true,
	"/register": true,
}

var publicPrefixes = []string{"/onboarding", "/welcome"}

// IsPublic reports whether path is reachable without a session.
// Prefix entries match the prefix itself and anything nested below it.
func IsPublic(path string) bool {
	if publicPaths[path] {
		return true
	}
	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// Decide maps a session state and path to a Decision. It never restricts by
// role: any signed-in session may render any private path.
func Decide(state models.SessionState, path string) Decision {
	switch {
	case !state.Terminal():
		return Decision{Action: ActionLoading}
	case state.SignedIn() || IsPublic(path):
		return Decision{Action: ActionRender}
	default:
		return Decision{Action: ActionRedirect, Target: LoginPath}
	}
}
