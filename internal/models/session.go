package models

// SessionState is the resolver state of a client session
type SessionState string

const (
	SessionUninitialized   SessionState = "UNINITIALIZED"
	SessionResolving       SessionState = "RESOLVING"
	SessionAuthenticated   SessionState = "AUTHENTICATED"
	SessionUnauthenticated SessionState = "UNAUTHENTICATED"
	SessionDegraded        SessionState = "DEGRADED"
)

// Terminal reports whether a resolution pass has finished
func (s SessionState) Terminal() bool {
	return s == SessionAuthenticated || s == SessionUnauthenticated || s == SessionDegraded
}

// SignedIn reports whether the state renders as authenticated.
// DEGRADED counts: the cached profile is used while the backend is unreachable.
func (s SessionState) SignedIn() bool {
	return s == SessionAuthenticated || s == SessionDegraded
}

// Session is the client-held authentication state.
// User != nil implies Role == NormalizeRole(User.Role); an empty Token implies a nil User.
type Session struct {
	Token   string       `json:"-"`
	User    *UserProfile `json:"user,omitempty"`
	Role    Role         `json:"role,omitempty"`
	Loading bool         `json:"loading"`
	State   SessionState `json:"state"`
}

// SessionView is the read-only view handed to page collaborators
type SessionView struct {
	User      *UserProfile `json:"user"`
	Role      Role         `json:"role,omitempty"`
	IsLoading bool         `json:"isLoading"`
	State     SessionState `json:"state"`
	Stale     bool         `json:"stale"`
	Dashboard string       `json:"dashboard,omitempty"`
}

// View builds the read-only view of s
func (s Session) View() SessionView {
	view := SessionView{
		User:      s.User,
		Role:      s.Role,
		IsLoading: s.Loading,
		State:     s.State,
		Stale:     s.State == SessionDegraded,
	}
	if s.User != nil {
		view.Dashboard = s.Role.DashboardPath()
	}
	return view
}
