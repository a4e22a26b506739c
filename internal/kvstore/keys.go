package kvstore

// Session keys, stored per client namespace
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
	KeyUserRole  = "userRole"
	KeyUserName  = "userName"
	KeyUserEmail = "userEmail"
)

// SessionKeys lists every key cleared on logout or authentication failure
var SessionKeys = []string{KeyAuthToken, KeyUser, KeyUserRole, KeyUserName, KeyUserEmail}

// Mock collection keys, stored in the shared namespace
const (
	KeyPlacementQueue = "hodCompanyApprovalQueue"
	KeyAbuseReports   = "internshipHub_abuseReports"
)
