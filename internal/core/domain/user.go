package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is a ledger owner. All sites, people, and transactions are scoped to
// exactly one user; repositories attach the owner ID to every read and write.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`
	EmailVerified  bool         `json:"-"`
	AuditFields
}
