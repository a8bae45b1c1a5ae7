package entities

import "time"

// Role is the access tier of a staff account.

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User is a staff account. New accounts start unapproved and are activated
// (or rejected) by the admin; the first admin account approves itself.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (username-index): username
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Approved     bool      `json:"approved"`
	Rejected     bool      `json:"rejected"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u User) IsManager() bool { return u.Role == RoleManager }

// Actor is the request-scoped identity every operation receives explicitly.
// It is built from the verified token by the auth middleware and never read
// from ambient state.
type Actor struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved"`
}

func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a Actor) IsManager() bool { return a.Role == RoleManager }
