package models

// User represents an account entity used for authentication and authorization.
// The password field carries the bcrypt hash once the user is persisted and
// is never written to JSON responses.
type User struct {
	// UserID is the unique identifier of the user (UUID string).
	UserID string `json:"id"`

	// Username is the unique user login. Must be non-empty.
	Username string `json:"username"`

	// Password holds the raw password on input (register/login) and the
	// bcrypt hash after the user is loaded from storage.
	Password string `json:"password,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public view of the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Username: u.Username}
}

// Identity is the authenticated caller as seen by handlers: id and username,
// never the password hash. It is stored in the request context by the auth
// middleware and echoed back by registration and /api/auth/me.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}
