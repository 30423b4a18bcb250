package models

// User is one entry of the allow-list credential store (users.json).
// Credentials are stored and compared in plaintext. This is a demo
// placeholder, not an authentication system.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
