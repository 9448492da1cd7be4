package models

// Identity is the authenticated caller, derived per-request from a
// verified token. It is never persisted.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
