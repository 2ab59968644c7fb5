package model

// Scope carries the caller identity attached to a request.
type Scope struct {
	UserID   string
	Username string
}
