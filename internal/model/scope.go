package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	Username string
}
