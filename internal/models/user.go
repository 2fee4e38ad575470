package models

// User represents a known player profile
type User struct {
	// ID is the platform identity of the user
	ID string

	// CachedName is the last display name seen for the user
	CachedName string
}
