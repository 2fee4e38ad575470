package models

// Tag represents a descriptive label that can be attached to games
type Tag struct {
	// ID is the unique identifier for the tag
	ID string

	// Name is the tag's label, unique per deployment
	Name string
}
