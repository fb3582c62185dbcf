package model

import "fmt"

// MissingFieldError is returned when a required key is absent from a JSON object
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Key)
}

// WrongTypeError is returned when a key is present but holds a value of an unexpected JSON type
type WrongTypeError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("field %q has wrong type: expected %s, got %s", e.Key, e.Expected, e.Actual)
}

// NoPrimaryRepositoryError is returned when the repository list of a blueprint
// does not contain exactly one entry for the primary repository id
type NoPrimaryRepositoryError struct {
	ID      string
	Matches int
}

func (e *NoPrimaryRepositoryError) Error() string {
	return fmt.Sprintf("expected exactly one remote repository with id %q, found %d", e.ID, e.Matches)
}

// AggregateKeyCollisionError is returned when a regular test class or method
// would be stored under the reserved aggregate key
type AggregateKeyCollisionError struct {
	Path string
}

func (e *AggregateKeyCollisionError) Error() string {
	return fmt.Sprintf("%q collides with the reserved aggregate key", e.Path)
}
