package practitioner

import "fmt"

// NotFoundError indicates the requested practitioner does not exist.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("practitioner %s not found", e.ID)
}

// InvalidInputError indicates a roster write request the caller must correct.
type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return e.Message
}
