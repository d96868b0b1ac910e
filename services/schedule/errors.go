package schedule

// InvalidInputError indicates a schedule write request the caller must correct.
type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return e.Message
}
