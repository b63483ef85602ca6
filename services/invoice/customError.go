package invoice

// InvalidInputError signals a rejected request payload, such as a status
// literal outside the workflow whitelist.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return e.Reason
}
