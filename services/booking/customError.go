package booking

// InvalidInputError signals a rejected request payload: a blank service
// list, an unknown status literal, or a malformed identifier.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return e.Reason
}
