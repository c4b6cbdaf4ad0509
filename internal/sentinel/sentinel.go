package sentinel

var _ error = Error("")

// Error is an error value that can be declared as a const.
// It compares by value, so errors.Is works without a custom Is method.
type Error string

func (e Error) Error() string {
	return string(e)
}
