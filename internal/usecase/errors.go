package usecase

// TechnicalError marks infrastructure failures (store unreachable, etc).
// The dialog itself never produces errors for user input.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
