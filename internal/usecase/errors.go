package usecase

// DomainError: the upstream API understood the request and said no
// (e.g. WebinarJam rejected the registration). Safe to report back.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: transport or infrastructure failure talking to an
// upstream. The caller maps these to a 502-style response.
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
