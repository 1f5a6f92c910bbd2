package profile

import "errors"

// Sentinel errors for profile lookups and construction. Callers match with
// errors.Is; the manager wraps them with the profile name.
var (
	ErrNotFound = errors.New("profile not found")
	ErrExists   = errors.New("profile already exists")
	ErrInvalid  = errors.New("invalid profile")
)

// ValidationError reports a failed syntactic check on profile input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
