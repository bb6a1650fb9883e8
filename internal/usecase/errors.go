package usecase

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrTokenNotFound      = errors.New("token not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidRole        = errors.New("invalid role")
)

// FieldErrors is a validation failure keyed by request field name. Returned
// before any write happens.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

// ProvisioningError wraps a failure that occurred after registration started
// writing. The surrounding transaction has already been rolled back, so no
// partial account is left behind.
type ProvisioningError struct {
	Err error
}

func (e *ProvisioningError) Error() string {
	return "account provisioning failed: " + e.Err.Error()
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
