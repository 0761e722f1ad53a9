package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr represents an error when an entity collides with an existing one.
type ConflictErr struct {
	domainErr
}

// NewConflictErr creates a new ConflictErr with the given message.
func NewConflictErr(message string) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
	}
}

// UnauthorizedErr represents a request without an authenticated principal.
type UnauthorizedErr struct {
	domainErr
}

// NewUnauthorizedErr creates a new UnauthorizedErr with the given message.
func NewUnauthorizedErr(message string) *UnauthorizedErr {
	return &UnauthorizedErr{
		domainErr: domainErr{message: message},
	}
}

// ForbiddenErr represents a principal lacking the permission for an operation.
type ForbiddenErr struct {
	domainErr
}

// NewForbiddenErr creates a new ForbiddenErr with the given message.
func NewForbiddenErr(message string) *ForbiddenErr {
	return &ForbiddenErr{
		domainErr: domainErr{message: message},
	}
}

// UnavailableErr represents a dependency that is not configured or not reachable.
// It aborts a whole request before any per-item work starts.
type UnavailableErr struct {
	domainErr
}

// NewUnavailableErr creates a new UnavailableErr with the given message.
func NewUnavailableErr(message string) *UnavailableErr {
	return &UnavailableErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErr represents a dependency that was reached but failed to serve the request.
type UpstreamErr struct {
	domainErr
}

// NewUpstreamErr creates a new UpstreamErr with the given message.
func NewUpstreamErr(message string) *UpstreamErr {
	return &UpstreamErr{
		domainErr: domainErr{message: message},
	}
}

// IsUnavailable reports whether err is, or wraps, an UnavailableErr.
func IsUnavailable(err error) bool {
	var target *UnavailableErr
	return errors.As(err, &target)
}
