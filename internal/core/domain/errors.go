package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("username or password is incorrect")
var ErrOldPasswordIncorrect = errors.New("old password is not correct")
var ErrPasswordMismatch = errors.New("new password and confirm password do not match")
var ErrPasswordPolicy = errors.New("new password does not conform to password policy")
var ErrForbidden = errors.New("no permission to access this resource")
var ErrUsernameTaken = errors.New("username is already taken")

// NotFoundError reports a missing entity by its id. The resource name is part
// of the message so callers can tell which lookup failed in multi-entity
// operations.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s with id %v", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and id.
func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
