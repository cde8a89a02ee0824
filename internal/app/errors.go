package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when requested repository or contributor doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by missing resource
func IsNotFoundError(err error) bool {
	var nfe interface {
		IsNotFound() bool
	}
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// TooManyRequestsError is returned when github api rate limit is exceeded,
// or when local rate limiter couldn't acquire a slot in time.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by rate limiting
func IsTooManyRequestsError(err error) bool {
	var tmr interface {
		IsTooManyRequests() bool
	}
	if errors.As(err, &tmr) {
		return tmr.IsTooManyRequests()
	}

	return false
}
