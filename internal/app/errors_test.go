package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))

	assert.False(t, IsInvalidRequestError(NotFoundError("nope")))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(errors.New("simple error")))
	assert.False(t, IsNotFoundError(nil))

	nfErr := NotFoundError("repository not found")
	assert.True(t, IsNotFoundError(nfErr))
	assert.True(t, IsNotFoundError(fmt.Errorf("a: %w", fmt.Errorf("b: %w", nfErr))))
}

func TestIsTooManyRequestsError(t *testing.T) {
	assert.False(t, IsTooManyRequestsError(errors.New("simple error")))

	tmrErr := TooManyRequestsError("rate limit exceeded")
	assert.True(t, IsTooManyRequestsError(tmrErr))
	assert.True(t, IsTooManyRequestsError(fmt.Errorf("wrapping message: %w", tmrErr)))
	assert.False(t, IsInvalidRequestError(tmrErr))
}
