package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "passenger.email: is required", InvalidField("passenger.email", "is required").Error())
	assert.Equal(t, "booking not found", New(CodeNotFound, "booking not found").Error())

	cause := errors.New("boom")
	err := Wrap(CodeInternal, "store booking", cause)
	assert.Equal(t, "store booking: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"invalid argument", InvalidField("segments", "at least one segment is required"), CodeInvalidArgument},
		{"not found", Newf(CodeNotFound, "booking %q not found", "x"), CodeNotFound},
		{"failed precondition", New(CodeFailedPrecondition, "fare expired"), CodeFailedPrecondition},
		{"wrapped classification", fmt.Errorf("quote: %w", New(CodeNotFound, "gone")), CodeNotFound},
		{"plain error", errors.New("plain"), CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodeOf(tc.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsInvalidArgument(InvalidField("x", "bad")))
	assert.True(t, IsNotFound(New(CodeNotFound, "gone")))
	assert.True(t, IsFailedPrecondition(New(CodeFailedPrecondition, "stale")))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsInvalidArgument(errors.New("plain")))
}
