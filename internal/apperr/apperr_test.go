package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthCodeMapping(t *testing.T) {
	err := Auth(CodeWrongPassword, "ignored")
	var ae *AuthError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeWrongPassword, ae.Code)
	assert.Equal(t, "Wrong password.", ae.Msg)

	// Unmapped codes fall back to the backend's message.
	err = Auth("auth/weak-password", "password too weak")
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "password too weak", ae.Msg)

	// And to a generic one when the backend sent none.
	err = Auth("auth/mystery", "")
	assert.ErrorAs(t, err, &ae)
	assert.NotEmpty(t, ae.Msg)
}

func TestTransportWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transport("list todos", cause)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsTransport(wrapped))
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation", Validation("title", "Title cannot be empty"), "Title cannot be empty"},
		{"auth", Auth(CodeUserNotFound, ""), "No account found for that email."},
		{"not found", ErrNotFound, "That item no longer exists."},
		{"transport", Transport("get", errors.New("dial tcp")), "Could not reach the server. Try again."},
		{"unknown", errors.New("weird"), "Something went wrong. Try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(Validation("f", "m")))
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", Validation("f", "m"))))
	assert.False(t, IsValidation(ErrNotFound))
}
