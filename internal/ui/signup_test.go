package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	signUpCalls int
	signInCalls int
	err         error
}

func (f *fakeAuth) SignIn(context.Context, string, string) error {
	f.signInCalls++
	return f.err
}

func (f *fakeAuth) SignUp(context.Context, string, string, string) error {
	f.signUpCalls++
	return f.err
}

func filledSignUpScreen(auth *fakeAuth, fullName, email, password, confirm string) signUpScreen {
	s := newSignUpScreen(Deps{Auth: auth})
	s.inputs[0].SetValue(fullName)
	s.inputs[1].SetValue(email)
	s.inputs[2].SetValue(password)
	s.inputs[3].SetValue(confirm)
	return s
}

func TestSignUpShortPasswordNeverCallsBackend(t *testing.T) {
	auth := &fakeAuth{}
	s := filledSignUpScreen(auth, "Ada", "a@b.com", "short", "short")

	next, cmd := s.submit()
	assert.Nil(t, cmd, "validation failure issues no command")
	assert.Zero(t, auth.signUpCalls, "no backend call is made")

	got := next.(signUpScreen)
	assert.Equal(t, "Password must be at least 8 characters.", got.errMsg)
}

func TestSignUpSuccessReplacesWithSignIn(t *testing.T) {
	auth := &fakeAuth{}
	s := filledSignUpScreen(auth, "Ada", "a@b.com", "password1", "password1")

	next, cmd := s.submit()
	require.NotNil(t, cmd)
	got := next.(signUpScreen)
	assert.True(t, got.busy)

	msg := cmd()
	require.IsType(t, signedUpMsg{}, msg)
	assert.Equal(t, 1, auth.signUpCalls)

	next, cmd = got.update(msg)
	require.NotNil(t, cmd)
	require.IsType(t, navReplaceMsg{}, cmd(), "success lands on SignIn at the same depth")
	assert.False(t, next.(signUpScreen).busy)
}

func TestSignUpBackendFailureStaysOnScreen(t *testing.T) {
	auth := &fakeAuth{err: assert.AnError}
	s := filledSignUpScreen(auth, "Ada", "a@b.com", "password1", "password1")

	next, cmd := s.submit()
	require.NotNil(t, cmd)

	next, cmd = next.(signUpScreen).update(cmd())
	assert.Nil(t, cmd, "failure keeps the user on SignUp")
	assert.NotEmpty(t, next.(signUpScreen).errMsg)
}
