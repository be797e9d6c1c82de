package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
	"todoterm/internal/server"
	"todoterm/internal/session"
)

// newTestClient wires the client against the real dev backend over httptest,
// so these tests exercise the actual wire format end to end.
func newTestClient(t *testing.T) (*Client, *session.FileStore) {
	t.Helper()
	srv := server.New("test-secret", time.Hour, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	creds := session.NewFileStore(t.TempDir())
	return NewClient(ts.URL, creds, zerolog.Nop()), creds
}

func signedInClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	c, _ := newTestClient(t)
	require.NoError(t, c.SignUp(ctx, "Ada Lovelace", "ada@example.com", "password1"))
	require.NoError(t, c.SignIn(ctx, "ada@example.com", "password1"))
	return c
}

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	c, creds := newTestClient(t)

	require.NoError(t, c.SignUp(ctx, "Ada Lovelace", "a@b.com", "password1"))

	// Duplicate account comes back as a coded auth error.
	err := c.SignUp(ctx, "Ada Again", "a@b.com", "password1")
	var ae *apperr.AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeEmailInUse, ae.Code)

	// Wrong password and unknown account map to their codes.
	err = c.SignIn(ctx, "a@b.com", "wrong-password")
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeWrongPassword, ae.Code)

	err = c.SignIn(ctx, "nobody@b.com", "password1")
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeUserNotFound, ae.Code)

	// Success persists the token, which flips the next cold start.
	require.NoError(t, c.SignIn(ctx, "a@b.com", "password1"))
	tok, err := creds.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	v := session.NewResolver(creds, zerolog.Nop()).Resolve(ctx)
	assert.Equal(t, session.Authenticated, v)
}

func TestTodoCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := signedInClient(t)

	todos, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	created, err := c.Create(ctx, model.Todo{
		Title:       "Buy milk",
		Description: "2%",
		Status:      model.StatusInProgress,
		Deadline:    "2024-12-31",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	todos, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created, todos[0])
	assert.Equal(t, model.StatusInProgress, todos[0].Status)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Full replace: the omitted description and deadline are gone after.
	require.NoError(t, c.Update(ctx, created.ID, model.Todo{
		Title:  "Buy oat milk",
		Status: model.StatusInProgress,
	}))
	got, err = c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.Deadline)

	require.NoError(t, c.Delete(ctx, created.ID))
	_, err = c.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, c.Delete(ctx, created.ID), apperr.ErrNotFound)
}

func TestMissingTokenFailsTodoCalls(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.List(context.Background())
	var ae *apperr.AuthError
	require.ErrorAs(t, err, &ae, "an unauthenticated todo call is an auth failure, not a transport one")
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	srv := server.New("test-secret", time.Hour, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	creds := session.NewFileStore(t.TempDir())
	c := NewClient(ts.URL, creds, zerolog.Nop())
	ts.Close()

	_, err := c.List(context.Background())
	assert.True(t, apperr.IsTransport(err))

	err = c.SignIn(context.Background(), "a@b.com", "password1")
	assert.True(t, apperr.IsTransport(err), "auth network failures surface as transport errors")
}
