package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, ttl time.Duration) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New("test-secret", ttl, zerolog.Nop()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func errCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var e errBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e.Code
}

func TestSignUpValidation(t *testing.T) {
	ts := newTestServer(t, time.Hour)

	cases := []struct {
		name   string
		body   map[string]string
		status int
		code   string
	}{
		{
			"missing fields",
			map[string]string{"email": "a@b.com"},
			http.StatusBadRequest, "auth/bad-request",
		},
		{
			"invalid email",
			map[string]string{"full_name": "A", "email": "not-an-email", "password": "password1"},
			http.StatusBadRequest, "auth/invalid-email",
		},
		{
			"weak password",
			map[string]string{"full_name": "A", "email": "a@b.com", "password": "short"},
			http.StatusBadRequest, "auth/weak-password",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/auth/signup", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, errCode(t, resp))
		})
	}
}

func TestTodoRoutesRejectBadTokens(t *testing.T) {
	ts := newTestServer(t, time.Hour)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/todos", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth/missing-token", errCode(t, resp))

	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth/invalid-token", errCode(t, resp))
}

func TestExpiredTokenFailsIndividualCalls(t *testing.T) {
	// Negative TTL issues already expired tokens: token presence satisfies
	// the client-side gate, the backend rejects the actual call.
	ts := newTestServer(t, -time.Minute)

	resp := postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"full_name": "A", "email": "a@b.com", "password": "password1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/auth/signin", map[string]string{
		"email": "a@b.com", "password": "password1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	require.NotEmpty(t, out.Token)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/todos", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth/invalid-token", errCode(t, resp))
}
