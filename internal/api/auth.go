package api

import (
	"context"
	"fmt"
	"net/http"

	"todoterm/internal/session"
)

type signUpRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignUp creates an account. No session artifact is issued; the user signs in
// afterwards.
func (c *Client) SignUp(ctx context.Context, fullName, email, password string) error {
	body := signUpRequest{FullName: fullName, Email: email, Password: password}
	resp, err := c.request(ctx, "sign up", http.MethodPost, "/auth/signup", body, false)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return c.fail("sign up", resp)
	}
	return decodeInto(resp, nil)
}

// SignIn exchanges credentials for a session token and persists it in the
// credential store, which is what flips the next cold start's verdict.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	body := signInRequest{Email: email, Password: password}
	resp, err := c.request(ctx, "sign in", http.MethodPost, "/auth/signin", body, false)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return c.fail("sign in", resp)
	}
	var out signInResponse
	if err := decodeInto(resp, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return fmt.Errorf("sign in: backend returned no token")
	}
	if err := c.creds.Set(ctx, session.TokenKey, out.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	c.log.Info().Str("email", email).Msg("signed in")
	return nil
}
