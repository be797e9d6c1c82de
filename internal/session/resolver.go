// Package session decides, once per cold start, whether a persisted
// credential exists and therefore which screen stack the user may enter.
package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Verdict is the resolved authentication state. The zero value is Unknown;
// nothing navigable may render until the resolver has produced one of the
// other two.
type Verdict int

const (
	Unknown Verdict = iota
	Authenticated
	Unauthenticated
)

func (v Verdict) String() string {
	switch v {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Resolver queries the credential store a single time and turns the result
// into a Verdict. It holds no state between calls: a second cold-start run
// always re-reads the store.
type Resolver struct {
	store CredentialStore
	log   zerolog.Logger
}

func NewResolver(store CredentialStore, log zerolog.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

// Resolve reads the stored token and maps it to a verdict. A non-empty token
// is sufficient proof of authentication for gating purposes; freshness is the
// backend's problem. A failed read resolves Unauthenticated — never fail open
// into an authenticated stack. No retry.
func (r *Resolver) Resolve(ctx context.Context) Verdict {
	token, err := r.store.Get(ctx, TokenKey)
	if err != nil {
		r.log.Warn().Err(err).Msg("credential read failed, resolving unauthenticated")
		return Unauthenticated
	}
	if strings.TrimSpace(token) == "" {
		return Unauthenticated
	}
	return Authenticated
}
