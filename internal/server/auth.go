package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todoterm/internal/apperr"
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

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "auth/bad-request", "malformed body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		s.writeError(w, http.StatusBadRequest, "auth/bad-request", "all fields are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		s.writeError(w, http.StatusBadRequest, apperr.CodeInvalidEmail, "invalid email")
		return
	}
	if len(req.Password) < 8 {
		s.writeError(w, http.StatusBadRequest, "auth/weak-password", "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "auth/internal", "hash failure")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		s.writeError(w, http.StatusConflict, apperr.CodeEmailInUse, "email already registered")
		return
	}
	u := user{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	s.users[req.Email] = u
	s.log.Info().Str("email", u.Email).Msg("account created")
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": u.ID})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "auth/bad-request", "malformed body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	s.mu.Lock()
	u, exists := s.users[req.Email]
	s.mu.Unlock()
	if !exists {
		s.writeError(w, http.StatusUnauthorized, apperr.CodeUserNotFound, "no such account")
		return
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		s.writeError(w, http.StatusUnauthorized, apperr.CodeWrongPassword, "wrong password")
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "auth/internal", "token failure")
		return
	}
	s.log.Info().Str("email", u.Email).Msg("signed in")
	s.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type ctxKey int

const userIDKey ctxKey = 0

// requireAuth verifies the bearer token on every todo route. An expired or
// missing token fails the individual call; the client's gate only checks
// token presence.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			s.writeError(w, http.StatusUnauthorized, "auth/missing-token", "missing bearer token")
			return
		}
		raw = strings.TrimSpace(raw[7:])

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "auth/invalid-token", "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
