package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Session is the currently authenticated principal. A nil *Session
// means signed out.
type Session struct {
	// Name is the display name claim from the ID token.
	Name string
	// Email is the email claim from the ID token.
	Email string
	// IDToken is the opaque bearer credential forwarded verbatim to the
	// record store, which is responsible for signature verification.
	IDToken string
}

// IsAuthenticated returns true if the session carries a credential.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.IDToken != ""
}

// TokenClaims are the identity claims extracted from an ID token payload.
type TokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ParseTokenClaims decodes the payload segment of a JWT-shaped token
// (base64url JSON) without verifying its signature. Parsing is
// deliberately tolerant: a malformed token yields empty claims rather
// than an error, so a sign-in never fails on claim extraction alone.
func ParseTokenClaims(token string) TokenClaims {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return TokenClaims{}
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return TokenClaims{}
	}
	var claims TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return TokenClaims{}
	}
	return claims
}

// NewSession builds a session from an issued credential. The display
// name falls back to the email claim when the token has no name claim.
func NewSession(idToken string) *Session {
	claims := ParseTokenClaims(idToken)
	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	return &Session{
		Name:    name,
		Email:   claims.Email,
		IDToken: idToken,
	}
}
