package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIDToken builds a JWT-shaped token with the given payload JSON.
// Header and signature segments are arbitrary; only the payload is read.
func fakeIDToken(payload string) string {
	encode := base64.RawURLEncoding.EncodeToString
	return encode([]byte(`{"alg":"RS256"}`)) + "." + encode([]byte(payload)) + ".sig"
}

func TestParseTokenClaims(t *testing.T) {
	token := fakeIDToken(`{"name":"Jo Reyes","email":"jo@example.org"}`)

	claims := ParseTokenClaims(token)

	assert.Equal(t, "Jo Reyes", claims.Name)
	assert.Equal(t, "jo@example.org", claims.Email)
}

func TestParseTokenClaims_Tolerant(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no segments", "garbage"},
		{"bad base64", "a.!!!.c"},
		{"bad json", fakeIDToken(`not-json`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := ParseTokenClaims(tt.token)
			assert.Empty(t, claims.Name)
			assert.Empty(t, claims.Email)
		})
	}
}

func TestNewSession(t *testing.T) {
	token := fakeIDToken(`{"name":"Jo Reyes","email":"jo@example.org"}`)

	session := NewSession(token)

	require.NotNil(t, session)
	assert.Equal(t, "Jo Reyes", session.Name)
	assert.Equal(t, "jo@example.org", session.Email)
	assert.Equal(t, token, session.IDToken)
	assert.True(t, session.IsAuthenticated())
}

func TestNewSession_NameFallsBackToEmail(t *testing.T) {
	token := fakeIDToken(`{"email":"jo@example.org"}`)

	session := NewSession(token)

	assert.Equal(t, "jo@example.org", session.Name)
}

func TestNewSession_UndecodableToken(t *testing.T) {
	// Claim extraction failure degrades to a signed-in session with
	// empty identity, never a sign-in failure.
	session := NewSession("opaque-but-valid-credential")

	require.NotNil(t, session)
	assert.True(t, session.IsAuthenticated())
	assert.Empty(t, session.Name)
	assert.Empty(t, session.Email)
}

func TestSession_IsAuthenticated(t *testing.T) {
	var none *Session
	assert.False(t, none.IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
	assert.True(t, (&Session{IDToken: "tok"}).IsAuthenticated())
}
