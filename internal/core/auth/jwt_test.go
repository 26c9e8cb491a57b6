package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParse_Roundtrip(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "cms-test", TTL: time.Hour}

	tok, err := j.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UID)
	assert.Equal(t, "cms-test", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("secret-a"), Issuer: "cms-test", TTL: time.Hour}
	tok, err := j.Issue("user-123")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("secret-b"), Issuer: "cms-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("user-123")
	require.NoError(t, err)

	verifier := &JWTer{Secret: []byte("test-secret"), Issuer: "cms-test", TTL: time.Hour}
	_, err = verifier.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	// Expired beyond the 60s leeway.
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "cms-test", TTL: -2 * time.Minute}
	tok, err := j.Issue("user-123")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "cms-test", TTL: time.Hour}
	_, err := j.Parse("not.a.token")
	assert.Error(t, err)
}
