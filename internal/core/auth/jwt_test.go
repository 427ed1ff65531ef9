package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontero22c/BRM-Backend/internal/core/auth"
)

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "brm", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue(7, "Customer", "ana@test.com")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), c.UID)
	assert.Equal(t, "Customer", c.Role)
	assert.Equal(t, "ana@test.com", c.Email)
	assert.Equal(t, "brm", c.Issuer)
}

func TestParseExpired(t *testing.T) {
	j := newJWTer()
	j.TTL = -5 * time.Minute // 过期幅度超过 60s 容忍
	tok, err := j.Issue(1, "Customer", "")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue(1, "Administrator", "")
	require.NoError(t, err)

	other := &auth.JWTer{Secret: []byte("otro"), Issuer: "brm", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue(1, "Customer", "")
	require.NoError(t, err)

	other := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "otro", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := newJWTer().Parse("not-a-token")
	assert.Error(t, err)
}
