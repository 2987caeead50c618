package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neogig/neogig/internal/domain"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, expiresAt, err := ts.Issue("account-123", domain.RoleSeeker)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, verr := ts.Verify(token)
	require.Nil(t, verr)
	assert.Equal(t, "account-123", identity.SubjectID)
	assert.Equal(t, domain.RoleSeeker, identity.Role)
	assert.False(t, identity.IsAnonymous())
}

func TestVerifyExpired(t *testing.T) {
	ts := &TokenService{secret: []byte("test-secret"), ttl: -time.Hour}

	token, _, err := ts.Issue("account-123", domain.RoleCompany)
	require.NoError(t, err)

	identity, verr := ts.Verify(token)
	require.NotNil(t, verr)
	assert.Equal(t, VerifyExpired, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, _, err := issuer.Issue("account-123", domain.RoleSeeker)
	require.NoError(t, err)

	identity, verr := verifier.Verify(token)
	require.NotNil(t, verr)
	assert.Equal(t, VerifySignatureInvalid, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}

func TestVerifyTamperedToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, _, err := ts.Issue("account-123", domain.RoleSeeker)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	identity, verr := ts.Verify(tampered)
	require.NotNil(t, verr)
	assert.Equal(t, VerifySignatureInvalid, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}

func TestVerifyMalformed(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		identity, verr := ts.Verify(input)
		require.NotNil(t, verr, "input %q", input)
		assert.Equal(t, VerifyMalformed, verr.Reason, "input %q", input)
		assert.True(t, identity.IsAnonymous())
	}
}

func TestVerifyUnexpectedSigningMethod(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	claims := &Claims{
		Role: domain.RoleSeeker,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "account-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, verr := ts.Verify(token)
	require.NotNil(t, verr)
	assert.Equal(t, VerifySignatureInvalid, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}

func TestVerifyMissingSubject(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	claims := &Claims{
		Role: domain.RoleSeeker,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, verr := ts.Verify(token)
	require.NotNil(t, verr)
	assert.Equal(t, VerifyMalformed, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}

func TestVerifyUnknownRole(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	claims := &Claims{
		Role: domain.Role("ADMIN"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "account-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, verr := ts.Verify(token)
	require.NotNil(t, verr)
	assert.Equal(t, VerifyMalformed, verr.Reason)
	assert.True(t, identity.IsAnonymous())
}
