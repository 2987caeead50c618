package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/neogig/neogig/internal/domain"
)

// VerifyReason classifies why a token failed verification. Reasons are
// logged server-side and collapsed to an anonymous identity before any
// caller sees them.
type VerifyReason string

const (
	VerifyMalformed        VerifyReason = "MALFORMED"
	VerifySignatureInvalid VerifyReason = "SIGNATURE_INVALID"
	VerifyExpired          VerifyReason = "EXPIRED"
)

// VerifyError is a failure value, not an exceptional condition: invalid
// tokens are ordinary traffic.
type VerifyError struct {
	Reason VerifyReason
	Err    error
}

func (e *VerifyError) Error() string {
	return string(e.Reason)
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// TokenService issues and verifies stateless session tokens. The secret
// is injected at construction and treated as immutable for the process
// lifetime; rotating it invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service with the given secret and lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the subject. Tokens are created only after a
// successful credential check (login or signup).
func (ts *TokenService) Issue(subjectID string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Any failure comes back as a VerifyError value; Verify never panics on
// arbitrary input.
func (ts *TokenService) Verify(tokenStr string) (domain.Identity, *VerifyError) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ts.secret, nil
	})
	if err != nil {
		return domain.Anonymous, classifyVerifyError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Anonymous, &VerifyError{Reason: VerifyMalformed}
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return domain.Anonymous, &VerifyError{Reason: VerifyMalformed}
	}
	return domain.Identity{SubjectID: claims.Subject, Role: claims.Role}, nil
}

func classifyVerifyError(err error) *VerifyError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerifyError{Reason: VerifyExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &VerifyError{Reason: VerifySignatureInvalid, Err: err}
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &VerifyError{Reason: VerifyMalformed, Err: err}
	default:
		// Unknown signing method and other parse failures count as bad
		// signatures rather than malformed input.
		return &VerifyError{Reason: VerifySignatureInvalid, Err: err}
	}
}
