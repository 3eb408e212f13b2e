package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("missing JWT_SECRET")
	ErrInvalidRole   = errors.New("invalid role for token issuance")
)

const defaultExpiryHours = 24

// tokenClaims is the JWT claim set carried by every bearer token.
type tokenClaims struct {
	Email string        `json:"email"`
	Role  entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens carrying an
// email + role claim.
//
// Configuration (env):
//   - JWT_SECRET (required; absence is a deployment error, reported on first use)
//   - JWT_EXPIRES_IN_HOURS (optional, default 24)
type TokenService struct {
	secret []byte
	expiry time.Duration
}

var _ interfaces.ITokenService = (*TokenService)(nil)

// NewTokenServiceFromEnv builds the service from environment variables.
// A missing secret is not fatal here; issuance reports ErrMissingSecret.
func NewTokenServiceFromEnv() *TokenService {
	hours := defaultExpiryHours
	if v := strings.TrimSpace(os.Getenv("JWT_EXPIRES_IN_HOURS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return &TokenService{
		secret: []byte(os.Getenv("JWT_SECRET")),
		expiry: time.Duration(hours) * time.Hour,
	}
}

func NewTokenService(secret []byte, expiry time.Duration) *TokenService {
	return &TokenService{secret: secret, expiry: expiry}
}

// IssueAdminToken mints a token pinned to the admin role. Admin tokens must
// go through this path; IssueToken refuses the admin role.
func (ts *TokenService) IssueAdminToken(email string) (string, error) {
	return ts.sign(email, entities.RoleAdmin)
}

// IssueToken mints a token for a customer or supervisor.
func (ts *TokenService) IssueToken(email string, role entities.Role) (string, error) {
	if role != entities.RoleUser && role != entities.RoleSupervisor {
		return "", ErrInvalidRole
	}
	return ts.sign(email, role)
}

func (ts *TokenService) sign(email string, role entities.Role) (string, error) {
	if len(ts.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &tokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates a token string. It returns nil on ANY failure
// (expired, malformed, wrong key, wrong algorithm); callers must treat nil as
// "unauthenticated", not as an exceptional condition.
func (ts *TokenService) Verify(tokenString string) *interfaces.TokenPayload {
	if len(ts.secret) == 0 {
		return nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil
	}
	return &interfaces.TokenPayload{Email: claims.Email, Role: claims.Role}
}

// ExtractBearerToken parses an "Authorization: Bearer <token>" header value.
// It requires exactly two whitespace-separated parts with the Bearer scheme
// and returns "" otherwise.
func ExtractBearerToken(headerValue string) string {
	parts := strings.Fields(headerValue)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
