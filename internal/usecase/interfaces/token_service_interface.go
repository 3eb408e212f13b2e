package interfaces

import "construtora_xpto/internal/domain/entities"

// TokenPayload is the verified content of a bearer token.
type TokenPayload struct {
	Email string
	Role  entities.Role
}

// ITokenService abstracts signed bearer token issuance and verification.
//
// Verify returns nil on any failure (expired, malformed, wrong key); a nil
// payload means "unauthenticated", never an internal error.

type ITokenService interface {
	IssueAdminToken(email string) (string, error)
	IssueToken(email string, role entities.Role) (string, error)
	Verify(token string) *TokenPayload
}
