package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminPasswordNotSet = errors.New("admin account has no password set")
)

// LoginResult is returned by all login flows.
type LoginResult struct {
	Token string
	Email string
	Role  entities.Role
}

// IAuthUseCase exposes the three role-exclusive login flows.
//
// Login failures are deliberately indistinguishable (ErrInvalidCredentials)
// whether the account is missing, the password mismatches, or the role does
// not fit the endpoint. The one exception is an admin record that was created
// without a password, which is a deployment problem rather than a bad login.

type IAuthUseCase interface {
	AdminLogin(ctx context.Context, email, password string) (LoginResult, error)
	UserLogin(ctx context.Context, email, password string) (LoginResult, error)
	SupervisorLogin(ctx context.Context, email, password string) (LoginResult, error)
}

type AuthUseCase struct {
	users       interfaces.IUserRepository
	supervisors interfaces.ISupervisorRepository
	tokens      interfaces.ITokenService

	// Env-configured bootstrap credentials: the very first admin login may
	// happen before any admin record exists in the store.
	bootstrapEmail    string
	bootstrapPassword string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	supervisors interfaces.ISupervisorRepository,
	tokens interfaces.ITokenService,
	bootstrapEmail, bootstrapPassword string,
) *AuthUseCase {
	return &AuthUseCase{
		users:             users,
		supervisors:       supervisors,
		tokens:            tokens,
		bootstrapEmail:    bootstrapEmail,
		bootstrapPassword: bootstrapPassword,
	}
}

func (u *AuthUseCase) AdminLogin(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	admin, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if admin.ID != "" && admin.Role == entities.RoleAdmin {
		if admin.PasswordHash == "" {
			return LoginResult{}, ErrAdminPasswordNotSet
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
			return LoginResult{}, ErrInvalidCredentials
		}
		return u.issueAdmin(email)
	}

	// Bootstrap path: env credentials create the first admin record.
	if u.bootstrapEmail == "" || email != u.bootstrapEmail || password != u.bootstrapPassword {
		return LoginResult{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, err
	}
	now := time.Now().UTC()
	if _, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		// The token still authenticates via the env credentials; record
		// creation is retried on the next login.
		log.Printf("[auth][usecase] bootstrap admin create failed email=%s err=%v", email, err)
	}

	return u.issueAdmin(email)
}

func (u *AuthUseCase) issueAdmin(email string) (LoginResult, error) {
	token, err := u.tokens.IssueAdminToken(email)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Email: email, Role: entities.RoleAdmin}, nil
}

func (u *AuthUseCase) UserLogin(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" || user.Role != entities.RoleUser || user.PasswordHash == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(email, entities.RoleUser)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Email: email, Role: entities.RoleUser}, nil
}

func (u *AuthUseCase) SupervisorLogin(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	sup, err := u.supervisors.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if sup.ID == "" || sup.PasswordHash == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(sup.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(email, entities.RoleSupervisor)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Email: email, Role: entities.RoleSupervisor}, nil
}
