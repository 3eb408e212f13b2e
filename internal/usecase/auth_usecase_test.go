package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_AdminLogin(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, "", "")
		_, err := uc.AdminLogin(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("persisted admin with matching password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, nil, tokens, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{
			ID: "admin-1", Email: "admin@acme.com", Role: entities.RoleAdmin,
			PasswordHash: hashPassword(t, "s3cret"),
		}, nil)
		tokens.EXPECT().IssueAdminToken("admin@acme.com").Return("tok", nil)

		res, err := uc.AdminLogin(context.Background(), "admin@acme.com", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok" || res.Role != entities.RoleAdmin {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("persisted admin with wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{
			ID: "admin-1", Role: entities.RoleAdmin, PasswordHash: hashPassword(t, "s3cret"),
		}, nil)

		_, err := uc.AdminLogin(context.Background(), "admin@acme.com", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("persisted admin without password hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{
			ID: "admin-1", Role: entities.RoleAdmin,
		}, nil)

		_, err := uc.AdminLogin(context.Background(), "admin@acme.com", "s3cret")
		if !errors.Is(err, ErrAdminPasswordNotSet) {
			t.Fatalf("expected ErrAdminPasswordNotSet, got %v", err)
		}
	})

	t.Run("bootstrap creates the first admin record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, nil, tokens, "boss@acme.com", "bootpw")

		users.EXPECT().GetByEmail(gomock.Any(), "boss@acme.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleAdmin || u.Email != "boss@acme.com" {
					t.Fatalf("unexpected bootstrap admin: %+v", u)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("bootpw")) != nil {
					t.Fatalf("bootstrap hash does not match the env password")
				}
				return u, nil
			},
		)
		tokens.EXPECT().IssueAdminToken("boss@acme.com").Return("tok", nil)

		res, err := uc.AdminLogin(context.Background(), "boss@acme.com", "bootpw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("bootstrap mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, "boss@acme.com", "bootpw")

		users.EXPECT().GetByEmail(gomock.Any(), "boss@acme.com").Return(entities.User{}, nil)

		_, err := uc.AdminLogin(context.Background(), "boss@acme.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token still issued when the bootstrap create fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, nil, tokens, "boss@acme.com", "bootpw")

		users.EXPECT().GetByEmail(gomock.Any(), "boss@acme.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("db"))
		tokens.EXPECT().IssueAdminToken("boss@acme.com").Return("tok", nil)

		res, err := uc.AdminLogin(context.Background(), "boss@acme.com", "bootpw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_UserLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, nil, tokens, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "joe@acme.com").Return(entities.User{
			ID: "user-1", Role: entities.RoleUser, PasswordHash: hashPassword(t, "pw"),
		}, nil)
		tokens.EXPECT().IssueToken("joe@acme.com", entities.RoleUser).Return("tok", nil)

		res, err := uc.UserLogin(context.Background(), "joe@acme.com", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleUser {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("admin record cannot use the user endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{
			ID: "admin-1", Role: entities.RoleAdmin, PasswordHash: hashPassword(t, "pw"),
		}, nil)

		_, err := uc.UserLogin(context.Background(), "admin@acme.com", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil, "", "")

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@acme.com").Return(entities.User{}, nil)

		_, err := uc.UserLogin(context.Background(), "ghost@acme.com", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthUseCase_SupervisorLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supervisors := mock_interfaces.NewMockISupervisorRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(nil, supervisors, tokens, "", "")

		supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").Return(entities.Supervisor{
			ID: "sup-1", PasswordHash: hashPassword(t, "pw"),
		}, nil)
		tokens.EXPECT().IssueToken("sup@acme.com", entities.RoleSupervisor).Return("tok", nil)

		res, err := uc.SupervisorLogin(context.Background(), "sup@acme.com", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleSupervisor {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		supervisors := mock_interfaces.NewMockISupervisorRepository(ctrl)
		uc := NewAuthUseCase(nil, supervisors, nil, "", "")

		supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").Return(entities.Supervisor{
			ID: "sup-1", PasswordHash: hashPassword(t, "pw"),
		}, nil)

		_, err := uc.SupervisorLogin(context.Background(), "sup@acme.com", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
