package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type gateMocks struct {
	tokens      *mock_interfaces.MockITokenService
	users       *mock_interfaces.MockIUserRepository
	supervisors *mock_interfaces.MockISupervisorRepository
}

func newGate(t *testing.T) (*AccessGate, gateMocks) {
	ctrl := gomock.NewController(t)
	m := gateMocks{
		tokens:      mock_interfaces.NewMockITokenService(ctrl),
		users:       mock_interfaces.NewMockIUserRepository(ctrl),
		supervisors: mock_interfaces.NewMockISupervisorRepository(ctrl),
	}
	return NewAccessGate(m.tokens, m.users, m.supervisors), m
}

// serve runs a single GET request through the policy and captures the identity
// the downstream handler observed, if any.
func serve(policy gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *Identity) {
	router := gin.New()
	var seen *Identity
	router.GET("/protected", policy, func(c *gin.Context) {
		if identity, ok := GetIdentity(c); ok {
			seen = &identity
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func expectToken(m gateMocks, role entities.Role, email string) {
	m.tokens.EXPECT().Verify("tok").Return(&interfaces.TokenPayload{Email: email, Role: role})
}

func TestAccessGate_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		gate, _ := newGate(t)
		w, _ := serve(gate.AdminOnly(), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Authorization token is required","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		gate, _ := newGate(t)
		w, _ := serve(gate.AdminOnly(), "Basic tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		gate, m := newGate(t)
		m.tokens.EXPECT().Verify("tok").Return(nil)

		w, _ := serve(gate.AdminOnly(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Invalid or expired token","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestAccessGate_AdminOnly(t *testing.T) {
	t.Run("admin with record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").
			Return(entities.User{ID: "admin-1", Role: entities.RoleAdmin}, nil)

		w, identity := serve(gate.AdminOnly(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if identity == nil || identity.UserID != "admin-1" || identity.Role != entities.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("admin without record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{}, nil)

		w, _ := serve(gate.AdminOnly(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Admin not found","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("non-admin roles are forbidden", func(t *testing.T) {
		for _, role := range []entities.Role{entities.RoleUser, entities.RoleSupervisor} {
			gate, m := newGate(t)
			expectToken(m, role, "x@acme.com")

			w, _ := serve(gate.AdminOnly(), "Bearer tok")
			if w.Code != http.StatusForbidden {
				t.Fatalf("role %s: expected 403, got %d", role, w.Code)
			}
		}
	})

	t.Run("store failure", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "admin@acme.com").Return(entities.User{}, errors.New("db"))

		w, _ := serve(gate.AdminOnly(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Authentication failed","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestAccessGate_SupervisorOnly(t *testing.T) {
	t.Run("supervisor resolved against the user store", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").
			Return(entities.User{ID: "rec-1"}, nil)

		w, identity := serve(gate.SupervisorOnly(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "rec-1" || identity.Role != entities.RoleSupervisor {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("no user-store record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").Return(entities.User{}, nil)

		w, _ := serve(gate.SupervisorOnly(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Supervisor not found","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleUser, "joe@acme.com")

		w, _ := serve(gate.SupervisorOnly(), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAccessGate_CustomerOnly(t *testing.T) {
	t.Run("customer with record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleUser, "joe@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "joe@acme.com").
			Return(entities.User{ID: "user-1", Role: entities.RoleUser}, nil)

		w, identity := serve(gate.CustomerOnly(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "user-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("admin forbidden", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")

		w, _ := serve(gate.CustomerOnly(), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAccessGate_AdminOrSupervisor(t *testing.T) {
	t.Run("admin passes without a store lookup", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")

		w, identity := serve(gate.AdminOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "" || identity.Email != "admin@acme.com" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("supervisor resolved against the supervisor store", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").
			Return(entities.Supervisor{ID: "sup-1"}, nil)

		w, identity := serve(gate.AdminOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "sup-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleUser, "joe@acme.com")

		w, _ := serve(gate.AdminOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Customers cannot perform this action","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestAccessGate_CustomerOrSupervisor(t *testing.T) {
	t.Run("admin excluded by policy", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")

		w, _ := serve(gate.CustomerOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"message":"Admins are not allowed","success":false}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("customer with record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleUser, "joe@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "joe@acme.com").
			Return(entities.User{ID: "user-1", Role: entities.RoleUser}, nil)

		w, identity := serve(gate.CustomerOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "user-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("supervisor with record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").
			Return(entities.Supervisor{ID: "sup-1"}, nil)

		w, identity := serve(gate.CustomerOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "sup-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("supervisor without record", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").Return(entities.Supervisor{}, nil)

		w, _ := serve(gate.CustomerOrSupervisor(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestAccessGate_Authenticated(t *testing.T) {
	t.Run("admin email-only", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleAdmin, "admin@acme.com")

		w, identity := serve(gate.Authenticated(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "" || identity.Role != entities.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("customer backed by the user store", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleUser, "joe@acme.com")
		m.users.EXPECT().GetByEmail(gomock.Any(), "joe@acme.com").Return(entities.User{ID: "user-1"}, nil)

		w, identity := serve(gate.Authenticated(), "Bearer tok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if identity == nil || identity.UserID != "user-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		gate, m := newGate(t)
		m.tokens.EXPECT().Verify("tok").Return(&interfaces.TokenPayload{Email: "x@acme.com", Role: entities.Role("root")})

		w, _ := serve(gate.Authenticated(), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		gate, m := newGate(t)
		expectToken(m, entities.RoleSupervisor, "sup@acme.com")
		m.supervisors.EXPECT().GetByEmail(gomock.Any(), "sup@acme.com").Return(entities.Supervisor{}, errors.New("db"))

		w, _ := serve(gate.Authenticated(), "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
