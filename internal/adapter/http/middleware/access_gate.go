package middleware

import (
	"log"
	"net/http"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/infrastructure/auth"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key carrying the resolved caller identity.
const IdentityKey = "user"

// Identity is the storage-backed caller attached to a request after a policy
// allows it. UserID stays empty on the admin branches that tolerate an
// env-bootstrap-only admin with no store record.
type Identity struct {
	UserID string
	Email  string
	Role   entities.Role
}

// AccessGate is the family of role policies protecting routes.
//
// Every policy runs the same pipeline: extract bearer token, verify it, gate
// on role (403), resolve the identity against the backing store (401 when the
// record is missing), then stash the identity in the gin context.
//
// Store-selection quirks are intentional and load-bearing; callers have grown
// to depend on them:
//   - SupervisorOnly resolves supervisors against the USER store, while
//     AdminOrSupervisor, CustomerOrSupervisor and Authenticated use the
//     supervisor store.
//   - AdminOnly requires an admin record; AdminOrSupervisor and Authenticated
//     accept an email-only admin.
//
// A store failure during resolution is answered 401 "Authentication failed";
// this layer never leaks a 5xx.
type AccessGate struct {
	tokens      interfaces.ITokenService
	users       interfaces.IUserRepository
	supervisors interfaces.ISupervisorRepository
}

func NewAccessGate(tokens interfaces.ITokenService, users interfaces.IUserRepository, supervisors interfaces.ISupervisorRepository) *AccessGate {
	return &AccessGate{tokens: tokens, users: users, supervisors: supervisors}
}

// GetIdentity reads the identity a policy stored on the context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

func deny(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

func allow(c *gin.Context, identity Identity) {
	c.Set(IdentityKey, identity)
	c.Next()
}

// authenticate runs the shared extract+verify steps. A nil return means the
// request was already denied.
func (g *AccessGate) authenticate(c *gin.Context) *interfaces.TokenPayload {
	token := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if token == "" {
		deny(c, http.StatusUnauthorized, "Authorization token is required")
		return nil
	}

	payload := g.tokens.Verify(token)
	if payload == nil {
		deny(c, http.StatusUnauthorized, "Invalid or expired token")
		return nil
	}
	return payload
}

// AdminOnly admits admins with a store record; env-bootstrap admins that
// never completed a DB-backed login are denied here.
func (g *AccessGate) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}
		if payload.Role != entities.RoleAdmin {
			deny(c, http.StatusForbidden, "Admin access required")
			return
		}

		admin, err := g.users.GetByEmail(c.Request.Context(), payload.Email)
		if err != nil {
			log.Printf("[auth][middleware] admin lookup failed email=%s err=%v", payload.Email, err)
			deny(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if admin.ID == "" || admin.Role != entities.RoleAdmin {
			deny(c, http.StatusUnauthorized, "Admin not found")
			return
		}
		allow(c, Identity{UserID: admin.ID, Email: payload.Email, Role: entities.RoleAdmin})
	}
}

// SupervisorOnly admits supervisors, resolving them against the user store.
func (g *AccessGate) SupervisorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}
		if payload.Role != entities.RoleSupervisor {
			deny(c, http.StatusForbidden, "Supervisor access required")
			return
		}

		record, err := g.users.GetByEmail(c.Request.Context(), payload.Email)
		if err != nil {
			log.Printf("[auth][middleware] supervisor lookup failed email=%s err=%v", payload.Email, err)
			deny(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if record.ID == "" {
			deny(c, http.StatusUnauthorized, "Supervisor not found")
			return
		}
		allow(c, Identity{UserID: record.ID, Email: payload.Email, Role: entities.RoleSupervisor})
	}
}

// CustomerOnly admits customers ("user" role) with a store record.
func (g *AccessGate) CustomerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}
		if payload.Role != entities.RoleUser {
			deny(c, http.StatusForbidden, "Customer access required")
			return
		}

		user, err := g.users.GetByEmail(c.Request.Context(), payload.Email)
		if err != nil {
			log.Printf("[auth][middleware] user lookup failed email=%s err=%v", payload.Email, err)
			deny(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if user.ID == "" || user.Role != entities.RoleUser {
			deny(c, http.StatusUnauthorized, "User not found")
			return
		}
		allow(c, Identity{UserID: user.ID, Email: payload.Email, Role: entities.RoleUser})
	}
}

// AdminOrSupervisor admits admins without a store lookup and supervisors
// backed by the supervisor store. Customers are excluded outright.
func (g *AccessGate) AdminOrSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}

		switch payload.Role {
		case entities.RoleUser:
			deny(c, http.StatusForbidden, "Customers cannot perform this action")
		case entities.RoleAdmin:
			allow(c, Identity{Email: payload.Email, Role: entities.RoleAdmin})
		case entities.RoleSupervisor:
			sup, err := g.supervisors.GetByEmail(c.Request.Context(), payload.Email)
			if err != nil {
				log.Printf("[auth][middleware] supervisor lookup failed email=%s err=%v", payload.Email, err)
				deny(c, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if sup.ID == "" {
				deny(c, http.StatusUnauthorized, "Supervisor not found")
				return
			}
			allow(c, Identity{UserID: sup.ID, Email: payload.Email, Role: entities.RoleSupervisor})
		default:
			deny(c, http.StatusForbidden, "Access denied")
		}
	}
}

// CustomerOrSupervisor admits customers and supervisors. Admins hold valid
// tokens but are excluded by policy.
func (g *AccessGate) CustomerOrSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}

		switch payload.Role {
		case entities.RoleAdmin:
			deny(c, http.StatusForbidden, "Admins are not allowed")
		case entities.RoleUser:
			user, err := g.users.GetByEmail(c.Request.Context(), payload.Email)
			if err != nil {
				log.Printf("[auth][middleware] user lookup failed email=%s err=%v", payload.Email, err)
				deny(c, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if user.ID == "" || user.Role != entities.RoleUser {
				deny(c, http.StatusUnauthorized, "User not found")
				return
			}
			allow(c, Identity{UserID: user.ID, Email: payload.Email, Role: entities.RoleUser})
		case entities.RoleSupervisor:
			sup, err := g.supervisors.GetByEmail(c.Request.Context(), payload.Email)
			if err != nil {
				log.Printf("[auth][middleware] supervisor lookup failed email=%s err=%v", payload.Email, err)
				deny(c, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if sup.ID == "" {
				deny(c, http.StatusUnauthorized, "Supervisor not found")
				return
			}
			allow(c, Identity{UserID: sup.ID, Email: payload.Email, Role: entities.RoleSupervisor})
		default:
			deny(c, http.StatusForbidden, "Access denied")
		}
	}
}

// Authenticated admits any valid role: admins email-only, customers and
// supervisors backed by their respective stores.
func (g *AccessGate) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := g.authenticate(c)
		if payload == nil {
			return
		}

		switch payload.Role {
		case entities.RoleAdmin:
			allow(c, Identity{Email: payload.Email, Role: entities.RoleAdmin})
		case entities.RoleUser:
			user, err := g.users.GetByEmail(c.Request.Context(), payload.Email)
			if err != nil {
				log.Printf("[auth][middleware] user lookup failed email=%s err=%v", payload.Email, err)
				deny(c, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if user.ID == "" {
				deny(c, http.StatusUnauthorized, "User not found")
				return
			}
			allow(c, Identity{UserID: user.ID, Email: payload.Email, Role: entities.RoleUser})
		case entities.RoleSupervisor:
			sup, err := g.supervisors.GetByEmail(c.Request.Context(), payload.Email)
			if err != nil {
				log.Printf("[auth][middleware] supervisor lookup failed email=%s err=%v", payload.Email, err)
				deny(c, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if sup.ID == "" {
				deny(c, http.StatusUnauthorized, "Supervisor not found")
				return
			}
			allow(c, Identity{UserID: sup.ID, Email: payload.Email, Role: entities.RoleSupervisor})
		default:
			deny(c, http.StatusForbidden, "Access denied")
		}
	}
}
