package entities

// Role is the capability tier claimed by a caller and embedded in tokens.
//
// Domain notes:
//   - "user" is the customer-facing role; supervisors live in their own store.
//   - Admin tokens are only minted through the dedicated admin issuance path.

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSupervisor:
		return true
	default:
		return false
	}
}
