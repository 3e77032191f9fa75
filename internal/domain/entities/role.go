package entities

import "errors"

// Role is the closed set of marketplace roles.
//
// Domain notes:
//   - "cliente" consumes services and publishes service requests.
//   - "tecnico" provides services and publishes portfolio items.
//
// Role is deliberately a closed type: all role branching goes through
// these values and Counterpart, never through raw string comparisons.

type Role string

const (
	RoleCliente Role = "cliente"
	RoleTecnico Role = "tecnico"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates an externally supplied role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCliente:
		return RoleCliente, nil
	case RoleTecnico:
		return RoleTecnico, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) Valid() bool {
	return r == RoleCliente || r == RoleTecnico
}

// Counterpart returns the opposite side of an engagement.
func (r Role) Counterpart() Role {
	if r == RoleCliente {
		return RoleTecnico
	}
	return RoleCliente
}

func (r Role) String() string {
	return string(r)
}
