package auth

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// ParseRole accepts any casing; unknown values report false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Identity is the verified subject of a request.
type Identity struct {
	SubjectID string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
