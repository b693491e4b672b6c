package authorization

type UserRole string

const (
	RoleStaff    UserRole = "staff"
	RoleCustomer UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

func (r UserRole) IsValid() bool {
	return r == RoleStaff || r == RoleCustomer
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
