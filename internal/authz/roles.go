package authz

const (
	RoleTechnician = 10
	RoleSales      = 20
	RoleAccountant = 30
	RoleManager    = 40
	RoleAuditor    = 45
	RoleAdmin      = 50
)

func IsAdmin(roleID int) bool {
	return roleID == RoleAdmin
}

func IsElevated(roleID int) bool {
	return roleID == RoleManager || roleID == RoleAdmin
}

// IsReadOnly marks roles that may never mutate anything.
func IsReadOnly(roleID int) bool {
	return roleID == RoleAuditor
}

// CanViewAll grants unrestricted reads without granting writes.
func CanViewAll(roleID int) bool {
	return roleID == RoleAuditor || IsElevated(roleID)
}

// CanManageClients gates lead/client creation, edits and conversions.
func CanManageClients(roleID int) bool {
	return roleID == RoleSales || IsElevated(roleID)
}

func CanManageProjects(roleID int) bool {
	return roleID == RoleSales || IsElevated(roleID)
}

func CanManageFinance(roleID int) bool {
	return roleID == RoleAccountant || IsElevated(roleID)
}
