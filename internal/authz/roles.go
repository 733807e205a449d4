package authz

const (
	RoleSales    = 10
	RoleFinance  = 20
	RoleReadOnly = 30
	RoleAdmin    = 99
)

func IsReadOnly(roleID int) bool {
	return roleID == RoleReadOnly
}

// CanEditFinances limits the finance forms and sync tooling.
func CanEditFinances(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleFinance
}
