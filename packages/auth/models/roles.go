package models

// Available roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetDefaultRoles returns the roles assigned to a new user
func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}

// GetAllRoles returns every available role
func GetAllRoles() []string {
	return []string{
		RoleUser,
		RoleAdmin,
	}
}
