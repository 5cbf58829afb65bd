package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyStaffCanAccess  = "❌ Only moderators or admins may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Role Names
// ==========================
const (
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleModerator,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleModerator,
		RoleAdmin,
	}

	ModeratorOnly = []string{
		RoleModerator,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
