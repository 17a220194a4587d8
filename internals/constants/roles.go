package constants

// Role user (set tertutup, dipakai untuk storage & validasi profil)
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AllRoles = []string{
	RoleStudent,
	RoleTeacher,
	RoleParent,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
