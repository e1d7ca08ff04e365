package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Error message templates per role gate
const (
	ErrOnlyAdminsCanAccess   = "Only an admin may access %s."
	ErrOnlyFacultyCanAccess  = "Only faculty or admin may access %s."
	ErrOnlyStudentsCanAccess = "Only a registered student may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleFaculty,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	FacultyAndAbove = []string{
		RoleFaculty,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
