package models

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

type Permission string

const (
	PermAddCourse          Permission = "ADD_COURSE"
	PermEditCourse         Permission = "EDIT_COURSE"
	PermDeleteCourse       Permission = "DELETE_COURSE"
	PermAddAuthor          Permission = "ADD_AUTHOR"
	PermEditAuthor         Permission = "EDIT_AUTHOR"
	PermDeleteAuthor       Permission = "DELETE_AUTHOR"
	PermAddCategory        Permission = "ADD_CATEGORY"
	PermEditCategory       Permission = "EDIT_CATEGORY"
	PermDeleteCategory     Permission = "DELETE_CATEGORY"
	PermMentionOtherAuthor Permission = "MENTION_OTHER_AUTHOR"
)

// Permissions returns the fixed permission set for a role. Roles are a
// closed enumeration; an unknown role has no permissions.
func (r Role) Permissions() []Permission {
	switch r {
	case RoleUser:
		return nil
	case RoleAdmin:
		return []Permission{
			PermAddCourse,
			PermEditCourse,
			PermDeleteCourse,
		}
	case RoleSuperAdmin:
		return []Permission{
			PermAddCourse,
			PermEditCourse,
			PermDeleteCourse,
			PermAddAuthor,
			PermAddCategory,
			PermEditAuthor,
			PermEditCategory,
			PermDeleteAuthor,
			PermDeleteCategory,
			PermMentionOtherAuthor,
		}
	}
	return nil
}

// Title returns the display name for a role.
func (r Role) Title() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	case RoleSuperAdmin:
		return "Super Admin"
	}
	return "Unknown"
}

// CheckIfUserCan reports whether the role holds every requested
// permission. Conjunctive: one missing permission fails the whole check.
func CheckIfUserCan(role Role, permissions ...Permission) bool {
	held := role.Permissions()
	for _, p := range permissions {
		found := false
		for _, h := range held {
			if h == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
