package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants, fixed by the seed migration
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDReceptionist = 3
	RoleIDPatient      = 4
)

// Role name constants
const (
	RoleAdmin        = "Admin"
	RoleDoctor       = "Doctor"
	RoleReceptionist = "Receptionist"
	RolePatient      = "Patient"
)

// RoleNames lists every role the bootstrap seeder must provision.
var RoleNames = map[int]string{
	RoleIDAdmin:        RoleAdmin,
	RoleIDDoctor:       RoleDoctor,
	RoleIDReceptionist: RoleReceptionist,
	RoleIDPatient:      RolePatient,
}

// DashboardPath returns the dashboard route a freshly logged-in user of
// the given role should be sent to.
func DashboardPath(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return "/api/v1/dashboard/admin"
	case RoleIDDoctor:
		return "/api/v1/dashboard/doctor"
	case RoleIDReceptionist:
		return "/api/v1/dashboard/receptionist"
	case RoleIDPatient:
		return "/api/v1/dashboard/patient"
	default:
		return "/"
	}
}
