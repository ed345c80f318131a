package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleSuperuser Role = "SUPERUSER"
)

type User struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName   string    `json:"first_name" gorm:"not null"`
	LastName    string    `json:"last_name" gorm:"not null"`
	Password    string    `json:"-" gorm:"not null"` // hide in json
	Role        Role      `json:"role" gorm:"not null;default:'USER'"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	BonusPoints int       `json:"bonus_points" gorm:"not null;default:0;check:bonus_points >= 0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin), string(RoleSuperuser):
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role grants administrative access
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperuser
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}
