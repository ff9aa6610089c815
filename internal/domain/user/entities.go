package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleUser       Role = "user"
	RoleMerchant   Role = "merchant"
	RoleNBFCAdmin  Role = "nbfc_admin"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsCustomer reports whether r is one of the customer synonyms.
func (r Role) IsCustomer() bool { return r == RoleCustomer || r == RoleUser }

// IsNBFC reports whether r is one of the NBFC admin synonyms.
func (r Role) IsNBFC() bool { return r == RoleNBFCAdmin || r == RoleAdmin }

// Table: users
type User struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Email       string    `gorm:"column:email;size:255" json:"email"`
	Username    string    `gorm:"column:username;size:100" json:"username"`
	FullName    string    `gorm:"column:full_name;size:255" json:"full_name,omitempty"`
	Role        Role      `gorm:"column:role;size:32;index" json:"role"`
	IsActive    bool      `gorm:"column:is_active" json:"is_active"`
	Phone       string    `gorm:"column:phone;size:32" json:"phone,omitempty"`
	Mobile      string    `gorm:"column:mobile;size:32" json:"mobile,omitempty"`
	Address     string    `gorm:"column:address;type:text" json:"address,omitempty"`
	DateOfBirth string    `gorm:"column:date_of_birth;size:10" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Patch carries the fields a status write changes. Nil fields are left alone.
type Patch struct {
	IsActive  *bool
	UpdatedAt *time.Time
}

// Apply returns a copy of u with p applied.
func (p Patch) Apply(u User) User {
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = *p.UpdatedAt
	}
	return u
}

// PatchUser returns a new slice where the user with the given id has p applied.
// The input slice is not modified. Unknown ids yield an unchanged copy.
func PatchUser(users []User, id string, p Patch) []User {
	out := make([]User, len(users))
	copy(out, users)
	for i := range out {
		if out[i].ID == id {
			out[i] = p.Apply(out[i])
		}
	}
	return out
}
