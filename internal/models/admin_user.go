package models

import "time"

// AdminRole gates what an admin account may manage.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "superadmin"
	RoleOperator   AdminRole = "operator"
)

// AdminUser represents an operator account for the admin panel.
type AdminUser struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         AdminRole `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
