package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles a UserAccount can hold. Admin is a superset of the other two when
// routes are gated.
const (
	RoleCommunity = "community"
	RoleDoctor    = "doctor"
	RoleAdmin     = "admin"
)

// User is a row of the 'users' table.
type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	FullName     string         `gorm:"size:100;not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"`
	HospitalID   *uint64        `gorm:"index" json:"hospital_id"` // only doctors carry one
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// RegisterInput is the signup form. Admin accounts are seeded, never self-registered.
type RegisterInput struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=community doctor"`
	InviteCode string `json:"invite_code"` // required when role=doctor
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
