package models

import "time"

// Application statuses. pending moves to approved or rejected, nothing else.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Payment states tracked on an application.
const (
	PaymentNone      = "none"
	PaymentInitiated = "initiated"
	PaymentPaid      = "paid"
	PaymentFailed    = "failed"
)

// HospitalApplication is a request from a clinic to be onboarded.
type HospitalApplication struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:150;not null" json:"name"`
	RegistrationNumber string    `gorm:"size:100;not null" json:"registration_number"`
	Address            string    `gorm:"type:text" json:"address"`
	ContactEmail       string    `gorm:"size:100;not null" json:"contact_email"`
	Phone              string    `gorm:"size:20" json:"phone"`
	Status             string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	PaymentReference   string    `gorm:"size:100;index" json:"payment_reference,omitempty"`
	PaymentStatus      string    `gorm:"size:20;default:none" json:"payment_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Hospital is created exactly once per approved application. InviteCode is
// the only credential a doctor needs to sign up under it.
type Hospital struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	ApplicationID      uint64    `gorm:"uniqueIndex" json:"application_id"`
	Name               string    `gorm:"size:150;not null" json:"name"`
	RegistrationNumber string    `gorm:"size:100" json:"registration_number"`
	Address            string    `gorm:"type:text" json:"address"`
	ContactEmail       string    `gorm:"size:100" json:"contact_email"`
	Status             string    `gorm:"size:20" json:"status"`
	InviteCode         string    `gorm:"size:6;uniqueIndex;not null" json:"invite_code"`
	CreatedAt          time.Time `json:"created_at"`
}

// HospitalApplicationInput is the public registration form.
type HospitalApplicationInput struct {
	Name               string `json:"name" binding:"required"`
	RegistrationNumber string `json:"registration_number" binding:"required"`
	Address            string `json:"address" binding:"required"`
	ContactEmail       string `json:"contact_email" binding:"required,email"`
	Phone              string `json:"phone" binding:"required"`
}
