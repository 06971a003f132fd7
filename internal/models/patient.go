package models

import "time"

// Patient is a person a clinic can reach with alerts.
type Patient struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	HospitalID *uint64   `gorm:"index" json:"hospital_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Location   string    `gorm:"size:100" json:"location"`
	FCMToken   string    `gorm:"size:255" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// AlertInput is the clinician's alert form.
type AlertInput struct {
	PatientIDs []uint64 `json:"patient_ids" binding:"required,min=1"`
	Message    string   `json:"message" binding:"required"`
	Channel    string   `json:"channel" binding:"required,oneof=whatsapp sms push"`
}
