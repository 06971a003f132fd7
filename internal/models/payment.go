package models

import "time"

// Payment records an onboarding-fee request sent to a provider.
type Payment struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	ApplicationID *uint64   `gorm:"index" json:"application_id,omitempty"`
	Provider      string    `gorm:"size:20;not null" json:"provider"`
	Reference     string    `gorm:"size:100;uniqueIndex" json:"reference"`
	ProviderRef   string    `gorm:"size:100;index" json:"provider_ref,omitempty"` // CheckoutRequestID or Snap token
	Phone         string    `gorm:"size:20" json:"phone"`
	Amount        int64     `json:"amount"`
	Status        string    `gorm:"size:20" json:"status"` // initiated, paid, failed
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// STKPushInput asks the provider to prompt a phone for payment.
type STKPushInput struct {
	Phone  string `json:"phone" binding:"required"`
	Amount int64  `json:"amount" binding:"required,min=1"`
}

// AuditLog is an append-only record of privileged actions.
type AuditLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Actor     string    `gorm:"size:100" json:"actor"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
