package models

import "time"

// Community content rows, always listed newest first.

type Tip struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Disease   string    `gorm:"size:30" json:"disease,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Clinic struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Location  string    `gorm:"size:100" json:"location"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type Helpline struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Number      string    `gorm:"size:30;not null" json:"number"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type FAQ struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table singular.
func (FAQ) TableName() string { return "faq" }

type TipInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Disease string `json:"disease"`
}

type ClinicInput struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type HelplineInput struct {
	Name        string `json:"name" binding:"required"`
	Number      string `json:"number" binding:"required"`
	Description string `json:"description"`
}

type FAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
