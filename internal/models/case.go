package models

import "time"

// Diseases a clinician can report.
const (
	DiseaseCholera = "Cholera"
	DiseaseMalaria = "Malaria"
	DiseaseCOVID   = "COVID-19"
	DiseaseOther   = "Other"
)

// DateLayout is the calendar-date format used for case dates.
const DateLayout = "2006-01-02"

// Case is a single clinician-submitted disease occurrence. Rows are never
// updated after insert.
type Case struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Disease     string    `gorm:"size:30;not null;index" json:"disease"`
	Symptoms    string    `gorm:"type:text" json:"symptoms"`
	Location    string    `gorm:"size:100;index" json:"location"`
	AgeGroup    string    `gorm:"size:10" json:"age_group"`
	Gender      string    `gorm:"size:20" json:"gender"`
	Date        string    `gorm:"type:date;index" json:"date"` // YYYY-MM-DD
	PatientCode *string   `gorm:"size:50" json:"patient_code"`
	Lat         *float64  `gorm:"type:decimal(11,8)" json:"lat"`
	Lng         *float64  `gorm:"type:decimal(11,8)" json:"lng"`
	DoctorName  string    `gorm:"size:100" json:"doctor_name"`
	ClinicName  string    `gorm:"size:150" json:"clinic_name"`
	ReportedBy  uint64    `gorm:"index" json:"reported_by"`
	HospitalID  *uint64   `gorm:"index" json:"hospital_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCaseInput is the case report form.
type CreateCaseInput struct {
	Disease     string   `json:"disease" binding:"required,oneof=Cholera Malaria COVID-19 Other"`
	Symptoms    string   `json:"symptoms" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	AgeGroup    string   `json:"age_group" binding:"required,oneof=Child Adult Senior"`
	Gender      string   `json:"gender" binding:"required"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	PatientCode *string  `json:"patient_code"`
	Lat         *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
	DoctorName  string   `json:"doctor_name"`
	ClinicName  string   `json:"clinic_name"`
}

// CaseFilter narrows a case listing. Zero values mean "no filter".
type CaseFilter struct {
	Disease  string
	Location string
	Since    string // inclusive, YYYY-MM-DD
	Until    string // inclusive, YYYY-MM-DD
	Search   string // matches disease or location
	Limit    int
}
