package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfileModel mirrors the 'patient_profiles' table.
type PatientProfileModel struct {
	PatientID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DateOfBirth  time.Time
	BloodType    string `gorm:"type:varchar(5)"`
	Allergies    string `gorm:"type:text"`
	MedicalNotes string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientProfileModel) TableName() string {
	return "patient_profiles"
}

// LabResultModel mirrors the 'lab_results' table.
type LabResultModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index"`
	TestName  string    `gorm:"type:varchar(100);not null"`
	Value     string    `gorm:"type:varchar(100);not null"`
	Flag      string    `gorm:"type:varchar(20)"`
	TakenAt   time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LabResultModel) TableName() string {
	return "lab_results"
}

// PrescriptionModel mirrors the 'prescriptions' table.
type PrescriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Drug      string    `gorm:"type:varchar(255);not null"`
	Dosage    string    `gorm:"type:varchar(255)"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}
