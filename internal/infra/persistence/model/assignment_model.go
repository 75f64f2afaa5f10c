package model

import (
	"time"

	"github.com/google/uuid"
)

// DoctorPatientAssignmentModel mirrors the 'doctor_patient_assignments'
// table. The composite primary key makes the edge unique.
type DoctorPatientAssignmentModel struct {
	DoctorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorPatientAssignmentModel) TableName() string {
	return "doctor_patient_assignments"
}
