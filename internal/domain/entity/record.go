package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds the medical profile of a patient. Access is gated by
// the authorization pipeline: the patient themselves, an assigned doctor,
// or an administrator.
type PatientProfile struct {
	PatientID    uuid.UUID // Foreign key to the patient user.
	DateOfBirth  time.Time // Patient's date of birth.
	BloodType    string    // Blood type, e.g. "O+".
	Allergies    string    // Free-text allergy notes.
	MedicalNotes string    // Free-text medical history notes.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// LabResult is a single laboratory result attached to a patient.
type LabResult struct {
	ID        uuid.UUID // The unique ID of the result.
	PatientID uuid.UUID // The patient the result belongs to.
	TestName  string    // Name of the test, e.g. "HbA1c".
	Value     string    // Result value with unit.
	Flag      string    // Interpretation flag: "normal", "high", "low".
	TakenAt   time.Time // When the sample was taken.
	CreatedAt time.Time // When the result was recorded.
}

// Prescription is a medication order written by a doctor for a patient.
type Prescription struct {
	ID        uuid.UUID // The unique ID of the prescription.
	PatientID uuid.UUID // The patient the prescription is for.
	DoctorID  uuid.UUID // The prescribing doctor.
	Drug      string    // Medication name.
	Dosage    string    // Dosage instructions.
	Notes     string    // Free-text notes.
	CreatedAt time.Time // When the prescription was written.
}
