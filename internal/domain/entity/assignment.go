package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorPatientAssignment is the many-to-many edge between a doctor and a
// patient. Existence of the edge is both necessary and sufficient for a
// doctor to read the patient's profile, labs and prescriptions.
type DoctorPatientAssignment struct {
	DoctorID  uuid.UUID // The assigned doctor.
	PatientID uuid.UUID // The patient under the doctor's care.
	CreatedAt time.Time // Timestamp of when the assignment was made.
}
