package usecase

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePrescriptionInput defines the data needed to write a prescription.
// DoctorID comes from the authenticated principal, never from the request body.
type CreatePrescriptionInput struct {
	PatientID uuid.UUID
	Drug      string
	Dosage    string
	Notes     string
}

// RecordUsecase defines the interface for patient medical record access.
// Every operation runs the full authorization pipeline against the given
// principal before any data is touched.
type RecordUsecase interface {
	GetPatientProfile(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) (*entity.PatientProfile, error)
	ListLabResults(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.LabResult, error)
	ListPrescriptions(ctx context.Context, principal *entity.Principal, patientID uuid.UUID) ([]*entity.Prescription, error)
	CreatePrescription(ctx context.Context, principal *entity.Principal, input *CreatePrescriptionInput) (*entity.Prescription, error)
}
