package repository

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when a patient record is not found.
var ErrRecordNotFound = errors.New("patient record not found")

// RecordRepository defines the operations for patient medical records.
// Authorization is decided before any of these are called; the repository
// itself is access-agnostic.
type RecordRepository interface {
	// FindPatientProfile retrieves the medical profile of a patient.
	FindPatientProfile(ctx context.Context, patientID uuid.UUID) (*entity.PatientProfile, error)

	// UpsertPatientProfile creates or updates a patient's medical profile.
	UpsertPatientProfile(ctx context.Context, profile *entity.PatientProfile) error

	// ListLabResults retrieves all lab results for a patient, newest first.
	ListLabResults(ctx context.Context, patientID uuid.UUID) ([]*entity.LabResult, error)

	// ListPrescriptions retrieves all prescriptions for a patient, newest first.
	ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error)

	// CreatePrescription persists a new prescription.
	CreatePrescription(ctx context.Context, prescription *entity.Prescription) error
}
