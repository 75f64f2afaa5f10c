package repository

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for assignment persistence.
var (
	// ErrAssignmentNotFound is returned when an assignment edge does not exist.
	ErrAssignmentNotFound = errors.New("doctor-patient assignment not found")
	// ErrDuplicateAssignment is returned when the edge already exists.
	ErrDuplicateAssignment = errors.New("doctor-patient assignment already exists")
)

// AssignmentRepository manages the doctor-patient assignment edges that
// drive ABAC decisions for patient resources.
type AssignmentRepository interface {
	// CreateAssignment persists a new doctor-patient edge.
	CreateAssignment(ctx context.Context, assignment *entity.DoctorPatientAssignment) error

	// DeleteAssignment removes the edge between a doctor and a patient.
	DeleteAssignment(ctx context.Context, doctorID, patientID uuid.UUID) error

	// AssignmentExists reports whether the edge (doctorID, patientID) exists.
	// Existence of the edge is the sole ABAC condition for doctor access.
	AssignmentExists(ctx context.Context, doctorID, patientID uuid.UUID) (bool, error)

	// FindAssignmentsByDoctorID lists all patients assigned to a doctor.
	FindAssignmentsByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.DoctorPatientAssignment, error)
}
