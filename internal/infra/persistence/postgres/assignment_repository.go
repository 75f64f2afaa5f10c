// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// CreateAssignment persists a new doctor-patient edge.
func (repo *assignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.DoctorPatientAssignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid doctor or patient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.CreatedAt = assignmentM.CreatedAt

	return nil
}

// DeleteAssignment removes the edge between a doctor and a patient.
func (repo *assignmentRepository) DeleteAssignment(ctx context.Context, doctorID, patientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Delete(&model.DoctorPatientAssignmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// AssignmentExists reports whether the edge (doctorID, patientID) exists.
func (repo *assignmentRepository) AssignmentExists(ctx context.Context, doctorID, patientID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DoctorPatientAssignmentModel{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check assignment existence")
	}

	return count > 0, nil
}

// FindAssignmentsByDoctorID lists all patients assigned to a doctor.
func (repo *assignmentRepository) FindAssignmentsByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.DoctorPatientAssignment, error) {
	var assignmentModels []*model.DoctorPatientAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignments by doctor ID")
	}

	assignments := make([]*entity.DoctorPatientAssignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

// --- Mapper Functions ---

// toAssignmentDomain converts a GORM model to a domain DoctorPatientAssignment entity.
func toAssignmentDomain(data *model.DoctorPatientAssignmentModel) *entity.DoctorPatientAssignment {
	if data == nil {
		return nil
	}

	return &entity.DoctorPatientAssignment{
		DoctorID:  data.DoctorID,
		PatientID: data.PatientID,
		CreatedAt: data.CreatedAt,
	}
}

// fromAssignmentDomain converts a domain entity to a GORM DoctorPatientAssignmentModel.
func fromAssignmentDomain(data *entity.DoctorPatientAssignment) *model.DoctorPatientAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.DoctorPatientAssignmentModel{
		DoctorID:  data.DoctorID,
		PatientID: data.PatientID,
		CreatedAt: data.CreatedAt,
	}
}
