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
	"gorm.io/gorm/clause"
)

// recordRepository implements the repository.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// FindPatientProfile retrieves the medical profile of a patient.
func (repo *recordRepository) FindPatientProfile(ctx context.Context, patientID uuid.UUID) (*entity.PatientProfile, error) {
	var profileM model.PatientProfileModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient profile")
	}

	return toPatientProfileDomain(&profileM), nil
}

// UpsertPatientProfile creates or updates a patient's medical profile.
func (repo *recordRepository) UpsertPatientProfile(ctx context.Context, profile *entity.PatientProfile) error {
	profileM := fromPatientProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"date_of_birth", "blood_type", "allergies", "medical_notes", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid patient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert patient profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// ListLabResults retrieves all lab results for a patient, newest first.
func (repo *recordRepository) ListLabResults(ctx context.Context, patientID uuid.UUID) ([]*entity.LabResult, error) {
	var resultModels []*model.LabResultModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("taken_at DESC").
		Find(&resultModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lab results")
	}

	results := make([]*entity.LabResult, 0, len(resultModels))
	for _, resultM := range resultModels {
		results = append(results, toLabResultDomain(resultM))
	}

	return results, nil
}

// ListPrescriptions retrieves all prescriptions for a patient, newest first.
func (repo *recordRepository) ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	prescriptions := make([]*entity.Prescription, 0, len(prescriptionModels))
	for _, prescriptionM := range prescriptionModels {
		prescriptions = append(prescriptions, toPrescriptionDomain(prescriptionM))
	}

	return prescriptions, nil
}

// CreatePrescription persists a new prescription.
func (repo *recordRepository) CreatePrescription(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM := fromPrescriptionDomain(prescription)

	if err := repo.db.WithContext(ctx).Create(prescriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid patient or doctor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required prescription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prescription")
	}

	prescription.ID = prescriptionM.ID
	prescription.CreatedAt = prescriptionM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toPatientProfileDomain converts a GORM PatientProfileModel to a domain entity.
func toPatientProfileDomain(data *model.PatientProfileModel) *entity.PatientProfile {
	if data == nil {
		return nil
	}

	return &entity.PatientProfile{
		PatientID:    data.PatientID,
		DateOfBirth:  data.DateOfBirth,
		BloodType:    data.BloodType,
		Allergies:    data.Allergies,
		MedicalNotes: data.MedicalNotes,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPatientProfileDomain converts a domain entity to a GORM PatientProfileModel.
func fromPatientProfileDomain(data *entity.PatientProfile) *model.PatientProfileModel {
	if data == nil {
		return nil
	}

	return &model.PatientProfileModel{
		PatientID:    data.PatientID,
		DateOfBirth:  data.DateOfBirth,
		BloodType:    data.BloodType,
		Allergies:    data.Allergies,
		MedicalNotes: data.MedicalNotes,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toLabResultDomain converts a GORM LabResultModel to a domain entity.
func toLabResultDomain(data *model.LabResultModel) *entity.LabResult {
	if data == nil {
		return nil
	}

	return &entity.LabResult{
		ID:        data.ID,
		PatientID: data.PatientID,
		TestName:  data.TestName,
		Value:     data.Value,
		Flag:      data.Flag,
		TakenAt:   data.TakenAt,
		CreatedAt: data.CreatedAt,
	}
}

// toPrescriptionDomain converts a GORM PrescriptionModel to a domain entity.
func toPrescriptionDomain(data *model.PrescriptionModel) *entity.Prescription {
	if data == nil {
		return nil
	}

	return &entity.Prescription{
		ID:        data.ID,
		PatientID: data.PatientID,
		DoctorID:  data.DoctorID,
		Drug:      data.Drug,
		Dosage:    data.Dosage,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

// fromPrescriptionDomain converts a domain entity to a GORM PrescriptionModel.
func fromPrescriptionDomain(data *entity.Prescription) *model.PrescriptionModel {
	if data == nil {
		return nil
	}

	return &model.PrescriptionModel{
		ID:        data.ID,
		PatientID: data.PatientID,
		DoctorID:  data.DoctorID,
		Drug:      data.Drug,
		Dosage:    data.Dosage,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}
