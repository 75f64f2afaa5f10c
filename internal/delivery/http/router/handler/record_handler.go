package handler

import (
	"log/slog"
	"net/http"
	"time"

	"caregate/internal/delivery/http/middleware"
	"caregate/internal/delivery/http/response"
	"caregate/internal/domain/entity"
	"caregate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	RecordUC usecase.RecordUsecase
	Logger   *slog.Logger
}

// RecordHandler holds dependencies for patient record handlers.
type RecordHandler struct {
	recordUC usecase.RecordUsecase
	logger   *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler.
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{
		recordUC: params.RecordUC,
		logger:   params.Logger,
	}
}

// CreatePrescriptionRequest represents the request body for writing a
// prescription. The prescribing doctor comes from the access token.
type CreatePrescriptionRequest struct {
	Drug   string `json:"drug" validate:"required,max=200"`
	Dosage string `json:"dosage" validate:"required,max=200"`
	Notes  string `json:"notes" validate:"max=2000"`
}

// PatientProfileResponse is the serialized form of a patient profile.
type PatientProfileResponse struct {
	PatientID    string    `json:"patient_id"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	BloodType    string    `json:"blood_type,omitempty"`
	Allergies    string    `json:"allergies,omitempty"`
	MedicalNotes string    `json:"medical_notes,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LabResultResponse is the serialized form of a lab result.
type LabResultResponse struct {
	ID        string    `json:"id"`
	TestName  string    `json:"test_name"`
	Value     string    `json:"value"`
	Flag      string    `json:"flag,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

// PrescriptionResponse is the serialized form of a prescription.
type PrescriptionResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Drug      string    `json:"drug"`
	Dosage    string    `json:"dosage"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toPrescriptionResponse(prescription *entity.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:        prescription.ID.String(),
		PatientID: prescription.PatientID.String(),
		DoctorID:  prescription.DoctorID.String(),
		Drug:      prescription.Drug,
		Dosage:    prescription.Dosage,
		Notes:     prescription.Notes,
		CreatedAt: prescription.CreatedAt,
	}
}

// GetProfile returns the patient's medical profile.
func (h *RecordHandler) GetProfile(c echo.Context) error {
	principal, patientID, err := h.resolveRequest(c)
	if err != nil {
		return err
	}

	profile, err := h.recordUC.GetPatientProfile(c.Request().Context(), principal, patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := PatientProfileResponse{
		PatientID:    profile.PatientID.String(),
		BloodType:    profile.BloodType,
		Allergies:    profile.Allergies,
		MedicalNotes: profile.MedicalNotes,
		UpdatedAt:    profile.UpdatedAt,
	}
	if !profile.DateOfBirth.IsZero() {
		resp.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// ListLabResults returns the patient's lab results, newest first.
func (h *RecordHandler) ListLabResults(c echo.Context) error {
	principal, patientID, err := h.resolveRequest(c)
	if err != nil {
		return err
	}

	results, err := h.recordUC.ListLabResults(c.Request().Context(), principal, patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]LabResultResponse, 0, len(results))
	for _, result := range results {
		items = append(items, LabResultResponse{
			ID:        result.ID.String(),
			TestName:  result.TestName,
			Value:     result.Value,
			Flag:      result.Flag,
			TakenAt:   result.TakenAt,
			CreatedAt: result.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListPrescriptions returns the patient's prescriptions, newest first.
func (h *RecordHandler) ListPrescriptions(c echo.Context) error {
	principal, patientID, err := h.resolveRequest(c)
	if err != nil {
		return err
	}

	prescriptions, err := h.recordUC.ListPrescriptions(c.Request().Context(), principal, patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]PrescriptionResponse, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		items = append(items, toPrescriptionResponse(prescription))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// CreatePrescription writes a prescription for the patient in the path.
func (h *RecordHandler) CreatePrescription(c echo.Context) error {
	principal, patientID, err := h.resolveRequest(c)
	if err != nil {
		return err
	}

	var req CreatePrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prescription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prescription, err := h.recordUC.CreatePrescription(c.Request().Context(), principal, &usecase.CreatePrescriptionInput{
		PatientID: patientID,
		Drug:      req.Drug,
		Dosage:    req.Dosage,
		Notes:     req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPrescriptionResponse(prescription), "Prescription created")
}

func (h *RecordHandler) resolveRequest(c echo.Context) (*entity.Principal, uuid.UUID, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	return principal, patientID, nil
}
