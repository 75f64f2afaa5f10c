package usecase

import (
	"context"

	"caregate/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessCheck describes a protected operation: who may perform it, which
// capability it requires and, for patient-scoped resources, which patient
// the request targets.
type AccessCheck struct {
	// AllowedRoles is the coarse role gate for the operation.
	AllowedRoles entity.Roles

	// Permission is the fine-grained capability the operation requires.
	Permission entity.Permission

	// PatientID is set for patient-scoped resources and drives the
	// attribute check; nil skips the attribute gate.
	PatientID *uuid.UUID
}

// Authorizer evaluates the layered authorization pipeline for a request.
// The gates run in a fixed order - approval, role, permission, attribute -
// and the first denial wins; later gates are never consulted.
type Authorizer interface {
	Authorize(ctx context.Context, principal *entity.Principal, check *AccessCheck) error
}
