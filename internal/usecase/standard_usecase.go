package usecase

import (
	"context"
	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidStandardID    = errors.New("invalid standard id")
	ErrInvalidStandardName  = errors.New("invalid standard name")
	ErrStandardNotFound     = errors.New("calibration standard not found")
	ErrTraceabilityRequired = errors.New("traceability information required")
	ErrInvalidValidity      = errors.New("expiry date before calibration date")
)

// TraceabilitySelection is what the technician picked as measurement
// traceability: a catalog standard, or a free-text identification when the
// tenant keeps no catalog.
type TraceabilitySelection struct {
	StandardID string
	FreeText   string
}

func (s TraceabilitySelection) IsEmpty() bool {
	return strings.TrimSpace(s.StandardID) == "" && strings.TrimSpace(s.FreeText) == ""
}

// IStandardUseCase manages the calibration standard catalog and resolves
// traceability snapshots.
//
//   - Resolve copies the standard's current certificate data; later edits to
//     the standard never reach snapshots already taken.

type IStandardUseCase interface {
	List(ctx context.Context, tenantID string) ([]entities.Standard, error)
	Get(ctx context.Context, tenantID, id string) (entities.Standard, error)
	Create(ctx context.Context, tenantID string, s entities.Standard) (entities.Standard, error)
	Update(ctx context.Context, tenantID string, s entities.Standard) (entities.Standard, error)
	Resolve(ctx context.Context, tenantID string, sel TraceabilitySelection) (entities.StandardSnapshot, error)
}

type StandardUseCase struct {
	repo   interfaces.IStandardRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IStandardUseCase = (*StandardUseCase)(nil)

func NewStandardUseCase(repo interfaces.IStandardRepository, logger *zap.Logger) *StandardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StandardUseCase{repo: repo, logger: logger, now: time.Now}
}

func (u *StandardUseCase) List(ctx context.Context, tenantID string) ([]entities.Standard, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *StandardUseCase) Get(ctx context.Context, tenantID, id string) (entities.Standard, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Standard{}, ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Standard{}, ErrInvalidStandardID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Standard{}, err
	}
	if s.ID == "" {
		return entities.Standard{}, ErrStandardNotFound
	}
	if s.TenantID != tenantID {
		return entities.Standard{}, ErrTenantMismatch
	}
	return s, nil
}

func (u *StandardUseCase) Create(ctx context.Context, tenantID string, s entities.Standard) (entities.Standard, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Standard{}, ErrInvalidTenantID
	}
	if s.TenantID != "" && s.TenantID != tenantID {
		return entities.Standard{}, ErrTenantMismatch
	}
	if err := validateStandard(s); err != nil {
		return entities.Standard{}, err
	}

	now := u.now().UTC()
	s.ID = newID()
	s.TenantID = tenantID
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.logger.Error("standard create failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return entities.Standard{}, err
	}
	return created, nil
}

// Update records a re-certification or correction of a standard.
func (u *StandardUseCase) Update(ctx context.Context, tenantID string, s entities.Standard) (entities.Standard, error) {
	current, err := u.Get(ctx, tenantID, s.ID)
	if err != nil {
		return entities.Standard{}, err
	}
	if err := validateStandard(s); err != nil {
		return entities.Standard{}, err
	}

	s.ID = current.ID
	s.TenantID = current.TenantID
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		u.logger.Error("standard update failed", zap.String("standard_id", s.ID), zap.Error(err))
		return entities.Standard{}, err
	}
	if updated.ID == "" {
		return entities.Standard{}, ErrStandardNotFound
	}
	u.logger.Info("standard updated",
		zap.String("tenant_id", current.TenantID),
		zap.String("standard_id", updated.ID),
		zap.String("certificate_number", updated.CertificateNumber),
	)
	return updated, nil
}

// Resolve builds the traceability snapshot for a selection. A catalog
// reference wins over free text.
func (u *StandardUseCase) Resolve(ctx context.Context, tenantID string, sel TraceabilitySelection) (entities.StandardSnapshot, error) {
	if sel.IsEmpty() {
		return entities.StandardSnapshot{}, ErrTraceabilityRequired
	}

	if id := strings.TrimSpace(sel.StandardID); id != "" {
		s, err := u.Get(ctx, tenantID, id)
		if err != nil {
			return entities.StandardSnapshot{}, err
		}
		snap := entities.SnapshotFromStandard(s, u.now())
		u.logger.Debug("traceability resolved from catalog",
			zap.String("tenant_id", s.TenantID),
			zap.String("standard_id", s.ID),
		)
		return snap, nil
	}

	if strings.TrimSpace(tenantID) == "" {
		return entities.StandardSnapshot{}, ErrInvalidTenantID
	}
	return entities.FreeTextSnapshot(sel.FreeText, u.now()), nil
}

func validateStandard(s entities.Standard) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidStandardName
	}
	if s.CalibrationDate != nil && s.ExpiryDate != nil && s.ExpiryDate.Before(*s.CalibrationDate) {
		return ErrInvalidValidity
	}
	return nil
}
