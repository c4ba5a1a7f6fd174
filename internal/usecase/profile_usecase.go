package usecase

import (
	"context"
	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTenantID  = errors.New("invalid tenant_id")
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrProfileNotFound  = errors.New("test profile not found")
	ErrTenantMismatch   = errors.New("tenant scope violation")
)

// IProfileUseCase exposes test profile authoring and the tenant catalog.
//
// Profiles are validated when authored, so an unknown comparison operator is
// refused before any execution can be instantiated from it.

type IProfileUseCase interface {
	List(ctx context.Context, tenantID string) ([]entities.TestProfile, error)
	Get(ctx context.Context, tenantID, id string) (entities.TestProfile, error)
	Create(ctx context.Context, tenantID string, p entities.TestProfile) (entities.TestProfile, error)
	Update(ctx context.Context, tenantID string, p entities.TestProfile) (entities.TestProfile, error)
}

type ProfileUseCase struct {
	repo   interfaces.ITestProfileRepository
	logger *zap.Logger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.ITestProfileRepository, logger *zap.Logger) *ProfileUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileUseCase{repo: repo, logger: logger}
}

func (u *ProfileUseCase) List(ctx context.Context, tenantID string) ([]entities.TestProfile, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *ProfileUseCase) Get(ctx context.Context, tenantID, id string) (entities.TestProfile, error) {
	return loadProfile(ctx, u.repo, tenantID, id)
}

func (u *ProfileUseCase) Create(ctx context.Context, tenantID string, p entities.TestProfile) (entities.TestProfile, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TestProfile{}, ErrInvalidTenantID
	}
	if p.TenantID != "" && p.TenantID != tenantID {
		return entities.TestProfile{}, ErrTenantMismatch
	}

	p = normalizeProfile(p)
	if err := p.Validate(); err != nil {
		return entities.TestProfile{}, err
	}

	now := time.Now().UTC()
	p.ID = newID()
	p.TenantID = tenantID
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("test profile create failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return entities.TestProfile{}, err
	}
	u.logger.Info("test profile created",
		zap.String("tenant_id", tenantID),
		zap.String("profile_id", created.ID),
		zap.Int("parameters", len(created.Parameters)),
	)
	return created, nil
}

// Update replaces the profile definition. Executions already instantiated
// from it keep their own copies of the points.
func (u *ProfileUseCase) Update(ctx context.Context, tenantID string, p entities.TestProfile) (entities.TestProfile, error) {
	current, err := loadProfile(ctx, u.repo, tenantID, p.ID)
	if err != nil {
		return entities.TestProfile{}, err
	}

	p = normalizeProfile(p)
	if err := p.Validate(); err != nil {
		return entities.TestProfile{}, err
	}

	p.ID = current.ID
	p.TenantID = current.TenantID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		u.logger.Error("test profile update failed", zap.String("profile_id", p.ID), zap.Error(err))
		return entities.TestProfile{}, err
	}
	if updated.ID == "" {
		return entities.TestProfile{}, ErrProfileNotFound
	}
	return updated, nil
}

// loadProfile fetches a profile and enforces that it belongs to tenantID.
func loadProfile(ctx context.Context, repo interfaces.ITestProfileRepository, tenantID, id string) (entities.TestProfile, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TestProfile{}, ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TestProfile{}, ErrInvalidProfileID
	}

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.TestProfile{}, err
	}
	if p.ID == "" {
		return entities.TestProfile{}, ErrProfileNotFound
	}
	if p.TenantID != tenantID {
		return entities.TestProfile{}, ErrTenantMismatch
	}
	return p, nil
}

func normalizeProfile(p entities.TestProfile) entities.TestProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.ApplicableNorm = strings.TrimSpace(p.ApplicableNorm)
	p.Classification = strings.TrimSpace(p.Classification)

	params := make([]entities.ParameterDef, len(p.Parameters))
	for i, def := range p.Parameters {
		def.Name = strings.TrimSpace(def.Name)
		def.Unit = strings.TrimSpace(def.Unit)
		def.Kind = entities.ParameterKindName(strings.ToLower(strings.TrimSpace(string(def.Kind))))
		def.Operator = strings.TrimSpace(def.Operator)
		if def.Kind != entities.KindMeasurement {
			def.Operator = ""
			def.Limit = nil
		} else if def.Limit != nil {
			limit := *def.Limit
			def.Limit = &limit
		}
		if strings.TrimSpace(def.ID) == "" {
			def.ID = newID()
		}
		params[i] = def
	}
	p.Parameters = params
	return p
}

// newID returns a time-ordered UUIDv7, so lexical order follows creation order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
