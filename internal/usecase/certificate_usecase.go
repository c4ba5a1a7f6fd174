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

var ErrRendererNotConfigured = errors.New("document renderer not configured")

// ICertificateUseCase assembles the renderer-ready certificate payload.
//
// Join order: execution -> profile -> equipment (client, technology) ->
// technician -> tenant company identity (+ logo). Only the execution is
// mandatory; every other record degrades to placeholders when missing.

type ICertificateUseCase interface {
	AssembleForOrder(ctx context.Context, tenantID, orderID string) (entities.CertificatePayload, error)
	AssembleForExecution(ctx context.Context, tenantID, executionID string) (entities.CertificatePayload, error)
	Render(ctx context.Context, tenantID, orderID string) (interfaces.RenderedDocument, error)
}

type CertificateUseCase struct {
	executions  IExecutionUseCase
	profileRepo interfaces.ITestProfileRepository
	registry    interfaces.IRegistryRepository
	tenantCache interfaces.ITenantConfigCache
	assets      interfaces.IAssetFetcher
	renderer    interfaces.IDocumentRenderer
	logger      *zap.Logger
	now         func() time.Time
}

var _ ICertificateUseCase = (*CertificateUseCase)(nil)

func NewCertificateUseCase(
	executions IExecutionUseCase,
	profileRepo interfaces.ITestProfileRepository,
	registry interfaces.IRegistryRepository,
	tenantCache interfaces.ITenantConfigCache,
	assets interfaces.IAssetFetcher,
	renderer interfaces.IDocumentRenderer,
	logger *zap.Logger,
) *CertificateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CertificateUseCase{
		executions:  executions,
		profileRepo: profileRepo,
		registry:    registry,
		tenantCache: tenantCache,
		assets:      assets,
		renderer:    renderer,
		logger:      logger,
		now:         time.Now,
	}
}

// AssembleForOrder builds the payload of the authoritative (latest)
// execution of an order.
func (u *CertificateUseCase) AssembleForOrder(ctx context.Context, tenantID, orderID string) (entities.CertificatePayload, error) {
	exec, err := u.executions.GetLatestForOrder(ctx, tenantID, orderID)
	if err != nil {
		return entities.CertificatePayload{}, err
	}
	return u.assemble(ctx, exec)
}

func (u *CertificateUseCase) AssembleForExecution(ctx context.Context, tenantID, executionID string) (entities.CertificatePayload, error) {
	exec, err := u.executions.GetByID(ctx, tenantID, executionID)
	if err != nil {
		return entities.CertificatePayload{}, err
	}
	return u.assemble(ctx, exec)
}

func (u *CertificateUseCase) Render(ctx context.Context, tenantID, orderID string) (interfaces.RenderedDocument, error) {
	if u.renderer == nil {
		return interfaces.RenderedDocument{}, ErrRendererNotConfigured
	}
	payload, err := u.AssembleForOrder(ctx, tenantID, orderID)
	if err != nil {
		return interfaces.RenderedDocument{}, err
	}
	doc, err := u.renderer.Render(ctx, payload)
	if err != nil {
		u.logger.Error("certificate render failed",
			zap.String("tenant_id", payload.TenantID),
			zap.String("execution_id", payload.ExecutionID),
			zap.Error(err),
		)
		return interfaces.RenderedDocument{}, err
	}
	return doc, nil
}

func (u *CertificateUseCase) assemble(ctx context.Context, exec entities.TestExecution) (entities.CertificatePayload, error) {
	src := entities.CertificateSources{Execution: exec.Clone(), GeneratedAt: u.now()}
	tenantID := exec.TenantID

	if id := strings.TrimSpace(exec.ProfileID); id != "" {
		p, err := u.profileRepo.GetByID(ctx, id)
		if err != nil {
			return entities.CertificatePayload{}, err
		}
		if p.TenantID == tenantID {
			src.Profile = p
		}
	}

	if id := strings.TrimSpace(exec.EquipmentID); id != "" {
		eq, err := u.registry.ResolveEquipment(ctx, id)
		if err != nil {
			return entities.CertificatePayload{}, err
		}
		if eq.TenantID == tenantID {
			src.Equipment = eq
		}
	}
	if id := strings.TrimSpace(src.Equipment.ClientID); id != "" {
		c, err := u.registry.ResolveClient(ctx, tenantID, id)
		if err != nil {
			return entities.CertificatePayload{}, err
		}
		src.Client = c
	}
	if id := strings.TrimSpace(src.Equipment.TechnologyID); id != "" {
		t, err := u.registry.ResolveTechnology(ctx, id)
		if err != nil {
			return entities.CertificatePayload{}, err
		}
		src.Technology = t
	}
	if id := strings.TrimSpace(exec.TechnicianID); id != "" {
		t, err := u.registry.ResolveTechnician(ctx, tenantID, id)
		if err != nil {
			return entities.CertificatePayload{}, err
		}
		src.Technician = t
	}

	cfg, err := u.tenantConfig(ctx, tenantID)
	if err != nil {
		return entities.CertificatePayload{}, err
	}
	src.TenantConfig = cfg
	src.Logo, src.LogoType = u.fetchLogo(ctx, cfg)

	payload := entities.BuildCertificatePayload(src)
	u.logger.Info("certificate payload assembled",
		zap.String("tenant_id", tenantID),
		zap.String("order_id", exec.OrderID),
		zap.String("execution_id", exec.ID),
		zap.String("overall_result", string(payload.OverallResult)),
		zap.Bool("standard_expired", payload.Traceability.ExpiredAtTestDate),
	)
	return payload, nil
}

func (u *CertificateUseCase) tenantConfig(ctx context.Context, tenantID string) (entities.TenantConfig, error) {
	if u.tenantCache != nil {
		if cfg, ok := u.tenantCache.Get(tenantID); ok {
			return cfg, nil
		}
	}
	cfg, err := u.registry.ResolveTenantConfig(ctx, tenantID)
	if err != nil {
		return entities.TenantConfig{}, err
	}
	if u.tenantCache != nil && cfg.TenantID != "" {
		u.tenantCache.Set(tenantID, cfg)
	}
	return cfg, nil
}

// fetchLogo downloads the company logo. Failures are tolerated: the
// certificate is issued without a logo and the cached company identity is
// dropped, so a logo URL changed in the registry is picked up next time.
func (u *CertificateUseCase) fetchLogo(ctx context.Context, cfg entities.TenantConfig) ([]byte, string) {
	url := strings.TrimSpace(cfg.LogoURL)
	if url == "" || u.assets == nil {
		return nil, ""
	}
	content, contentType, err := u.assets.Fetch(ctx, url)
	if err != nil {
		u.logger.Warn("logo fetch failed, using placeholder",
			zap.String("tenant_id", cfg.TenantID),
			zap.String("logo_url", url),
			zap.Error(err),
		)
		if u.tenantCache != nil {
			u.tenantCache.Invalidate(cfg.TenantID)
		}
		return nil, ""
	}
	return content, contentType
}
