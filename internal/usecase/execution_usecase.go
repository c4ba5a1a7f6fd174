package usecase

import (
	"context"
	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ErrProfileRequired       = errors.New("test profile required")
	ErrEquipmentRequired     = errors.New("equipment required")
	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrInvalidExecutionID    = errors.New("invalid execution id")
	ErrExecutionNotFound     = errors.New("test execution not found")
	ErrEquipmentNotFound     = errors.New("equipment not found")
	ErrNoTestPoints          = errors.New("test execution has no points")
	ErrPointStructureChanged = errors.New("test points do not match the saved execution")
	ErrIdentityChanged       = errors.New("profile or order of a saved execution cannot change")
	ErrInvalidPointIndex     = errors.New("invalid test point index")
	ErrInvalidPointInput     = errors.New("invalid input for test point kind")
)

var (
	executionsSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tse_executions_saved_total",
		Help: "Saved test executions by overall result.",
	}, []string{"result"})
	evaluationIssuesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tse_evaluation_issues_total",
		Help: "Points left pending because of malformed input during evaluation.",
	})
)

// DraftRequest carries what the technician picked before the test starts.
type DraftRequest struct {
	ProfileID    string
	EquipmentID  string
	OrderID      string
	TechnicianID string
	TestDate     time.Time
	Notes        string
}

// PointInput is one change made by the technician on the test form. Exactly
// one of MeasuredValue (measurement points) or Conforming (boolean points) is
// expected.
type PointInput struct {
	Index         int
	MeasuredValue *string
	Conforming    *bool
}

// EvaluationResult is the outcome of an interactive evaluation round.
type EvaluationResult struct {
	Execution entities.TestExecution
	Issues    []entities.PointIssue
	Pending   int
}

// IExecutionUseCase covers the life of a test execution:
//   - Instantiate: expand a profile into an unsaved draft
//   - Evaluate: apply technician inputs and recompute conformity/verdict
//   - Save: validate, freeze traceability, persist (insert or update by id)
//   - GetLatestForOrder: authoritative execution of an order (highest id)

type IExecutionUseCase interface {
	Instantiate(ctx context.Context, tenantID string, req DraftRequest) (entities.TestExecution, error)
	Evaluate(ctx context.Context, tenantID string, draft entities.TestExecution, inputs []PointInput) (EvaluationResult, error)
	Save(ctx context.Context, tenantID string, draft entities.TestExecution, sel TraceabilitySelection) (entities.TestExecution, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.TestExecution, error)
	ListForOrder(ctx context.Context, tenantID, orderID string) ([]entities.TestExecution, error)
	GetLatestForOrder(ctx context.Context, tenantID, orderID string) (entities.TestExecution, error)
}

type ExecutionUseCase struct {
	repo        interfaces.ITestExecutionRepository
	profileRepo interfaces.ITestProfileRepository
	registry    interfaces.IRegistryRepository
	standards   IStandardUseCase
	logger      *zap.Logger
	now         func() time.Time
}

var _ IExecutionUseCase = (*ExecutionUseCase)(nil)

func NewExecutionUseCase(
	repo interfaces.ITestExecutionRepository,
	profileRepo interfaces.ITestProfileRepository,
	registry interfaces.IRegistryRepository,
	standards IStandardUseCase,
	logger *zap.Logger,
) *ExecutionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecutionUseCase{
		repo:        repo,
		profileRepo: profileRepo,
		registry:    registry,
		standards:   standards,
		logger:      logger,
		now:         time.Now,
	}
}

// Instantiate builds an unsaved draft from a profile. A profile of another
// tenant is refused before any point is created.
func (u *ExecutionUseCase) Instantiate(ctx context.Context, tenantID string, req DraftRequest) (entities.TestExecution, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TestExecution{}, ErrInvalidTenantID
	}
	if strings.TrimSpace(req.ProfileID) == "" {
		return entities.TestExecution{}, ErrProfileRequired
	}

	profile, err := loadProfile(ctx, u.profileRepo, tenantID, req.ProfileID)
	if err != nil {
		if errors.Is(err, ErrTenantMismatch) {
			u.logger.Warn("profile of another tenant requested",
				zap.String("tenant_id", tenantID),
				zap.String("profile_id", req.ProfileID),
			)
		}
		return entities.TestExecution{}, err
	}
	if err := profile.Validate(); err != nil {
		return entities.TestExecution{}, err
	}

	testDate := req.TestDate
	if testDate.IsZero() {
		testDate = u.now()
	}

	draft := entities.TestExecution{
		TenantID:       tenantID,
		EquipmentID:    strings.TrimSpace(req.EquipmentID),
		OrderID:        strings.TrimSpace(req.OrderID),
		ProfileID:      profile.ID,
		TechnicianID:   strings.TrimSpace(req.TechnicianID),
		TestDate:       testDate.UTC(),
		ApplicableNorm: profile.ApplicableNorm,
		Points:         entities.InstantiatePoints(profile),
		Notes:          strings.TrimSpace(req.Notes),
	}
	draft.Recompute()

	u.logger.Debug("test execution instantiated",
		zap.String("tenant_id", tenantID),
		zap.String("profile_id", profile.ID),
		zap.Int("points", len(draft.Points)),
	)
	return draft, nil
}

// Evaluate applies the technician inputs to a copy of the draft and
// recomputes every point and the verdict. Malformed numbers leave the point
// pending and are reported as issues, not errors.
func (u *ExecutionUseCase) Evaluate(_ context.Context, tenantID string, draft entities.TestExecution, inputs []PointInput) (EvaluationResult, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return EvaluationResult{}, ErrInvalidTenantID
	}
	if draft.TenantID != "" && draft.TenantID != tenantID {
		return EvaluationResult{}, ErrTenantMismatch
	}

	exec := draft.Clone()
	exec.TenantID = tenantID
	for _, in := range inputs {
		if in.Index < 0 || in.Index >= len(exec.Points) {
			return EvaluationResult{}, ErrInvalidPointIndex
		}
		p, err := applyInput(exec.Points[in.Index], in)
		if err != nil && !errors.Is(err, entities.ErrMalformedMeasurement) {
			return EvaluationResult{}, err
		}
		exec.Points[in.Index] = p
	}

	issues := exec.Recompute()
	if len(issues) > 0 {
		evaluationIssuesTotal.Add(float64(len(issues)))
	}
	return EvaluationResult{Execution: exec, Issues: issues, Pending: exec.PendingPoints()}, nil
}

func applyInput(p entities.TestPoint, in PointInput) (entities.TestPoint, error) {
	switch {
	case in.Conforming != nil && in.MeasuredValue != nil:
		return p, ErrInvalidPointInput
	case in.Conforming != nil:
		out, err := entities.SetBooleanChoice(p, *in.Conforming)
		if err != nil {
			return p, ErrInvalidPointInput
		}
		return out, nil
	case in.MeasuredValue != nil:
		if p.IsSection() {
			return p, ErrInvalidPointInput
		}
		out, err := entities.SetMeasuredValue(p, *in.MeasuredValue)
		if errors.Is(err, entities.ErrInvalidParameter) {
			return p, ErrInvalidPointInput
		}
		return out, err
	default:
		return p, nil
	}
}

// Save validates and persists an execution. The traceability snapshot is
// resolved here and copied into the execution. On update an empty selection
// keeps the snapshot already stored. The applicable norm always comes from
// the profile (insert) or the stored execution (update), and a saved
// execution keeps its profile and order.
//
// Concurrent saves of the same id are not coordinated: the last write wins.
func (u *ExecutionUseCase) Save(ctx context.Context, tenantID string, draft entities.TestExecution, sel TraceabilitySelection) (entities.TestExecution, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TestExecution{}, ErrInvalidTenantID
	}
	if draft.TenantID != "" && draft.TenantID != tenantID {
		return entities.TestExecution{}, ErrTenantMismatch
	}

	exec := draft.Clone()
	exec.ID = strings.TrimSpace(exec.ID)
	exec.TenantID = tenantID
	exec.ProfileID = strings.TrimSpace(exec.ProfileID)
	exec.EquipmentID = strings.TrimSpace(exec.EquipmentID)
	exec.OrderID = strings.TrimSpace(exec.OrderID)
	exec.TechnicianID = strings.TrimSpace(exec.TechnicianID)

	if exec.ProfileID == "" {
		return entities.TestExecution{}, ErrProfileRequired
	}
	if exec.EquipmentID == "" {
		return entities.TestExecution{}, ErrEquipmentRequired
	}
	if exec.IsNew() && sel.IsEmpty() {
		return entities.TestExecution{}, ErrTraceabilityRequired
	}
	if exec.OrderID == "" {
		return entities.TestExecution{}, ErrInvalidOrderID
	}
	if len(exec.Points) == 0 {
		return entities.TestExecution{}, ErrNoTestPoints
	}

	var stored entities.TestExecution
	if !exec.IsNew() {
		var err error
		stored, err = u.repo.GetByID(ctx, exec.ID)
		if err != nil {
			return entities.TestExecution{}, err
		}
		if stored.ID == "" {
			return entities.TestExecution{}, ErrExecutionNotFound
		}
		if stored.TenantID != tenantID {
			return entities.TestExecution{}, ErrTenantMismatch
		}
		if exec.ProfileID != stored.ProfileID || exec.OrderID != stored.OrderID {
			return entities.TestExecution{}, ErrIdentityChanged
		}
		if !samePointStructure(stored.Points, exec.Points) {
			return entities.TestExecution{}, ErrPointStructureChanged
		}
		exec.Points = keepStoredDefinitions(stored.Points, exec.Points)
		exec.ApplicableNorm = stored.ApplicableNorm
	}

	profile, err := loadProfile(ctx, u.profileRepo, tenantID, exec.ProfileID)
	if err != nil {
		return entities.TestExecution{}, err
	}
	if exec.IsNew() {
		// Limits and operators of a new execution come from the profile, never
		// from the submitted draft.
		template := entities.InstantiatePoints(profile)
		if !samePointStructure(template, exec.Points) {
			return entities.TestExecution{}, ErrPointStructureChanged
		}
		exec.Points = keepStoredDefinitions(template, exec.Points)
		exec.ApplicableNorm = profile.ApplicableNorm
	}
	equipment, err := u.registry.ResolveEquipment(ctx, exec.EquipmentID)
	if err != nil {
		return entities.TestExecution{}, err
	}
	if equipment.ID == "" {
		return entities.TestExecution{}, ErrEquipmentNotFound
	}
	if equipment.TenantID != tenantID {
		return entities.TestExecution{}, ErrTenantMismatch
	}

	if issues := exec.Recompute(); len(issues) > 0 {
		first := issues[0]
		return entities.TestExecution{}, fmt.Errorf("point %d (%s): %w", first.Index+1, first.Name, first.Err)
	}

	if sel.IsEmpty() {
		exec.StandardSnapshot = stored.StandardSnapshot.Clone()
	} else {
		snap, err := u.standards.Resolve(ctx, tenantID, sel)
		if err != nil {
			return entities.TestExecution{}, err
		}
		exec.StandardSnapshot = snap
	}
	if exec.StandardSnapshot.IsEmpty() {
		return entities.TestExecution{}, ErrTraceabilityRequired
	}

	now := u.now().UTC()
	if exec.TestDate.IsZero() {
		exec.TestDate = now
	}
	if exec.IsNew() {
		exec.ID = newID()
		exec.CreatedAt = now
	} else {
		exec.CreatedAt = stored.CreatedAt
	}
	exec.UpdatedAt = now

	saved, err := u.repo.Save(ctx, exec)
	if err != nil {
		u.logger.Error("test execution save failed",
			zap.String("tenant_id", tenantID),
			zap.String("order_id", exec.OrderID),
			zap.String("execution_id", exec.ID),
			zap.Error(err),
		)
		return entities.TestExecution{}, err
	}

	executionsSavedTotal.WithLabelValues(string(saved.OverallResult)).Inc()
	u.logger.Info("test execution saved",
		zap.String("tenant_id", tenantID),
		zap.String("order_id", saved.OrderID),
		zap.String("execution_id", saved.ID),
		zap.String("overall_result", string(saved.OverallResult)),
		zap.Int("pending_points", saved.PendingPoints()),
		zap.String("traceability_mode", string(saved.StandardSnapshot.Mode)),
	)
	return saved.Clone(), nil
}

func (u *ExecutionUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.TestExecution, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TestExecution{}, ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TestExecution{}, ErrInvalidExecutionID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TestExecution{}, err
	}
	if e.ID == "" {
		return entities.TestExecution{}, ErrExecutionNotFound
	}
	if e.TenantID != tenantID {
		return entities.TestExecution{}, ErrTenantMismatch
	}
	return e, nil
}

// ListForOrder returns the tenant's executions of an order, latest first.
func (u *ExecutionUseCase) ListForOrder(ctx context.Context, tenantID, orderID string) ([]entities.TestExecution, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	all, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	owned := make([]entities.TestExecution, 0, len(all))
	for _, e := range all {
		if e.TenantID == tenantID {
			owned = append(owned, e)
		}
	}
	return entities.SortLatestFirst(owned), nil
}

// GetLatestForOrder returns the authoritative execution of an order: the one
// with the highest id. Older executions stay stored but are not used for
// status.
func (u *ExecutionUseCase) GetLatestForOrder(ctx context.Context, tenantID, orderID string) (entities.TestExecution, error) {
	owned, err := u.ListForOrder(ctx, tenantID, orderID)
	if err != nil {
		return entities.TestExecution{}, err
	}
	latest, ok := entities.SelectLatest(owned)
	if !ok {
		return entities.TestExecution{}, ErrExecutionNotFound
	}
	return latest, nil
}

// keepStoredDefinitions takes only the technician's entries from edited and
// keeps every template field (kind, name, unit, operator, limit) as stored.
func keepStoredDefinitions(stored, edited []entities.TestPoint) []entities.TestPoint {
	out := make([]entities.TestPoint, len(stored))
	for i := range stored {
		p := stored[i].Clone()
		p.MeasuredValue = edited[i].MeasuredValue
		p.Conformity = edited[i].Clone().Conformity
		out[i] = p
	}
	return out
}

func samePointStructure(a, b []entities.TestPoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ParameterID != b[i].ParameterID || a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}
