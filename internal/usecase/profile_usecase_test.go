package usecase

import (
	"context"
	"errors"
	"testing"

	"engclin_tse/internal/domain/entities"
	mock_interfaces "engclin_tse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatRef(v float64) *float64 { return &v }

func leakageProfile(tenantID string) entities.TestProfile {
	return entities.TestProfile{
		ID:             "profile-1",
		TenantID:       tenantID,
		Name:           "General electrical safety",
		ApplicableNorm: "NBR IEC 62353",
		Parameters: []entities.ParameterDef{
			{ID: "p-visual", Kind: entities.KindSection, Name: "Visual"},
			{ID: "p-enclosure", Kind: entities.KindBoolean, Name: "Enclosure intact"},
			{ID: "p-leakage", Kind: entities.KindMeasurement, Name: "Leakage Current", Unit: "mA", Operator: "<=", Limit: floatRef(0.1)},
		},
	}
}

func TestProfileUseCase_Get(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewProfileUseCase(nil, nil)
		_, err := uc.Get(context.Background(), " ", "profile-1")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewProfileUseCase(nil, nil)
		_, err := uc.Get(context.Background(), "tenant-a", "")
		if !errors.Is(err, ErrInvalidProfileID) {
			t.Fatalf("expected ErrInvalidProfileID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "profile-1").Return(entities.TestProfile{}, nil)

		_, err := uc.Get(context.Background(), "tenant-a", "profile-1")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("other tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "profile-1").Return(leakageProfile("tenant-b"), nil)

		_, err := uc.Get(context.Background(), "tenant-a", "profile-1")
		if !errors.Is(err, ErrTenantMismatch) {
			t.Fatalf("expected ErrTenantMismatch, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "profile-1").Return(entities.TestProfile{}, errors.New("db"))

		_, err := uc.Get(context.Background(), "tenant-a", "profile-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProfileUseCase_Create(t *testing.T) {
	t.Run("unknown operator refused at authoring", func(t *testing.T) {
		uc := NewProfileUseCase(nil, nil)
		p := leakageProfile("")
		p.Parameters[2].Operator = "<"

		_, err := uc.Create(context.Background(), "tenant-a", p)
		if !errors.Is(err, entities.ErrUnknownOperator) {
			t.Fatalf("expected ErrUnknownOperator, got %v", err)
		}
	})

	t.Run("tenant in body must match", func(t *testing.T) {
		uc := NewProfileUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "tenant-a", leakageProfile("tenant-b"))
		if !errors.Is(err, ErrTenantMismatch) {
			t.Fatalf("expected ErrTenantMismatch, got %v", err)
		}
	})

	t.Run("success normalizes rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		p := leakageProfile("")
		p.ID = ""
		p.Parameters[0].ID = ""
		p.Parameters[0].Operator = "<="
		p.Parameters[0].Limit = floatRef(3)
		p.Parameters[2].Kind = " Measurement "

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.TestProfile{})).DoAndReturn(
			func(_ context.Context, got entities.TestProfile) (entities.TestProfile, error) {
				if got.ID == "" || got.TenantID != "tenant-a" || got.CreatedAt.IsZero() {
					t.Fatalf("unexpected profile: %+v", got)
				}
				if got.Parameters[0].ID == "" || got.Parameters[0].Operator != "" || got.Parameters[0].Limit != nil {
					t.Fatalf("section row not normalized: %+v", got.Parameters[0])
				}
				if got.Parameters[2].Kind != entities.KindMeasurement {
					t.Fatalf("kind not normalized: %q", got.Parameters[2].Kind)
				}
				return got, nil
			},
		)

		res, err := uc.Create(context.Background(), " tenant-a ", p)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Parameters) != 3 {
			t.Fatalf("unexpected parameters: %+v", res.Parameters)
		}
	})
}

func TestProfileUseCase_Update(t *testing.T) {
	t.Run("keeps identity and tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		current := leakageProfile("tenant-a")
		repo.EXPECT().GetByID(gomock.Any(), "profile-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.TestProfile{})).DoAndReturn(
			func(_ context.Context, got entities.TestProfile) (entities.TestProfile, error) {
				if got.TenantID != "tenant-a" || got.Name != "Renamed" {
					t.Fatalf("unexpected profile: %+v", got)
				}
				return got, nil
			},
		)

		edit := leakageProfile("tenant-a")
		edit.Name = " Renamed "
		if _, err := uc.Update(context.Background(), "tenant-a", edit); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("vanished during update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITestProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "profile-1").Return(leakageProfile("tenant-a"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.TestProfile{}, nil)

		_, err := uc.Update(context.Background(), "tenant-a", leakageProfile("tenant-a"))
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}
