package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engclin_tse/internal/domain/entities"
	mock_interfaces "engclin_tse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dateRef(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func analyzer(tenantID string) entities.Standard {
	return entities.Standard{
		ID:                "std-1",
		TenantID:          tenantID,
		Name:              "Safety analyzer",
		Manufacturer:      "Fluke",
		SerialNumber:      "SN-42",
		CertificateNumber: "CAL-123",
		CalibrationDate:   dateRef(2024, time.January, 1),
		ExpiryDate:        dateRef(2025, time.January, 1),
	}
}

func TestStandardUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewStandardUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "tenant-a", entities.Standard{Name: " "})
		if !errors.Is(err, ErrInvalidStandardName) {
			t.Fatalf("expected ErrInvalidStandardName, got %v", err)
		}
	})

	t.Run("expiry before calibration", func(t *testing.T) {
		uc := NewStandardUseCase(nil, nil)
		s := analyzer("")
		s.ExpiryDate = dateRef(2023, time.January, 1)
		_, err := uc.Create(context.Background(), "tenant-a", s)
		if !errors.Is(err, ErrInvalidValidity) {
			t.Fatalf("expected ErrInvalidValidity, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStandardRepository(ctrl)
		uc := NewStandardUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Standard{})).DoAndReturn(
			func(_ context.Context, s entities.Standard) (entities.Standard, error) {
				if s.ID == "" || s.ID == "std-1" || s.TenantID != "tenant-a" || s.CreatedAt.IsZero() {
					t.Fatalf("unexpected standard: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), "tenant-a", analyzer("")); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestStandardUseCase_Update(t *testing.T) {
	t.Run("other tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStandardRepository(ctrl)
		uc := NewStandardUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "std-1").Return(analyzer("tenant-b"), nil)

		_, err := uc.Update(context.Background(), "tenant-a", analyzer("tenant-a"))
		if !errors.Is(err, ErrTenantMismatch) {
			t.Fatalf("expected ErrTenantMismatch, got %v", err)
		}
	})

	t.Run("recertification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStandardRepository(ctrl)
		uc := NewStandardUseCase(repo, nil)

		current := analyzer("tenant-a")
		current.CreatedAt = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "std-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Standard{})).DoAndReturn(
			func(_ context.Context, s entities.Standard) (entities.Standard, error) {
				if !s.CreatedAt.Equal(current.CreatedAt) || s.CertificateNumber != "CAL-456" {
					t.Fatalf("unexpected standard: %+v", s)
				}
				return s, nil
			},
		)

		edit := analyzer("")
		edit.CertificateNumber = "CAL-456"
		edit.ExpiryDate = dateRef(2026, time.January, 1)
		if _, err := uc.Update(context.Background(), "tenant-a", edit); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestStandardUseCase_Resolve(t *testing.T) {
	fixed := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("nothing selected", func(t *testing.T) {
		uc := NewStandardUseCase(nil, nil)
		_, err := uc.Resolve(context.Background(), "tenant-a", TraceabilitySelection{FreeText: "  "})
		if !errors.Is(err, ErrTraceabilityRequired) {
			t.Fatalf("expected ErrTraceabilityRequired, got %v", err)
		}
	})

	t.Run("catalog standard is copied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStandardRepository(ctrl)
		uc := NewStandardUseCase(repo, nil)
		uc.now = func() time.Time { return fixed }

		s := analyzer("tenant-a")
		repo.EXPECT().GetByID(gomock.Any(), "std-1").Return(s, nil)

		snap, err := uc.Resolve(context.Background(), "tenant-a", TraceabilitySelection{StandardID: "std-1", FreeText: "ignored"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if snap.Mode != entities.SnapshotModeStructured || snap.CertificateNumber != "CAL-123" || !snap.CapturedAt.Equal(fixed) {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}

		*s.ExpiryDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !snap.ExpiryDate.Equal(*dateRef(2025, time.January, 1)) {
			t.Fatalf("snapshot aliased the standard: %v", snap.ExpiryDate)
		}
	})

	t.Run("standard of another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStandardRepository(ctrl)
		uc := NewStandardUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "std-1").Return(analyzer("tenant-b"), nil)

		_, err := uc.Resolve(context.Background(), "tenant-a", TraceabilitySelection{StandardID: "std-1"})
		if !errors.Is(err, ErrTenantMismatch) {
			t.Fatalf("expected ErrTenantMismatch, got %v", err)
		}
	})

	t.Run("free text fallback", func(t *testing.T) {
		uc := NewStandardUseCase(nil, nil)
		snap, err := uc.Resolve(context.Background(), "tenant-a", TraceabilitySelection{FreeText: " Analyzer SN 42 "})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if snap.Mode != entities.SnapshotModeFreeText || snap.Description != "Analyzer SN 42" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}
