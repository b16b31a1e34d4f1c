package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoservice/internal/domain/entities"
	mock_interfaces "autoservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiagnosticUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDiagnosticRepository(ctrl)
	uc := NewDiagnosticUseCase(repo, nil, nil)

	repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Diagnostic{}, nil)

	d, err := uc.Get(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(d.Items) != len(entities.DefaultChecklist) {
		t.Fatalf("expected %d items, got %d", len(entities.DefaultChecklist), len(d.Items))
	}
	for _, it := range d.Items {
		if it.Status != entities.ItemOK {
			t.Fatalf("expected default OK, got %+v", it)
		}
	}
}

func TestDiagnosticUseCase_Save(t *testing.T) {
	checklist := []string{"Тормозные колодки", "Аккумулятор"}

	t.Run("unknown item", func(t *testing.T) {
		uc := NewDiagnosticUseCase(nil, nil, checklist)
		_, err := uc.Save(context.Background(), "req-1", map[string]entities.ItemStatus{"Фары": entities.ItemOK})
		if !errors.Is(err, ErrUnknownDiagnosticItem) {
			t.Fatalf("expected ErrUnknownDiagnosticItem, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewDiagnosticUseCase(nil, nil, checklist)
		_, err := uc.Save(context.Background(), "req-1", map[string]entities.ItemStatus{"Аккумулятор": "так себе"})
		if !errors.Is(err, ErrInvalidItemStatus) {
			t.Fatalf("expected ErrInvalidItemStatus, got %v", err)
		}
	})

	t.Run("upsert keeps created at and defaults missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiagnosticRepository(ctrl)
		requests := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewDiagnosticUseCase(repo, requests, checklist)
		uc.now = func() time.Time { return fixedNow }
		created := fixedNow.Add(-48 * time.Hour)

		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1"}, nil)
		repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Diagnostic{RequestID: "req-1", CreatedAt: created}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.Diagnostic) (entities.Diagnostic, error) {
			return d, nil
		})

		d, err := uc.Save(context.Background(), "req-1", map[string]entities.ItemStatus{"Аккумулятор": entities.ItemFaulty})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if d.Items[0].Status != entities.ItemOK || d.Items[1].Status != entities.ItemFaulty {
			t.Fatalf("unexpected items: %+v", d.Items)
		}
		if !d.CreatedAt.Equal(created) || !d.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected timestamps: %v %v", d.CreatedAt, d.UpdatedAt)
		}
	})
}
