package usecase

import (
	"context"
	"errors"
	"testing"

	"autoservice/internal/domain/entities"
	mock_interfaces "autoservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestWorkerUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewWorkerUseCase(nil)
		cases := []struct {
			name string
			in   WorkerInput
			want error
		}{
			{"empty name", WorkerInput{Name: " ", PhoneNumber: "+79991234567"}, ErrInvalidWorkerName},
			{"bad phone", WorkerInput{Name: "Пётр", PhoneNumber: "12345"}, ErrInvalidPhone},
			{"rate above 100", WorkerInput{Name: "Пётр", PhoneNumber: "+79991234567", Rate: intPtr(101)}, ErrInvalidRate},
			{"negative rate", WorkerInput{Name: "Пётр", PhoneNumber: "+79991234567", Rate: intPtr(-1)}, ErrInvalidRate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewWorkerUseCase(repo)

		repo.EXPECT().GetByPhone(gomock.Any(), "+79991234567").Return(entities.Worker{ID: "w1"}, nil)

		_, err := uc.Create(context.Background(), WorkerInput{Name: "Пётр", PhoneNumber: "+7 999 123-45-67"})
		if !errors.Is(err, ErrWorkerPhoneConflict) {
			t.Fatalf("expected ErrWorkerPhoneConflict, got %v", err)
		}
	})

	t.Run("default rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewWorkerUseCase(repo)

		repo.EXPECT().GetByPhone(gomock.Any(), "+79991234567").Return(entities.Worker{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w entities.Worker) (entities.Worker, error) {
			return w, nil
		})

		w, err := uc.Create(context.Background(), WorkerInput{Name: "Пётр", PhoneNumber: "+79991234567"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if w.Rate != entities.DefaultWorkerRate || w.ChatID != nil || w.ID == "" {
			t.Fatalf("unexpected worker: %+v", w)
		}
	})
}

func TestWorkerUseCase_Update(t *testing.T) {
	t.Run("phone taken by another worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewWorkerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", PhoneNumber: "+79990000001", Rate: 30}, nil)
		repo.EXPECT().GetByPhone(gomock.Any(), "+79990000002").Return(entities.Worker{ID: "w2"}, nil)

		_, err := uc.Update(context.Background(), "w1", WorkerInput{Name: "Пётр", PhoneNumber: "+79990000002"})
		if !errors.Is(err, ErrWorkerPhoneConflict) {
			t.Fatalf("expected ErrWorkerPhoneConflict, got %v", err)
		}
	})

	t.Run("keeps rate when omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkerRepository(ctrl)
		uc := NewWorkerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", PhoneNumber: "+79990000001", Rate: 30}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w entities.Worker) (entities.Worker, error) {
			return w, nil
		})

		w, err := uc.Update(context.Background(), "w1", WorkerInput{Name: "Пётр Иванов", PhoneNumber: "+79990000001"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if w.Rate != 30 || w.Name != "Пётр Иванов" {
			t.Fatalf("unexpected worker: %+v", w)
		}
	})
}

func TestWorkerUseCase_UpdateRateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkerRepository(ctrl)
	uc := NewWorkerUseCase(repo)

	repo.EXPECT().UpdateRate(gomock.Any(), "w1", 50).Return(entities.Worker{}, nil)
	if _, err := uc.UpdateRate(context.Background(), "w1", 50); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "w1").Return(false, nil)
	if err := uc.Delete(context.Background(), "w1"); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "w2").Return(true, nil)
	if err := uc.Delete(context.Background(), "w2"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
