package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"
	mock_interfaces "autoservice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type requestMocks struct {
	requests   *mock_interfaces.MockIServiceRequestRepository
	workers    *mock_interfaces.MockIWorkerRepository
	financials *mock_interfaces.MockIFinancialRepository
	writer     *mock_interfaces.MockIAtomicWriter
}

func newRequestUseCase(t *testing.T) (*ServiceRequestUseCase, requestMocks) {
	ctrl := gomock.NewController(t)
	m := requestMocks{
		requests:   mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		workers:    mock_interfaces.NewMockIWorkerRepository(ctrl),
		financials: mock_interfaces.NewMockIFinancialRepository(ctrl),
		writer:     mock_interfaces.NewMockIAtomicWriter(ctrl),
	}
	uc := NewServiceRequestUseCase(m.requests, m.workers, m.financials, m.writer)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func validForm() RequestForm {
	return RequestForm{
		CustomerName:  "Иван",
		CarModel:      "Lada Vesta",
		CarYear:       2019,
		Issue:         "Стук в подвеске",
		StartDateTime: fixedNow.Add(2 * time.Hour),
	}
}

func record(id string, typ entities.EntryType, amount int64) entities.FinancialRecord {
	d := decimal.NewFromInt(amount)
	return entities.FinancialRecord{ID: id, RequestID: "req-1", Type: typ, Amount: decimal.NewNullDecimal(d), RawAmount: d.String()}
}

func scenarioRecords() []entities.FinancialRecord {
	return []entities.FinancialRecord{
		record("f1", entities.EntryIncome, 1000),
		record("f2", entities.EntryExpense, 200),
	}
}

func confirmationRequest() entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:              "req-1",
		CustomerName:    "Иван",
		Status:          entities.RequestStatusConfirmation,
		AssignedWorkers: []string{"w1", "w2"},
	}
}

func expectWorkers(m requestMocks) {
	m.workers.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", Name: "Пётр", Rate: 30}, nil)
	m.workers.EXPECT().GetByID(gomock.Any(), "w2").Return(entities.Worker{ID: "w2", Name: "Олег", Rate: 25}, nil)
}

func TestServiceRequestUseCase_Create(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, nil)
		uc.now = func() time.Time { return fixedNow }
		form := validForm()
		form.CustomerName = "  "
		_, err := uc.Create(context.Background(), form)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("start in the past", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, nil)
		uc.now = func() time.Time { return fixedNow }
		form := validForm()
		form.StartDateTime = fixedNow.AddDate(0, 0, -1)
		_, err := uc.Create(context.Background(), form)
		if !errors.Is(err, ErrStartInPast) {
			t.Fatalf("expected ErrStartInPast, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, nil)
		uc.now = func() time.Time { return fixedNow }
		form := validForm()
		end := form.StartDateTime.Add(-time.Minute)
		form.EndDateTime = &end
		_, err := uc.Create(context.Background(), form)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("success applies defaults", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
			return r, nil
		})

		form := validForm()
		r, err := uc.Create(context.Background(), form)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if r.ID == "" || r.Status != entities.RequestStatusNew {
			t.Fatalf("unexpected request: %+v", r)
		}
		if r.Phone != entities.DefaultCustomerPhone {
			t.Fatalf("expected default phone, got %q", r.Phone)
		}
		if !r.EndDateTime.Equal(form.StartDateTime.Add(60 * time.Minute)) {
			t.Fatalf("expected end = start+60m, got %v", r.EndDateTime)
		}
		if r.Difficulty != 1 || r.Urgency != 1 {
			t.Fatalf("expected default levels, got %d/%d", r.Difficulty, r.Urgency)
		}
	})
}

func TestServiceRequestUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "req-1", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("plain edit from new", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusNew}, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPending).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)

		r, err := uc.UpdateStatus(context.Background(), "req-1", entities.RequestStatusPending)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if r.Status != entities.RequestStatusPending {
			t.Fatalf("expected pending, got %s", r.Status)
		}
	})

	t.Run("confirmation is not editable", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)

		_, err := uc.UpdateStatus(context.Background(), "req-1", entities.RequestStatusNew)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("canceled is routed through archival", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ops []interfaces.WriteOperation) error {
			if len(ops) != 2 {
				t.Fatalf("expected 2 ops, got %d", len(ops))
			}
			put, ok := ops[0].(interfaces.PutArchivedRequest)
			if !ok || put.Archived.Disposition != entities.DispositionCanceled || put.Archived.Financials != nil {
				t.Fatalf("unexpected archive op: %#v", ops[0])
			}
			del, ok := ops[1].(interfaces.DeleteServiceRequest)
			if !ok || del.ID != "req-1" || del.ExpectedStatus != entities.RequestStatusPending {
				t.Fatalf("unexpected delete op: %#v", ops[1])
			}
			return nil
		})

		r, err := uc.UpdateStatus(context.Background(), "req-1", entities.RequestStatusCanceled)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if r.Status != entities.RequestStatusCanceled {
			t.Fatalf("expected canceled, got %s", r.Status)
		}
	})
}

func TestServiceRequestUseCase_MarkComplete(t *testing.T) {
	uc, m := newRequestUseCase(t)
	m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
	m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusConfirmation).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusConfirmation}, nil)

	r, err := uc.MarkComplete(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != entities.RequestStatusConfirmation {
		t.Fatalf("expected confirmation, got %s", r.Status)
	}
}

func TestServiceRequestUseCase_AssignWorkers(t *testing.T) {
	t.Run("unknown worker", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusNew}, nil)
		m.workers.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Worker{}, nil)

		_, err := uc.AssignWorkers(context.Background(), "req-1", []string{"ghost"})
		if !errors.Is(err, ErrUnknownWorker) {
			t.Fatalf("expected ErrUnknownWorker, got %v", err)
		}
	})

	t.Run("total rate above 100 writes nothing", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusNew}, nil)
		m.workers.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", Rate: 70}, nil)
		m.workers.EXPECT().GetByID(gomock.Any(), "w2").Return(entities.Worker{ID: "w2", Rate: 40}, nil)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)

		_, err := uc.AssignWorkers(context.Background(), "req-1", []string{"w1", "w2"})
		if !errors.Is(err, ErrTotalRateExceeded) {
			t.Fatalf("expected ErrTotalRateExceeded, got %v", err)
		}
	})

	t.Run("success returns residual preview", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
		m.workers.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", Rate: 30}, nil)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)
		m.requests.EXPECT().UpdateAssignedWorkers(gomock.Any(), "req-1", []string{"w1"}).Return(entities.ServiceRequest{ID: "req-1", AssignedWorkers: []string{"w1"}}, nil)

		res, err := uc.AssignWorkers(context.Background(), "req-1", []string{"w1", " w1 ", ""})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Preview.Shares.CompanyShare.Equal(decimal.NewFromInt(560)) {
			t.Fatalf("expected company share 560, got %s", res.Preview.Shares.CompanyShare)
		}
		if res.Request.Shares != nil {
			t.Fatalf("assignment must not write a snapshot")
		}
	})
}

func TestServiceRequestUseCase_Details(t *testing.T) {
	uc, m := newRequestUseCase(t)
	m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending, AssignedWorkers: []string{"w1", "gone"}}, nil)
	m.workers.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Worker{ID: "w1", Rate: 30}, nil)
	m.workers.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Worker{}, nil)
	bad := entities.FinancialRecord{ID: "f3", RequestID: "req-1", Type: entities.EntryIncome, RawAmount: "abc"}
	m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(append(scenarioRecords(), bad), nil)

	d, err := uc.Details(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(d.Workers) != 1 {
		t.Fatalf("expected 1 resolved worker, got %d", len(d.Workers))
	}
	if !d.Preview.Shares.CompanyShare.Equal(decimal.NewFromInt(560)) {
		t.Fatalf("expected company share 560, got %s", d.Preview.Shares.CompanyShare)
	}
	if len(d.Preview.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %+v", d.Preview.Warnings)
	}
}

func TestServiceRequestUseCase_Confirm(t *testing.T) {
	t.Run("missing request is not found", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending, AssignedWorkers: []string{"w1"}}, nil)

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("no workers", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		r := confirmationRequest()
		r.AssignedWorkers = nil
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrNoWorkersAssigned) {
			t.Fatalf("expected ErrNoWorkersAssigned, got %v", err)
		}
	})

	t.Run("batch carries payout entries archive and delete", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)
		expectWorkers(m)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)

		var captured []interfaces.WriteOperation
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ops []interfaces.WriteOperation) error {
			captured = ops
			return nil
		})

		res, err := uc.Confirm(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		// company income + 2 x (expense + mirror) + archive + delete
		if len(captured) != 7 {
			t.Fatalf("expected 7 ops, got %d", len(captured))
		}
		income := captured[0].(interfaces.PutCompanyTransaction).Transaction
		if income.Type != entities.EntryIncome || !income.Amount.Equal(decimal.NewFromInt(800)) || income.RequestID != "req-1" {
			t.Fatalf("unexpected company income: %+v", income)
		}

		want := map[string]int64{"w1": 240, "w2": 200}
		for i := 1; i <= 3; i += 2 {
			expense := captured[i].(interfaces.PutCompanyTransaction).Transaction
			mirror := captured[i+1].(interfaces.PutWorkerLedgerEntry).Entry
			if expense.Type != entities.EntryExpense || !expense.Category.IsWorker() {
				t.Fatalf("unexpected payout expense: %+v", expense)
			}
			if mirror.Type != entities.EntryIncome || mirror.WorkerID != expense.Category.Value || !mirror.Auto {
				t.Fatalf("unexpected mirror: %+v", mirror)
			}
			if !expense.Amount.Equal(decimal.NewFromInt(want[mirror.WorkerID])) || !mirror.Amount.Equal(expense.Amount) {
				t.Fatalf("unexpected payout amount for %s: %s", mirror.WorkerID, expense.Amount)
			}
		}

		archived := captured[5].(interfaces.PutArchivedRequest).Archived
		if archived.Disposition != entities.DispositionArchived || archived.Financials == nil {
			t.Fatalf("unexpected archive: %+v", archived)
		}
		if !archived.Financials.CompanyShare.Equal(decimal.NewFromInt(800)) {
			t.Fatalf("expected snapshot company share 800, got %s", archived.Financials.CompanyShare)
		}
		del := captured[6].(interfaces.DeleteServiceRequest)
		if del.ID != "req-1" || del.ExpectedStatus != entities.RequestStatusConfirmation {
			t.Fatalf("unexpected delete: %+v", del)
		}

		if len(res.Transactions) != 3 || len(res.LedgerEntries) != 2 {
			t.Fatalf("unexpected result: %d txns, %d entries", len(res.Transactions), len(res.LedgerEntries))
		}
	})

	t.Run("batch failure leaves nothing written", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)
		expectWorkers(m)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).Return(errors.New("transaction canceled"))

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrAtomicWriteFailed) {
			t.Fatalf("expected ErrAtomicWriteFailed, got %v", err)
		}
	})

	t.Run("oversized batch is a client error", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)
		expectWorkers(m)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: 104 operations", interfaces.ErrTooManyOperations))

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrBatchTooLarge) {
			t.Fatalf("expected ErrBatchTooLarge, got %v", err)
		}
		if errors.Is(err, ErrAtomicWriteFailed) {
			t.Fatalf("oversized batch must not be reported as retryable: %v", err)
		}
	})

	t.Run("already archived by a concurrent confirm", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		gomock.InOrder(
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil),
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil),
		)
		expectWorkers(m)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(scenarioRecords(), nil)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.Confirm(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("non-positive net archives without ledger entries", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)
		expectWorkers(m)
		m.financials.EXPECT().ListByRequest(gomock.Any(), "req-1").Return([]entities.FinancialRecord{
			record("f1", entities.EntryIncome, 100),
			record("f2", entities.EntryExpense, 150),
		}, nil)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ops []interfaces.WriteOperation) error {
			if len(ops) != 2 {
				t.Fatalf("expected archive and delete only, got %d ops", len(ops))
			}
			return nil
		})

		res, err := uc.Confirm(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Archived.Financials.CompanyShare.IsZero() || len(res.Archived.Financials.WorkerShares) != 0 {
			t.Fatalf("expected empty snapshot, got %+v", res.Archived.Financials)
		}
	})
}

func TestServiceRequestUseCase_Cancel(t *testing.T) {
	t.Run("confirmation cannot be canceled", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil)

		_, err := uc.Cancel(context.Background(), "req-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		gomock.InOrder(
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusNew}, nil),
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(confirmationRequest(), nil),
		)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.Cancel(context.Background(), "req-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestServiceRequestUseCase_QuickCreate(t *testing.T) {
	t.Run("requires workers", func(t *testing.T) {
		uc, _ := newRequestUseCase(t)
		_, err := uc.QuickCreate(context.Background(), validForm(), nil, nil)
		if !errors.Is(err, ErrNoWorkersAssigned) {
			t.Fatalf("expected ErrNoWorkersAssigned, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		expectWorkers(m)
		_, err := uc.QuickCreate(context.Background(), validForm(), []string{"w1", "w2"}, []RecordInput{{Type: entities.EntryIncome, Amount: "-10"}})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("too many records for one batch", func(t *testing.T) {
		uc, _ := newRequestUseCase(t)
		inputs := make([]RecordInput, interfaces.MaxAtomicOperations)
		for i := range inputs {
			inputs[i] = RecordInput{Type: entities.EntryIncome, Amount: "10"}
		}
		_, err := uc.QuickCreate(context.Background(), validForm(), []string{"w1", "w2"}, inputs)
		if !errors.Is(err, ErrBatchTooLarge) {
			t.Fatalf("expected ErrBatchTooLarge, got %v", err)
		}
	})

	t.Run("request records and snapshot in one batch", func(t *testing.T) {
		uc, m := newRequestUseCase(t)
		expectWorkers(m)
		m.writer.EXPECT().AtomicWrite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ops []interfaces.WriteOperation) error {
			if len(ops) != 3 {
				t.Fatalf("expected 3 ops, got %d", len(ops))
			}
			put := ops[0].(interfaces.PutServiceRequest).Request
			if put.Status != entities.RequestStatusConfirmation || put.Shares == nil {
				t.Fatalf("unexpected request op: %+v", put)
			}
			if !put.Shares.CompanyShare.Equal(decimal.NewFromInt(360)) {
				t.Fatalf("expected residual company share 360, got %s", put.Shares.CompanyShare)
			}
			for _, op := range ops[1:] {
				if rec := op.(interfaces.PutFinancialRecord).Record; rec.RequestID != put.ID {
					t.Fatalf("record not scoped to request: %+v", rec)
				}
			}
			return nil
		})

		d, err := uc.QuickCreate(context.Background(), validForm(), []string{"w1", "w2"}, []RecordInput{
			{Type: entities.EntryIncome, Amount: "1000", Description: "Работа"},
			{Type: entities.EntryExpense, Amount: "200", Description: "Запчасти"},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(d.Records) != 2 || len(d.Preview.Shares.WorkerShares) != 2 {
			t.Fatalf("unexpected details: %+v", d)
		}
	})
}
