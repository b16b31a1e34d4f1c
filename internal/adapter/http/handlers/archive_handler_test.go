package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"autoservice/internal/adapter/http/handlers/mocks"
	"autoservice/internal/adapter/http/middleware"
	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestArchiveHandler(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockIArchiveUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIArchiveUseCase(ctrl)
		h := NewArchiveHandler(uc)
		r := newTestRouter()
		g := withAuth(r).Group("", middleware.RequireAdmin())
		g.GET("/v1/archive", h.List)
		g.GET("/v1/archive/:id", h.Get)
		return uc, r
	}

	t.Run("workers cannot browse the archive", func(t *testing.T) {
		_, r := setup(t)
		if w := perform(r, http.MethodGet, "/v1/archive", "", "worker"); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("list by disposition", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().List(gomock.Any(), entities.DispositionCanceled).Return([]entities.ArchivedRequest{
			{Request: entities.ServiceRequest{ID: "req-1"}, Disposition: entities.DispositionCanceled},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/archive?disposition=Canceled", "", "admin")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid disposition", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().List(gomock.Any(), entities.Disposition("deleted")).Return(nil, usecase.ErrInvalidDisposition)

		if w := perform(r, http.MethodGet, "/v1/archive?disposition=deleted", "", "admin"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get keeps the snapshot", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ArchivedRequest{
			Request:     entities.ServiceRequest{ID: "req-1"},
			Disposition: entities.DispositionArchived,
			Financials: &entities.Shares{
				CompanyShare: decimal.NewFromInt(560),
				WorkerShares: []entities.WorkerShare{{WorkerID: "w1", Rate: 30, Share: decimal.NewFromInt(240)}},
			},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/archive/req-1", "", "admin")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Financials struct {
				CompanyShare string `json:"company_share"`
			} `json:"financials"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Financials.CompanyShare != "560" {
			t.Fatalf("unexpected financials: %+v", body.Financials)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "req-9").Return(entities.ArchivedRequest{}, usecase.ErrArchivedRequestNotFound)

		if w := perform(r, http.MethodGet, "/v1/archive/req-9", "", "admin"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockILedgerUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newTestRouter()
		g := withAuth(r).Group("", middleware.RequireAdmin())
		g.GET("/v1/transactions", h.List)
		g.POST("/v1/transactions", h.Create)
		return uc, r
	}

	t.Run("list with balance", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().ListCompanyTransactions(gomock.Any()).Return([]entities.CompanyTransaction{
			{ID: "t1", Type: entities.EntryIncome, Amount: decimal.NewFromInt(800), Category: entities.LabelCategory(entities.LabelCompany)},
		}, nil)
		uc.EXPECT().CompanyBalance(gomock.Any()).Return(entities.NewBalance(decimal.NewFromInt(800), decimal.Zero), nil)

		w := perform(r, http.MethodGet, "/v1/transactions", "", "admin")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Transactions []map[string]any  `json:"transactions"`
			Balance      map[string]string `json:"balance"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(body.Transactions) != 1 || body.Transactions[0]["category_kind"] != "label" || body.Balance["balance"] != "800" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("create", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AddCompanyTransaction(gomock.Any(), usecase.TransactionInput{Type: entities.EntryExpense, Amount: "3000", Category: "w1", Comment: "аванс"}).
			Return(entities.CompanyTransaction{ID: "t2", Type: entities.EntryExpense, Amount: decimal.NewFromInt(3000), Category: entities.WorkerCategory("w1")}, nil)

		w := perform(r, http.MethodPost, "/v1/transactions", `{"type":"expense","amount":3000,"category":"w1","comment":"аванс"}`, "admin")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().AddCompanyTransaction(gomock.Any(), gomock.Any()).Return(entities.CompanyTransaction{}, usecase.ErrInvalidRecordType)

		if w := perform(r, http.MethodPost, "/v1/transactions", `{"type":"gift","amount":1}`, "admin"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
