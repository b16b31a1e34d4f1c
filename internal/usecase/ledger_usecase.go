package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// TransactionInput is a company ledger entry as entered by staff. Category is
// either a worker id, a free label, or empty for "company".
type TransactionInput struct {
	Type     entities.EntryType
	Amount   string
	Category string
	Comment  string
}

// WorkerEntryInput is a manual line in a worker's personal ledger.
type WorkerEntryInput struct {
	Type        entities.EntryType
	Amount      string
	Description string
	Category    string
}

// ILedgerUseCase appends to and summarizes the request, company and worker
// ledgers. Balances are always derived from entries.

type ILedgerUseCase interface {
	AddRequestRecord(ctx context.Context, requestID string, in RecordInput) (entities.FinancialRecord, error)
	ListRequestRecords(ctx context.Context, requestID string) ([]entities.FinancialRecord, error)
	AddCompanyTransaction(ctx context.Context, in TransactionInput) (entities.CompanyTransaction, error)
	ListCompanyTransactions(ctx context.Context) ([]entities.CompanyTransaction, error)
	CompanyBalance(ctx context.Context) (entities.Balance, error)
	AddWorkerEntry(ctx context.Context, workerID string, in WorkerEntryInput) (entities.WorkerLedgerEntry, error)
	ListWorkerLedger(ctx context.Context, workerID string) ([]entities.WorkerLedgerEntry, error)
	WorkerBalance(ctx context.Context, workerID string) (entities.Balance, error)
}

type LedgerUseCase struct {
	workers      interfaces.IWorkerRepository
	financials   interfaces.IFinancialRepository
	transactions interfaces.ITransactionRepository
	workerLedger interfaces.IWorkerLedgerRepository
	writer       interfaces.IAtomicWriter
	now          func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	workers interfaces.IWorkerRepository,
	financials interfaces.IFinancialRepository,
	transactions interfaces.ITransactionRepository,
	workerLedger interfaces.IWorkerLedgerRepository,
	writer interfaces.IAtomicWriter,
) *LedgerUseCase {
	return &LedgerUseCase{
		workers:      workers,
		financials:   financials,
		transactions: transactions,
		workerLedger: workerLedger,
		writer:       writer,
		now:          time.Now,
	}
}

// AddRequestRecord appends an income/expense line to a live request. The
// record and the check that the request is still live commit together.
func (u *LedgerUseCase) AddRequestRecord(ctx context.Context, requestID string, in RecordInput) (entities.FinancialRecord, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.FinancialRecord{}, ErrInvalidRequestID
	}
	rec, err := newFinancialRecord(requestID, in, u.now().UTC())
	if err != nil {
		return entities.FinancialRecord{}, err
	}

	ops := []interfaces.WriteOperation{
		interfaces.CheckServiceRequestExists{ID: requestID},
		interfaces.PutFinancialRecord{Record: rec},
	}
	if err := u.writer.AtomicWrite(ctx, ops); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.FinancialRecord{}, ErrRequestNotFound
		}
		log.Errorf("[ledger][usecase] request record batch failed request_id=%s err=%v", requestID, err)
		return entities.FinancialRecord{}, batchError(err)
	}
	log.Infof("[ledger][usecase] request record added request_id=%s type=%s amount=%s", requestID, rec.Type, rec.RawAmount)
	return rec, nil
}

func (u *LedgerUseCase) ListRequestRecords(ctx context.Context, requestID string) ([]entities.FinancialRecord, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.financials.ListByRequest(ctx, requestID)
}

// AddCompanyTransaction writes a company ledger entry. When the category names
// an existing worker, the inverted mirror in that worker's ledger is written
// in the same atomic batch.
func (u *LedgerUseCase) AddCompanyTransaction(ctx context.Context, in TransactionInput) (entities.CompanyTransaction, error) {
	if !in.Type.Valid() {
		return entities.CompanyTransaction{}, ErrInvalidRecordType
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return entities.CompanyTransaction{}, err
	}
	category, err := u.resolveCategory(ctx, in.Category)
	if err != nil {
		return entities.CompanyTransaction{}, err
	}

	txn := entities.CompanyTransaction{
		ID:       uuid.NewString(),
		Type:     in.Type,
		Amount:   amount,
		Category: category,
		Comment:  strings.TrimSpace(in.Comment),
		Date:     u.now().UTC(),
	}

	if !category.IsWorker() {
		created, err := u.transactions.Create(ctx, txn)
		if err != nil {
			return entities.CompanyTransaction{}, err
		}
		log.Infof("[ledger][usecase] company transaction added id=%s type=%s category=%s", created.ID, created.Type, category.Value)
		return created, nil
	}

	mirror := entities.WorkerLedgerEntry{
		ID:          uuid.NewString(),
		WorkerID:    category.Value,
		Type:        txn.Type.Invert(),
		Amount:      amount,
		Description: txn.Comment,
		Category:    entities.LabelCompany,
		Date:        txn.Date,
		Auto:        true,
	}
	ops := []interfaces.WriteOperation{
		interfaces.PutCompanyTransaction{Transaction: txn},
		interfaces.PutWorkerLedgerEntry{Entry: mirror},
	}
	if err := u.writer.AtomicWrite(ctx, ops); err != nil {
		log.Errorf("[ledger][usecase] company transaction batch failed worker_id=%s err=%v", category.Value, err)
		return entities.CompanyTransaction{}, batchError(err)
	}
	log.Infof("[ledger][usecase] company transaction mirrored id=%s worker_id=%s", txn.ID, category.Value)
	return txn, nil
}

func (u *LedgerUseCase) ListCompanyTransactions(ctx context.Context) ([]entities.CompanyTransaction, error) {
	return u.transactions.List(ctx)
}

func (u *LedgerUseCase) CompanyBalance(ctx context.Context) (entities.Balance, error) {
	txns, err := u.transactions.List(ctx)
	if err != nil {
		return entities.Balance{}, err
	}
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case entities.EntryIncome:
			income = income.Add(t.Amount)
		case entities.EntryExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return entities.NewBalance(income, expense), nil
}

// AddWorkerEntry appends a manual line to a worker's personal ledger.
func (u *LedgerUseCase) AddWorkerEntry(ctx context.Context, workerID string, in WorkerEntryInput) (entities.WorkerLedgerEntry, error) {
	if _, err := u.loadWorker(ctx, workerID); err != nil {
		return entities.WorkerLedgerEntry{}, err
	}
	if !in.Type.Valid() {
		return entities.WorkerLedgerEntry{}, ErrInvalidRecordType
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return entities.WorkerLedgerEntry{}, err
	}

	entry := entities.WorkerLedgerEntry{
		ID:          uuid.NewString(),
		WorkerID:    strings.TrimSpace(workerID),
		Type:        in.Type,
		Amount:      amount,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Date:        u.now().UTC(),
	}
	return u.workerLedger.Create(ctx, entry)
}

func (u *LedgerUseCase) ListWorkerLedger(ctx context.Context, workerID string) ([]entities.WorkerLedgerEntry, error) {
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, ErrInvalidWorkerID
	}
	return u.workerLedger.ListByWorker(ctx, workerID)
}

func (u *LedgerUseCase) WorkerBalance(ctx context.Context, workerID string) (entities.Balance, error) {
	entries, err := u.ListWorkerLedger(ctx, workerID)
	if err != nil {
		return entities.Balance{}, err
	}
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case entities.EntryIncome:
			income = income.Add(e.Amount)
		case entities.EntryExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return entities.NewBalance(income, expense), nil
}

// resolveCategory turns the raw category into its tagged form once, at write
// time: an existing worker id becomes a worker category, anything else a label.
func (u *LedgerUseCase) resolveCategory(ctx context.Context, raw string) (entities.Category, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return entities.LabelCategory(entities.LabelCompany), nil
	case entities.LabelCompany, entities.LabelMisc:
		return entities.LabelCategory(raw), nil
	}
	w, err := u.workers.GetByID(ctx, raw)
	if err != nil {
		return entities.Category{}, err
	}
	if w.ID != "" {
		return entities.WorkerCategory(w.ID), nil
	}
	return entities.LabelCategory(raw), nil
}

func (u *LedgerUseCase) loadWorker(ctx context.Context, id string) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	w, err := u.workers.GetByID(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if w.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return w, nil
}
