package interfaces

import (
	"context"

	"autoservice/internal/domain/entities"
)

// IFinancialRepository reads request-scoped income/expense records. Records
// are written through IAtomicWriter together with a check on their request.
type IFinancialRepository interface {
	ListByRequest(ctx context.Context, requestID string) ([]entities.FinancialRecord, error)
}

// ITransactionRepository stores company ledger entries.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.CompanyTransaction) (entities.CompanyTransaction, error)
	List(ctx context.Context) ([]entities.CompanyTransaction, error)
}

// IWorkerLedgerRepository stores worker personal ledger entries.
type IWorkerLedgerRepository interface {
	Create(ctx context.Context, e entities.WorkerLedgerEntry) (entities.WorkerLedgerEntry, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.WorkerLedgerEntry, error)
}
