package response

import (
	"time"

	"autoservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// FinancialRecordResponse reports the stored amount text when it could not be
// parsed, with Valid=false.
type FinancialRecordResponse struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Valid       bool      `json:"valid"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Auto        bool      `json:"auto"`
}

func FromFinancialRecord(r entities.FinancialRecord) FinancialRecordResponse {
	amount := r.RawAmount
	if r.Amount.Valid {
		amount = r.Amount.Decimal.String()
	}
	return FinancialRecordResponse{
		ID:          r.ID,
		RequestID:   r.RequestID,
		Type:        string(r.Type),
		Amount:      amount,
		Valid:       r.Amount.Valid,
		Description: r.Description,
		Date:        r.Date,
		Auto:        r.Auto,
	}
}

func FromFinancialRecords(rs []entities.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromFinancialRecord(r))
	}
	return out
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryKind string          `json:"category_kind"`
	Category     string          `json:"category"`
	Comment      string          `json:"comment"`
	RequestID    string          `json:"request_id,omitempty"`
	Date         time.Time       `json:"date"`
	Auto         bool            `json:"auto"`
}

func FromTransaction(t entities.CompanyTransaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		CategoryKind: string(t.Category.Kind),
		Category:     t.Category.Value,
		Comment:      t.Comment,
		RequestID:    t.RequestID,
		Date:         t.Date,
		Auto:         t.Auto,
	}
}

func FromTransactions(ts []entities.CompanyTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}

type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Date            time.Time       `json:"date"`
	Auto            bool            `json:"auto"`
	SourceRequestID string          `json:"source_request_id,omitempty"`
}

func FromLedgerEntry(e entities.WorkerLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              e.ID,
		WorkerID:        e.WorkerID,
		Type:            string(e.Type),
		Amount:          e.Amount,
		Description:     e.Description,
		Category:        e.Category,
		Date:            e.Date,
		Auto:            e.Auto,
		SourceRequestID: e.SourceRequestID,
	}
}

func FromLedgerEntries(es []entities.WorkerLedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}

type BalanceResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{Income: b.Income, Expense: b.Expense, Balance: b.Balance}
}

type CompanyLedgerResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      BalanceResponse       `json:"balance"`
}

type WorkerLedgerResponse struct {
	WorkerID string                `json:"worker_id"`
	Entries  []LedgerEntryResponse `json:"entries"`
	Balance  BalanceResponse       `json:"balance"`
}
