package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// Invert swaps income and expense. Used for worker-side mirrors of company
// transactions.
func (t EntryType) Invert() EntryType {
	if t == EntryIncome {
		return EntryExpense
	}
	return EntryIncome
}

// FinancialRecord is an income/expense line scoped to a service request.
//
// Amount is invalid (Valid=false) when the stored value could not be parsed.
// Invalid and negative amounts are excluded from share computation.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - SK: id

type FinancialRecord struct {
	ID          string              `json:"id"`
	RequestID   string              `json:"request_id"`
	Type        EntryType           `json:"type"`
	Amount      decimal.NullDecimal `json:"amount"`
	RawAmount   string              `json:"-"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Auto        bool                `json:"auto"`
}

// WorkerLedgerEntry is a line in a worker's personal ledger.
//
// Storage model (DynamoDB):
//   - PK: worker_id, SK: id
type WorkerLedgerEntry struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	Type            EntryType       `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Date            time.Time       `json:"date"`
	Auto            bool            `json:"auto"`
	SourceRequestID string          `json:"source_request_id,omitempty"`
}

type CategoryKind string

const (
	CategoryKindWorker CategoryKind = "worker"
	CategoryKindLabel  CategoryKind = "label"
)

const (
	LabelCompany = "company"
	LabelMisc    = "Разное"
)

// Category identifies what a company transaction is about: either a worker
// (by id) or a free label. It is resolved once, when the transaction is
// written.
type Category struct {
	Kind  CategoryKind `json:"kind"`
	Value string       `json:"value"`
}

func WorkerCategory(workerID string) Category {
	return Category{Kind: CategoryKindWorker, Value: workerID}
}

func LabelCategory(label string) Category {
	return Category{Kind: CategoryKindLabel, Value: label}
}

func (c Category) IsWorker() bool {
	return c.Kind == CategoryKindWorker
}

// CompanyTransaction is an entry in the company ledger.
//
// Storage model (DynamoDB):
//   - PK: id
type CompanyTransaction struct {
	ID        string          `json:"id"`
	Type      EntryType       `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	Comment   string          `json:"comment"`
	RequestID string          `json:"request_id,omitempty"`
	Date      time.Time       `json:"date"`
	Auto      bool            `json:"auto"`
}

// Balance is an income/expense summary of a ledger.
type Balance struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func NewBalance(income, expense decimal.Decimal) Balance {
	return Balance{Income: income, Expense: expense, Balance: income.Sub(expense)}
}
