package request

import (
	"strings"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase"
)

// TransactionRequest is a company ledger entry. Category may be a worker id,
// a free label, or empty.
type TransactionRequest struct {
	Type     string `json:"type" binding:"required"`
	Amount   Amount `json:"amount"`
	Category string `json:"category"`
	Comment  string `json:"comment"`
}

func (r TransactionRequest) ToTransactionInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		Type:     parseEntryType(r.Type),
		Amount:   r.Amount.String(),
		Category: r.Category,
		Comment:  r.Comment,
	}
}

type WorkerEntryRequest struct {
	Type        string `json:"type" binding:"required"`
	Amount      Amount `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r WorkerEntryRequest) ToWorkerEntryInput() usecase.WorkerEntryInput {
	return usecase.WorkerEntryInput{
		Type:        parseEntryType(r.Type),
		Amount:      r.Amount.String(),
		Description: r.Description,
		Category:    r.Category,
	}
}

func parseEntryType(raw string) entities.EntryType {
	return entities.EntryType(strings.ToLower(strings.TrimSpace(raw)))
}
