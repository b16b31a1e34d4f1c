package request

import (
	"strings"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase"
)

// ServiceRequestForm is the customer-facing request payload. Validation of
// dates, year and levels happens in the use case.
type ServiceRequestForm struct {
	CustomerName  string     `json:"customer_name" binding:"required"`
	Phone         string     `json:"phone"`
	CarModel      string     `json:"car_model" binding:"required"`
	CarYear       int        `json:"car_year"`
	Issue         string     `json:"issue" binding:"required"`
	StartDateTime time.Time  `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	Difficulty    int        `json:"difficulty"`
	Urgency       int        `json:"urgency"`
}

func (f ServiceRequestForm) ToRequestForm() usecase.RequestForm {
	return usecase.RequestForm{
		CustomerName:  f.CustomerName,
		Phone:         f.Phone,
		CarModel:      f.CarModel,
		CarYear:       f.CarYear,
		Issue:         f.Issue,
		StartDateTime: f.StartDateTime,
		EndDateTime:   f.EndDateTime,
		Difficulty:    f.Difficulty,
		Urgency:       f.Urgency,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() entities.RequestStatus {
	return entities.RequestStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// AssignWorkersRequest replaces the assigned worker set. An empty list
// unassigns everyone.
type AssignWorkersRequest struct {
	WorkerIDs []string `json:"worker_ids"`
}

func (r AssignWorkersRequest) ResolveWorkerIDs() []string {
	ids := make([]string, 0, len(r.WorkerIDs))
	for _, id := range r.WorkerIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

type FinancialRecordRequest struct {
	Type        string `json:"type" binding:"required"`
	Amount      Amount `json:"amount"`
	Description string `json:"description"`
}

func (r FinancialRecordRequest) ToRecordInput() usecase.RecordInput {
	return usecase.RecordInput{
		Type:        parseEntryType(r.Type),
		Amount:      r.Amount.String(),
		Description: r.Description,
	}
}

// QuickCreateRequest creates a request that goes straight to confirmation
// with its workers and records.
type QuickCreateRequest struct {
	ServiceRequestForm
	WorkerIDs []string                 `json:"worker_ids"`
	Records   []FinancialRecordRequest `json:"records"`
}

func (r QuickCreateRequest) ResolveWorkerIDs() []string {
	return AssignWorkersRequest{WorkerIDs: r.WorkerIDs}.ResolveWorkerIDs()
}

func (r QuickCreateRequest) ToRecordInputs() []usecase.RecordInput {
	out := make([]usecase.RecordInput, 0, len(r.Records))
	for _, rec := range r.Records {
		out = append(out, rec.ToRecordInput())
	}
	return out
}
