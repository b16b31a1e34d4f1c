package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle state of a live service request.
//
// "archived" is not a status value: a request is archived when it lives in
// the archive table instead of the requests table.

type RequestStatus string

const (
	RequestStatusNew          RequestStatus = "new"
	RequestStatusPending      RequestStatus = "pending"
	RequestStatusConfirmation RequestStatus = "confirmation"
	RequestStatusCompleted    RequestStatus = "completed"
	RequestStatusCanceled     RequestStatus = "canceled"
)

const (
	DefaultRequestDuration = 60 * time.Minute
	DefaultCustomerPhone   = "Не указан"
	MinLevel               = 1
	MaxLevel               = 5
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusNew, RequestStatusPending, RequestStatusConfirmation,
		RequestStatusCompleted, RequestStatusCanceled:
		return true
	}
	return false
}

// Open reports whether the request can still be edited, assigned or canceled.
func (s RequestStatus) Open() bool {
	return s == RequestStatusNew || s == RequestStatusPending || s == RequestStatusCompleted
}

// WorkerShare is one worker's computed share of a request's net income.
type WorkerShare struct {
	WorkerID string          `json:"worker_id"`
	Name     string          `json:"name"`
	Rate     int             `json:"rate"`
	Share    decimal.Decimal `json:"share"`
}

// Shares is the split of a request's net income. When stored on a request or
// in the archive it is an immutable snapshot.
type Shares struct {
	CompanyShare decimal.Decimal `json:"company_share"`
	WorkerShares []WorkerShare   `json:"worker_shares"`
}

func (s Shares) WorkersTotal() decimal.Decimal {
	total := decimal.Zero
	for _, ws := range s.WorkerShares {
		total = total.Add(ws.Share)
	}
	return total
}

// ServiceRequest is a customer's job order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type ServiceRequest struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone"`
	CarModel        string        `json:"car_model"`
	CarYear         int           `json:"car_year"`
	Issue           string        `json:"issue"`
	Status          RequestStatus `json:"status"`
	AssignedWorkers []string      `json:"assigned_workers"`
	StartDateTime   time.Time     `json:"start_date_time"`
	EndDateTime     time.Time     `json:"end_date_time"`
	Difficulty      int           `json:"difficulty"`
	Urgency         int           `json:"urgency"`
	Shares          *Shares       `json:"shares,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (r ServiceRequest) HasWorker(workerID string) bool {
	for _, id := range r.AssignedWorkers {
		if id == workerID {
			return true
		}
	}
	return false
}
