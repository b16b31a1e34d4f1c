package response

import (
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/domain/shares"
	"autoservice/internal/usecase"

	"github.com/shopspring/decimal"
)

type WorkerShareResponse struct {
	WorkerID string          `json:"worker_id"`
	Name     string          `json:"name"`
	Rate     int             `json:"rate"`
	Share    decimal.Decimal `json:"share"`
}

type SharesResponse struct {
	CompanyShare decimal.Decimal       `json:"company_share"`
	WorkerShares []WorkerShareResponse `json:"worker_shares"`
}

func FromShares(s *entities.Shares) *SharesResponse {
	if s == nil {
		return nil
	}
	out := &SharesResponse{
		CompanyShare: s.CompanyShare,
		WorkerShares: make([]WorkerShareResponse, 0, len(s.WorkerShares)),
	}
	for _, ws := range s.WorkerShares {
		out.WorkerShares = append(out.WorkerShares, WorkerShareResponse{
			WorkerID: ws.WorkerID,
			Name:     ws.Name,
			Rate:     ws.Rate,
			Share:    ws.Share,
		})
	}
	return out
}

type ServiceRequestResponse struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	Phone           string          `json:"phone"`
	CarModel        string          `json:"car_model"`
	CarYear         int             `json:"car_year"`
	Issue           string          `json:"issue"`
	Status          string          `json:"status"`
	AssignedWorkers []string        `json:"assigned_workers"`
	StartDateTime   time.Time       `json:"start_date_time"`
	EndDateTime     time.Time       `json:"end_date_time"`
	Difficulty      int             `json:"difficulty"`
	Urgency         int             `json:"urgency"`
	Shares          *SharesResponse `json:"shares,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	assigned := r.AssignedWorkers
	if assigned == nil {
		assigned = []string{}
	}
	return ServiceRequestResponse{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		CarModel:        r.CarModel,
		CarYear:         r.CarYear,
		Issue:           r.Issue,
		Status:          string(r.Status),
		AssignedWorkers: assigned,
		StartDateTime:   r.StartDateTime,
		EndDateTime:     r.EndDateTime,
		Difficulty:      r.Difficulty,
		Urgency:         r.Urgency,
		Shares:          FromShares(r.Shares),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

// PreviewResponse is a computed split that has not been persisted.
type PreviewResponse struct {
	TotalIncome  decimal.Decimal       `json:"total_income"`
	TotalExpense decimal.Decimal       `json:"total_expense"`
	NetIncome    decimal.Decimal       `json:"net_income"`
	CompanyShare decimal.Decimal       `json:"company_share"`
	WorkerShares []WorkerShareResponse `json:"worker_shares"`
	Warnings     []shares.Warning      `json:"warnings"`
}

func FromPreview(res shares.Result) PreviewResponse {
	split := FromShares(&res.Shares)
	warnings := res.Warnings
	if warnings == nil {
		warnings = []shares.Warning{}
	}
	return PreviewResponse{
		TotalIncome:  res.TotalIncome,
		TotalExpense: res.TotalExpense,
		NetIncome:    res.NetIncome,
		CompanyShare: split.CompanyShare,
		WorkerShares: split.WorkerShares,
		Warnings:     warnings,
	}
}

type RequestDetailsResponse struct {
	Request ServiceRequestResponse    `json:"request"`
	Workers []WorkerResponse          `json:"workers"`
	Records []FinancialRecordResponse `json:"records"`
	Preview PreviewResponse           `json:"preview"`
}

func FromRequestDetails(d usecase.RequestDetails) RequestDetailsResponse {
	return RequestDetailsResponse{
		Request: FromServiceRequest(d.Request),
		Workers: FromWorkers(d.Workers),
		Records: FromFinancialRecords(d.Records),
		Preview: FromPreview(d.Preview),
	}
}

type AssignmentResponse struct {
	Request ServiceRequestResponse `json:"request"`
	Preview PreviewResponse        `json:"preview"`
}

func FromAssignment(a usecase.AssignmentResult) AssignmentResponse {
	return AssignmentResponse{
		Request: FromServiceRequest(a.Request),
		Preview: FromPreview(a.Preview),
	}
}

type ArchivedRequestResponse struct {
	Request     ServiceRequestResponse `json:"request"`
	Disposition string                 `json:"disposition"`
	ArchivedAt  time.Time              `json:"archived_at"`
	Financials  *SharesResponse        `json:"financials,omitempty"`
}

func FromArchivedRequest(a entities.ArchivedRequest) ArchivedRequestResponse {
	return ArchivedRequestResponse{
		Request:     FromServiceRequest(a.Request),
		Disposition: string(a.Disposition),
		ArchivedAt:  a.ArchivedAt,
		Financials:  FromShares(a.Financials),
	}
}

func FromArchivedRequests(as []entities.ArchivedRequest) []ArchivedRequestResponse {
	out := make([]ArchivedRequestResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromArchivedRequest(a))
	}
	return out
}

type ConfirmResponse struct {
	Archived      ArchivedRequestResponse `json:"archived"`
	Transactions  []TransactionResponse   `json:"transactions"`
	LedgerEntries []LedgerEntryResponse   `json:"ledger_entries"`
	Warnings      []shares.Warning        `json:"warnings"`
}

func FromConfirm(r usecase.ConfirmResult) ConfirmResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []shares.Warning{}
	}
	return ConfirmResponse{
		Archived:      FromArchivedRequest(r.Archived),
		Transactions:  FromTransactions(r.Transactions),
		LedgerEntries: FromLedgerEntries(r.LedgerEntries),
		Warnings:      warnings,
	}
}
