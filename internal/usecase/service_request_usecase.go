package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/domain/shares"
	"autoservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrInvalidRequestID    = errors.New("invalid service request id")
	ErrInvalidRequestInput = errors.New("invalid service request")
	ErrStartInPast         = errors.New("start date is in the past")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrNoWorkersAssigned   = errors.New("no workers assigned")
	ErrUnknownWorker       = errors.New("assigned worker does not exist")
	ErrTotalRateExceeded   = shares.ErrTotalRateExceeded
	ErrAtomicWriteFailed   = errors.New("atomic write failed")
	ErrBatchTooLarge       = errors.New("too many writes for one atomic operation")
)

const minCarYear = 1900

// RequestForm carries the customer-facing fields of a service request.
type RequestForm struct {
	CustomerName  string
	Phone         string
	CarModel      string
	CarYear       int
	Issue         string
	StartDateTime time.Time
	EndDateTime   *time.Time
	Difficulty    int
	Urgency       int
}

// RecordInput is an income/expense line supplied by staff.
type RecordInput struct {
	Type        entities.EntryType
	Amount      string
	Description string
}

// RequestDetails is a request with everything needed to show its money side.
// Preview uses the residual policy and is never persisted.
type RequestDetails struct {
	Request entities.ServiceRequest
	Workers []entities.Worker
	Records []entities.FinancialRecord
	Preview shares.Result
}

type AssignmentResult struct {
	Request entities.ServiceRequest
	Preview shares.Result
}

// ConfirmResult lists everything committed by a confirmation.
type ConfirmResult struct {
	Archived      entities.ArchivedRequest
	Transactions  []entities.CompanyTransaction
	LedgerEntries []entities.WorkerLedgerEntry
	Warnings      []shares.Warning
}

// IServiceRequestUseCase drives a service request from creation to archival.
//
// Transitions:
//   - (none) -> new: Create
//   - new/pending/completed -> new/pending/confirmation/completed: UpdateStatus
//   - new/pending/completed -> confirmation: MarkComplete
//   - (none) -> confirmation with snapshot: QuickCreate
//   - confirmation -> archived: Confirm
//   - new/pending/completed -> canceled: Cancel

type IServiceRequestUseCase interface {
	Create(ctx context.Context, form RequestForm) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.ServiceRequest, error)
	Details(ctx context.Context, id string) (RequestDetails, error)
	Update(ctx context.Context, id string, form RequestForm) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
	MarkComplete(ctx context.Context, id string) (entities.ServiceRequest, error)
	AssignWorkers(ctx context.Context, id string, workerIDs []string) (AssignmentResult, error)
	QuickCreate(ctx context.Context, form RequestForm, workerIDs []string, records []RecordInput) (RequestDetails, error)
	Confirm(ctx context.Context, id string) (ConfirmResult, error)
	Cancel(ctx context.Context, id string) (entities.ArchivedRequest, error)
}

type ServiceRequestUseCase struct {
	requests   interfaces.IServiceRequestRepository
	workers    interfaces.IWorkerRepository
	financials interfaces.IFinancialRepository
	writer     interfaces.IAtomicWriter
	now        func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	requests interfaces.IServiceRequestRepository,
	workers interfaces.IWorkerRepository,
	financials interfaces.IFinancialRepository,
	writer interfaces.IAtomicWriter,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requests:   requests,
		workers:    workers,
		financials: financials,
		writer:     writer,
		now:        time.Now,
	}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, form RequestForm) (entities.ServiceRequest, error) {
	now := u.now().UTC()
	r, err := u.buildRequest(form, now)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.StartDateTime.Before(startOfDay(now)) {
		return entities.ServiceRequest{}, ErrStartInPast
	}
	r.Status = entities.RequestStatusNew

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Infof("[request][usecase] created request_id=%s", created.ID)
	return created, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return u.load(ctx, id)
}

func (u *ServiceRequestUseCase) List(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.requests.List(ctx, status)
}

func (u *ServiceRequestUseCase) ListByWorker(ctx context.Context, workerID string) ([]entities.ServiceRequest, error) {
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, ErrInvalidWorkerID
	}
	return u.requests.ListByWorker(ctx, workerID)
}

// Details loads the request, its assigned workers and records, and computes a
// residual preview. Workers that no longer exist and rate totals above 100
// are reported as warnings instead of failing the read.
func (u *ServiceRequestUseCase) Details(ctx context.Context, id string) (RequestDetails, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return RequestDetails{}, err
	}

	var missing []shares.Warning
	workers := make([]entities.Worker, 0, len(r.AssignedWorkers))
	for _, wid := range r.AssignedWorkers {
		w, err := u.workers.GetByID(ctx, wid)
		if err != nil {
			return RequestDetails{}, err
		}
		if w.ID == "" {
			missing = append(missing, shares.Warning{RecordID: wid, Reason: "assigned worker no longer exists"})
			continue
		}
		workers = append(workers, w)
	}

	records, err := u.financials.ListByRequest(ctx, r.ID)
	if err != nil {
		return RequestDetails{}, err
	}

	preview, err := shares.ComputeResidual(records, participants(workers))
	if errors.Is(err, shares.ErrTotalRateExceeded) {
		preview, _ = shares.ComputeResidual(records, nil)
		preview.Warnings = append(preview.Warnings, shares.Warning{Reason: err.Error()})
	} else if err != nil {
		return RequestDetails{}, err
	}
	preview.Warnings = append(preview.Warnings, missing...)
	logWarnings(r.ID, preview.Warnings)

	return RequestDetails{Request: r, Workers: workers, Records: records, Preview: preview}, nil
}

// Update edits customer fields of an open request.
func (u *ServiceRequestUseCase) Update(ctx context.Context, id string, form RequestForm) (entities.ServiceRequest, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !current.Status.Open() {
		return entities.ServiceRequest{}, ErrInvalidTransition
	}

	edited, err := u.buildRequest(form, u.now().UTC())
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	edited.ID = current.ID
	edited.Status = current.Status
	edited.AssignedWorkers = current.AssignedWorkers
	edited.Shares = current.Shares
	edited.CreatedAt = current.CreatedAt

	updated, err := u.requests.UpdateDetails(ctx, edited)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

// UpdateStatus is the plain status edit. Cancellation is routed through
// Cancel so that a canceled request never stays live.
func (u *ServiceRequestUseCase) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	if !status.Valid() {
		return entities.ServiceRequest{}, ErrInvalidStatus
	}
	if status == entities.RequestStatusCanceled {
		archived, err := u.Cancel(ctx, id)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		return archived.Request, nil
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !current.Status.Open() {
		return entities.ServiceRequest{}, ErrInvalidTransition
	}
	return u.setStatus(ctx, current.ID, status)
}

func (u *ServiceRequestUseCase) MarkComplete(ctx context.Context, id string) (entities.ServiceRequest, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !current.Status.Open() {
		return entities.ServiceRequest{}, ErrInvalidTransition
	}
	return u.setStatus(ctx, current.ID, entities.RequestStatusConfirmation)
}

// AssignWorkers replaces the assigned worker set of a live request and
// returns a residual preview. No snapshot is written.
func (u *ServiceRequestUseCase) AssignWorkers(ctx context.Context, id string, workerIDs []string) (AssignmentResult, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return AssignmentResult{}, err
	}

	ids := uniqueIDs(workerIDs)
	workers, err := u.loadWorkers(ctx, ids)
	if err != nil {
		return AssignmentResult{}, err
	}
	records, err := u.financials.ListByRequest(ctx, current.ID)
	if err != nil {
		return AssignmentResult{}, err
	}
	preview, err := shares.ComputeResidual(records, participants(workers))
	if err != nil {
		return AssignmentResult{}, err
	}

	updated, err := u.requests.UpdateAssignedWorkers(ctx, current.ID, ids)
	if err != nil {
		return AssignmentResult{}, err
	}
	if updated.ID == "" {
		return AssignmentResult{}, ErrRequestNotFound
	}
	logWarnings(updated.ID, preview.Warnings)
	log.Infof("[request][usecase] workers assigned request_id=%s count=%d", updated.ID, len(ids))
	return AssignmentResult{Request: updated, Preview: preview}, nil
}

func (u *ServiceRequestUseCase) setStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	updated, err := u.requests.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	log.Infof("[request][usecase] status updated request_id=%s status=%s", id, status)
	return updated, nil
}

// load is a point-in-time read of a live request.
func (u *ServiceRequestUseCase) load(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ServiceRequestUseCase) loadWorkers(ctx context.Context, ids []string) ([]entities.Worker, error) {
	workers := make([]entities.Worker, 0, len(ids))
	for _, id := range ids {
		w, err := u.workers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if w.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorker, id)
		}
		workers = append(workers, w)
	}
	return workers, nil
}

func (u *ServiceRequestUseCase) buildRequest(form RequestForm, now time.Time) (entities.ServiceRequest, error) {
	r := entities.ServiceRequest{
		ID:            uuid.NewString(),
		CustomerName:  strings.TrimSpace(form.CustomerName),
		Phone:         strings.TrimSpace(form.Phone),
		CarModel:      strings.TrimSpace(form.CarModel),
		CarYear:       form.CarYear,
		Issue:         strings.TrimSpace(form.Issue),
		StartDateTime: form.StartDateTime.UTC(),
		Difficulty:    form.Difficulty,
		Urgency:       form.Urgency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	switch {
	case r.CustomerName == "":
		return r, fmt.Errorf("%w: customer name is required", ErrInvalidRequestInput)
	case r.CarModel == "":
		return r, fmt.Errorf("%w: car model is required", ErrInvalidRequestInput)
	case r.CarYear < minCarYear || r.CarYear > now.Year()+1:
		return r, fmt.Errorf("%w: car year is out of range", ErrInvalidRequestInput)
	case r.Issue == "":
		return r, fmt.Errorf("%w: issue is required", ErrInvalidRequestInput)
	case form.StartDateTime.IsZero():
		return r, fmt.Errorf("%w: start date is required", ErrInvalidRequestInput)
	}

	if r.Phone == "" {
		r.Phone = entities.DefaultCustomerPhone
	}
	if form.EndDateTime != nil {
		r.EndDateTime = form.EndDateTime.UTC()
	} else {
		r.EndDateTime = r.StartDateTime.Add(entities.DefaultRequestDuration)
	}
	if !r.EndDateTime.After(r.StartDateTime) {
		return r, fmt.Errorf("%w: end date must be after start date", ErrInvalidRequestInput)
	}

	if r.Difficulty == 0 {
		r.Difficulty = entities.MinLevel
	}
	if r.Urgency == 0 {
		r.Urgency = entities.MinLevel
	}
	if !validLevel(r.Difficulty) || !validLevel(r.Urgency) {
		return r, fmt.Errorf("%w: difficulty and urgency must be between 1 and 5", ErrInvalidRequestInput)
	}
	return r, nil
}

func validLevel(v int) bool {
	return v >= entities.MinLevel && v <= entities.MaxLevel
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func participants(workers []entities.Worker) []shares.Participant {
	out := make([]shares.Participant, 0, len(workers))
	for _, w := range workers {
		out = append(out, shares.ParticipantFromWorker(w))
	}
	return out
}

func logWarnings(requestID string, warnings []shares.Warning) {
	for _, w := range warnings {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"record_id":  w.RecordID,
		}).Warnf("[request][usecase] data quality: %s", w.Reason)
	}
}
