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
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidRecordType = errors.New("record type must be income or expense")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
)

const (
	ledgerCategoryRequest = "request"
	confirmIncomeComment  = "Доход по заявке %s"
	confirmPayoutComment  = "Выплата по заявке %s"
)

// QuickCreate records an already finished job in one step: the request is
// created in confirmation with a residual snapshot, together with its
// financial records, in a single atomic batch.
func (u *ServiceRequestUseCase) QuickCreate(ctx context.Context, form RequestForm, workerIDs []string, inputs []RecordInput) (RequestDetails, error) {
	now := u.now().UTC()
	r, err := u.buildRequest(form, now)
	if err != nil {
		return RequestDetails{}, err
	}

	ids := uniqueIDs(workerIDs)
	if len(ids) == 0 {
		return RequestDetails{}, ErrNoWorkersAssigned
	}
	if len(inputs)+1 > interfaces.MaxAtomicOperations {
		return RequestDetails{}, fmt.Errorf("%w: at most %d financial records", ErrBatchTooLarge, interfaces.MaxAtomicOperations-1)
	}
	workers, err := u.loadWorkers(ctx, ids)
	if err != nil {
		return RequestDetails{}, err
	}

	records := make([]entities.FinancialRecord, 0, len(inputs))
	for _, in := range inputs {
		rec, err := newFinancialRecord(r.ID, in, now)
		if err != nil {
			return RequestDetails{}, err
		}
		records = append(records, rec)
	}

	preview, err := shares.ComputeResidual(records, participants(workers))
	if err != nil {
		return RequestDetails{}, err
	}

	r.Status = entities.RequestStatusConfirmation
	r.AssignedWorkers = ids
	snapshot := preview.Shares
	r.Shares = &snapshot

	ops := make([]interfaces.WriteOperation, 0, len(records)+1)
	ops = append(ops, interfaces.PutServiceRequest{Request: r})
	for _, rec := range records {
		ops = append(ops, interfaces.PutFinancialRecord{Record: rec})
	}
	if err := u.writer.AtomicWrite(ctx, ops); err != nil {
		log.Errorf("[request][usecase] quick create batch failed request_id=%s err=%v", r.ID, err)
		return RequestDetails{}, batchError(err)
	}

	log.Infof("[request][usecase] quick create request_id=%s workers=%d records=%d", r.ID, len(ids), len(records))
	return RequestDetails{Request: r, Workers: workers, Records: records, Preview: preview}, nil
}

// Confirm settles a request in confirmation and moves it to the archive.
//
// The company books the full net income, each worker's payout becomes a
// company expense mirrored as worker income, the archive copy carries the
// frozen snapshot and the live request is deleted. All of it is one atomic
// batch; on failure nothing is written and the request stays as it was.
func (u *ServiceRequestUseCase) Confirm(ctx context.Context, id string) (ConfirmResult, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return ConfirmResult{}, err
	}
	if r.Status != entities.RequestStatusConfirmation {
		return ConfirmResult{}, ErrInvalidTransition
	}
	if len(r.AssignedWorkers) == 0 {
		return ConfirmResult{}, ErrNoWorkersAssigned
	}

	workers, err := u.loadWorkers(ctx, r.AssignedWorkers)
	if err != nil {
		return ConfirmResult{}, err
	}
	records, err := u.financials.ListByRequest(ctx, r.ID)
	if err != nil {
		return ConfirmResult{}, err
	}

	payout := shares.ComputePayout(records, participants(workers))
	logWarnings(r.ID, payout.Warnings)

	now := u.now().UTC()
	res := ConfirmResult{Warnings: payout.Warnings}
	var ops []interfaces.WriteOperation

	if payout.Shares.CompanyShare.IsPositive() {
		txn := entities.CompanyTransaction{
			ID:        uuid.NewString(),
			Type:      entities.EntryIncome,
			Amount:    payout.Shares.CompanyShare,
			Category:  entities.LabelCategory(entities.LabelCompany),
			Comment:   fmt.Sprintf(confirmIncomeComment, r.ID),
			RequestID: r.ID,
			Date:      now,
			Auto:      true,
		}
		res.Transactions = append(res.Transactions, txn)
		ops = append(ops, interfaces.PutCompanyTransaction{Transaction: txn})
	}

	for _, ws := range payout.Shares.WorkerShares {
		if !ws.Share.IsPositive() {
			continue
		}
		txn := entities.CompanyTransaction{
			ID:        uuid.NewString(),
			Type:      entities.EntryExpense,
			Amount:    ws.Share,
			Category:  entities.WorkerCategory(ws.WorkerID),
			Comment:   fmt.Sprintf(confirmPayoutComment, r.ID),
			RequestID: r.ID,
			Date:      now,
			Auto:      true,
		}
		entry := entities.WorkerLedgerEntry{
			ID:              uuid.NewString(),
			WorkerID:        ws.WorkerID,
			Type:            txn.Type.Invert(),
			Amount:          ws.Share,
			Description:     fmt.Sprintf(confirmPayoutComment, r.ID),
			Category:        ledgerCategoryRequest,
			Date:            now,
			Auto:            true,
			SourceRequestID: r.ID,
		}
		res.Transactions = append(res.Transactions, txn)
		res.LedgerEntries = append(res.LedgerEntries, entry)
		ops = append(ops,
			interfaces.PutCompanyTransaction{Transaction: txn},
			interfaces.PutWorkerLedgerEntry{Entry: entry},
		)
	}

	snapshot := payout.Shares
	res.Archived = entities.ArchivedRequest{
		Request:     r,
		Disposition: entities.DispositionArchived,
		ArchivedAt:  now,
		Financials:  &snapshot,
	}
	ops = append(ops,
		interfaces.PutArchivedRequest{Archived: res.Archived},
		interfaces.DeleteServiceRequest{ID: r.ID, ExpectedStatus: entities.RequestStatusConfirmation},
	)

	if err := u.commit(ctx, r.ID, ops); err != nil {
		return ConfirmResult{}, err
	}
	log.Infof("[request][usecase] confirmed request_id=%s company_share=%s workers=%d",
		r.ID, payout.Shares.CompanyShare.String(), len(payout.Shares.WorkerShares))
	return res, nil
}

// Cancel moves an open request to the archive with the canceled disposition.
// No shares are computed.
func (u *ServiceRequestUseCase) Cancel(ctx context.Context, id string) (entities.ArchivedRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.ArchivedRequest{}, err
	}
	if !r.Status.Open() {
		return entities.ArchivedRequest{}, ErrInvalidTransition
	}

	expected := r.Status
	r.Status = entities.RequestStatusCanceled
	archived := entities.ArchivedRequest{
		Request:     r,
		Disposition: entities.DispositionCanceled,
		ArchivedAt:  u.now().UTC(),
	}
	ops := []interfaces.WriteOperation{
		interfaces.PutArchivedRequest{Archived: archived},
		interfaces.DeleteServiceRequest{ID: r.ID, ExpectedStatus: expected},
	}
	if err := u.commit(ctx, r.ID, ops); err != nil {
		return entities.ArchivedRequest{}, err
	}
	log.Infof("[request][usecase] canceled request_id=%s", r.ID)
	return archived, nil
}

// commit runs an archival batch. A failed precondition means the request
// moved under us: gone is reported as not found, anything else as an
// invalid transition.
func (u *ServiceRequestUseCase) commit(ctx context.Context, id string, ops []interfaces.WriteOperation) error {
	err := u.writer.AtomicWrite(ctx, ops)
	if err == nil {
		return nil
	}
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Warnf("[request][usecase] archival precondition failed request_id=%s", id)
		current, getErr := u.requests.GetByID(ctx, id)
		if getErr != nil {
			return getErr
		}
		if current.ID == "" {
			return ErrRequestNotFound
		}
		return ErrInvalidTransition
	}
	log.Errorf("[request][usecase] archival batch failed request_id=%s err=%v", id, err)
	return batchError(err)
}

// batchError classifies a failed atomic write: oversized batches are
// rejected as invalid input, everything else is retryable.
func batchError(err error) error {
	if errors.Is(err, interfaces.ErrTooManyOperations) {
		return fmt.Errorf("%w: %v", ErrBatchTooLarge, err)
	}
	return fmt.Errorf("%w: %v", ErrAtomicWriteFailed, err)
}

func newFinancialRecord(requestID string, in RecordInput, now time.Time) (entities.FinancialRecord, error) {
	if !in.Type.Valid() {
		return entities.FinancialRecord{}, ErrInvalidRecordType
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	return entities.FinancialRecord{
		ID:          uuid.NewString(),
		RequestID:   requestID,
		Type:        in.Type,
		Amount:      decimal.NewNullDecimal(amount),
		RawAmount:   amount.String(),
		Description: strings.TrimSpace(in.Description),
		Date:        now,
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
