package interfaces

import (
	"context"
	"errors"

	"autoservice/internal/domain/entities"
)

// MaxAtomicOperations is the most operations one AtomicWrite accepts.
const MaxAtomicOperations = 100

var (
	// ErrConditionFailed is returned by AtomicWrite when a guarded operation's
	// precondition did not hold. Nothing was written.
	ErrConditionFailed = errors.New("atomic write condition failed")
	// ErrTooManyOperations is returned for batches above MaxAtomicOperations.
	// Retrying the same batch cannot succeed.
	ErrTooManyOperations = errors.New("too many operations for one atomic write")
)

// IAtomicWriter commits a set of writes as one all-or-nothing unit.
type IAtomicWriter interface {
	AtomicWrite(ctx context.Context, ops []WriteOperation) error
}

// WriteOperation is one element of an atomic batch. The concrete types below
// are the only implementations.
type WriteOperation interface {
	writeOperation()
}

// CheckServiceRequestExists writes nothing. It fails the batch unless the
// live request is still present.
type CheckServiceRequestExists struct {
	ID string
}

type PutServiceRequest struct {
	Request entities.ServiceRequest
}

// DeleteServiceRequest removes a live request. The delete fails the batch
// unless the request exists with ExpectedStatus.
type DeleteServiceRequest struct {
	ID             string
	ExpectedStatus entities.RequestStatus
}

// PutArchivedRequest fails the batch if an archive entry with the same id
// already exists.
type PutArchivedRequest struct {
	Archived entities.ArchivedRequest
}

type PutFinancialRecord struct {
	Record entities.FinancialRecord
}

type PutCompanyTransaction struct {
	Transaction entities.CompanyTransaction
}

type PutWorkerLedgerEntry struct {
	Entry entities.WorkerLedgerEntry
}

func (CheckServiceRequestExists) writeOperation() {}
func (PutServiceRequest) writeOperation()         {}
func (DeleteServiceRequest) writeOperation()      {}
func (PutArchivedRequest) writeOperation()        {}
func (PutFinancialRecord) writeOperation()        {}
func (PutCompanyTransaction) writeOperation()     {}
func (PutWorkerLedgerEntry) writeOperation()      {}
