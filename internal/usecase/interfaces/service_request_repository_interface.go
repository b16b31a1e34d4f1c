package interfaces

import (
	"context"

	"autoservice/internal/domain/entities"
)

// IServiceRequestRepository abstracts persistence for live service requests.
//
// Update methods return a zero-value request when the id is not present.
// Archival and cancellation never go through this interface; they are
// committed with IAtomicWriter.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.ServiceRequest, error)
	UpdateDetails(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
	UpdateAssignedWorkers(ctx context.Context, id string, workerIDs []string) (entities.ServiceRequest, error)
}

// IArchiveRepository reads terminal request copies. Writes happen only
// through IAtomicWriter.
type IArchiveRepository interface {
	GetByID(ctx context.Context, id string) (entities.ArchivedRequest, error)
	List(ctx context.Context, disposition entities.Disposition) ([]entities.ArchivedRequest, error)
}
