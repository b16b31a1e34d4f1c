package interfaces

import (
	"context"

	"autoservice/internal/domain/entities"
)

// IWorkerRepository abstracts persistence for the worker registry.
//
// Lookups return a zero-value Worker (empty ID) when nothing matches.

type IWorkerRepository interface {
	Create(ctx context.Context, w entities.Worker) (entities.Worker, error)
	GetByID(ctx context.Context, id string) (entities.Worker, error)
	GetByPhone(ctx context.Context, phone string) (entities.Worker, error)
	List(ctx context.Context) ([]entities.Worker, error)
	Update(ctx context.Context, w entities.Worker) (entities.Worker, error)
	UpdateRate(ctx context.Context, id string, rate int) (entities.Worker, error)
	SetChatID(ctx context.Context, id string, chatID int64) error
	Delete(ctx context.Context, id string) (bool, error)
}

// IAdminRepository reads administrator accounts. Admins are provisioned
// elsewhere; only the chat link is written from here.
type IAdminRepository interface {
	GetByPhone(ctx context.Context, phone string) (entities.Admin, error)
	SetChatID(ctx context.Context, id string, chatID int64) error
}
