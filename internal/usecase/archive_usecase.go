package usecase

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"
)

var (
	ErrArchivedRequestNotFound = errors.New("archived request not found")
	ErrInvalidDisposition      = errors.New("invalid disposition")
)

// IArchiveUseCase reads terminal requests. Snapshots are returned exactly as
// written at archival time.
type IArchiveUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ArchivedRequest, error)
	List(ctx context.Context, disposition entities.Disposition) ([]entities.ArchivedRequest, error)
}

type ArchiveUseCase struct {
	repo interfaces.IArchiveRepository
}

var _ IArchiveUseCase = (*ArchiveUseCase)(nil)

func NewArchiveUseCase(repo interfaces.IArchiveRepository) *ArchiveUseCase {
	return &ArchiveUseCase{repo: repo}
}

func (u *ArchiveUseCase) GetByID(ctx context.Context, id string) (entities.ArchivedRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ArchivedRequest{}, ErrInvalidRequestID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ArchivedRequest{}, err
	}
	if a.Request.ID == "" {
		return entities.ArchivedRequest{}, ErrArchivedRequestNotFound
	}
	return a, nil
}

func (u *ArchiveUseCase) List(ctx context.Context, disposition entities.Disposition) ([]entities.ArchivedRequest, error) {
	if disposition != "" && !disposition.Valid() {
		return nil, ErrInvalidDisposition
	}
	return u.repo.List(ctx, disposition)
}
