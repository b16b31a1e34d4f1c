package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrWorkerPhoneConflict = errors.New("phone number already registered to another worker")
	ErrInvalidWorkerID     = errors.New("invalid worker id")
	ErrInvalidWorkerName   = errors.New("invalid worker name")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidRate         = errors.New("rate must be between 0 and 100")
)

// WorkerInput carries the editable worker fields. A nil Rate means "default"
// on create and "unchanged" on update.
type WorkerInput struct {
	Name        string
	PhoneNumber string
	Rate        *int
}

// IWorkerUseCase manages the worker registry.

type IWorkerUseCase interface {
	Create(ctx context.Context, in WorkerInput) (entities.Worker, error)
	Update(ctx context.Context, id string, in WorkerInput) (entities.Worker, error)
	UpdateRate(ctx context.Context, id string, rate int) (entities.Worker, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Worker, error)
	List(ctx context.Context) ([]entities.Worker, error)
}

type WorkerUseCase struct {
	repo interfaces.IWorkerRepository
	now  func() time.Time
}

var _ IWorkerUseCase = (*WorkerUseCase)(nil)

func NewWorkerUseCase(repo interfaces.IWorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo, now: time.Now}
}

func (u *WorkerUseCase) Create(ctx context.Context, in WorkerInput) (entities.Worker, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Worker{}, ErrInvalidWorkerName
	}
	phone := entities.NormalizePhone(in.PhoneNumber)
	if !entities.ValidPhone(phone) {
		return entities.Worker{}, ErrInvalidPhone
	}
	rate := entities.DefaultWorkerRate
	if in.Rate != nil {
		rate = *in.Rate
	}
	if !entities.ValidRate(rate) {
		return entities.Worker{}, ErrInvalidRate
	}

	if err := u.ensurePhoneFree(ctx, phone, ""); err != nil {
		return entities.Worker{}, err
	}

	now := u.now().UTC()
	w := entities.Worker{
		ID:          uuid.NewString(),
		Name:        name,
		PhoneNumber: phone,
		Rate:        rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.Worker{}, err
	}
	log.Infof("[worker][usecase] created worker_id=%s rate=%d", created.ID, created.Rate)
	return created, nil
}

func (u *WorkerUseCase) Update(ctx context.Context, id string, in WorkerInput) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Worker{}, ErrInvalidWorkerName
	}
	phone := entities.NormalizePhone(in.PhoneNumber)
	if !entities.ValidPhone(phone) {
		return entities.Worker{}, ErrInvalidPhone
	}
	if in.Rate != nil && !entities.ValidRate(*in.Rate) {
		return entities.Worker{}, ErrInvalidRate
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if current.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	if phone != current.PhoneNumber {
		if err := u.ensurePhoneFree(ctx, phone, id); err != nil {
			return entities.Worker{}, err
		}
	}

	current.Name = name
	current.PhoneNumber = phone
	if in.Rate != nil {
		current.Rate = *in.Rate
	}
	current.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Worker{}, err
	}
	if updated.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return updated, nil
}

// UpdateRate changes a worker's commission rate. Archived snapshots are not
// touched.
func (u *WorkerUseCase) UpdateRate(ctx context.Context, id string, rate int) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	if !entities.ValidRate(rate) {
		return entities.Worker{}, ErrInvalidRate
	}

	updated, err := u.repo.UpdateRate(ctx, id, rate)
	if err != nil {
		return entities.Worker{}, err
	}
	if updated.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	log.Infof("[worker][usecase] rate updated worker_id=%s rate=%d", id, rate)
	return updated, nil
}

// Delete removes the worker. Ledger and archive entries keep the dangling id.
func (u *WorkerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkerID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWorkerNotFound
	}
	log.Infof("[worker][usecase] deleted worker_id=%s", id)
	return nil
}

func (u *WorkerUseCase) GetByID(ctx context.Context, id string) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if w.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return w, nil
}

func (u *WorkerUseCase) List(ctx context.Context) ([]entities.Worker, error) {
	return u.repo.List(ctx)
}

func (u *WorkerUseCase) ensurePhoneFree(ctx context.Context, phone, selfID string) error {
	existing, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return ErrWorkerPhoneConflict
	}
	return nil
}
