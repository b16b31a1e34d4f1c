package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"
)

var (
	ErrUnknownDiagnosticItem = errors.New("unknown diagnostic item")
	ErrInvalidItemStatus     = errors.New("invalid diagnostic item status")
)

type IDiagnosticUseCase interface {
	Get(ctx context.Context, requestID string) (entities.Diagnostic, error)
	Save(ctx context.Context, requestID string, statuses map[string]entities.ItemStatus) (entities.Diagnostic, error)
}

type DiagnosticUseCase struct {
	repo      interfaces.IDiagnosticRepository
	requests  interfaces.IServiceRequestRepository
	checklist []string
	now       func() time.Time
}

var _ IDiagnosticUseCase = (*DiagnosticUseCase)(nil)

// NewDiagnosticUseCase builds the use case over a fixed checklist. An empty
// checklist falls back to entities.DefaultChecklist.
func NewDiagnosticUseCase(repo interfaces.IDiagnosticRepository, requests interfaces.IServiceRequestRepository, checklist []string) *DiagnosticUseCase {
	if len(checklist) == 0 {
		checklist = entities.DefaultChecklist
	}
	return &DiagnosticUseCase{repo: repo, requests: requests, checklist: checklist, now: time.Now}
}

// Get returns the stored card, or a fresh all-OK card when none exists yet.
func (u *DiagnosticUseCase) Get(ctx context.Context, requestID string) (entities.Diagnostic, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Diagnostic{}, ErrInvalidRequestID
	}
	d, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Diagnostic{}, err
	}
	if d.RequestID == "" {
		return entities.NewChecklist(requestID, u.checklist), nil
	}
	return d, nil
}

// Save upserts the card for a live request. Items left out default to OK.
func (u *DiagnosticUseCase) Save(ctx context.Context, requestID string, statuses map[string]entities.ItemStatus) (entities.Diagnostic, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Diagnostic{}, ErrInvalidRequestID
	}

	known := make(map[string]struct{}, len(u.checklist))
	for _, name := range u.checklist {
		known[name] = struct{}{}
	}
	for name, status := range statuses {
		if _, ok := known[name]; !ok {
			return entities.Diagnostic{}, fmt.Errorf("%w: %s", ErrUnknownDiagnosticItem, name)
		}
		if !status.Valid() {
			return entities.Diagnostic{}, fmt.Errorf("%w: %s", ErrInvalidItemStatus, status)
		}
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.Diagnostic{}, err
	}
	if r.ID == "" {
		return entities.Diagnostic{}, ErrRequestNotFound
	}

	existing, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Diagnostic{}, err
	}

	now := u.now().UTC()
	d := entities.NewChecklist(requestID, u.checklist)
	for i := range d.Items {
		if s, ok := statuses[d.Items[i].Name]; ok {
			d.Items[i].Status = s
		}
	}
	d.CreatedAt = now
	if existing.RequestID != "" {
		d.CreatedAt = existing.CreatedAt
	}
	d.UpdatedAt = now

	return u.repo.Save(ctx, d)
}
