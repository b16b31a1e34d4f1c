package interfaces

import (
	"context"

	"autoservice/internal/domain/entities"
)

type IDiagnosticRepository interface {
	GetByRequestID(ctx context.Context, requestID string) (entities.Diagnostic, error)
	Save(ctx context.Context, d entities.Diagnostic) (entities.Diagnostic, error)
}
