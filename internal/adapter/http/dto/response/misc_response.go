package response

import (
	"time"

	"autoservice/internal/domain/entities"
)

type DiagnosticResponse struct {
	RequestID string                    `json:"request_id"`
	Items     []entities.DiagnosticItem `json:"items"`
	CreatedAt *time.Time                `json:"created_at,omitempty"`
	UpdatedAt *time.Time                `json:"updated_at,omitempty"`
}

// FromDiagnostic omits timestamps for a card that was never saved.
func FromDiagnostic(d entities.Diagnostic) DiagnosticResponse {
	res := DiagnosticResponse{RequestID: d.RequestID, Items: d.Items}
	if res.Items == nil {
		res.Items = []entities.DiagnosticItem{}
	}
	if !d.CreatedAt.IsZero() {
		created := d.CreatedAt
		res.CreatedAt = &created
	}
	if !d.UpdatedAt.IsZero() {
		updated := d.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{Token: token, TokenType: "Bearer"}
}

type MessageResponse struct {
	Message string `json:"message"`
}
