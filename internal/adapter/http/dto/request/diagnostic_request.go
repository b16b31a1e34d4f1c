package request

import (
	"strings"

	"autoservice/internal/domain/entities"
)

type DiagnosticItemRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// DiagnosticRequest lists item statuses to save. Items left out are saved as
// "Исправно".
type DiagnosticRequest struct {
	Items []DiagnosticItemRequest `json:"items" binding:"dive"`
}

// ResolveStatuses collapses the list into a map. A repeated name keeps the
// last status.
func (r DiagnosticRequest) ResolveStatuses() map[string]entities.ItemStatus {
	out := make(map[string]entities.ItemStatus, len(r.Items))
	for _, it := range r.Items {
		out[strings.TrimSpace(it.Name)] = entities.ItemStatus(strings.TrimSpace(it.Status))
	}
	return out
}
