package response

import (
	"time"

	"autoservice/internal/domain/entities"
)

// WorkerResponse hides the chat id; clients only need to know whether the
// worker can receive codes.
type WorkerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number"`
	Rate           int       `json:"rate"`
	TelegramLinked bool      `json:"telegram_linked"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromWorker(w entities.Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		PhoneNumber:    w.PhoneNumber,
		Rate:           w.Rate,
		TelegramLinked: w.ChatID != nil,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func FromWorkers(ws []entities.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWorker(w))
	}
	return out
}
