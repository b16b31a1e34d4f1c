package entities

import "time"

const (
	MinWorkerRate     = 0
	MaxWorkerRate     = 100
	DefaultWorkerRate = 50
)

// Worker is a shop employee who can be assigned to service requests.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone_number-index): phone_number
//
// Rate is the commission percentage (0..100). Changing it only affects
// computations made after the change; confirmed snapshots keep the old value.

type Worker struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Rate        int       `json:"rate"`
	ChatID      *int64    `json:"chat_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidRate(rate int) bool {
	return rate >= MinWorkerRate && rate <= MaxWorkerRate
}
