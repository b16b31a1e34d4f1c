package entities

import "time"

type Disposition string

const (
	DispositionArchived Disposition = "archived"
	DispositionCanceled Disposition = "canceled"
)

func (d Disposition) Valid() bool {
	return d == DispositionArchived || d == DispositionCanceled
}

// ArchivedRequest is a terminal copy of a service request. It keeps the id
// of the live request it replaced.
//
// Storage model (DynamoDB):
//   - PK: id
type ArchivedRequest struct {
	Request     ServiceRequest `json:"request"`
	Disposition Disposition    `json:"disposition"`
	ArchivedAt  time.Time      `json:"archived_at"`
	Financials  *Shares        `json:"financials,omitempty"`
}
