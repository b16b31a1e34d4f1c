package request

import (
	"autoservice/internal/usecase"
)

type WorkerRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Rate        *int   `json:"rate"`
}

func (r WorkerRequest) ToWorkerInput() usecase.WorkerInput {
	return usecase.WorkerInput{Name: r.Name, PhoneNumber: r.PhoneNumber, Rate: r.Rate}
}

type RateRequest struct {
	Rate *int `json:"rate" binding:"required"`
}
