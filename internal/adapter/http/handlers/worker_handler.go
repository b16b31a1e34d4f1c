package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "autoservice/internal/adapter/http/dto/request"
	response "autoservice/internal/adapter/http/dto/response"
	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkerPayload = pkg.NewDomainErrorSimple("INVALID_WORKER_INPUT", "Invalid worker payload", http.StatusBadRequest)
	errInvalidLedgerPayload = pkg.NewDomainErrorSimple("INVALID_LEDGER_INPUT", "Invalid ledger entry payload", http.StatusBadRequest)
)

// WorkerHandler serves the worker registry together with each worker's
// assigned requests and personal ledger.
type WorkerHandler struct {
	workers  usecase.IWorkerUseCase
	requests usecase.IServiceRequestUseCase
	ledger   usecase.ILedgerUseCase
}

func NewWorkerHandler(workers usecase.IWorkerUseCase, requests usecase.IServiceRequestUseCase, ledger usecase.ILedgerUseCase) *WorkerHandler {
	return &WorkerHandler{workers: workers, requests: requests, ledger: ledger}
}

func (h *WorkerHandler) List(c *gin.Context) {
	workers, err := h.workers.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkers(workers))
}

func (h *WorkerHandler) Get(c *gin.Context) {
	worker, err := h.workers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(worker))
}

func (h *WorkerHandler) Create(c *gin.Context) {
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkerPayload.HTTPStatus, errInvalidWorkerPayload.ToHTTPError())
		return
	}

	worker, err := h.workers.Create(c.Request.Context(), payload.ToWorkerInput())
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorker(worker))
}

func (h *WorkerHandler) Update(c *gin.Context) {
	var payload request.WorkerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkerPayload.HTTPStatus, errInvalidWorkerPayload.ToHTTPError())
		return
	}

	worker, err := h.workers.Update(c.Request.Context(), c.Param("id"), payload.ToWorkerInput())
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(worker))
}

func (h *WorkerHandler) UpdateRate(c *gin.Context) {
	var payload request.RateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Rate == nil {
		c.JSON(errInvalidWorkerPayload.HTTPStatus, errInvalidWorkerPayload.ToHTTPError())
		return
	}

	worker, err := h.workers.UpdateRate(c.Request.Context(), c.Param("id"), *payload.Rate)
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(worker))
}

func (h *WorkerHandler) Delete(c *gin.Context) {
	if err := h.workers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRequests returns the live requests the worker is assigned to,
// optionally narrowed by ?status=.
func (h *WorkerHandler) ListRequests(c *gin.Context) {
	status := entities.RequestStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	if status != "" && !status.Valid() {
		appErr := mapRequestError(usecase.ErrInvalidStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	requests, err := h.requests.ListByWorker(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(filterByStatus(requests, status)))
}

func (h *WorkerHandler) GetLedger(c *gin.Context) {
	ctx := c.Request.Context()
	workerID := c.Param("id")

	entries, err := h.ledger.ListWorkerLedger(ctx, workerID)
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	balance, err := h.ledger.WorkerBalance(ctx, workerID)
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WorkerLedgerResponse{
		WorkerID: workerID,
		Entries:  response.FromLedgerEntries(entries),
		Balance:  response.FromBalance(balance),
	})
}

func (h *WorkerHandler) AddLedgerEntry(c *gin.Context) {
	var payload request.WorkerEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	entry, err := h.ledger.AddWorkerEntry(c.Request.Context(), c.Param("id"), payload.ToWorkerEntryInput())
	if err != nil {
		appErr := mapWorkerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLedgerEntry(entry))
}

func filterByStatus(requests []entities.ServiceRequest, status entities.RequestStatus) []entities.ServiceRequest {
	if status == "" {
		return requests
	}
	out := make([]entities.ServiceRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

func mapWorkerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkerID),
		errors.Is(err, usecase.ErrInvalidWorkerName),
		errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidRecordType),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkerPhoneConflict):
		return pkg.NewDomainErrorSimple("WORKER_PHONE_CONFLICT", "Phone number already registered to another worker", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return pkg.NewDomainErrorSimple("WORKER_NOT_FOUND", "Worker not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
