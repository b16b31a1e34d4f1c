package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "autoservice/internal/adapter/http/dto/request"
	response "autoservice/internal/adapter/http/dto/response"
	"autoservice/internal/adapter/http/middleware"
	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/metrics"
	"autoservice/internal/usecase"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
	errInvalidFinancialPayload  = pkg.NewDomainErrorSimple("INVALID_FINANCIAL_INPUT", "Invalid financial record payload", http.StatusBadRequest)
	errInvalidDiagnosticPayload = pkg.NewDomainErrorSimple("INVALID_DIAGNOSTIC_INPUT", "Invalid diagnostic payload", http.StatusBadRequest)
	errRequestNotAssigned       = pkg.NewDomainErrorSimple("FORBIDDEN", "Service request is not assigned to you", http.StatusForbidden)
)

// ServiceRequestHandler handles the request lifecycle along with the
// per-request financial records and diagnostic card.
type ServiceRequestHandler struct {
	requests    usecase.IServiceRequestUseCase
	ledger      usecase.ILedgerUseCase
	diagnostics usecase.IDiagnosticUseCase
}

func NewServiceRequestHandler(requests usecase.IServiceRequestUseCase, ledger usecase.ILedgerUseCase, diagnostics usecase.IDiagnosticUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests, ledger: ledger, diagnostics: diagnostics}
}

// Create accepts the public customer form.
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.ServiceRequestForm
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.requests.Create(c.Request.Context(), payload.ToRequestForm())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(created.Status)).Inc()
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// List returns every live request to admins. Anyone else only sees the
// requests they are assigned to.
func (h *ServiceRequestHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	status := entities.RequestStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	identity, _ := middleware.IdentityFrom(c)

	if identity.IsAdmin() {
		requests, err := h.requests.List(ctx, status)
		if err != nil {
			appErr := mapRequestError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromServiceRequests(requests))
		return
	}

	if status != "" && !status.Valid() {
		appErr := mapRequestError(usecase.ErrInvalidStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	requests, err := h.requests.ListByWorker(ctx, identity.UserID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(filterByStatus(requests, status)))
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	details, err := h.requests.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	identity, _ := middleware.IdentityFrom(c)
	if !identity.IsAdmin() && !details.Request.HasWorker(identity.UserID) {
		c.JSON(errRequestNotAssigned.HTTPStatus, errRequestNotAssigned.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestDetails(details))
}

func (h *ServiceRequestHandler) Update(c *gin.Context) {
	var payload request.ServiceRequestForm
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.requests.Update(c.Request.Context(), c.Param("id"), payload.ToRequestForm())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.requests.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(updated.Status)).Inc()
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) AssignWorkers(c *gin.Context) {
	var payload request.AssignWorkersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	result, err := h.requests.AssignWorkers(c.Request.Context(), c.Param("id"), payload.ResolveWorkerIDs())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(result))
}

// Complete moves an open request to confirmation.
func (h *ServiceRequestHandler) Complete(c *gin.Context) {
	updated, err := h.requests.MarkComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(updated.Status)).Inc()
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

// Confirm settles a request awaiting confirmation and archives it.
func (h *ServiceRequestHandler) Confirm(c *gin.Context) {
	result, err := h.requests.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(entities.DispositionArchived)).Inc()
	c.JSON(http.StatusOK, response.FromConfirm(result))
}

func (h *ServiceRequestHandler) Cancel(c *gin.Context) {
	archived, err := h.requests.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(entities.RequestStatusCanceled)).Inc()
	c.JSON(http.StatusOK, response.FromArchivedRequest(archived))
}

// QuickCreate registers a finished job in one call: request, workers and
// records land together in confirmation.
func (h *ServiceRequestHandler) QuickCreate(c *gin.Context) {
	var payload request.QuickCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	details, err := h.requests.QuickCreate(c.Request.Context(), payload.ToRequestForm(), payload.ResolveWorkerIDs(), payload.ToRecordInputs())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.RequestTransitions.WithLabelValues(string(details.Request.Status)).Inc()
	c.JSON(http.StatusCreated, response.FromRequestDetails(details))
}

func (h *ServiceRequestHandler) ListFinancials(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}
	records, err := h.ledger.ListRequestRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecords(records))
}

func (h *ServiceRequestHandler) AddFinancial(c *gin.Context) {
	var payload request.FinancialRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancialPayload.HTTPStatus, errInvalidFinancialPayload.ToHTTPError())
		return
	}

	record, err := h.ledger.AddRequestRecord(c.Request.Context(), c.Param("id"), payload.ToRecordInput())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinancialRecord(record))
}

func (h *ServiceRequestHandler) GetDiagnostics(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}
	card, err := h.diagnostics.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiagnostic(card))
}

func (h *ServiceRequestHandler) SaveDiagnostics(c *gin.Context) {
	if !h.canAccess(c) {
		return
	}
	var payload request.DiagnosticRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiagnosticPayload.HTTPStatus, errInvalidDiagnosticPayload.ToHTTPError())
		return
	}

	card, err := h.diagnostics.Save(c.Request.Context(), c.Param("id"), payload.ResolveStatuses())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiagnostic(card))
}

// canAccess lets admins through and limits everyone else to the requests
// they are assigned to. It writes the error response itself.
func (h *ServiceRequestHandler) canAccess(c *gin.Context) bool {
	identity, _ := middleware.IdentityFrom(c)
	if identity.IsAdmin() {
		return true
	}
	r, err := h.requests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	if !r.HasWorker(identity.UserID) {
		c.JSON(errRequestNotAssigned.HTTPStatus, errRequestNotAssigned.ToHTTPError())
		return false
	}
	return true
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidRequestInput),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidWorkerID),
		errors.Is(err, usecase.ErrInvalidRecordType),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrUnknownDiagnosticItem),
		errors.Is(err, usecase.ErrInvalidItemStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStartInPast):
		return pkg.NewDomainErrorSimple("START_IN_PAST", "Start date is in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownWorker):
		return pkg.NewDomainErrorSimple("UNKNOWN_WORKER", "Assigned worker does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return pkg.NewDomainError("BATCH_TOO_LARGE", "Too many items for one operation", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTotalRateExceeded):
		return pkg.NewDomainErrorSimple("TOTAL_RATE_EXCEEDED", "Sum of worker rates exceeds 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoWorkersAssigned):
		return pkg.NewDomainErrorSimple("NO_WORKERS_ASSIGNED", "Request has no assigned workers", http.StatusConflict)
	case errors.Is(err, usecase.ErrAtomicWriteFailed):
		return pkg.NewDomainError("ATOMIC_WRITE_FAILED", "Nothing was written, retry the operation", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
