package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "autoservice/internal/adapter/http/dto/response"
	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	usecase usecase.IArchiveUseCase
}

func NewArchiveHandler(uc usecase.IArchiveUseCase) *ArchiveHandler {
	return &ArchiveHandler{usecase: uc}
}

func (h *ArchiveHandler) List(c *gin.Context) {
	disposition := entities.Disposition(strings.ToLower(strings.TrimSpace(c.Query("disposition"))))

	archived, err := h.usecase.List(c.Request.Context(), disposition)
	if err != nil {
		appErr := mapArchiveError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArchivedRequests(archived))
}

func (h *ArchiveHandler) Get(c *gin.Context) {
	archived, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapArchiveError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArchivedRequest(archived))
}

func mapArchiveError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDisposition), errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArchivedRequestNotFound):
		return pkg.NewDomainErrorSimple("ARCHIVED_REQUEST_NOT_FOUND", "Archived request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
