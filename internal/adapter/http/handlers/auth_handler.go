package handlers

import (
	"errors"
	"net/http"

	request "autoservice/internal/adapter/http/dto/request"
	response "autoservice/internal/adapter/http/dto/response"
	"autoservice/internal/infrastructure/metrics"
	"autoservice/internal/usecase"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOTPPayload = pkg.NewDomainErrorSimple("INVALID_OTP_INPUT", "Invalid one-time code payload", http.StatusBadRequest)
)

// AuthHandler issues one-time codes over Telegram and exchanges them for
// bearer tokens.
type AuthHandler struct {
	usecase usecase.IOTPUseCase
}

func NewAuthHandler(uc usecase.IOTPUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SendOTP delivers a code to the Telegram chat linked to the phone number.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var payload request.SendOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOTPPayload.HTTPStatus, errInvalidOTPPayload.ToHTTPError())
		return
	}

	err := h.usecase.SendCode(c.Request.Context(), payload.PhoneNumber, payload.ResolveRole())
	metrics.OTPCodes.WithLabelValues("send", metrics.Result(err)).Inc()
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "code sent"})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var payload request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOTPPayload.HTTPStatus, errInvalidOTPPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.VerifyCode(c.Request.Context(), payload.PhoneNumber, payload.ResolveRole(), payload.ResolveCode())
	metrics.OTPCodes.WithLabelValues("verify", metrics.Result(err)).Inc()
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewTokenResponse(token))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "No user registered with this phone number", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChatNotLinked):
		return pkg.NewDomainErrorSimple("CHAT_NOT_LINKED", "Telegram chat is not linked, send /start to the bot first", http.StatusConflict)
	case errors.Is(err, usecase.ErrCodeNotFound), errors.Is(err, usecase.ErrInvalidCode):
		return pkg.NewDomainErrorSimple("INVALID_CODE", "Invalid or expired code", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCodeDeliveryFailed):
		return pkg.NewDomainError("CODE_DELIVERY_FAILED", "Could not deliver the code", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
