package request

import (
	"strings"

	"autoservice/internal/domain/entities"
)

// SendOTPRequest asks for a one-time code. Role is optional; when empty,
// workers are looked up before admins.
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Role        string `json:"role"`
}

func (r SendOTPRequest) ResolveRole() entities.Role {
	return normalizeRole(r.Role)
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Role        string `json:"role"`
	Code        string `json:"code" binding:"required"`
}

func (r VerifyOTPRequest) ResolveRole() entities.Role {
	return normalizeRole(r.Role)
}

func (r VerifyOTPRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

// normalizeRole keeps unknown values so the use case can reject them.
func normalizeRole(raw string) entities.Role {
	return entities.Role(strings.ToLower(strings.TrimSpace(raw)))
}
