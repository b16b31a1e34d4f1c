package entities

import "strings"

// Role is the access role carried by an issued credential.
type Role string

const (
	RoleNone   Role = ""
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// ParseRole normalizes a raw role string. Unknown values map to RoleNone.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleWorker:
		return RoleWorker
	default:
		return RoleNone
	}
}

// Admin is a staff account with elevated access. Admins are provisioned
// outside this system; only the chat link is written here.
type Admin struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Role        Role   `json:"role"`
	ChatID      *int64 `json:"chat_id,omitempty"`
}

// UserRecord is the result of a phone lookup across workers and admins.
type UserRecord struct {
	ID          string
	PhoneNumber string
	Role        Role
	ChatID      *int64
}

func (u UserRecord) Found() bool {
	return u.ID != ""
}

func (u UserRecord) HasChat() bool {
	return u.ChatID != nil
}
