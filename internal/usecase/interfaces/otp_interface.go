package interfaces

import (
	"context"

	"autoservice/internal/domain/entities"
)

// CodeKey identifies a pending one-time code.
type CodeKey struct {
	Phone string
	Role  entities.Role
}

// ICodeStore holds pending one-time codes. Put overwrites any previous code
// for the same key.
//
// ConsumeIfMatch compares and deletes in one step: found reports whether a
// live code existed, matched whether it equaled code and was removed.
type ICodeStore interface {
	Put(key CodeKey, code string)
	ConsumeIfMatch(key CodeKey, code string) (found, matched bool)
	Delete(key CodeKey)
}

// IChatNotifier delivers a text message to a linked chat.
type IChatNotifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// ITokenIssuer signs an authentication credential for a verified user.
type ITokenIssuer interface {
	Issue(userID string, role entities.Role) (string, error)
}
