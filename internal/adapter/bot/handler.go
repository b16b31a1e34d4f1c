package bot

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/metrics"
	"autoservice/internal/usecase"

	log "github.com/sirupsen/logrus"
)

const (
	msgWelcome      = "Добро пожаловать! Пожалуйста, введите свой номер телефона в формате +79999999999 для связывания с аккаунтом."
	msgInvalidPhone = "Некорректный формат номера телефона. Пожалуйста, введите его в формате +79999999999."
	msgUserNotFound = "Пользователь с таким номером телефона не найден. Пожалуйста, обратитесь к администратору."
	msgLinked       = "Ваш Telegram-аккаунт успешно связан с номером телефона."
	msgLinkFailed   = "Произошла ошибка при связывании. Пожалуйста, попробуйте позже."
	msgUseStart     = "Пожалуйста, используйте команду /start для начала регистрации."
)

// ChatLinker binds a Telegram chat to the user owning a phone number.
type ChatLinker interface {
	LinkChatIdentity(ctx context.Context, phone string, chatID int64) (entities.UserRecord, error)
}

type Sender interface {
	Send(chatID int64, text string) error
}

// Handler runs the phone linking conversation.
type Handler struct {
	linker ChatLinker
	states *StateStore
	sender Sender
}

func NewHandler(linker ChatLinker, states *StateStore, sender Sender) *Handler {
	return &Handler{linker: linker, states: states, sender: sender}
}

func (h *Handler) Start(chatID int64) {
	h.states.AwaitPhone(chatID)
	h.reply(chatID, msgWelcome)
}

// Text handles a plain message. A malformed phone keeps the chat waiting;
// every other outcome ends the conversation.
func (h *Handler) Text(ctx context.Context, chatID int64, text string) {
	if !h.states.AwaitingPhone(chatID) {
		h.reply(chatID, msgUseStart)
		return
	}

	phone := strings.TrimSpace(text)
	if !entities.ValidPhone(phone) {
		metrics.ChatLinks.WithLabelValues("invalid_phone").Inc()
		h.reply(chatID, msgInvalidPhone)
		return
	}

	user, err := h.linker.LinkChatIdentity(ctx, phone, chatID)
	h.states.Clear(chatID)
	switch {
	case err == nil:
		metrics.ChatLinks.WithLabelValues("ok").Inc()
		log.Infof("[bot][handler] chat linked chat_id=%d user_id=%s role=%s", chatID, user.ID, user.Role)
		h.reply(chatID, msgLinked)
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidPhone):
		metrics.ChatLinks.WithLabelValues("not_found").Inc()
		h.reply(chatID, msgUserNotFound)
	default:
		metrics.ChatLinks.WithLabelValues("error").Inc()
		log.Errorf("[bot][handler] link failed chat_id=%d err=%v", chatID, err)
		h.reply(chatID, msgLinkFailed)
	}
}

func (h *Handler) reply(chatID int64, text string) {
	if err := h.sender.Send(chatID, text); err != nil {
		log.Warnf("[bot][handler] reply failed chat_id=%d err=%v", chatID, err)
	}
}
