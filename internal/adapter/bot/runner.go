package bot

import (
	"context"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"
)

// APISender replies through the Bot API.
type APISender struct {
	api *tgbotapi.BotAPI
}

func NewAPISender(api *tgbotapi.BotAPI) *APISender {
	return &APISender{api: api}
}

func (s *APISender) Send(chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Run consumes long-polling updates until ctx is done.
func Run(ctx context.Context, api *tgbotapi.BotAPI, h *Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	log.Infof("[bot][runner] polling as %s", api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			log.Info("[bot][runner] stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			Dispatch(ctx, h, update)
		}
	}
}

// Dispatch routes a single update. Updates without a text message are
// ignored.
func Dispatch(ctx context.Context, h *Handler, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	chatID := msg.Chat.ID
	if msg.IsCommand() && msg.Command() == "start" {
		h.Start(chatID)
		return
	}
	h.Text(ctx, chatID, msg.Text)
}
