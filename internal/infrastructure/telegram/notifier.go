package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"autoservice/internal/infrastructure/config"
	"autoservice/internal/usecase/interfaces"
)

var ErrMissingBotToken = errors.New("missing TELEGRAM_BOT_TOKEN")

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	ErrorCode   int    `json:"error_code"`
}

// Notifier delivers text messages through the Bot API sendMessage method.
type Notifier struct {
	client   *resty.Client
	token    string
	mockMode bool
}

var _ interfaces.IChatNotifier = (*Notifier)(nil)

func NewNotifier(cfg config.Telegram) (*Notifier, error) {
	if cfg.Mock {
		log.Infof("[telegram][notifier] mock mode enabled")
		return &Notifier{mockMode: true}, nil
	}
	if strings.TrimSpace(cfg.Token) == "" {
		log.Errorf("[telegram][notifier] missing TELEGRAM_BOT_TOKEN")
		return nil, ErrMissingBotToken
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	log.Infof("[telegram][notifier] client initialized base_url=%s", cfg.APIURL)

	return &Notifier{client: client, token: cfg.Token}, nil
}

func (n *Notifier) SendMessage(ctx context.Context, chatID int64, text string) error {
	if n.mockMode {
		log.WithFields(log.Fields{"chat_id": chatID, "text": text}).Info("[telegram][notifier] mock send")
		return nil
	}

	var out apiResponse
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: chatID, Text: text}).
		SetResult(&out).
		SetError(&out).
		Post("/bot" + n.token + "/sendMessage")
	if err != nil {
		log.Errorf("[telegram][notifier] send failed chat_id=%d err=%v", chatID, err)
		return fmt.Errorf("telegram send: %w", err)
	}
	if resp.IsError() || !out.OK {
		log.Errorf("[telegram][notifier] send rejected chat_id=%d status=%d description=%s", chatID, resp.StatusCode(), out.Description)
		return fmt.Errorf("telegram send: status %d: %s", resp.StatusCode(), out.Description)
	}

	log.Debugf("[telegram][notifier] send success chat_id=%d", chatID)
	return nil
}
