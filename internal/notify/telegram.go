// Package notify pushes operational notifications about complaints to an
// admin Telegram chat. The notifier is optional: a nil *Telegram is a
// no-op, and a send failure never fails the mutation that triggered it.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"complaintdesk/backend/internal/models"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.SugaredLogger
}

func NewTelegram(token string, chatID int64, log *zap.SugaredLogger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	log.Infow("telegram notifier ready", "account", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: chatID, log: log}, nil
}

// ComplaintCreated announces a newly recorded complaint.
func (t *Telegram) ComplaintCreated(c *models.Complaint) {
	if t == nil {
		return
	}
	t.send(fmt.Sprintf("New complaint #%d [%s] %s", c.ID, c.Priority, c.Title))
}

// ComplaintResolved announces a complaint transitioning to RESOLVED.
func (t *Telegram) ComplaintResolved(c *models.Complaint) {
	if t == nil {
		return
	}
	t.send(fmt.Sprintf("Complaint #%d resolved: %s", c.ID, c.Title))
}

func (t *Telegram) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		t.log.Warnw("telegram send failed", "error", err)
	}
}
