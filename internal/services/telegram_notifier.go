package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"secinstall/internal/models"
)

// TelegramNotifier pushes short event messages into the office chat.
// A nil notifier is valid and skips everything, so callers never have to
// check whether the integration is configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) *TelegramNotifier {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("telegram: bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (t *TelegramNotifier) send(text string) {
	if t == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("telegram: send failed: %v", err)
	}
}

func (t *TelegramNotifier) NotifyNewInquiry(q *models.Inquiry) {
	t.send(fmt.Sprintf("New inquiry %s: %s (%s) — %s", q.Reference, q.Name, q.Phone, q.ServiceType))
}

func (t *TelegramNotifier) NotifyLeadAssigned(lead *models.Lead, assigneeID int) {
	t.send(fmt.Sprintf("Lead #%d (%s) assigned to user %d", lead.ID, lead.Name, assigneeID))
}
