package telegram

import (
	"WooWithErp/pkg/logging"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pkg/errors"
)

// telegram rejects longer messages
const maxMessageLength = 4096

// Notifier sends operator alerts.
type Notifier interface {
	SendMessage(text string) error
}

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64, debug bool) (*Bot, error) {
	logger := logging.GetLogger()
	logger.Debug("Start telegram.NewBot")
	defer logger.Debug("End telegram.NewBot")

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed tgbotapi.NewBotAPI")
	}
	api.Debug = debug
	logger.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{api: api, chatID: chatID}, nil
}

func (b *Bot) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, Truncate(text))
	if _, err := b.api.Send(msg); err != nil {
		return errors.Wrap(err, "failed bot.Send")
	}
	return nil
}

// Truncate cuts text to the telegram message limit without splitting a rune.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLength {
		return text
	}
	return string(runes[:maxMessageLength-3]) + "..."
}

// Nop logs the alert instead of sending it. Used when no bot token is configured.
type Nop struct{}

func (Nop) SendMessage(text string) error {
	logging.GetLogger().Debugf("telegram disabled, message dropped: %s", text)
	return nil
}
