package publisher

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"breaking_news/internal/domain"
)

type TelegramConfig struct {
	Token   string
	APIURL  string
	Timeout time.Duration
}

// Telegram delivers messages straight to users through the Bot API.
// User IDs are Telegram chat IDs.
type Telegram struct {
	bot    *tele.Bot
	logger *slog.Logger
}

func NewTelegram(cfg TelegramConfig, logger *slog.Logger) (*Telegram, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("telegram token is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	b, err := tele.NewBot(tele.Settings{
		URL:     cfg.APIURL,
		Token:   cfg.Token,
		Client:  &http.Client{Timeout: timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Telegram{bot: b, logger: logger}, nil
}

func (t *Telegram) Send(ctx context.Context, user domain.User, message domain.OutgoingMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: user %q is not a chat id", domain.ErrInvalidRecipient, user.ID)
	}
	chat := &tele.Chat{ID: chatID}

	switch message.Type {
	case domain.MessageAlert:
		_, err = t.bot.Send(chat, message.Text)
	case domain.MessageCard:
		err = t.sendCard(chat, message.Card)
	default:
		return fmt.Errorf("unsupported message type %q", message.Type)
	}
	if err != nil {
		return fmt.Errorf("telegram send %s: %w", message.Type, err)
	}

	t.logger.Debug("sent telegram message", "user_id", user.ID, "type", message.Type)
	return nil
}

func (t *Telegram) sendCard(chat *tele.Chat, card *domain.Card) error {
	if card == nil {
		return fmt.Errorf("card message without card")
	}

	opts := &tele.SendOptions{
		ParseMode:   tele.ModeHTML,
		ReplyMarkup: cardMarkup(card),
	}
	caption := cardCaption(card)

	if card.ImageURL != "" {
		photo := &tele.Photo{File: tele.FromURL(card.ImageURL), Caption: caption}
		_, err := t.bot.Send(chat, photo, opts)
		return err
	}

	_, err := t.bot.Send(chat, caption, opts)
	return err
}

func cardCaption(card *domain.Card) string {
	caption := "<b>" + html.EscapeString(card.Title) + "</b>"
	if card.Description != "" {
		caption += "\n\n" + html.EscapeString(card.Description)
	}
	return caption
}

func cardMarkup(card *domain.Card) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, opt := range card.Options {
		rows = append(rows, rm.Row(tele.Btn{Text: opt.Label, URL: opt.URL}))
	}
	if len(rows) == 0 && card.URL != "" {
		rows = append(rows, rm.Row(tele.Btn{Text: card.Title, URL: card.URL}))
	}
	rm.Inline(rows...)
	return rm
}
