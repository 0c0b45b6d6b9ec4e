package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/internal/review"
	"github.com/Danokhov/pro-mnemo-app/internal/vocab"
	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates an inline keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// reviewSession tracks a user's ongoing pass over today's due cards.
// The due set is re-queried when the session starts, not pushed; the
// scheduler itself sends no notifications.
type reviewSession struct {
	Items   []models.StudyItem
	Current int
}

// Bot represents the Telegram application surface. All scheduling
// decisions live in the review scheduler; the bot only renders cards and
// relays outcomes.
type Bot struct {
	api      *tgbotapi.BotAPI
	reviews  *review.Scheduler
	catalog  *vocab.Catalog
	users    *database.UserRepository
	sessions map[int64]*reviewSession
	config   *BotConfig
}

// New creates a new bot instance over the given collaborators
func New(token string, reviews *review.Scheduler, catalog *vocab.Catalog, users *database.UserRepository) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}

	return &Bot{
		api:      api,
		reviews:  reviews,
		catalog:  catalog,
		users:    users,
		sessions: make(map[int64]*reviewSession),
		config:   DefaultConfig(),
	}, nil
}

// Start runs the update loop until the context is canceled
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// Stop shuts down the update channel
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// SendReminder tells a user how many cards are waiting. Guest users have
// no reachable chat and are skipped.
func (b *Bot) SendReminder(userID string, count int) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		// Guest ids are not Telegram chat ids
		return nil
	}

	text := fmt.Sprintf("You have %d word(s) due for review today. Send /review to start.", count)
	_, err = b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}

// send delivers a plain text message, logging delivery failures
func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
	}
}

// sendWithKeyboard delivers a message with an inline keyboard
func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
	}
}
