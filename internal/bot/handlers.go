package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Danokhov/pro-mnemo-app/internal/review"
	"github.com/Danokhov/pro-mnemo-app/internal/vocab"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleUpdate routes one Telegram update
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

// handleCommand dispatches bot commands
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := strconv.FormatInt(msg.From.ID, 10)

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, chatID, userID, msg.From.FirstName)
	case "add":
		b.handleAdd(ctx, chatID, userID, msg.CommandArguments())
	case "remove":
		b.handleRemove(ctx, chatID, userID, msg.CommandArguments())
	case "due":
		b.handleDue(ctx, chatID, userID)
	case "review":
		b.handleReview(ctx, chatID, userID)
	case "notifications":
		b.handleNotifications(ctx, chatID, userID, msg.CommandArguments())
	default:
		b.send(chatID, "Unknown command. Available: /add, /remove, /due, /review, /notifications")
	}
}

func (b *Bot) handleStart(ctx context.Context, chatID int64, userID, name string) {
	if _, err := b.users.Ensure(ctx, userID, name); err != nil {
		log.Printf("Failed to register user %s: %v", userID, err)
		b.send(chatID, "Something went wrong, please try /start again.")
		return
	}
	b.send(chatID, "Willkommen! Add German words with /add <word>, then drill them daily with /review.")
}

func (b *Bot) handleAdd(ctx context.Context, chatID int64, userID, args string) {
	word := strings.TrimSpace(args)
	if word == "" {
		b.send(chatID, "Usage: /add <word>")
		return
	}

	itemID, err := b.catalog.FindID(ctx, word)
	if err != nil {
		log.Printf("Catalog lookup failed for %q: %v", word, err)
		b.send(chatID, "Could not look up the word right now, please try again.")
		return
	}
	if itemID == "" {
		b.send(chatID, "Usage: /add <word>")
		return
	}

	if _, err := b.reviews.Enroll(ctx, userID, itemID); err != nil {
		log.Printf("Enroll failed for user %s item %s: %v", userID, itemID, err)
		b.send(chatID, "Could not save the word right now, please try again.")
		return
	}

	if vocab.IsSynthesizedID(itemID) {
		b.send(chatID, fmt.Sprintf("«%s» is not in the catalog yet, but it was added to your study set.", word))
		return
	}
	b.send(chatID, fmt.Sprintf("«%s» added to your study set. It will come up in today's /review.", word))
}

func (b *Bot) handleRemove(ctx context.Context, chatID int64, userID, args string) {
	word := strings.TrimSpace(args)
	if word == "" {
		b.send(chatID, "Usage: /remove <word>")
		return
	}

	itemID, err := b.catalog.FindID(ctx, word)
	if err != nil || itemID == "" {
		b.send(chatID, "Could not find that word.")
		return
	}
	if err := b.reviews.Remove(ctx, userID, itemID); err != nil {
		log.Printf("Remove failed for user %s item %s: %v", userID, itemID, err)
		b.send(chatID, "Could not remove the word right now, please try again.")
		return
	}
	b.send(chatID, fmt.Sprintf("«%s» removed from your study set.", word))
}

func (b *Bot) handleDue(ctx context.Context, chatID int64, userID string) {
	count, err := b.reviews.DueCount(ctx, userID, time.Now())
	if err != nil {
		// Due counts are non-critical: show zero instead of failing.
		log.Printf("Due count failed for user %s: %v", userID, err)
		b.send(chatID, "Nothing due right now.")
		return
	}
	if count == 0 {
		b.send(chatID, "Nothing due today. Well done!")
		return
	}
	b.send(chatID, fmt.Sprintf("%d word(s) due today. Send /review to start.", count))
}

func (b *Bot) handleReview(ctx context.Context, chatID int64, userID string) {
	due, err := b.reviews.DueItems(ctx, userID, time.Now())
	if err != nil {
		log.Printf("Due query failed for user %s: %v", userID, err)
		b.send(chatID, "Could not load today's cards, please try again.")
		return
	}
	if len(due) == 0 {
		b.send(chatID, "All words reviewed! Nothing due today.")
		return
	}
	if len(due) > b.config.CardsPerSession {
		due = due[:b.config.CardsPerSession]
	}

	b.sessions[chatID] = &reviewSession{Items: due}
	b.sendCard(ctx, chatID)
}

func (b *Bot) handleNotifications(ctx context.Context, chatID int64, userID, args string) {
	switch strings.TrimSpace(strings.ToLower(args)) {
	case "on":
		if err := b.users.SetNotifications(ctx, userID, true); err != nil {
			b.send(chatID, "Could not update notifications, please try again.")
			return
		}
		b.send(chatID, "Daily reminders enabled.")
	case "off":
		if err := b.users.SetNotifications(ctx, userID, false); err != nil {
			b.send(chatID, "Could not update notifications, please try again.")
			return
		}
		b.send(chatID, "Daily reminders disabled.")
	default:
		b.send(chatID, "Usage: /notifications on|off")
	}
}

// sendCard presents the front side of the current card
func (b *Bot) sendCard(ctx context.Context, chatID int64) {
	session, ok := b.sessions[chatID]
	if !ok {
		return
	}
	if session.Current >= len(session.Items) {
		delete(b.sessions, chatID)
		b.send(chatID, "Session finished. Come back tomorrow!")
		return
	}

	item := session.Items[session.Current]
	entry, err := b.catalog.Resolve(ctx, item.ItemID)
	if err != nil || entry == nil {
		// Entry vanished between the due query and now, skip the card.
		session.Current++
		b.sendCard(ctx, chatID)
		return
	}

	text := fmt.Sprintf("Card %d/%d\n\n%s", session.Current+1, len(session.Items), entry.Word)
	if entry.Transcription != "" {
		text += fmt.Sprintf("\n[%s]", entry.Transcription)
	}

	keyboard := createKeyboard([][]MenuButton{
		{{Text: "Show translation", CallbackData: "flip:" + item.ItemID}},
		{{Text: "Remove from study", CallbackData: "drop:" + item.ItemID}},
	})
	b.sendWithKeyboard(chatID, text, keyboard)
}

// handleCallback processes card button presses
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Callbacks on messages too old to be tracked arrive without one
	if query.Message == nil {
		return
	}
	action, itemID, _ := strings.Cut(query.Data, ":")
	chatID := query.Message.Chat.ID
	userID := strconv.FormatInt(query.From.ID, 10)

	// Acknowledge the tap so the client stops the spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	switch action {
	case "flip":
		b.flipCard(ctx, chatID, query.Message.MessageID, itemID)
	case "know":
		b.recordAnswer(ctx, chatID, userID, itemID, true)
	case "miss":
		b.recordAnswer(ctx, chatID, userID, itemID, false)
	case "drop":
		if err := b.reviews.Remove(ctx, userID, itemID); err != nil {
			log.Printf("Remove failed for user %s item %s: %v", userID, itemID, err)
			b.send(chatID, "Could not remove the word, please try again.")
			return
		}
		b.advanceSession(ctx, chatID)
	}
}

// flipCard edits the card message to show the back side with the
// know/missed buttons
func (b *Bot) flipCard(ctx context.Context, chatID int64, messageID int, itemID string) {
	entry, err := b.catalog.Resolve(ctx, itemID)
	if err != nil || entry == nil {
		b.send(chatID, "This word is no longer in the catalog.")
		return
	}

	text := fmt.Sprintf("%s — %s", entry.Word, entry.Translation)
	if entry.Mnemonic != "" {
		text += "\n\n💡 " + entry.Mnemonic
	}
	if entry.Examples != "" {
		text += "\n\n" + entry.Examples
	}

	keyboard := createKeyboard([][]MenuButton{
		{
			{Text: "❌ Missed", CallbackData: "miss:" + itemID},
			{Text: "✅ Know", CallbackData: "know:" + itemID},
		},
	})
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to flip card for %d: %v", chatID, err)
	}
}

// recordAnswer relays one outcome to the scheduler. When the write fails
// the card stays on screen so the user can tap again; the schedule
// advances only after a committed write.
func (b *Bot) recordAnswer(ctx context.Context, chatID int64, userID, itemID string, success bool) {
	item, err := b.reviews.RecordOutcome(ctx, userID, itemID, success)
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			// The item was removed from another surface, nothing to record.
			b.advanceSession(ctx, chatID)
			return
		}
		log.Printf("Record outcome failed for user %s item %s: %v", userID, itemID, err)
		b.send(chatID, "Could not save your answer, please tap again.")
		return
	}

	if success {
		b.send(chatID, fmt.Sprintf("Scheduled again in %d day(s).", item.IntervalDays))
	} else {
		b.send(chatID, "No problem, it will come up again today.")
	}
	b.advanceSession(ctx, chatID)
}

// advanceSession moves to the next card of the active session
func (b *Bot) advanceSession(ctx context.Context, chatID int64) {
	session, ok := b.sessions[chatID]
	if !ok {
		return
	}
	session.Current++
	b.sendCard(ctx, chatID)
}
