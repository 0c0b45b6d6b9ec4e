package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandleCallbackIgnoresMessagelessQueries(t *testing.T) {
	// Telegram delivers callbacks without a Message for sufficiently
	// old cards; those must be dropped, not crash the update loop.
	b := &Bot{}
	query := &tgbotapi.CallbackQuery{
		ID:   "cb1",
		Data: "flip:w1",
		From: &tgbotapi.User{ID: 42},
	}

	assert.NotPanics(t, func() {
		b.handleCallback(context.Background(), query)
	})
}
