package tg_bot_service

import (
	"fmt"
	"strings"

	"duty-bot/tgx"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func (r *Service) subscribe(c *tgx.Context) error {
	err := r.repo.AddRecipient(c.Ctx, c.Chat.ID)
	if err != nil {
		return errors.Wrap(err, "failed to add recipient")
	}

	zerolog.Ctx(c.Ctx).Info().Int64("chat_id", c.Chat.ID).Msg("recipient.added")

	return c.Reply("This chat now receives the daily duty reminder.")
}

func (r *Service) unsubscribe(c *tgx.Context) error {
	removed, err := r.repo.RemoveRecipient(c.Ctx, c.Chat.ID)
	if err != nil {
		return errors.Wrap(err, "failed to remove recipient")
	}

	if !removed {
		return c.Reply("This chat was not subscribed.")
	}

	zerolog.Ctx(c.Ctx).Info().Int64("chat_id", c.Chat.ID).Msg("recipient.removed")

	return c.Reply("This chat no longer receives the daily duty reminder.")
}

func (r *Service) subscribers(c *tgx.Context) error {
	chatIDs, err := r.repo.ListRecipients(c.Ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list recipients")
	}

	if len(chatIDs) == 0 {
		return c.Reply("No subscribers yet, reminders go to the administrators.")
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("Subscribed chats (%d):", len(chatIDs)))
	for _, chatID := range chatIDs {
		text.WriteString(fmt.Sprintf("\n- <code>%d</code>", chatID))
	}

	return c.Reply(text.String())
}
