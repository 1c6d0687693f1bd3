package notifier_service

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// SendToday runs one notification cycle for the current date and returns the
// number of successful deliveries. A failure for one recipient never aborts
// the others.
func (r *Service) SendToday(ctx context.Context) (int, error) {
	today := r.now()

	sel, ok, err := r.repo.GetConfig(ctx, ConfigKeySelectedMonth)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get selected month")
	}

	if ok && sel != "" && !monthMatches(sel, today) {
		zerolog.Ctx(ctx).
			Info().
			Str("selected_month", sel).
			Msg("reminder.skipped.inactive.month")

		return 0, nil
	}

	isoDate := today.Format("2006-01-02")

	names, err := r.repo.NamesForDate(ctx, isoDate)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get duties")
	}

	text := renderMessage(isoDate, names)

	recipients, err := r.repo.ListRecipients(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list recipients")
	}

	if len(recipients) == 0 {
		recipients = r.admins
	}

	sent := 0
	for _, chatID := range recipients {
		_, err = r.sender.Send(tgbotapi.NewMessage(chatID, text))
		if err != nil {
			zerolog.Ctx(ctx).
				Error().
				Stack().Err(err).
				Int64("chat_id", chatID).
				Msg("failed.to.send.reminder")

			continue
		}

		sent++
	}

	zerolog.Ctx(ctx).
		Info().
		Int("sent", sent).
		Int("on_duty", len(names)).
		Str("date", isoDate).
		Msg("reminder.cycle.done")

	return sent, nil
}

// monthMatches reports whether day falls in the selected YYYY-MM month. An
// unparseable stored value does not block sending.
func monthMatches(sel string, day time.Time) bool {
	selMonth, err := time.Parse("2006-01", sel)
	if err != nil {
		return true
	}

	return selMonth.Year() == day.Year() && selMonth.Month() == day.Month()
}

func renderMessage(isoDate string, names []string) string {
	if len(names) == 0 {
		return fmt.Sprintf("No duty found for %s.", isoDate)
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("On duty for %s:", isoDate))
	for _, name := range names {
		text.WriteString(fmt.Sprintf("\n- %s", name))
	}

	return text.String()
}
