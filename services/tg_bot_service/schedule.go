package tg_bot_service

import (
	"strings"
	"time"

	"duty-bot/services/notifier_service"
	"duty-bot/tgx"

	"github.com/pkg/errors"
)

func (r *Service) setTime(c *tgx.Context) error {
	sendTime := strings.TrimSpace(c.Text)
	if sendTime == "" {
		return c.Reply("Usage: /set_time HH:MM")
	}

	err := r.notifier.Reschedule(c.Ctx, sendTime)
	if err != nil {
		return c.ReplyWithClientErr(errors.New("invalid time format, example: /set_time 09:00"))
	}

	return c.Replyf("Daily send time set to %s.", sendTime)
}

func (r *Service) setMonth(c *tgx.Context) error {
	arg := strings.TrimSpace(c.Text)
	if arg == "" {
		return c.Reply("Usage: /set_month YYYY-MM (e.g. 2024-02), or /set_month off")
	}

	if strings.EqualFold(arg, "off") {
		err := r.repo.SetConfig(c.Ctx, notifier_service.ConfigKeySelectedMonth, "")
		if err != nil {
			return errors.Wrap(err, "failed to clear selected month")
		}

		return c.Reply("Month filter cleared, reminders go out every day.")
	}

	month, err := time.Parse("2006-01", arg)
	if err != nil {
		return c.ReplyWithClientErr(errors.New("invalid month format, example: /set_month 2024-02"))
	}

	err = r.repo.SetConfig(c.Ctx, notifier_service.ConfigKeySelectedMonth, month.Format("2006-01"))
	if err != nil {
		return errors.Wrap(err, "failed to save selected month")
	}

	return c.Replyf("Reminders restricted to %s.", month.Format("2006-01"))
}

func (r *Service) sendNow(c *tgx.Context) error {
	sent, err := r.notifier.SendToday(c.Ctx)
	if err != nil {
		return errors.Wrap(err, "failed to send reminder")
	}

	return c.Replyf("Reminder delivered to %d recipients.", sent)
}
