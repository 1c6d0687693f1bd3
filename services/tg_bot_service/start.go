package tg_bot_service

import (
	"duty-bot/tgx"
)

const adminHelpText = `<b>Duty reminder bot</b>

• /subscribe — add this chat to the reminder recipients
• /unsubscribe — remove this chat from the recipients
• /subscribers — list subscribed chats
• /send_now — send today's duty reminder immediately
• /set_time HH:MM — set the daily send time
• /set_month YYYY-MM — send only during one month (/set_month off to clear)
• /export — export the roster as a spreadsheet
• /clear — delete the whole roster

Send a roster file (.xls/.xlsx/.xlsm/.csv/.txt) to replace the duty list.`

const strangerText = "This is a private duty-reminder bot. Ask an administrator for access."

func (r *Service) start(c *tgx.Context) error {
	if c.SentFrom != nil && r.isAdmin(c.SentFrom.ID) {
		return c.Reply(adminHelpText)
	}

	return c.Reply(strangerText)
}

func (r *Service) help(c *tgx.Context) error {
	return c.Reply(adminHelpText)
}

// fallback answers anything no other handler claimed.
func (r *Service) fallback(c *tgx.Context) error {
	if c.SentFrom == nil || !r.isAdmin(c.SentFrom.ID) {
		if c.Command != "" {
			return c.Reply(refusalText)
		}

		// plain chatter from strangers is ignored
		return nil
	}

	return c.Reply(adminHelpText)
}
