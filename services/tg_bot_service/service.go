package tg_bot_service

import (
	"context"
	"strings"

	"duty-bot/access"
	"duty-bot/repositories/duty_repository"
	"duty-bot/services/notifier_service"
	"duty-bot/services/roster_service"
	"duty-bot/settings"
	"duty-bot/tgx"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const refusalText = "This command is available to administrators only."

type Service struct {
	dispatcher *tgx.Dispatcher

	repo     *duty_repository.Repository
	roster   *roster_service.Service
	notifier *notifier_service.Service
	isAdmin  access.Checker
}

func NewService(
	ctx context.Context,
	dispatcher *tgx.Dispatcher,
	repo *duty_repository.Repository,
	roster *roster_service.Service,
	notifier *notifier_service.Service,
	isAdmin access.Checker,
	admins []int64,
) (*Service, error) {
	r := &Service{
		dispatcher: dispatcher,
		repo:       repo,
		roster:     roster,
		notifier:   notifier,
		isAdmin:    isAdmin,
	}

	err := r.setCommandMenus(ctx, admins)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set command menus")
	}

	dispatcher.AddHandler(r.start, tgx.FilterCommand("start"))
	dispatcher.AddHandler(r.adminOnly(r.help), tgx.FilterCommand("help"))
	dispatcher.AddHandler(r.adminOnly(r.subscribe), tgx.FilterCommand("subscribe"))
	dispatcher.AddHandler(r.adminOnly(r.unsubscribe), tgx.FilterCommand("unsubscribe"))
	dispatcher.AddHandler(r.adminOnly(r.subscribers), tgx.FilterCommand("subscribers"))
	dispatcher.AddHandler(r.adminOnly(r.sendNow), tgx.FilterCommand("send_now"))
	dispatcher.AddHandler(r.adminOnly(r.setTime), tgx.FilterCommand("set_time"))
	dispatcher.AddHandler(r.adminOnly(r.setMonth), tgx.FilterCommand("set_month"))
	dispatcher.AddHandler(r.adminOnly(r.export), tgx.FilterCommand("export"))
	dispatcher.AddHandler(r.adminOnly(r.clearRoster), tgx.FilterCommand("clear"))
	dispatcher.AddHandler(r.adminOnly(r.upload), tgx.FilterIsDocument())
	dispatcher.AddHandler(r.fallback, tgx.FilterIsMessage())

	return r, nil
}

// adminOnly gates a handler on the allow-list; the check runs before any
// other effect of the operation.
func (r *Service) adminOnly(processor tgx.ProcessorFunc) tgx.ProcessorFunc {
	return func(c *tgx.Context) error {
		if c.SentFrom == nil || !r.isAdmin(c.SentFrom.ID) {
			return c.Reply(refusalText)
		}

		return processor(c)
	}
}

// setCommandMenus registers the public menu globally and the full command set
// per admin chat, as the original bot did.
func (r *Service) setCommandMenus(ctx context.Context, admins []int64) error {
	public := []tgbotapi.BotCommand{
		{Command: "start", Description: "About this bot"},
	}

	adminCommands := append(public, []tgbotapi.BotCommand{
		{Command: "subscribe", Description: "Subscribe this chat to the daily reminder"},
		{Command: "unsubscribe", Description: "Unsubscribe this chat"},
		{Command: "subscribers", Description: "List subscribed chats"},
		{Command: "send_now", Description: "Send today's reminder now"},
		{Command: "set_time", Description: "Set daily send time, HH:MM"},
		{Command: "set_month", Description: "Restrict sending to one month, YYYY-MM"},
		{Command: "export", Description: "Export the roster as a spreadsheet"},
		{Command: "clear", Description: "Delete the whole roster"},
		{Command: "help", Description: "Admin command reference"},
	}...)

	_, err := r.dispatcher.Bot.Request(tgbotapi.NewSetMyCommands(public...))
	if err != nil {
		return errors.Wrap(err, "failed to set public commands")
	}

	for _, adminID := range admins {
		_, err = r.dispatcher.Bot.Request(
			tgbotapi.NewSetMyCommandsWithScope(tgbotapi.NewBotCommandScopeChat(adminID), adminCommands...),
		)
		if err != nil {
			zerolog.Ctx(ctx).
				Error().
				Stack().Err(err).
				Int64("admin_id", adminID).
				Msg("failed.to.set.admin.commands")
		}
	}

	return nil
}

// Start runs the update loop: webhook delivery when a public base URL is
// configured, long polling otherwise.
func (r *Service) Start(ctx context.Context) {
	baseURL := settings.Settings.Web.BaseURL
	if baseURL != "" {
		err := r.registerWebhook(ctx, baseURL)
		if err == nil {
			<-ctx.Done()
			return
		}

		zerolog.Ctx(ctx).
			Error().
			Stack().Err(err).
			Msg("failed.to.register.webhook.falling.back.to.polling")
	}

	_, _ = r.dispatcher.Bot.Request(tgbotapi.DeleteWebhookConfig{})
	r.dispatcher.PollerRun(ctx)
}

func (r *Service) registerWebhook(ctx context.Context, baseURL string) error {
	url := strings.TrimRight(baseURL, "/") + "/webhook"

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return errors.Wrap(err, "failed to build webhook config")
	}

	_, err = r.dispatcher.Bot.Request(wh)
	if err != nil {
		return errors.Wrap(err, "failed to register webhook")
	}

	zerolog.Ctx(ctx).Info().Str("url", url).Msg("webhook.registered")

	return nil
}
