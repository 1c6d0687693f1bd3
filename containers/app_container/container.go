package app_container

import (
	"context"
	"path/filepath"

	"duty-bot/access"
	"duty-bot/repositories/duty_repository"
	"duty-bot/servers/web_server"
	"duty-bot/services/notifier_service"
	"duty-bot/services/roster_service"
	"duty-bot/services/tg_bot_service"
	"duty-bot/settings"
	"duty-bot/tgx"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/teadove/teasutils/utils/di_utils"
)

type Container struct {
	TGBotPresentation *tg_bot_service.Service
	WebServer         *web_server.Server

	healths []di_utils.Health
	closers []di_utils.CloserWithContext
}

func (r *Container) Healths() []di_utils.Health {
	return r.healths
}

func (r *Container) Closers() []di_utils.CloserWithContext {
	return r.closers
}

func Build(ctx context.Context) (*Container, error) {
	scheduler := gocron.NewScheduler(notifier_service.TimeZone)
	scheduler.StartAsync()

	bot, err := tgbotapi.NewBotAPI(settings.Settings.TG.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bot client")
	}

	dispatcher := tgx.New(bot, true)

	dutyRepository, err := duty_repository.NewRepository(
		ctx,
		filepath.Join(settings.Settings.DataDir, "duty_bot.db"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create duty repository")
	}

	rosterService := roster_service.NewService(dutyRepository)

	notifierService := notifier_service.NewService(
		dutyRepository,
		bot,
		scheduler,
		settings.Settings.TG.AdminIDs,
	)

	err = notifierService.StartFromConfig(ctx, settings.Settings.SendTime)
	if err != nil {
		return nil, errors.Wrap(err, "failed to arm daily schedule")
	}

	tgBotService, err := tg_bot_service.NewService(
		ctx,
		dispatcher,
		dutyRepository,
		rosterService,
		notifierService,
		access.NewChecker(settings.Settings.TG.AdminIDs),
		settings.Settings.TG.AdminIDs,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tg bot service")
	}

	webServer := web_server.NewServer(
		settings.Settings.Web.Addr,
		settings.Settings.Web.TriggerToken,
		notifierService,
		dispatcher,
	)
	webServer.Start(ctx)

	container := &Container{
		TGBotPresentation: tgBotService,
		WebServer:         webServer,
		healths:           []di_utils.Health{tgBotService},
		closers:           []di_utils.CloserWithContext{tgBotService},
	}

	return container, nil
}
