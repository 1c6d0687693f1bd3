package tgx

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/teadove/teasutils/utils/must_utils"
)

// PollerRun consumes updates via long polling until the updates channel closes.
func (r *Dispatcher) PollerRun(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := r.Bot.GetUpdatesChan(u)

	zerolog.Ctx(ctx).
		Info().
		Int("handlers", len(r.Handlers)).
		Msg("bot.polling.started")

	var wg sync.WaitGroup

	for update := range updates {
		wg.Add(1)

		go must_utils.DoOrLogWithStacktrace(
			func(ctx context.Context) error {
				defer wg.Done()
				defer func() {
					err := must_utils.AnyToErr(recover())
					if err == nil {
						return
					}

					zerolog.Ctx(ctx).
						Error().
						Stack().Err(err).
						Interface("update", update).
						Msg("panic.in.process.update")
				}()

				return r.processUpdate(ctx, &update)
			},
			"error.during.update.process",
		)(ctx)
	}

	wg.Wait()
}

// Feed processes a single update delivered out of band, e.g. by a webhook.
func (r *Dispatcher) Feed(ctx context.Context, update *tgbotapi.Update) {
	err := r.processUpdate(ctx, update)
	if err != nil {
		zerolog.Ctx(ctx).
			Error().
			Stack().Err(err).
			Interface("update", update).
			Msg("failed.to.process.fed.update")
	}
}

// processUpdate dispatches to the first handler whose filters all pass.
func (r *Dispatcher) processUpdate(ctx context.Context, update *tgbotapi.Update) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := r.makeCtx(ctx, update)
	logger := c.Log()

	for _, handler := range r.Handlers {
		ok := true
		for _, filter := range handler.Filters {
			if !filter(c) {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		err := handler.Processor(c)
		if err != nil {
			err = errors.Wrap(err, "failed to process handler")

			logger.Error().
				Stack().Err(err).
				Type("processor", handler.Processor).
				Interface("update", update).
				Msg("failed.to.process.handler")

			if r.replyWithErr {
				c.TryReplyOnErr(err)
			}
		}

		logger.Debug().Msg("handler.processed")

		return nil
	}

	return nil
}
