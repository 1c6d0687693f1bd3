// Package tgx is a thin dispatcher over tgbotapi: handlers are matched by
// filter chains and the first matching handler processes the update.
package tgx

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ProcessorFunc func(c *Context) error
type FilterFunc func(c *Context) bool

type Handler struct {
	Filters   []FilterFunc
	Processor ProcessorFunc
}

type Dispatcher struct {
	Bot      *tgbotapi.BotAPI
	Handlers []Handler

	replyWithErr bool
}

func New(bot *tgbotapi.BotAPI, replyWithErr bool) *Dispatcher {
	return &Dispatcher{
		Bot:          bot,
		Handlers:     make([]Handler, 0),
		replyWithErr: replyWithErr,
	}
}

func (r *Dispatcher) AddHandler(processor ProcessorFunc, filters ...FilterFunc) {
	if processor == nil {
		panic("processor cannot be nil")
	}

	r.Handlers = append(r.Handlers, Handler{
		Filters:   filters,
		Processor: processor,
	})
}
