package tgx

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func (r *Context) BuildReply(text string) tgbotapi.MessageConfig {
	if r.Chat == nil {
		panic(errors.New("chat is nil"))
	}
	msgReq := tgbotapi.NewMessage(r.Chat.ID, text)
	if r.Update.Message != nil {
		msgReq.ReplyToMessageID = r.Update.Message.MessageID
	}
	msgReq.ParseMode = tgbotapi.ModeHTML

	return msgReq
}

func (r *Context) Reply(text string) error {
	_, err := r.ReplyWithMessage(text)
	return err
}

func (r *Context) Replyf(text string, a ...any) error {
	_, err := r.ReplyWithMessage(fmt.Sprintf(text, a...))
	return err
}

func (r *Context) ReplyWithMessage(text string) (tgbotapi.Message, error) {
	msgReq := r.BuildReply(text)

	msg, err := r.Dispatcher.Bot.Send(msgReq)
	if err != nil {
		return tgbotapi.Message{}, errors.Wrap(err, "failed to send message")
	}

	return msg, nil
}

// ReplyWithDocument sends a file as a reply in the current chat.
func (r *Context) ReplyWithDocument(name string, data []byte) error {
	if r.Chat == nil {
		panic(errors.New("chat is nil"))
	}

	docReq := tgbotapi.NewDocument(r.Chat.ID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if r.Update.Message != nil {
		docReq.ReplyToMessageID = r.Update.Message.MessageID
	}

	_, err := r.Dispatcher.Bot.Send(docReq)
	if err != nil {
		return errors.Wrap(err, "failed to send document")
	}

	return nil
}

func (r *Context) ReplyWithClientErr(err error) error {
	if err == nil {
		return nil
	}

	r.LogWithUpdate().
		Warn().Err(err).
		Msg("client.error")

	return r.Reply(fmt.Sprintf("Bad request: <code>%s</code>", html.EscapeString(err.Error())))
}

func (r *Context) TryReplyOnErr(err error) {
	if err == nil {
		return
	}

	err = r.Reply(fmt.Sprintf("Error occurred: %s", err.Error()))
	if err != nil {
		zerolog.Ctx(r.Ctx).Error().Stack().Err(err).Msg("failed.to.try.reply.on.err")
	}
}
