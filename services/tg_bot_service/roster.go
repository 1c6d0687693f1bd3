package tg_bot_service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"duty-bot/services/roster_service"
	"duty-bot/tgx"

	"github.com/pkg/errors"
)

var timeZone = time.FixedZone("Europe/Moscow", 3*60*60)

func (r *Service) upload(c *tgx.Context) error {
	doc := c.Update.Message.Document

	filename := doc.FileName
	if filename == "" {
		filename = "roster.xlsx"
	}

	if !roster_service.Accepted(filename) {
		return c.Replyf(
			"Please upload one of: %s.",
			strings.Join(roster_service.AcceptedExtensions, ", "),
		)
	}

	fileURL, err := c.Dispatcher.Bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve file url")
	}

	data, err := download(c.Ctx, fileURL)
	if err != nil {
		return errors.Wrap(err, "failed to download file")
	}

	count, err := r.roster.Import(c.Ctx, data, filename)
	if err != nil {
		if errors.Is(err, roster_service.ErrNoRecords) {
			return c.Reply("No records recognized in the file, the previous roster is kept.")
		}

		return c.ReplyWithClientErr(errors.Wrap(err, "failed to import roster"))
	}

	return c.Replyf("Imported %d duty records.", count)
}

func (r *Service) export(c *tgx.Context) error {
	data, err := r.roster.Export(c.Ctx)
	if err != nil {
		return errors.Wrap(err, "failed to export roster")
	}

	name := fmt.Sprintf(
		"duties_export_%s.xlsx",
		time.Now().In(timeZone).Format("20060102150405"),
	)

	return c.ReplyWithDocument(name, data)
}

func (r *Service) clearRoster(c *tgx.Context) error {
	deleted, err := r.roster.Clear(c.Ctx)
	if err != nil {
		return errors.Wrap(err, "failed to clear roster")
	}

	return c.Replyf("Roster cleared, %d records removed.", deleted)
}

func download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get file")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read body")
	}

	return data, nil
}
