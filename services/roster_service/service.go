package roster_service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"duty-bot/repositories/duty_repository"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var timeZone = time.FixedZone("Europe/Moscow", 3*60*60)

// ErrNoRecords signals an import in which not a single row was recognized.
// The previous roster is left untouched in that case.
var ErrNoRecords = errors.New("no duty records recognized")

// AcceptedExtensions is the union of upload shapes across bot revisions.
var AcceptedExtensions = []string{".xls", ".xlsx", ".xlsm", ".csv", ".txt"}

type Service struct {
	repo *duty_repository.Repository

	now func() time.Time
}

func NewService(repo *duty_repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().In(timeZone) },
	}
}

// Accepted reports whether the filename carries an importable extension.
func Accepted(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}

	return false
}

// Import parses the uploaded bytes and, if at least one record was
// recognized, replaces the whole roster with the result. Returns the number
// of imported records.
func (r *Service) Import(ctx context.Context, data []byte, filename string) (int, error) {
	var (
		records []Record
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv", ".txt":
		records, err = parseDelimited(data, r.now())
	case ".xls", ".xlsx", ".xlsm":
		records, err = parseWorkbook(data, r.now())
	default:
		return 0, errors.Errorf("unsupported file extension %q", ext)
	}

	if err != nil {
		return 0, errors.Wrap(err, "failed to parse upload")
	}

	if len(records) == 0 {
		return 0, ErrNoRecords
	}

	duties := make([]duty_repository.Duty, 0, len(records))
	for _, record := range records {
		duties = append(duties, duty_repository.Duty{
			DutyDate: record.Date.Format("2006-01-02"),
			Name:     record.Name,
		})
	}

	err = r.repo.ReplaceDuties(ctx, duties)
	if err != nil {
		return 0, errors.Wrap(err, "failed to replace duties")
	}

	zerolog.Ctx(ctx).
		Info().
		Int("records", len(duties)).
		Str("filename", filename).
		Msg("roster.imported")

	return len(duties), nil
}

// Clear deletes the whole roster and returns the number of removed records.
func (r *Service) Clear(ctx context.Context) (int64, error) {
	deleted, err := r.repo.ClearDuties(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear duties")
	}

	zerolog.Ctx(ctx).Info().Int64("deleted", deleted).Msg("roster.cleared")

	return deleted, nil
}
