package roster_service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// sniffComma picks the separator from the header line: semicolon and tab
// beat the default comma.
func sniffComma(header string) rune {
	switch {
	case strings.ContainsRune(header, ';'):
		return ';'
	case strings.ContainsRune(header, '\t'):
		return '\t'
	default:
		return ','
	}
}

func parseDelimited(data []byte, now time.Time) ([]Record, error) {
	text := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	header, _, _ := strings.Cut(text, "\n")

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffComma(header)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse as csv")
	}

	return recordsFromRows(rows, now), nil
}
