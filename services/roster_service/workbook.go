package roster_service

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// parseWorkbook extracts records from every non-empty sheet of an xlsx-family
// workbook.
func parseWorkbook(data []byte, now time.Time) ([]Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer func() { _ = f.Close() }()

	var records []Record
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
		}

		records = append(records, recordsFromRows(rows, now)...)
	}

	return records, nil
}
