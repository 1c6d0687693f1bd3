package roster_service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// Export renders the full roster as an xlsx workbook with `date` and `name`
// columns, one row per record, ordered by date.
func (r *Service) Export(ctx context.Context) ([]byte, error) {
	duties, err := r.repo.AllDuties(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load duties")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	err = f.SetSheetRow(exportSheet, "A1", &[]any{"date", "name"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	for i, duty := range duties {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build cell name")
		}

		err = f.SetSheetRow(exportSheet, cell, &[]any{duty.DutyDate, duty.Name})
		if err != nil {
			return nil, errors.Wrap(err, "failed to write row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	return buf.Bytes(), nil
}
