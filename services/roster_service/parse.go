package roster_service

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Record is one extracted (date, name) pair in source order.
type Record struct {
	Date time.Time
	Name string
}

// Header synonyms for column sniffing, matched as lower-case substrings.
var (
	dateHeaders = []string{"дата", "date", "day", "день"}
	nameHeaders = []string{"имя", "фио", "name", "дежурный", "дежурные", "person", "employee"}
)

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02.01.06",
	"02/01/2006",
	"02 01 2006",
}

// DetectColumns finds the date and name column indexes by header synonyms.
// Returns -1 for a column that could not be matched.
func DetectColumns(headers []string) (dateIdx, nameIdx int) {
	dateIdx, nameIdx = -1, -1

	for i, header := range headers {
		lc := strings.ToLower(strings.TrimSpace(header))

		if dateIdx == -1 {
			for _, dh := range dateHeaders {
				if strings.Contains(lc, dh) {
					dateIdx = i
					break
				}
			}
		}

		if nameIdx == -1 {
			for _, nh := range nameHeaders {
				if strings.Contains(lc, nh) {
					nameIdx = i
					break
				}
			}
		}

		if dateIdx != -1 && nameIdx != -1 {
			break
		}
	}

	return dateIdx, nameIdx
}

// ParseDate tries the accepted date shapes in order. A bare integer up to 31
// is a day of month in now's year and month: rosters are assumed to refer to
// the current month, which misparses a December upload for January. Larger
// integers are treated as Excel serial dates, which is how unstyled workbook
// date cells surface.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, true
		}
	}

	if !isAllDigits(s) {
		return time.Time{}, false
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return time.Time{}, false
	}

	if val >= 1 && val <= 31 {
		d := time.Date(now.Year(), now.Month(), val, 0, 0, 0, 0, time.UTC)
		if d.Day() != val {
			// day does not exist in this month, e.g. 31 in February
			return time.Time{}, false
		}

		return d, true
	}

	if val > 59 {
		d, err := excelize.ExcelDateToTime(float64(val), false)
		if err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

// recordsFromRows applies column detection to the header row and extracts
// records from the rest. Unparseable dates and empty names drop the row.
func recordsFromRows(rows [][]string, now time.Time) []Record {
	if len(rows) == 0 {
		return nil
	}

	headers := rows[0]

	dateIdx, nameIdx := DetectColumns(headers)
	if dateIdx == -1 {
		dateIdx = 0
	}
	if nameIdx == -1 {
		if len(headers) < 2 {
			// single-column table, nothing to pair dates with
			return nil
		}

		nameIdx = 1
	}

	var records []Record
	for _, row := range rows[1:] {
		date, ok := ParseDate(cellAt(row, dateIdx), now)
		if !ok {
			continue
		}

		name := strings.TrimSpace(cellAt(row, nameIdx))
		if name == "" {
			continue
		}

		records = append(records, Record{Date: date, Name: name})
	}

	return records
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}
