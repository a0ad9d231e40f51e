package fileio

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// minUsefulColumns filters out cover and notes sheets when picking the data
// sheet of a workbook.
const minUsefulColumns = 4

// ReadXLSX reads an XLSX workbook and returns the rows of its data sheet.
// When the workbook has several sheets, the sheet with the most rows among
// those with a plausible header is chosen.
func ReadXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}

	sheet := bestSheet(f)

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = strings.TrimSpace(c.String())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// bestSheet prefers the sheet with the most rows among sheets that look like
// data tables: enough columns and at least one worded header cell.
func bestSheet(f *xlsx.File) *xlsx.Sheet {
	best := f.Sheets[0]
	bestRows := -1
	for _, s := range f.Sheets {
		if len(s.Rows) == 0 || len(s.Rows[0].Cells) < minUsefulColumns {
			continue
		}
		if !hasWordedHeader(s.Rows[0]) {
			continue
		}
		if len(s.Rows) > bestRows {
			best = s
			bestRows = len(s.Rows)
		}
	}
	return best
}

func hasWordedHeader(row *xlsx.Row) bool {
	for _, c := range row.Cells {
		if len(strings.TrimSpace(c.String())) > 2 {
			return true
		}
	}
	return false
}
