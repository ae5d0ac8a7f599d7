package importer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetSelector picks a worksheet by name, or by zero-based index when
// Name is empty.
type SheetSelector struct {
	Name  string
	Index int
}

// ParseSheetSelector interprets a CLI sheet argument: a number selects
// by index, anything else by name. Empty means the first sheet.
func ParseSheetSelector(s string) SheetSelector {
	s = strings.TrimSpace(s)
	if s == "" {
		return SheetSelector{}
	}
	if idx, err := strconv.Atoi(s); err == nil {
		return SheetSelector{Index: idx}
	}
	return SheetSelector{Name: s}
}

func (sel SheetSelector) resolve(sheets []string) (string, error) {
	if sel.Name != "" {
		for _, name := range sheets {
			if name == sel.Name {
				return name, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found", sel.Name)
	}
	if sel.Index < 0 || sel.Index >= len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range (%d sheets)", sel.Index, len(sheets))
	}
	return sheets[sel.Index], nil
}

// ReadWorkbook opens an XLSX file and returns its data rows as RawRows
// keyed by the header row. Any error here is fatal for the whole run.
func ReadWorkbook(path string, sel SheetSelector) ([]RawRow, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("spreadsheet not found: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	sheetName, err := sel.resolve(sheets)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := rows[0]
	raw := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(RawRow, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) && row[i] != "" {
				r[h] = row[i]
			}
		}
		raw = append(raw, r)
	}
	return raw, nil
}
