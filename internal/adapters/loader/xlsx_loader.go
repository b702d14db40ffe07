package loader

import (
	"context"
	"delivery-eda-service/internal/domain"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader reads the first worksheet of an Excel workbook.
// The first non-blank row is the header.
type XLSXLoader struct{}

func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

func (l *XLSXLoader) Load(ctx context.Context, name string, r io.Reader) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Err: fmt.Errorf("open workbook %s: %w", name, err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Dataset{}, &domain.ParseError{Err: domain.ErrEmptyInput}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Err: fmt.Errorf("read sheet %q: %w", sheets[0], err)}
	}

	records, lines, err := normalizeRows(rows)
	if err != nil {
		return domain.Dataset{}, err
	}

	ds, err := frame(records, lines[1:])
	if err != nil {
		return domain.Dataset{}, asParseError(err)
	}
	return ds, nil
}

// normalizeRows drops blank rows and pads rows that excelize trimmed of
// trailing empty cells. A row wider than the header is ragged. lines holds
// the worksheet row number of each kept row.
func normalizeRows(rows [][]string) ([][]string, []int, error) {
	var (
		out   [][]string
		lines []int
		width int
	)
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if out == nil {
			width = len(row)
			out = append(out, row)
			lines = append(lines, i+1)
			continue
		}
		if len(row) > width {
			extra := row[width:]
			if !blank(extra) {
				return nil, nil, &domain.ParseError{
					Line: i + 1,
					Err:  fmt.Errorf("row has %d cells, header has %d", len(row), width),
				}
			}
			row = row[:width]
		}
		padded := make([]string, width)
		copy(padded, row)
		out = append(out, padded)
		lines = append(lines, i+1)
	}

	if len(out) == 0 {
		return nil, nil, &domain.ParseError{Err: domain.ErrEmptyInput}
	}
	if len(out) == 1 {
		return nil, nil, &domain.ParseError{Line: lines[0], Err: fmt.Errorf("header without rows: %w", domain.ErrEmptyInput)}
	}
	return out, lines, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
