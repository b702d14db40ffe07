package loader

import (
	"bytes"
	"context"
	"delivery-eda-service/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVLoader reads delimited text. The delimiter is sniffed from the header
// line (comma, semicolon or tab) and UTF-8/UTF-16 byte order marks are honored.
type CSVLoader struct{}

func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

func (l *CSVLoader) Load(ctx context.Context, name string, r io.Reader) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(dec)
	if err != nil {
		return domain.Dataset{}, &domain.ParseError{Err: fmt.Errorf("decode %s: %w", name, err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Dataset{}, &domain.ParseError{Err: domain.ErrEmptyInput}
	}

	records, lines, err := readRecords(data, sniffDelimiter(data))
	if err != nil {
		return domain.Dataset{}, err
	}
	if len(records) < 2 {
		return domain.Dataset{}, &domain.ParseError{Line: lines[0], Err: fmt.Errorf("header without rows: %w", domain.ErrEmptyInput)}
	}

	ds, err := frame(records, lines[1:])
	if err != nil {
		return domain.Dataset{}, asParseError(err)
	}
	return ds, nil
}

// sniffDelimiter picks the candidate that occurs most often, outside quotes,
// in the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	counts := map[rune]int{',': 0, ';': 0, '\t': 0}
	quoted := false
	for _, c := range string(line) {
		if c == '"' {
			quoted = !quoted
			continue
		}
		if _, ok := counts[c]; ok && !quoted {
			counts[c]++
		}
	}

	best := ','
	for _, c := range []rune{';', '\t'} {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// readRecords splits data into records, skipping rows whose cells are all
// blank. Every kept row must be as wide as the header. lines holds the
// starting line of each kept record.
func readRecords(data []byte, comma rune) ([][]string, []int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1

	var (
		records [][]string
		lines   []int
	)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, asParseError(err)
		}
		if blank(rec) {
			continue
		}
		line, _ := r.FieldPos(0)
		if len(records) > 0 && len(rec) != len(records[0]) {
			return nil, nil, &domain.ParseError{
				Line: line,
				Err:  fmt.Errorf("row has %d fields, header has %d: %w", len(rec), len(records[0]), csv.ErrFieldCount),
			}
		}
		records = append(records, rec)
		lines = append(lines, line)
	}

	if len(records) == 0 {
		return nil, nil, &domain.ParseError{Err: domain.ErrEmptyInput}
	}
	return records, lines, nil
}

// asParseError maps framing errors onto domain.ParseError, keeping the line.
func asParseError(err error) error {
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &domain.ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &domain.ParseError{Err: err}
}
