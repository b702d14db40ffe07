package loader

import (
	"bufio"
	"bytes"
	"context"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/platform/obs"
	"delivery-eda-service/internal/ports"
	"io"
	"path/filepath"
	"strings"
)

// zipMagic starts every .xlsx file.
var zipMagic = []byte("PK\x03\x04")

// FileLoader picks a format from the file extension, falling back to the
// content when the name carries none.
type FileLoader struct {
	csv  ports.DatasetLoader
	xlsx ports.DatasetLoader
}

func NewFileLoader() *FileLoader {
	return &FileLoader{
		csv:  NewCSVLoader(),
		xlsx: NewXLSXLoader(),
	}
}

func (l *FileLoader) Load(ctx context.Context, name string, r io.Reader) (ds domain.Dataset, err error) {
	defer obs.Time(ctx, "loader.load")(&err)

	br := bufio.NewReader(r)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return l.xlsx.Load(ctx, name, br)
	case ".csv", ".tsv", ".txt":
		return l.csv.Load(ctx, name, br)
	}

	head, _ := br.Peek(len(zipMagic))
	if bytes.Equal(head, zipMagic) {
		return l.xlsx.Load(ctx, name, br)
	}
	return l.csv.Load(ctx, name, br)
}
