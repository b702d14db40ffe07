package ports

import (
	"context"
	"delivery-eda-service/internal/domain"
	"io"
)

// Contract for turning an uploaded tabular file into a Dataset.
type DatasetLoader interface {
	// Parse the input; name is the uploaded file name and may select the format.
	// Malformed input must fail with *domain.ParseError.
	Load(ctx context.Context, name string, r io.Reader) (domain.Dataset, error)
}
