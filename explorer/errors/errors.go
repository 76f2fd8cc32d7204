package errors

import "github.com/pkg/errors"

var (
	ErrInputClosed      = errors.New("input stream closed")
	ErrUnknownCity      = errors.New("unknown city")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrInvalidSelection = errors.New("invalid selection")
)
