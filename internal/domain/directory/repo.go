package directory

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the identifier was valid but no doctor matches it.
	ErrNotFound = errors.New("doctor not found")
	// ErrUnavailable means the backing data source could not be read.
	ErrUnavailable = errors.New("doctor directory unavailable")
)

// Repository provides read-only access to the doctor directory.
type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id int) (*Doctor, error)
}
