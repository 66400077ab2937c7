package repository

import (
	"context"

	"github.com/duckmart/segmentation-service/internal/domain"
)

// SegmentRepository defines the interface for the storage engine the
// compiler reads from and the seeder writes to.
type SegmentRepository interface {
	// SelectUserIDs executes an assembled segmentation statement with
	// its bound parameters and returns the matching user identities in
	// statement order.
	SelectUserIDs(ctx context.Context, query string, args []interface{}) ([]int64, error)

	// InitSchema creates the user_attributes and user_events tables
	// and their indexes if they do not exist.
	InitSchema(ctx context.Context) error

	// InsertUsers inserts a batch of user attribute rows.
	InsertUsers(ctx context.Context, users []*domain.User) (int, error)

	// InsertEvents inserts a batch of event rows.
	InsertEvents(ctx context.Context, events []*domain.Event) (int, error)

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
