package duckdb

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/domain"
	"github.com/duckmart/segmentation-service/internal/segment"
)

// Repository implements repository.SegmentRepository for DuckDB
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new DuckDB repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the attribute and event tables with the indexes
// the segmentation queries rely on.
func (r *Repository) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_attributes (
			user_id INTEGER PRIMARY KEY,
			name VARCHAR,
			age INTEGER,
			gender VARCHAR,
			location VARCHAR,
			signup_date DATE,
			subscription_plan VARCHAR,
			device_type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS user_events (
			user_id INTEGER,
			event_name VARCHAR,
			timestamp TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_events_user_id ON user_events(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_user_events_event_name ON user_events(event_name)`,
		`CREATE INDEX IF NOT EXISTS idx_user_attributes_age ON user_attributes(age)`,
		`CREATE INDEX IF NOT EXISTS idx_user_attributes_location ON user_attributes(location)`,
	}

	for _, stmt := range statements {
		if _, err := r.client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	r.log.Info("DuckDB schema initialized successfully")
	return nil
}

// SelectUserIDs executes an assembled segmentation statement. Faults
// are reported as *segment.QueryExecutionError: they are internal
// faults, never caller input faults, since every statement reaching
// this point has passed validation.
func (r *Repository) SelectUserIDs(ctx context.Context, query string, args []interface{}) ([]int64, error) {
	rows, err := r.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &segment.QueryExecutionError{Err: err}
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close segmentation rows", zap.Error(err))
		}
	}()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &segment.QueryExecutionError{Err: fmt.Errorf("failed to scan user id: %w", err)}
		}
		userIDs = append(userIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, &segment.QueryExecutionError{Err: err}
	}

	return userIDs, nil
}

// InsertUsers inserts a batch of user attribute rows in one transaction.
func (r *Repository) InsertUsers(ctx context.Context, users []*domain.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	tx, err := r.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO user_attributes (user_id, name, age, gender, location, signup_date, subscription_plan, device_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to prepare user insert: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.log.Error("Failed to close user insert statement", zap.Error(err))
		}
	}()

	inserted := 0
	for _, u := range users {
		if _, err := stmt.ExecContext(ctx,
			u.UserID, u.Name, u.Age, u.Gender, u.Location, u.SignupDate, u.SubscriptionPlan, u.DeviceType,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to insert user %d: %w", u.UserID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit user batch: %w", err)
	}

	return inserted, nil
}

// InsertEvents inserts a batch of event rows in one transaction.
func (r *Repository) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO user_events (user_id, event_name, timestamp) VALUES (?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.log.Error("Failed to close event insert statement", zap.Error(err))
		}
	}()

	inserted := 0
	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, e.UserID, e.EventName, e.Timestamp); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to insert event for user %d: %w", e.UserID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event batch: %w", err)
	}

	return inserted, nil
}

// Ping checks if the DuckDB connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.DB().PingContext(ctx)
}

// Close closes the DuckDB database
func (r *Repository) Close() error {
	return r.client.Close()
}
