package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/domain"
	"github.com/duckmart/segmentation-service/internal/repository"
)

// WriterConfig configures the batching writer
type WriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// Writer handles batching and writing generated events to the repository
type Writer struct {
	repository repository.SegmentRepository
	config     WriterConfig
	log        *zap.Logger
}

// NewWriter creates a new batching writer
func NewWriter(repo repository.SegmentRepository, config WriterConfig, log *zap.Logger) *Writer {
	return &Writer{
		repository: repo,
		config:     config,
		log:        log,
	}
}

// Start consumes events from in, batching on size or timeout, and
// returns the total inserted once in is closed or the context is
// canceled. The first insert failure aborts the run.
func (w *Writer) Start(ctx context.Context, in <-chan *domain.Event) (int, error) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	batch := make([]*domain.Event, 0, w.config.MaxBatchSize)
	total := 0

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Writer shutting down")
			if len(batch) > 0 {
				n, err := w.flush(context.Background(), batch)
				total += n
				if err != nil {
					return total, err
				}
			}
			return total, ctx.Err()

		case event, ok := <-in:
			if !ok {
				if len(batch) > 0 {
					w.log.Info("Flushing final batch", zap.Int("event_count", len(batch)))
					n, err := w.flush(ctx, batch)
					total += n
					if err != nil {
						return total, err
					}
				}
				return total, nil
			}

			batch = append(batch, event)

			if len(batch) >= w.config.MaxBatchSize {
				w.log.Info("Batch size threshold reached", zap.Int("batch_size", len(batch)))
				n, err := w.flush(ctx, batch)
				total += n
				if err != nil {
					return total, err
				}
				batch = make([]*domain.Event, 0, w.config.MaxBatchSize)
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.log.Info("Batch timeout reached", zap.Int("event_count", len(batch)))
				n, err := w.flush(ctx, batch)
				total += n
				if err != nil {
					return total, err
				}
				batch = make([]*domain.Event, 0, w.config.MaxBatchSize)
			}
		}
	}
}

func (w *Writer) flush(ctx context.Context, batch []*domain.Event) (int, error) {
	inserted, err := w.repository.InsertEvents(ctx, batch)
	if err != nil {
		w.log.Error("Failed to insert batch",
			zap.Error(err),
			zap.Int("event_count", len(batch)))
		return inserted, err
	}

	w.log.Info("Successfully inserted events", zap.Int("count", inserted))
	return inserted, nil
}
