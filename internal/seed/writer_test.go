package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/domain"
)

// MockSegmentRepository is a mock implementation of repository.SegmentRepository
type MockSegmentRepository struct {
	mock.Mock
}

func (m *MockSegmentRepository) SelectUserIDs(ctx context.Context, query string, args []interface{}) ([]int64, error) {
	mockArgs := m.Called(ctx, query, args)
	if mockArgs.Get(0) == nil {
		return nil, mockArgs.Error(1)
	}
	return mockArgs.Get(0).([]int64), mockArgs.Error(1)
}

func (m *MockSegmentRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSegmentRepository) InsertUsers(ctx context.Context, users []*domain.User) (int, error) {
	args := m.Called(ctx, users)
	return args.Int(0), args.Error(1)
}

func (m *MockSegmentRepository) InsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *MockSegmentRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSegmentRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testEvent(userID int64) *domain.Event {
	return &domain.Event{
		UserID:    userID,
		EventName: "LOGIN",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriter_Start_BatchSizeThreshold(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	log := zap.NewNop()

	writer := NewWriter(mockRepo, WriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}, log)

	mockRepo.On("InsertEvents", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 3
	})).Return(3, nil)

	in := make(chan *domain.Event, 5)
	in <- testEvent(1)
	in <- testEvent(2)
	in <- testEvent(3)
	close(in)

	total, err := writer.Start(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	mockRepo.AssertExpectations(t)
}

func TestWriter_Start_FlushesRemainderOnClose(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	log := zap.NewNop()

	writer := NewWriter(mockRepo, WriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 10 * time.Second,
	}, log)

	mockRepo.On("InsertEvents", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 2
	})).Return(2, nil)

	in := make(chan *domain.Event, 5)
	in <- testEvent(1)
	in <- testEvent(2)
	close(in)

	total, err := writer.Start(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	mockRepo.AssertExpectations(t)
}

func TestWriter_Start_TimeoutFlush(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	log := zap.NewNop()

	writer := NewWriter(mockRepo, WriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 50 * time.Millisecond,
	}, log)

	mockRepo.On("InsertEvents", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 2
	})).Return(2, nil)

	in := make(chan *domain.Event, 5)
	in <- testEvent(1)
	in <- testEvent(2)

	done := make(chan struct{})
	var total int
	var err error
	go func() {
		total, err = writer.Start(context.Background(), in)
		close(done)
	}()

	// Wait past the flush timeout, then close to end the run.
	time.Sleep(150 * time.Millisecond)
	close(in)
	<-done

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	mockRepo.AssertExpectations(t)
}

func TestWriter_Start_InsertErrorAborts(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	log := zap.NewNop()

	writer := NewWriter(mockRepo, WriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}, log)

	insertErr := errors.New("write failed")
	mockRepo.On("InsertEvents", mock.Anything, mock.Anything).Return(0, insertErr)

	in := make(chan *domain.Event, 5)
	in <- testEvent(1)
	in <- testEvent(2)
	close(in)

	total, err := writer.Start(context.Background(), in)

	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 0, total)
}

func TestWriter_Start_MultipleBatches(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	log := zap.NewNop()

	writer := NewWriter(mockRepo, WriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}, log)

	mockRepo.On("InsertEvents", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 2
	})).Return(2, nil).Twice()
	mockRepo.On("InsertEvents", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 1
	})).Return(1, nil).Once()

	in := make(chan *domain.Event, 10)
	for i := int64(1); i <= 5; i++ {
		in <- testEvent(i)
	}
	close(in)

	total, err := writer.Start(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, 5, total)
	mockRepo.AssertExpectations(t)
}
