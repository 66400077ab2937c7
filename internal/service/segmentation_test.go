package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/domain"
	"github.com/duckmart/segmentation-service/internal/dto"
	"github.com/duckmart/segmentation-service/internal/segment"
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

func newTestService(repo *MockSegmentRepository) *SegmentationService {
	return NewSegmentationService(segment.DefaultSchema(), 1000, repo, zap.NewNop())
}

func intp(v int) *int { return &v }

func TestSegmentationService_SegmentUsers_AgeRange(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("SelectUserIDs", mock.Anything,
		"SELECT DISTINCT ua.user_id FROM user_attributes ua WHERE (ua.age >= ?) AND (ua.age <= ?) ORDER BY ua.user_id LIMIT ?",
		[]interface{}{float64(25), float64(34), 1000},
	).Return([]int64{1, 5, 12}, nil)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{
		UserFilters: []dto.UserFilter{
			{Field: "age", Operator: "gte", Value: float64(25)},
			{Field: "age", Operator: "lte", Value: float64(34)},
		},
		LogicOperator: "AND",
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 5, 12}, resp.UserIDs)
	assert.Equal(t, 3, resp.TotalCount)
	mockRepo.AssertExpectations(t)
}

func TestSegmentationService_SegmentUsers_LocationAndEvent(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("SelectUserIDs", mock.Anything,
		"SELECT DISTINCT ua.user_id FROM user_attributes ua WHERE ((ua.location = ?)) AND (((SELECT COUNT(*) FROM user_events ue WHERE ue.user_id = ua.user_id AND ue.event_name = ?) >= ?)) ORDER BY ua.user_id LIMIT ?",
		[]interface{}{"California", "LOGIN", 1, 100},
	).Return([]int64{3, 7}, nil)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{
		UserFilters: []dto.UserFilter{
			{Field: "location", Operator: "eq", Value: "California"},
		},
		EventFilters: []dto.EventFilter{
			{EventName: "LOGIN", Operator: "gte", Count: intp(1)},
		},
		LogicOperator: "AND",
		Limit:         100,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	mockRepo.AssertExpectations(t)
}

func TestSegmentationService_SegmentUsers_EmptyRequestSelectsAll(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("SelectUserIDs", mock.Anything,
		"SELECT DISTINCT ua.user_id FROM user_attributes ua ORDER BY ua.user_id LIMIT ?",
		[]interface{}{10},
	).Return([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.TotalCount)
	mockRepo.AssertExpectations(t)
}

func TestSegmentationService_SegmentUsers_ValidationErrorSkipsExecution(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{
		UserFilters: []dto.UserFilter{
			{Field: "favorite_color", Operator: "eq", Value: "blue"},
		},
	})

	assert.Nil(t, resp)
	var validationErr *segment.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "favorite_color", validationErr.Field)
	mockRepo.AssertNotCalled(t, "SelectUserIDs")
}

func TestSegmentationService_SegmentUsers_ExecutionErrorPropagates(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	execErr := &segment.QueryExecutionError{Err: errors.New("database is locked")}
	mockRepo.On("SelectUserIDs", mock.Anything, mock.Anything, mock.Anything).Return(nil, execErr)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{Limit: 10})

	assert.Nil(t, resp)
	var queryErr *segment.QueryExecutionError
	assert.True(t, errors.As(err, &queryErr))
}

func TestSegmentationService_SegmentUsers_EchoesNormalizedFilters(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("SelectUserIDs", mock.Anything, mock.Anything, mock.Anything).Return([]int64{}, nil)

	resp, err := svc.SegmentUsers(context.Background(), &dto.SegmentationRequest{
		EventFilters: []dto.EventFilter{
			{EventName: "LOGIN"}, // operator and count omitted
		},
		Limit: 99999,
	})

	assert.NoError(t, err)
	applied := resp.FiltersApplied
	assert.Equal(t, "AND", applied.LogicOperator)
	assert.Equal(t, 1000, applied.Limit)
	assert.Equal(t, "gte", applied.EventFilters[0].Operator)
	assert.Equal(t, 1, *applied.EventFilters[0].Count)
}

func TestSegmentationService_SegmentUsers_Idempotent(t *testing.T) {
	mockRepo := new(MockSegmentRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("SelectUserIDs", mock.Anything, mock.Anything, mock.Anything).Return([]int64{2, 4, 8}, nil)

	req := &dto.SegmentationRequest{
		UserFilters: []dto.UserFilter{
			{Field: "device_type", Operator: "eq", Value: "Mobile"},
		},
	}

	first, err := svc.SegmentUsers(context.Background(), req)
	assert.NoError(t, err)
	second, err := svc.SegmentUsers(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first.UserIDs, second.UserIDs)
	assert.Equal(t, first.FiltersApplied, second.FiltersApplied)

	// Both executions must have compiled to the identical statement.
	calls := mockRepo.Calls
	assert.Len(t, calls, 2)
	assert.Equal(t, calls[0].Arguments.String(1), calls[1].Arguments.String(1))
}
