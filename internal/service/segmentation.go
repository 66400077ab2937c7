package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/duckmart/segmentation-service/internal/dto"
	"github.com/duckmart/segmentation-service/internal/repository"
	"github.com/duckmart/segmentation-service/internal/segment"
)

// defaultEventCount is applied when an event filter omits count,
// matching the behavior callers depend on: "gte 1" means "at least once".
const defaultEventCount = 1

// SegmentationService runs a request through the compiler pipeline:
// validate, compile each filter, assemble, execute.
type SegmentationService struct {
	validator  *segment.Validator
	compiler   *segment.Compiler
	assembler  *segment.Assembler
	repository repository.SegmentRepository
	log        *zap.Logger
}

// NewSegmentationService creates a new segmentation service. The schema
// whitelist and maximum limit are explicit so tests can vary them.
func NewSegmentationService(schema segment.Schema, maxLimit int, repo repository.SegmentRepository, log *zap.Logger) *SegmentationService {
	return &SegmentationService{
		validator:  segment.NewValidator(schema, maxLimit),
		compiler:   segment.NewCompiler(schema),
		assembler:  segment.NewAssembler(),
		repository: repo,
		log:        log,
	}
}

// SegmentUsers validates and compiles the request, executes the
// assembled statement, and returns the matching user identities with an
// echo of the normalized filters. Validation failures are returned
// unwrapped so the transport layer can map them to client faults.
func (s *SegmentationService) SegmentUsers(ctx context.Context, req *dto.SegmentationRequest) (*dto.SegmentationResponse, error) {
	model := toModel(req)

	normalized, err := s.validator.Validate(model)
	if err != nil {
		return nil, err
	}

	userFrags := make([]segment.Fragment, 0, len(normalized.UserFilters))
	for _, f := range normalized.UserFilters {
		frag, err := s.compiler.CompileUserFilter(f)
		if err != nil {
			return nil, err
		}
		userFrags = append(userFrags, frag)
	}

	eventFrags := make([]segment.Fragment, 0, len(normalized.EventFilters))
	for _, f := range normalized.EventFilters {
		frag, err := s.compiler.CompileEventFilter(f)
		if err != nil {
			return nil, err
		}
		eventFrags = append(eventFrags, frag)
	}

	stmt := s.assembler.Build(userFrags, eventFrags, normalized.Logic, normalized.Limit)

	s.log.Info("Executing segmentation query",
		zap.Int("user_filters", len(normalized.UserFilters)),
		zap.Int("event_filters", len(normalized.EventFilters)),
		zap.String("logic_operator", string(normalized.Logic)),
		zap.Int("limit", normalized.Limit))
	s.log.Debug("Assembled statement", zap.String("sql", stmt.SQL))

	userIDs, err := s.repository.SelectUserIDs(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute segmentation: %w", err)
	}

	s.log.Info("Segmentation completed", zap.Int("total_count", len(userIDs)))

	return &dto.SegmentationResponse{
		UserIDs:        userIDs,
		TotalCount:     len(userIDs),
		FiltersApplied: toEcho(normalized),
	}, nil
}

// toModel converts the wire shape into the compiler-facing model,
// applying JSON-absence defaults (missing count means 1).
func toModel(req *dto.SegmentationRequest) segment.Request {
	model := segment.Request{
		UserFilters:  make([]segment.UserFilter, 0, len(req.UserFilters)),
		EventFilters: make([]segment.EventFilter, 0, len(req.EventFilters)),
		Logic:        segment.LogicOperator(req.LogicOperator),
		Limit:        req.Limit,
	}

	for _, f := range req.UserFilters {
		model.UserFilters = append(model.UserFilters, segment.UserFilter{
			Field:    f.Field,
			Operator: segment.Operator(f.Operator),
			Value:    f.Value,
		})
	}

	for _, f := range req.EventFilters {
		count := defaultEventCount
		if f.Count != nil {
			count = *f.Count
		}
		model.EventFilters = append(model.EventFilters, segment.EventFilter{
			EventName:     f.EventName,
			Operator:      segment.Operator(f.Operator),
			Count:         count,
			TimeRangeDays: f.TimeRangeDays,
		})
	}

	return model
}

// toEcho converts the normalized model back to wire shapes for the
// filters_applied echo.
func toEcho(req segment.Request) dto.FiltersApplied {
	echo := dto.FiltersApplied{
		UserFilters:   make([]dto.UserFilter, 0, len(req.UserFilters)),
		EventFilters:  make([]dto.EventFilter, 0, len(req.EventFilters)),
		LogicOperator: string(req.Logic),
		Limit:         req.Limit,
	}

	for _, f := range req.UserFilters {
		echo.UserFilters = append(echo.UserFilters, dto.UserFilter{
			Field:    f.Field,
			Operator: string(f.Operator),
			Value:    f.Value,
		})
	}

	for _, f := range req.EventFilters {
		count := f.Count
		echo.EventFilters = append(echo.EventFilters, dto.EventFilter{
			EventName:     f.EventName,
			Operator:      string(f.Operator),
			Count:         &count,
			TimeRangeDays: f.TimeRangeDays,
		})
	}

	return echo
}
