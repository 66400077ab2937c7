package service

import (
	"context"

	"github.com/duckmart/segmentation-service/internal/dto"
)

// SegmentationServicer defines the interface for segmentation operations
type SegmentationServicer interface {
	SegmentUsers(ctx context.Context, req *dto.SegmentationRequest) (*dto.SegmentationResponse, error)
}
