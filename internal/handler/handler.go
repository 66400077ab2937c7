package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/duckmart/segmentation-service/docs"
	"github.com/duckmart/segmentation-service/internal/dto"
	"github.com/duckmart/segmentation-service/internal/segment"
	"github.com/duckmart/segmentation-service/internal/service"
)

type Handler struct {
	segmentService service.SegmentationServicer
	router         *gin.Engine
	log            *zap.Logger
}

func NewHandler(segmentService service.SegmentationServicer, log *zap.Logger) *Handler {
	h := &Handler{
		segmentService: segmentService,
		router:         gin.Default(),
		log:            log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/segment", h.segmentUsers)
	h.router.GET("/examples", h.getExamples)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// segmentUsers handles POST /segment
// @Summary Segment users
// @Description Segment users based on attribute and event filters combined by a logic operator
// @Tags segmentation
// @Accept json
// @Produce json
// @Param request body dto.SegmentationRequest true "Segmentation filters"
// @Success 200 {object} dto.SegmentationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /segment [post]
func (h *Handler) segmentUsers(c *gin.Context) {
	var req dto.SegmentationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid segmentation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.segmentService.SegmentUsers(c.Request.Context(), &req)
	if err != nil {
		var validationErr *segment.ValidationError
		if errors.As(err, &validationErr) {
			h.log.Warn("Segmentation request rejected",
				zap.String("field", validationErr.Field),
				zap.String("operator", string(validationErr.Operator)),
				zap.String("reason", validationErr.Reason))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: validationErr.Error(),
			})
			return
		}

		h.log.Error("Failed to segment users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Segmentation request served",
		zap.Int("total_count", response.TotalCount))

	c.JSON(http.StatusOK, response)
}

// getExamples handles GET /examples
// @Summary Example payloads
// @Description Get example JSON payloads for common segmentation scenarios
// @Tags segmentation
// @Produce json
// @Success 200 {object} map[string]dto.Example
// @Router /examples [get]
func (h *Handler) getExamples(c *gin.Context) {
	c.JSON(http.StatusOK, service.Examples())
}
