package dto

// UserFilter is a single predicate over a user attribute column.
type UserFilter struct {
	Field    string      `json:"field" binding:"required" example:"age"`
	Operator string      `json:"operator" binding:"required" example:"gte"`
	Value    interface{} `json:"value" binding:"required" swaggertype:"object"`
}

// EventFilter is a predicate over the per-user count of a named event,
// optionally windowed to the trailing time_range_days.
type EventFilter struct {
	EventName     string `json:"event_name" binding:"required" example:"LOGIN"`
	Operator      string `json:"operator" example:"gte"`
	Count         *int   `json:"count" example:"1"`
	TimeRangeDays *int   `json:"time_range_days,omitempty" example:"30"`
}

// SegmentationRequest represents a user segmentation request
type SegmentationRequest struct {
	UserFilters   []UserFilter  `json:"user_filters"`
	EventFilters  []EventFilter `json:"event_filters"`
	LogicOperator string        `json:"logic_operator" example:"AND"`
	Limit         int           `json:"limit" example:"1000"`
}
