package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"invalid filter on \"agee\": unknown field"`
}

// FiltersApplied echoes the validated, normalized request back to the caller.
type FiltersApplied struct {
	UserFilters   []UserFilter  `json:"user_filters"`
	EventFilters  []EventFilter `json:"event_filters"`
	LogicOperator string        `json:"logic_operator" example:"AND"`
	Limit         int           `json:"limit" example:"1000"`
}

// SegmentationResponse represents the result of a segmentation query
type SegmentationResponse struct {
	UserIDs        []int64        `json:"user_ids"`
	TotalCount     int            `json:"total_count" example:"1542"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

// Example is a named example payload served by GET /examples.
type Example struct {
	Description string              `json:"description"`
	Payload     SegmentationRequest `json:"payload"`
}
