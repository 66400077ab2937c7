package service

import "github.com/duckmart/segmentation-service/internal/dto"

func intPtr(v int) *int { return &v }

// Examples returns the named example payloads served by GET /examples.
// They are static and never touch the compiler.
func Examples() map[string]dto.Example {
	return map[string]dto.Example{
		"age_segment_25_34": {
			Description: "Users aged 25-34",
			Payload: dto.SegmentationRequest{
				UserFilters: []dto.UserFilter{
					{Field: "age", Operator: "gte", Value: 25},
					{Field: "age", Operator: "lte", Value: 34},
				},
				LogicOperator: "AND",
			},
		},
		"california_login_users": {
			Description: "California users who have logged in at least once",
			Payload: dto.SegmentationRequest{
				UserFilters: []dto.UserFilter{
					{Field: "location", Operator: "eq", Value: "California"},
				},
				EventFilters: []dto.EventFilter{
					{EventName: "LOGIN", Operator: "gte", Count: intPtr(1)},
				},
				LogicOperator: "AND",
			},
		},
		"premium_active_users": {
			Description: "Premium users who made a purchase in the last 30 days",
			Payload: dto.SegmentationRequest{
				UserFilters: []dto.UserFilter{
					{Field: "subscription_plan", Operator: "eq", Value: "Premium"},
				},
				EventFilters: []dto.EventFilter{
					{EventName: "PURCHASE_MADE", Operator: "gte", Count: intPtr(1), TimeRangeDays: intPtr(30)},
				},
				LogicOperator: "AND",
			},
		},
		"mobile_cart_abandoners": {
			Description: "Mobile users who added to cart but never purchased",
			Payload: dto.SegmentationRequest{
				UserFilters: []dto.UserFilter{
					{Field: "device_type", Operator: "eq", Value: "Mobile"},
				},
				EventFilters: []dto.EventFilter{
					{EventName: "ADDED_TO_CART", Operator: "gte", Count: intPtr(1)},
					{EventName: "PURCHASE_MADE", Operator: "eq", Count: intPtr(0)},
				},
				LogicOperator: "AND",
			},
		},
	}
}
