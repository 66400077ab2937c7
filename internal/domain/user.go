package domain

import "time"

// User represents a row in the user_attributes table.
type User struct {
	UserID           int64
	Name             string
	Age              int
	Gender           string
	Location         string
	SignupDate       time.Time
	SubscriptionPlan string
	DeviceType       string
}

// Event represents a row in the user_events table.
type Event struct {
	UserID    int64
	EventName string
	Timestamp time.Time
}
