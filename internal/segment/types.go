package segment

// Operator is the comparison vocabulary accepted in filter payloads.
type Operator string

const (
	OpEq    Operator = "eq"
	OpNe    Operator = "ne"
	OpGt    Operator = "gt"
	OpGte   Operator = "gte"
	OpLt    Operator = "lt"
	OpLte   Operator = "lte"
	OpIn    Operator = "in"
	OpNotIn Operator = "not_in"
	OpLike  Operator = "like"
)

// LogicOperator joins the attribute-predicate group and the
// event-aggregation group at the top level of a request.
type LogicOperator string

const (
	LogicAnd LogicOperator = "AND"
	LogicOr  LogicOperator = "OR"
)

// FieldType is the declared type of a whitelisted attribute column.
type FieldType int

const (
	FieldTypeInt FieldType = iota
	FieldTypeString
	FieldTypeDate
)

// Schema maps whitelisted attribute columns to their declared types.
// Only names present here may ever appear unparameterized in query text.
type Schema map[string]FieldType

// DefaultSchema mirrors the user_attributes table.
func DefaultSchema() Schema {
	return Schema{
		"user_id":           FieldTypeInt,
		"name":              FieldTypeString,
		"age":               FieldTypeInt,
		"gender":            FieldTypeString,
		"location":          FieldTypeString,
		"signup_date":       FieldTypeDate,
		"subscription_plan": FieldTypeString,
		"device_type":       FieldTypeString,
	}
}

// UserFilter is a validated predicate over one attribute column.
type UserFilter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// EventFilter is a validated predicate over the per-user occurrence
// count of a named event. TimeRangeDays, when non-nil, bounds the event
// timestamp window to the trailing N days at evaluation time.
type EventFilter struct {
	EventName     string
	Operator      Operator
	Count         int
	TimeRangeDays *int
}

// Request is the compiler-facing filter model. Instances are
// request-scoped: built from the wire shape, consumed during
// compilation, then discarded.
type Request struct {
	UserFilters  []UserFilter
	EventFilters []EventFilter
	Logic        LogicOperator
	Limit        int
}

// Fragment is one parameterized predicate: SQL with '?' placeholders
// plus the values bound to them, in order.
type Fragment struct {
	SQL  string
	Args []interface{}
}

// Statement is the final assembled query.
type Statement struct {
	SQL  string
	Args []interface{}
}
