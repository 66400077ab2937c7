package segment

import (
	"fmt"
	"strings"
	"time"
)

var userOperators = map[Operator]bool{
	OpEq: true, OpNe: true, OpGt: true, OpGte: true, OpLt: true, OpLte: true,
	OpIn: true, OpNotIn: true, OpLike: true,
}

var eventOperators = map[Operator]bool{
	OpEq: true, OpNe: true, OpGt: true, OpGte: true, OpLt: true, OpLte: true,
}

// orderingOperators require a numeric or date-comparable column.
var orderingOperators = map[Operator]bool{
	OpGt: true, OpGte: true, OpLt: true, OpLte: true,
}

// Validator rejects malformed or unsafe requests before compilation.
// It is a pure function of its input plus the schema and limit it was
// constructed with.
type Validator struct {
	schema   Schema
	maxLimit int
}

func NewValidator(schema Schema, maxLimit int) *Validator {
	return &Validator{schema: schema, maxLimit: maxLimit}
}

// Validate returns an accepted, normalized copy of the request or a
// *ValidationError identifying the offending filter. Normalization:
// missing event operator defaults to gte, missing logic operator to
// AND, and the limit is clamped silently to the configured maximum.
func (v *Validator) Validate(req Request) (Request, error) {
	out := Request{
		UserFilters:  make([]UserFilter, len(req.UserFilters)),
		EventFilters: make([]EventFilter, len(req.EventFilters)),
		Logic:        req.Logic,
		Limit:        req.Limit,
	}
	copy(out.UserFilters, req.UserFilters)
	copy(out.EventFilters, req.EventFilters)

	for _, f := range out.UserFilters {
		if err := v.validateUserFilter(f); err != nil {
			return Request{}, err
		}
	}

	for i, f := range out.EventFilters {
		if f.Operator == "" {
			f.Operator = OpGte
			out.EventFilters[i].Operator = OpGte
		}
		if err := validateEventFilter(f); err != nil {
			return Request{}, err
		}
	}

	out.Logic = LogicOperator(strings.ToUpper(string(out.Logic)))
	switch out.Logic {
	case "":
		out.Logic = LogicAnd
	case LogicAnd, LogicOr:
	default:
		return Request{}, &ValidationError{
			Field:  "logic_operator",
			Value:  string(out.Logic),
			Reason: "must be AND or OR",
		}
	}

	if out.Limit < 0 {
		return Request{}, &ValidationError{
			Field:  "limit",
			Value:  out.Limit,
			Reason: "must be a positive integer",
		}
	}
	if out.Limit == 0 || out.Limit > v.maxLimit {
		out.Limit = v.maxLimit
	}

	return out, nil
}

func (v *Validator) validateUserFilter(f UserFilter) error {
	fieldType, ok := v.schema[f.Field]
	if !ok {
		return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "unknown field"}
	}

	if !userOperators[f.Operator] {
		return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "operator not allowed for user filters"}
	}

	switch f.Operator {
	case OpIn, OpNotIn:
		list, ok := f.Value.([]interface{})
		if !ok {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "requires a list value"}
		}
		if len(list) == 0 {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "requires a non-empty list value"}
		}
		for _, item := range list {
			if reason := scalarTypeMismatch(fieldType, item); reason != "" {
				return &ValidationError{Field: f.Field, Operator: f.Operator, Value: item, Reason: reason}
			}
		}

	case OpLike:
		if fieldType != FieldTypeString {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "like is only valid on string fields"}
		}
		if _, ok := f.Value.(string); !ok {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "like requires a string value"}
		}

	default:
		if orderingOperators[f.Operator] && fieldType == FieldTypeString {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: "ordering comparison is only valid on numeric or date fields"}
		}
		if reason := scalarTypeMismatch(fieldType, f.Value); reason != "" {
			return &ValidationError{Field: f.Field, Operator: f.Operator, Value: f.Value, Reason: reason}
		}
	}

	return nil
}

func validateEventFilter(f EventFilter) error {
	if f.EventName == "" {
		return &ValidationError{Field: "event_name", Operator: f.Operator, Reason: "must not be empty"}
	}
	if !eventOperators[f.Operator] {
		return &ValidationError{Field: f.EventName, Operator: f.Operator, Value: f.Count, Reason: "operator not allowed for event filters"}
	}
	if f.Count < 0 {
		return &ValidationError{Field: f.EventName, Operator: f.Operator, Value: f.Count, Reason: "count must not be negative"}
	}
	if f.TimeRangeDays != nil && *f.TimeRangeDays <= 0 {
		return &ValidationError{Field: f.EventName, Operator: f.Operator, Value: *f.TimeRangeDays, Reason: "time_range_days must be positive"}
	}
	return nil
}

// scalarTypeMismatch reports why a scalar value does not match the
// field's declared type, or "" if it does. JSON numbers arrive as
// float64; date values arrive as YYYY-MM-DD strings.
func scalarTypeMismatch(fieldType FieldType, value interface{}) string {
	switch fieldType {
	case FieldTypeInt:
		switch value.(type) {
		case float64, float32, int, int32, int64:
			return ""
		}
		return fmt.Sprintf("expects a numeric value, got %T", value)

	case FieldTypeString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expects a string value, got %T", value)
		}
		return ""

	case FieldTypeDate:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expects a YYYY-MM-DD date string, got %T", value)
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Sprintf("expects a YYYY-MM-DD date string, got %q", s)
		}
		return ""
	}

	return "unsupported field type"
}
