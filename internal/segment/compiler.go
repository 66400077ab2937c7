package segment

import (
	"fmt"
	"strings"
)

// scalarOperatorSQL is the exhaustive operator-to-SQL lookup for
// row-level and count comparisons. in/not_in/like have their own
// templates and do not appear here.
var scalarOperatorSQL = map[Operator]string{
	OpEq:  "=",
	OpNe:  "<>",
	OpGt:  ">",
	OpGte: ">=",
	OpLt:  "<",
	OpLte: "<=",
}

// Compiler turns one validated filter into a parameterized predicate
// fragment. User-supplied values are always emitted as bound
// parameters; the only unparameterized identifiers are column names
// drawn from the schema whitelist.
type Compiler struct {
	schema Schema
}

func NewCompiler(schema Schema) *Compiler {
	return &Compiler{schema: schema}
}

// CompileUserFilter maps an attribute predicate to a row-level test on
// the user_attributes relation. A filter that passed validation but
// misses the compiler's whitelist is a *ConfigurationError.
func (c *Compiler) CompileUserFilter(f UserFilter) (Fragment, error) {
	if _, ok := c.schema[f.Field]; !ok {
		return Fragment{}, &ConfigurationError{Detail: fmt.Sprintf("field %q missing from compiler schema", f.Field)}
	}
	column := "ua." + f.Field

	switch f.Operator {
	case OpIn, OpNotIn:
		list, ok := f.Value.([]interface{})
		if !ok || len(list) == 0 {
			return Fragment{}, &ConfigurationError{Detail: fmt.Sprintf("operator %q reached the compiler without a list value", f.Operator)}
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(list)), ", ")
		keyword := " IN ("
		if f.Operator == OpNotIn {
			keyword = " NOT IN ("
		}
		return Fragment{SQL: column + keyword + placeholders + ")", Args: list}, nil

	case OpLike:
		s, ok := f.Value.(string)
		if !ok {
			return Fragment{}, &ConfigurationError{Detail: "like operator reached the compiler without a string value"}
		}
		return Fragment{SQL: column + " LIKE ?", Args: []interface{}{"%" + s + "%"}}, nil

	default:
		op, ok := scalarOperatorSQL[f.Operator]
		if !ok {
			return Fragment{}, &ConfigurationError{Detail: fmt.Sprintf("operator %q missing from operator table", f.Operator)}
		}
		return Fragment{SQL: column + " " + op + " ?", Args: []interface{}{f.Value}}, nil
	}
}

// CompileEventFilter maps an event predicate to a correlated count
// aggregation over the user_events relation. The correlated COUNT(*)
// evaluates to 0 for users with no matching rows, so zero-count
// comparisons (eq 0, lte) include users that never produced the event.
func (c *Compiler) CompileEventFilter(f EventFilter) (Fragment, error) {
	op, ok := scalarOperatorSQL[f.Operator]
	if !ok {
		return Fragment{}, &ConfigurationError{Detail: fmt.Sprintf("event operator %q missing from operator table", f.Operator)}
	}

	var sb strings.Builder
	sb.WriteString("(SELECT COUNT(*) FROM user_events ue WHERE ue.user_id = ua.user_id AND ue.event_name = ?")
	args := []interface{}{f.EventName}

	if f.TimeRangeDays != nil {
		sb.WriteString(" AND ue.timestamp >= CURRENT_TIMESTAMP - ? * INTERVAL 1 DAY")
		args = append(args, *f.TimeRangeDays)
	}

	sb.WriteString(") ")
	sb.WriteString(op)
	sb.WriteString(" ?")
	args = append(args, f.Count)

	return Fragment{SQL: sb.String(), Args: args}, nil
}
