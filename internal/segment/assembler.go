package segment

import "strings"

// Assembler combines compiled fragments into one final statement with
// projection, deterministic ordering, and a bound limit.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Build produces the final query. Fragments within each group are
// always AND-combined; only the boundary between the attribute group
// and the event group uses the top-level logic operator. An empty
// group is absent rather than vacuously true or false: the WHERE
// clause is built from the non-empty groups only, so a request with a
// single group behaves identically under AND and OR.
func (a *Assembler) Build(userFrags, eventFrags []Fragment, logic LogicOperator, limit int) Statement {
	var args []interface{}

	userGroup := conjoin(userFrags, &args)
	eventGroup := conjoin(eventFrags, &args)

	var sb strings.Builder
	sb.WriteString("SELECT DISTINCT ua.user_id FROM user_attributes ua")

	switch {
	case userGroup != "" && eventGroup != "":
		sb.WriteString(" WHERE (")
		sb.WriteString(userGroup)
		sb.WriteString(") ")
		sb.WriteString(string(logic))
		sb.WriteString(" (")
		sb.WriteString(eventGroup)
		sb.WriteString(")")
	case userGroup != "":
		sb.WriteString(" WHERE ")
		sb.WriteString(userGroup)
	case eventGroup != "":
		sb.WriteString(" WHERE ")
		sb.WriteString(eventGroup)
	}

	sb.WriteString(" ORDER BY ua.user_id LIMIT ?")
	args = append(args, limit)

	return Statement{SQL: sb.String(), Args: args}
}

// conjoin AND-joins a fragment group, appending its bound values to
// args in fragment order.
func conjoin(frags []Fragment, args *[]interface{}) string {
	if len(frags) == 0 {
		return ""
	}

	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = "(" + f.SQL + ")"
		*args = append(*args, f.Args...)
	}

	return strings.Join(parts, " AND ")
}
