// internal/query/json.go
package query

import (
	"fmt"
	"strings"
)

// JSONField is one key of a JSON object built by the database.
type JSONField struct {
	Key  string
	Expr string
}

// JSONArrayAgg renders a dialect-specific aggregate that folds the rows of a
// sub-select into one JSON array of objects. Keys and expressions are
// compile-time constants; no user input reaches this text.
//
// Supported dialects: mysql, postgres, sqlite.
func JSONArrayAgg(dialect string, fields ...JSONField) (string, error) {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, fmt.Sprintf("'%s', %s", f.Key, f.Expr))
	}
	object := strings.Join(pairs, ", ")

	switch dialect {
	case "mysql":
		return fmt.Sprintf("JSON_ARRAYAGG(JSON_OBJECT(%s))", object), nil
	case "postgres":
		return fmt.Sprintf("json_agg(json_build_object(%s))", object), nil
	case "sqlite":
		return fmt.Sprintf("json_group_array(json_object(%s))", object), nil
	default:
		return "", fmt.Errorf("json aggregation not supported for dialect %q", dialect)
	}
}

// SubArray wraps JSONArrayAgg into a correlated sub-select aliased as alias.
func SubArray(dialect, from, where, alias string, fields ...JSONField) (string, error) {
	agg, err := JSONArrayAgg(dialect, fields...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(SELECT %s FROM %s WHERE %s) AS %s", agg, from, where, alias), nil
}
