// internal/query/condition.go
package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause predicate.
// Implementations return a SQL fragment using `?` bind variables and the
// argument values in the exact order the fragment references them.
type Condition interface {
	SQL() (string, []interface{})
}

// eqCondition implements equality comparison (column = value).
type eqCondition struct {
	column string
	value  interface{}
}

// Eq creates an equality predicate.
// Example: Eq("p.brand_id", 3) generates "p.brand_id = ?" with args [3].
func Eq(column string, value interface{}) Condition {
	return &eqCondition{column: column, value: value}
}

func (c *eqCondition) SQL() (string, []interface{}) {
	return fmt.Sprintf("%s = ?", c.column), []interface{}{c.value}
}

// likeCondition implements a case-insensitive substring match on one column.
type likeCondition struct {
	column string
	term   string
}

// Like creates a case-insensitive substring predicate.
// Example: Like("p.name", "Wid") generates "LOWER(p.name) LIKE ?" with args ["%wid%"].
func Like(column, term string) Condition {
	return &likeCondition{column: column, term: term}
}

func (c *likeCondition) SQL() (string, []interface{}) {
	pattern := "%" + strings.ToLower(c.term) + "%"
	return fmt.Sprintf("LOWER(%s) LIKE ?", c.column), []interface{}{pattern}
}

// Contains ORs a Like predicate for term across every column.
// A blank term yields nil so callers can skip it.
func Contains(term string, columns ...string) Condition {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return nil
	}

	conds := make([]Condition, 0, len(columns))
	for _, column := range columns {
		conds = append(conds, Like(column, term))
	}
	return Or(conds...)
}

// groupCondition joins child predicates with a logical operator.
type groupCondition struct {
	op    string
	conds []Condition
}

// Or combines predicates with OR inside a parenthesized group.
func Or(conds ...Condition) Condition {
	return &groupCondition{op: " OR ", conds: compact(conds)}
}

func (c *groupCondition) SQL() (string, []interface{}) {
	if len(c.conds) == 0 {
		return "1=1", nil
	}

	parts := make([]string, 0, len(c.conds))
	var args []interface{}
	for _, cond := range c.conds {
		fragment, condArgs := cond.SQL()
		parts = append(parts, fragment)
		args = append(args, condArgs...)
	}

	if len(parts) == 1 {
		return parts[0], args
	}
	return "(" + strings.Join(parts, c.op) + ")", args
}

// rawCondition is a constant fragment with no user input.
type rawCondition struct {
	fragment string
	args     []interface{}
}

// Raw wraps a fixed SQL fragment. Values must still go through args.
func Raw(fragment string, args ...interface{}) Condition {
	return &rawCondition{fragment: fragment, args: args}
}

func (c *rawCondition) SQL() (string, []interface{}) {
	return c.fragment, c.args
}

func compact(conds []Condition) []Condition {
	out := make([]Condition, 0, len(conds))
	for _, cond := range conds {
		if cond != nil {
			out = append(out, cond)
		}
	}
	return out
}
