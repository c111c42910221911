// internal/query/builder.go
package query

import "strings"

// Statement is a finished SQL text plus its positional arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

// Builder constructs SELECT statements from a shared predicate list.
// Every method returns a copy, so a base builder can feed both the data
// query and its Count() without the two drifting apart.
type Builder struct {
	table      string
	joins      []string
	selectCols []string
	where      []Condition
	orderBy    []string
	limitVal   int
	offsetVal  int
}

// From creates a new Builder for the given table expression, e.g. "products p".
func From(table string) *Builder {
	return &Builder{table: table}
}

// Join appends a JOIN clause. Joins are kept by Count().
func (b *Builder) Join(clause string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, clause)
	return nb
}

// Select appends projection expressions.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where appends predicates, AND-combined at the top level. Nil entries are ignored.
func (b *Builder) Where(conds ...Condition) *Builder {
	nb := b.clone()
	nb.where = append(nb.where, compact(conds)...)
	return nb
}

// OrderBy appends ORDER BY expressions. Callers pass whitelisted columns only.
func (b *Builder) OrderBy(exprs ...string) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, exprs...)
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a builder for SELECT COUNT(*) over the same FROM, JOIN and
// WHERE clauses, with ordering and paging cleared.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderBy = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build renders the statement.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	var args []interface{}

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, join := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(join)
	}

	if len(b.where) > 0 {
		parts := make([]string, 0, len(b.where))
		for _, cond := range b.where {
			fragment, condArgs := cond.SQL()
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ?")
		args = append(args, b.limitVal)

		if b.offsetVal > 0 {
			sql.WriteString(" OFFSET ?")
			args = append(args, b.offsetVal)
		}
	}

	return Statement{SQL: sql.String(), Args: args}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:      b.table,
		joins:      make([]string, len(b.joins)),
		selectCols: make([]string, len(b.selectCols)),
		where:      make([]Condition, len(b.where)),
		orderBy:    make([]string, len(b.orderBy)),
		limitVal:   b.limitVal,
		offsetVal:  b.offsetVal,
	}
	copy(nb.joins, b.joins)
	copy(nb.selectCols, b.selectCols)
	copy(nb.where, b.where)
	copy(nb.orderBy, b.orderBy)
	return nb
}
