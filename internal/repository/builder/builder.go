package builder

import (
	"fmt"
	"strings"
)

// SQLBuilder helps construct postgres queries dynamically.
// Conditions use "?" placeholders which Build rewrites to $1, $2, ...
type SQLBuilder struct {
	table     string
	columns   []string
	values    []interface{}
	where     []string
	whereArgs []interface{}
	limit     int
	conflict  *conflictClause
	kind      queryKind
}

type queryKind int

const (
	kindSelect queryKind = iota + 1
	kindInsert
	kindDelete
)

// conflictClause describes an INSERT ... ON CONFLICT target and its update columns
type conflictClause struct {
	target     []string
	updateCols []string
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.kind = kindSelect
	b.columns = cols
	return b
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.kind = kindInsert
	b.table = table
	b.columns = cols
	return b
}

// Delete specifies the table to delete from.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.kind = kindDelete
	b.table = table
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Values specifies the values for insertion.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.values = vals
	return b
}

// OnConflict turns an insert into an upsert: rows colliding on target get
// updateCols overwritten with the incoming (EXCLUDED) values.
func (b *SQLBuilder) OnConflict(target []string, updateCols ...string) *SQLBuilder {
	b.conflict = &conflictClause{target: target, updateCols: updateCols}
	return b
}

// Where adds a condition to the query. Conditions are combined with AND.
func (b *SQLBuilder) Where(condition string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition)
	b.whereArgs = append(b.whereArgs, args...)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// BuildSafe is Build plus a check that every placeholder has an argument.
func (b *SQLBuilder) BuildSafe() (string, []interface{}, error) {
	if b.kind == 0 {
		return "", nil, fmt.Errorf("query type not set")
	}
	if b.table == "" {
		return "", nil, fmt.Errorf("table not set")
	}
	if b.kind == kindInsert && len(b.columns) != len(b.values) {
		return "", nil, fmt.Errorf("column count (%d) does not match value count (%d)", len(b.columns), len(b.values))
	}
	placeholders := 0
	for _, w := range b.where {
		placeholders += strings.Count(w, "?")
	}
	if placeholders != len(b.whereArgs) {
		return "", nil, fmt.Errorf("placeholder count (%d) does not match argument count (%d)", placeholders, len(b.whereArgs))
	}
	query, args := b.Build()
	return query, args, nil
}

// Build constructs the final SQL string and arguments.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}
	argIndex := 1

	switch b.kind {
	case kindSelect:
		sb.WriteString("SELECT ")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(" FROM ")
		sb.WriteString(b.table)
	case kindInsert:
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		placeholders := make([]string, len(b.values))
		for i := range b.values {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			argIndex++
		}
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")")
		args = append(args, b.values...)
		if b.conflict != nil {
			sb.WriteString(" ON CONFLICT (")
			sb.WriteString(strings.Join(b.conflict.target, ", "))
			sb.WriteString(")")
			if len(b.conflict.updateCols) == 0 {
				sb.WriteString(" DO NOTHING")
			} else {
				sets := make([]string, len(b.conflict.updateCols))
				for i, col := range b.conflict.updateCols {
					sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
				}
				sb.WriteString(" DO UPDATE SET ")
				sb.WriteString(strings.Join(sets, ", "))
			}
		}
	case kindDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(b.table)
	}

	if len(b.where) > 0 && b.kind != kindInsert {
		sb.WriteString(" WHERE ")
		parts := strings.Split(strings.Join(b.where, " AND "), "?")
		for i, part := range parts {
			sb.WriteString(part)
			if i < len(parts)-1 {
				sb.WriteString(fmt.Sprintf("$%d", argIndex))
				argIndex++
			}
		}
		args = append(args, b.whereArgs...)
	}

	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}

	return sb.String(), args
}
