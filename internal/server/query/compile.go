package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/jackc/pgx/v5"
)

const baseAlias = "t"

// Column is one selected column. Relation is empty for the queried table
// and names the embedded relation otherwise.
type Column struct {
	Relation string
	Name     string
}

// Statement is a compiled query ready to run.
type Statement struct {
	SQL     string
	Args    []any
	Columns []Column
	Single  bool
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorInvalidQuery, fmt.Sprintf(format, args...))
}

// Compile validates q against the catalog and builds its SQL. Embeds
// become inner joins. Rows are ordered by the table key, so the result
// order is stable across calls.
func (c *Catalog) Compile(q rpc.Query) (*Statement, error) {
	table, ok := c.Table(q.Table)
	if !ok {
		return nil, invalid("unknown table %q", q.Table)
	}
	if len(q.Columns) == 0 {
		return nil, invalid("no columns selected from %q", q.Table)
	}

	stmt := &Statement{Single: q.Single}
	var sel []string

	for _, col := range q.Columns {
		if _, ok := table.Columns[col]; !ok {
			return nil, invalid("unknown column %q in %q", col, table.Name)
		}
		sel = append(sel, pgx.Identifier{baseAlias, col}.Sanitize())
		stmt.Columns = append(stmt.Columns, Column{Name: col})
	}

	var joins []string
	seen := map[string]bool{}
	for i, e := range q.Embeds {
		rel, ok := table.Relations[e.Relation]
		if !ok {
			return nil, invalid("unknown relation %q on %q", e.Relation, table.Name)
		}
		if seen[e.Relation] {
			return nil, invalid("relation %q embedded twice", e.Relation)
		}
		seen[e.Relation] = true

		target, ok := c.Table(rel.Table)
		if !ok {
			return nil, invalid("relation %q points to unknown table %q", e.Relation, rel.Table)
		}
		if len(e.Columns) == 0 {
			return nil, invalid("no columns selected from relation %q", e.Relation)
		}

		alias := "j" + strconv.Itoa(i+1)
		for _, col := range e.Columns {
			if _, ok := target.Columns[col]; !ok {
				return nil, invalid("unknown column %q in %q", col, target.Name)
			}
			sel = append(sel, pgx.Identifier{alias, col}.Sanitize())
			stmt.Columns = append(stmt.Columns, Column{Relation: e.Relation, Name: col})
		}

		joins = append(joins, fmt.Sprintf("JOIN %s AS %s ON %s = %s",
			pgx.Identifier{target.Name}.Sanitize(),
			pgx.Identifier{alias}.Sanitize(),
			pgx.Identifier{alias, rel.ForeignColumn}.Sanitize(),
			pgx.Identifier{baseAlias, rel.LocalColumn}.Sanitize(),
		))
	}

	var where []string
	for _, f := range q.Filters {
		typ, ok := table.Columns[f.Column]
		if !ok {
			return nil, invalid("unknown filter column %q in %q", f.Column, table.Name)
		}
		v, err := coerce(f.Value, typ)
		if err != nil {
			return nil, invalid("filter on %q: %v", f.Column, err)
		}
		stmt.Args = append(stmt.Args, v)
		where = append(where, fmt.Sprintf("%s = $%d", pgx.Identifier{baseAlias, f.Column}.Sanitize(), len(stmt.Args)))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(sel, ", "))
	b.WriteString(" FROM ")
	b.WriteString(pgx.Identifier{table.Name}.Sanitize())
	b.WriteString(" AS ")
	b.WriteString(pgx.Identifier{baseAlias}.Sanitize())
	for _, j := range joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(pgx.Identifier{baseAlias, table.Key}.Sanitize())
	if q.Single {
		// two rows are enough to tell "exactly one" from "more than one"
		b.WriteString(" LIMIT 2")
	}

	stmt.SQL = b.String()
	return stmt, nil
}
