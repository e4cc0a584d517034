package records

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/locagri/internal/dbx"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/query"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Select runs stmt and returns one Row per result row. Columns of embedded
// relations are nested under the relation name. The result is never nil.
func (r *PostgresRepository) Select(ctx context.Context, stmt *query.Statement) ([]rpc.Row, error) {
	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]rpc.Row, 0)
	for rows.Next() {
		values := make([]any, len(stmt.Columns))
		ptrs := make([]any, len(values))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, shape(stmt.Columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func shape(cols []query.Column, values []any) rpc.Row {
	row := rpc.Row{}
	for i, c := range cols {
		v := values[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}

		if c.Relation == "" {
			row[c.Name] = v
			continue
		}
		nested, ok := row[c.Relation].(rpc.Row)
		if !ok {
			nested = rpc.Row{}
			row[c.Relation] = nested
		}
		nested[c.Name] = v
	}
	return row
}
