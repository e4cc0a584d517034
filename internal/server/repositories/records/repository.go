// Package records runs compiled record queries and shapes the result rows.
package records

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/query"
)

type Repository interface {
	Select(ctx context.Context, stmt *query.Statement) ([]rpc.Row, error)
}
