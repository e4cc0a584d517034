package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/query"
	"github.com/dmitrijs2005/locagri/internal/server/repositories/repomanager"
)

type QueryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	catalog     *query.Catalog
}

func NewQueryService(db *sql.DB, m repomanager.RepositoryManager, catalog *query.Catalog) *QueryService {
	return &QueryService{db: db, repomanager: m, catalog: catalog}
}

// Run executes q. A Single query that does not match exactly one row fails
// with common.ErrorNotFound.
func (s *QueryService) Run(ctx context.Context, q rpc.Query) ([]rpc.Row, error) {
	stmt, err := s.catalog.Compile(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repomanager.Records(s.db).Select(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if stmt.Single && len(rows) != 1 {
		return nil, fmt.Errorf("%w: expected a single row, got %d", common.ErrorNotFound, len(rows))
	}
	return rows, nil
}
