// Package repomanager vends the remote store's repositories bound to a
// connection or transaction, and runs the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/locagri/internal/dbx"
	"github.com/dmitrijs2005/locagri/internal/server/repositories/records"
	"github.com/dmitrijs2005/locagri/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/locagri/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Records(db dbx.DBTX) records.Repository
}
