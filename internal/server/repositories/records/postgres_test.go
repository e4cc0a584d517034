package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func compile(t *testing.T, q rpc.Query) *query.Statement {
	t.Helper()
	stmt, err := query.DefaultCatalog().Compile(q)
	require.NoError(t, err)
	return stmt
}

func TestSelect_NestsEmbeddedColumns(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	stmt := compile(t, rpc.Query{Table: "operators", Columns: []string{"cin_id", "last_name", "birth_date"}}.
		Join("operator_types", "label"))

	born := time.Date(1975, 2, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(stmt.SQL).WillReturnRows(
		sqlmock.NewRows([]string{"cin_id", "last_name", "birth_date", "label"}).
			AddRow([]byte("AB1"), "Alami", born, "Agriculteur").
			AddRow("ZZ9", "Zola", nil, "Eleveur"),
	)

	rows, err := repo.Select(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, rpc.Row{
		"cin_id":         "AB1",
		"last_name":      "Alami",
		"birth_date":     born,
		"operator_types": rpc.Row{"label": "Agriculteur"},
	}, rows[0])
	assert.Nil(t, rows[1]["birth_date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_PassesArgs(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	stmt := compile(t, rpc.Query{Table: "land_plots", Columns: []string{"position_id", "area_sqm"}}.Eq("owner_cin", "AB1"))

	mock.ExpectQuery(stmt.SQL).WithArgs("AB1").WillReturnRows(
		sqlmock.NewRows([]string{"position_id", "area_sqm"}).AddRow(int64(4), 1250.5),
	)

	rows, err := repo.Select(context.Background(), stmt)
	require.NoError(t, err)
	assert.Equal(t, []rpc.Row{{"position_id": int64(4), "area_sqm": 1250.5}}, rows)
}

func TestSelect_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	stmt := compile(t, rpc.Query{Table: "positions", Columns: []string{"latitude"}})
	mock.ExpectQuery(stmt.SQL).WillReturnRows(sqlmock.NewRows([]string{"latitude"}))

	rows, err := repo.Select(context.Background(), stmt)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSelect_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	stmt := compile(t, rpc.Query{Table: "positions", Columns: []string{"latitude"}})
	mock.ExpectQuery(stmt.SQL).WillReturnError(errors.New("conn reset"))

	_, err := repo.Select(context.Background(), stmt)
	require.ErrorContains(t, err, "db error: conn reset")
}

func TestSelect_RowError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	stmt := compile(t, rpc.Query{Table: "positions", Columns: []string{"latitude"}})
	mock.ExpectQuery(stmt.SQL).WillReturnRows(
		sqlmock.NewRows([]string{"latitude"}).AddRow(1.0).RowError(0, errors.New("broken row")),
	)

	_, err := repo.Select(context.Background(), stmt)
	require.ErrorContains(t, err, "broken row")
}
