package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/dmitrijs2005/locagri/internal/server/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryService(t *testing.T, rec *fakeRecordsRepo) *QueryService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewQueryService(db, &fakeRepoManager{rec: rec}, query.DefaultCatalog())
}

func TestQueryService_Run(t *testing.T) {
	rec := &fakeRecordsRepo{rows: []rpc.Row{{"cin_id": "AB1"}, {"cin_id": "ZZ9"}}}
	s := newQueryService(t, rec)

	rows, err := s.Run(context.Background(), rpc.Query{Table: "operators", Columns: []string{"cin_id"}})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Contains(t, rec.gotSQL, `FROM "operators"`)
}

func TestQueryService_InvalidQuery(t *testing.T) {
	s := newQueryService(t, &fakeRecordsRepo{})

	_, err := s.Run(context.Background(), rpc.Query{Table: "users", Columns: []string{"email"}})
	assert.ErrorIs(t, err, common.ErrorInvalidQuery)
}

func TestQueryService_Single(t *testing.T) {
	q := rpc.Query{Table: "positions", Columns: []string{"latitude", "longitude"}, Single: true}.Eq("position_id", 1)

	tests := []struct {
		name    string
		rows    []rpc.Row
		wantErr error
	}{
		{"exactly one", []rpc.Row{{"latitude": 1.0}}, nil},
		{"none", []rpc.Row{}, common.ErrorNotFound},
		{"several", []rpc.Row{{}, {}}, common.ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQueryService(t, &fakeRecordsRepo{rows: tt.rows})
			rows, err := s.Run(context.Background(), q)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rows, 1)
		})
	}
}

func TestQueryService_RepoError(t *testing.T) {
	s := newQueryService(t, &fakeRecordsRepo{err: errors.New("conn reset")})

	_, err := s.Run(context.Background(), rpc.Query{Table: "positions", Columns: []string{"latitude"}})
	assert.ErrorIs(t, err, common.ErrorInternal)
}
