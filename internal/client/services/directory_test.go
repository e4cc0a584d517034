package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func operatorRow(cin, last, first string, male bool) rpc.Row {
	return rpc.Row{
		"cin_id":         cin,
		"last_name":      last,
		"first_name":     first,
		"sex":            male,
		"birth_date":     "1980-05-12T00:00:00Z",
		"created_at":     "2024-01-02T10:00:00Z",
		"type_id":        float64(1),
		"operator_types": map[string]any{"label": "Agriculteur"},
	}
}

func TestDirectoryLoader_LoadAll(t *testing.T) {
	store := &fakeStore{
		queryFn: func(rpc.Query) ([]rpc.Row, error) {
			return []rpc.Row{
				operatorRow("C", "Zola", "Émile", true),
				operatorRow("B", "Martin", "Luc", true),
				operatorRow("A", "Alami", "Amine", false),
			}, nil
		},
		urlFn: func(b, p string) (string, error) {
			switch p {
			case "Agriculteur_PP/A.png":
				return "http://s3/A.png", nil
			case "Agriculteur_PP/C.png":
				return "http://s3/C.png", nil
			case "Agriculteur_PP/Default.png":
				return "http://s3/Default.png", nil
			}
			return "", errors.New("not found")
		},
	}
	cfg := testConfig()
	l := NewDirectoryLoader(store, NewImageResolver(store, cfg, logging.NewDiscardLogger()), cfg, logging.NewDiscardLogger())

	res := l.LoadAll(context.Background())
	require.Equal(t, StatusOK, res.Status)
	require.Len(t, res.Value, 3)

	var names, urls []string
	for _, o := range res.Value {
		names = append(names, o.FullName())
		urls = append(urls, o.ImageURL)
	}
	assert.Equal(t, []string{"Alami Amine", "Martin Luc", "Zola Émile"}, names)
	assert.Equal(t, []string{"http://s3/A.png", "http://s3/Default.png", "http://s3/C.png"}, urls)

	assert.Equal(t, "Agriculteur", res.Value[0].TypeLabel)
	assert.Equal(t, int64(1), res.Value[0].TypeID)
	assert.False(t, res.Value[0].Male)

	require.NotEmpty(t, store.queries)
	q := store.queries[0]
	assert.Equal(t, "operators", q.Table)
	assert.Equal(t, []string{"cin_id", "last_name", "first_name", "sex", "birth_date", "created_at", "type_id"}, q.Columns)
	assert.Equal(t, []rpc.Embed{{Relation: "operator_types", Columns: []string{"label"}}}, q.Embeds)
}

func TestDirectoryLoader_Empty(t *testing.T) {
	store := &fakeStore{queryFn: func(rpc.Query) ([]rpc.Row, error) { return []rpc.Row{}, nil }}
	cfg := testConfig()
	l := NewDirectoryLoader(store, NewImageResolver(store, cfg, logging.NewDiscardLogger()), cfg, logging.NewDiscardLogger())

	res := l.LoadAll(context.Background())
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Empty(t, res.Items())
	assert.NoError(t, res.Err)
}

func TestDirectoryLoader_QueryFailure(t *testing.T) {
	boom := errors.New("permission denied")
	store := &fakeStore{queryFn: func(rpc.Query) ([]rpc.Row, error) { return nil, boom }}
	cfg := testConfig()
	l := NewDirectoryLoader(store, NewImageResolver(store, cfg, logging.NewDiscardLogger()), cfg, logging.NewDiscardLogger())

	res := l.LoadAll(context.Background())
	assert.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, boom)
	assert.Empty(t, res.Items())
	assert.Empty(t, store.paths, "no image lookups after a failed query")
}

func TestDirectoryLoader_SkipsMalformedRows(t *testing.T) {
	store := &fakeStore{
		queryFn: func(rpc.Query) ([]rpc.Row, error) {
			return []rpc.Row{{"last_name": "NoID"}, operatorRow("A", "Alami", "Sara", false)}, nil
		},
		urlFn: func(string, string) (string, error) { return "u", nil },
	}
	cfg := testConfig()
	l := NewDirectoryLoader(store, NewImageResolver(store, cfg, logging.NewDiscardLogger()), cfg, logging.NewDiscardLogger())

	res := l.LoadAll(context.Background())
	require.Equal(t, StatusOK, res.Status)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "A", res.Value[0].CIN)
}

func TestSortByFamilyName_LocaleAwareAndStable(t *testing.T) {
	ops := []models.Operator{
		{CIN: "1", LastName: "Zola"},
		{CIN: "2", LastName: "Élie"},
		{CIN: "3", LastName: "alami"},
		{CIN: "4", LastName: "Elie"},
		{CIN: "5", LastName: "Alami"},
	}
	SortByFamilyName(ops, language.French)

	var got []string
	for _, o := range ops {
		got = append(got, o.CIN)
	}
	assert.Equal(t, "1", got[len(got)-1], "Zola sorts last, after accented names")
	assert.Less(t, indexOf(got, "2"), indexOf(got, "1"))
	assert.Less(t, indexOf(got, "3"), indexOf(got, "4"))
}

func TestSortByFamilyName_EqualNamesKeepInputOrder(t *testing.T) {
	ops := []models.Operator{
		{CIN: "Z1", LastName: "Zola"},
		{CIN: "B3", LastName: "Bennani", FirstName: "Omar"},
		{CIN: "A1", LastName: "Alami"},
		{CIN: "B1", LastName: "Bennani", FirstName: "Yasmine"},
		{CIN: "B2", LastName: "Bennani", FirstName: "Ali"},
	}
	SortByFamilyName(ops, language.French)

	var got []string
	for _, o := range ops {
		got = append(got, o.CIN)
	}
	assert.Equal(t, []string{"A1", "B3", "B1", "B2", "Z1"}, got)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "failed", StatusFailed.String())

	r := Failed[[]int](errors.New("x"))
	assert.Nil(t, r.Items())
	assert.Equal(t, []int{1}, OK([]int{1}).Items())
}
