package rpc

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/locagri/internal/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestQueryBuilders_DoNotAlias(t *testing.T) {
	base := Query{Table: "land_plots", Columns: []string{"area_sqm"}}
	a := base.Eq("owner_cin", "A")
	b := base.Eq("owner_cin", "B").Join("positions", "latitude", "longitude")

	assert.Empty(t, base.Filters)
	assert.Equal(t, "A", a.Filters[0].Value)
	assert.Equal(t, "B", b.Filters[0].Value)
	assert.Empty(t, a.Embeds)
	assert.Equal(t, []Embed{{Relation: "positions", Columns: []string{"latitude", "longitude"}}}, b.Embeds)
}

// overWire marshals m with the protobuf codec and decodes it into a fresh
// message of the same type.
func overWire[M proto.Message](t *testing.T, m M, fresh M) M {
	t.Helper()
	b, err := proto.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, proto.Unmarshal(b, fresh))
	return fresh
}

func TestQuery_RoundTrip(t *testing.T) {
	q := Query{Table: "positions", Columns: []string{"latitude", "longitude"}, Single: true}.
		Eq("position_id", int64(9007199254740993)).
		Eq("owner_cin", "AB1").
		Join("operator_types", "label")

	pq, err := ToProtoQuery(q)
	require.NoError(t, err)

	got := FromProtoQuery(overWire(t, pq, &pb.Query{}))
	if diff := cmp.Diff(q, got); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}
	assert.IsType(t, int64(0), got.Filters[0].Value)
}

func TestQuery_UnsupportedFilterValue(t *testing.T) {
	_, err := ToProtoQuery(Query{Table: "operators"}.Eq("cin_id", struct{}{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `filter "cin_id"`)
}

func TestRows_RoundTripKeepsTypes(t *testing.T) {
	born := time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{
			"cin_id":         "AB1",
			"type_id":        int32(2),
			"position_id":    int64(1) << 60,
			"area_sqm":       1500.25,
			"sex":            true,
			"birth_date":     born,
			"note":           []byte("raw"),
			"deleted_at":     nil,
			"operator_types": Row{"label": "Agriculteur"},
		},
	}

	pr, err := ToProtoRows(rows)
	require.NoError(t, err)

	resp := overWire(t, &pb.QueryResponse{Rows: pr}, &pb.QueryResponse{})
	got := FromProtoRows(resp.GetRows())

	want := []Row{
		{
			"cin_id":         "AB1",
			"type_id":        int64(2),
			"position_id":    int64(1) << 60,
			"area_sqm":       1500.25,
			"sex":            true,
			"birth_date":     "1980-05-12T00:00:00Z",
			"note":           "raw",
			"deleted_at":     nil,
			"operator_types": Row{"label": "Agriculteur"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRows_Empty(t *testing.T) {
	got := FromProtoRows(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestToProtoValue_Errors(t *testing.T) {
	_, err := ToProtoValue(uint64(1) << 63)
	assert.Error(t, err)

	_, err = ToProtoRow(Row{"bad": []int{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "bad"`)
}

func TestFromProtoValue_NilIsNull(t *testing.T) {
	assert.Nil(t, FromProtoValue(nil))
	assert.Nil(t, FromProtoValue(&pb.Value{}))
}
