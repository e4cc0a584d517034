package rpc

import (
	"fmt"
	"math"
	"time"

	pb "github.com/dmitrijs2005/locagri/internal/proto"
)

// ToProtoQuery converts q to its wire form. Filter values must be
// representable by ToProtoValue.
func ToProtoQuery(q Query) (*pb.Query, error) {
	out := &pb.Query{Table: q.Table, Columns: q.Columns, Single: q.Single}
	for _, f := range q.Filters {
		v, err := ToProtoValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", f.Column, err)
		}
		out.Filters = append(out.Filters, &pb.Filter{Column: f.Column, Value: v})
	}
	for _, e := range q.Embeds {
		out.Embeds = append(out.Embeds, &pb.Embed{Relation: e.Relation, Columns: e.Columns})
	}
	return out, nil
}

func FromProtoQuery(q *pb.Query) Query {
	out := Query{Table: q.GetTable(), Columns: q.GetColumns(), Single: q.GetSingle()}
	for _, f := range q.GetFilters() {
		out.Filters = append(out.Filters, Filter{Column: f.GetColumn(), Value: FromProtoValue(f.GetValue())})
	}
	for _, e := range q.GetEmbeds() {
		out.Embeds = append(out.Embeds, Embed{Relation: e.GetRelation(), Columns: e.GetColumns()})
	}
	return out
}

func ToProtoRows(rows []Row) ([]*pb.Row, error) {
	out := make([]*pb.Row, 0, len(rows))
	for _, r := range rows {
		pr, err := ToProtoRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

// FromProtoRows never returns nil.
func FromProtoRows(rows []*pb.Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromProtoRow(r))
	}
	return out
}

func ToProtoRow(r Row) (*pb.Row, error) {
	out := &pb.Row{Fields: make(map[string]*pb.Value, len(r))}
	for k, v := range r {
		pv, err := ToProtoValue(v)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", k, err)
		}
		out.Fields[k] = pv
	}
	return out, nil
}

func FromProtoRow(r *pb.Row) Row {
	out := make(Row, len(r.GetFields()))
	for k, v := range r.GetFields() {
		out[k] = FromProtoValue(v)
	}
	return out
}

// ToProtoValue maps a column value to a Value. Integers keep their int64
// form, nil becomes a Value with no kind, and times are sent as RFC 3339
// text.
func ToProtoValue(v any) (*pb.Value, error) {
	switch x := v.(type) {
	case nil:
		return &pb.Value{}, nil
	case bool:
		return &pb.Value{Kind: &pb.Value_BoolValue{BoolValue: x}}, nil
	case int:
		return intValue(int64(x)), nil
	case int8:
		return intValue(int64(x)), nil
	case int16:
		return intValue(int64(x)), nil
	case int32:
		return intValue(int64(x)), nil
	case int64:
		return intValue(x), nil
	case uint8:
		return intValue(int64(x)), nil
	case uint16:
		return intValue(int64(x)), nil
	case uint32:
		return intValue(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", x)
		}
		return intValue(int64(x)), nil
	case float32:
		return &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: float64(x)}}, nil
	case float64:
		return &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: x}}, nil
	case string:
		return stringValue(x), nil
	case []byte:
		return stringValue(string(x)), nil
	case time.Time:
		return stringValue(x.Format(time.RFC3339Nano)), nil
	case map[string]any:
		r, err := ToProtoRow(x)
		if err != nil {
			return nil, err
		}
		return &pb.Value{Kind: &pb.Value_RowValue{RowValue: r}}, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func intValue(n int64) *pb.Value {
	return &pb.Value{Kind: &pb.Value_IntValue{IntValue: n}}
}

func stringValue(s string) *pb.Value {
	return &pb.Value{Kind: &pb.Value_StringValue{StringValue: s}}
}

// FromProtoValue is the inverse of ToProtoValue: int64, float64, bool,
// string, nested Row or nil.
func FromProtoValue(v *pb.Value) any {
	switch k := v.GetKind().(type) {
	case *pb.Value_BoolValue:
		return k.BoolValue
	case *pb.Value_IntValue:
		return k.IntValue
	case *pb.Value_DoubleValue:
		return k.DoubleValue
	case *pb.Value_StringValue:
		return k.StringValue
	case *pb.Value_RowValue:
		return FromProtoRow(k.RowValue)
	default:
		return nil
	}
}
