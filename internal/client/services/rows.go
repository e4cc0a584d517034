package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/rpc"
)

func text(row rpc.Row, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func number(row rpc.Row, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func boolean(row rpc.Row, key string) bool {
	switch v := row[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// nested returns the embedded relation row, if present.
func nested(row rpc.Row, relation string) (rpc.Row, bool) {
	switch v := row[relation].(type) {
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}

func operatorFromRow(row rpc.Row) (models.Operator, error) {
	o := models.Operator{
		CIN:       text(row, "cin_id"),
		LastName:  text(row, "last_name"),
		FirstName: text(row, "first_name"),
		Male:      boolean(row, "sex"),
		BirthDate: text(row, "birth_date"),
		CreatedAt: text(row, "created_at"),
	}
	if o.CIN == "" {
		return o, fmt.Errorf("row without cin_id")
	}
	if id, ok := number(row, "type_id"); ok {
		o.TypeID = int64(id)
	}
	if t, ok := nested(row, "operator_types"); ok {
		o.TypeLabel = text(t, "label")
	}
	return o, nil
}

func positionFromRow(row rpc.Row) (models.Position, bool) {
	lat, ok1 := number(row, "latitude")
	lng, ok2 := number(row, "longitude")
	if !ok1 || !ok2 {
		return models.Position{}, false
	}
	return models.Position{Latitude: lat, Longitude: lng}, true
}
