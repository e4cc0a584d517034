package query

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// coerce converts a wire-decoded filter value to the Go type matching t.
func coerce(v any, t ColumnType) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("null value")
	}

	switch t {
	case Text:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case Integer:
		switch n := v.(type) {
		case float64:
			if n == math.Trunc(n) && !math.IsInf(n, 0) {
				return int64(n), nil
			}
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case string:
			if i, err := strconv.ParseInt(n, 10, 64); err == nil {
				return i, nil
			}
		}
	case Float:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f, nil
			}
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Date, Timestamp:
		switch s := v.(type) {
		case time.Time:
			return s, nil
		case string:
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return ts, nil
			}
			if d, err := time.Parse(time.DateOnly, s); err == nil {
				return d, nil
			}
		}
	}

	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}
