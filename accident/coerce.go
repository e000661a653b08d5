package accident

import (
	"math"
	"strconv"
	"strings"
)

// CoerceYear normalizes a year argument to an integer. Callers may pass any
// integer or float kind, or a string holding a decimal representation;
// fractional values are truncated. Anything else fails with InvalidYearError.
func CoerceYear(v any) (int, error) {
	n, ok := coerceInt(v)
	if !ok {
		return 0, InvalidYearError{Value: v}
	}
	return n, nil
}

// CoerceState normalizes a state-code argument to an integer, with the same
// acceptance rules as CoerceYear. Fails with InvalidStateError.
func CoerceState(v any) (int, error) {
	n, ok := coerceInt(v)
	if !ok {
		return 0, InvalidStateError{Value: v}
	}
	return n, nil
}

// coerceInt converts the supported argument kinds to an int, truncating
// fractional numerics the way the source tooling did.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	default:
		return 0, false
	}
}

// floatToInt truncates a finite float to an int. Inf and NaN have no integer
// value; truncating them is implementation-defined, so they are rejected.
func floatToInt(f float64) (int, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}
