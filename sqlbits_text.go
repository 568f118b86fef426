package sqlbits

import (
	"math"
	r "reflect"
	"strconv"
)

/*
Numeric text for LIMIT and OFFSET. Accepts integers, finite floats and strings
that parse as numbers, optionally boxed in a `Param`. Anything else, including
absent params, is 0.
*/
func numberString(src any) string {
	if param, ok := src.(Param); ok {
		if !param.Valid {
			return `0`
		}
		src = param.Val
	}

	val := r.ValueOf(src)
	for val.Kind() == r.Ptr {
		if val.IsNil() {
			return `0`
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case r.Int8, r.Int16, r.Int32, r.Int64, r.Int:
		return strconv.FormatInt(val.Int(), 10)

	case r.Uint8, r.Uint16, r.Uint32, r.Uint64, r.Uint:
		return strconv.FormatUint(val.Uint(), 10)

	case r.Float32, r.Float64:
		return floatString(val.Float())

	case r.String:
		num, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return `0`
		}
		return floatString(num)

	default:
		return `0`
	}
}

// Encodes floats without the scientific notation.
func floatString(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return `0`
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}
