package sqlbits

import (
	r "reflect"
	"sort"

	"github.com/mitranim/refut"
)

// Struct tag used for reading column names from struct payloads.
const TagNameDb = `db`

// Single column-value entry of a keyed payload.
type Pair struct {
	Key string
	Val any
}

/*
Ordered keyed payload, accepted by `Set`, `InsertInto` and as the first
argument of `And`, `Or`, `Where` and `On`. Those also accept:

	* Maps with string keys. Go maps are unordered, so keys are sorted.
	* Structs and struct pointers. Fields tagged with `db` are read in
	  declaration order, treating embedded structs as part of the enclosing
	  struct. A nil pointer is an empty payload.

Use `Pairs` when column order matters and a struct is inconvenient.
*/
type Pairs []Pair

// Returns the keys in order.
func (self Pairs) Keys() []string {
	if len(self) == 0 {
		return nil
	}
	out := make([]string, len(self))
	for ind, pair := range self {
		out[ind] = pair.Key
	}
	return out
}

// Returns the values in order, boxed with `P`. Absent values stay absent.
func (self Pairs) Params() []Param {
	if len(self) == 0 {
		return nil
	}
	out := make([]Param, len(self))
	for ind, pair := range self {
		out[ind] = P(pair.Val)
	}
	return out
}

// Appends an entry, returning the modified payload.
func (self Pairs) Add(key string, val any) Pairs {
	return append(self, Pair{key, val})
}

/*
Converts a supported payload to `Pairs`. The boolean indicates whether the input
is a payload at all; nil pointers to structs are payloads without entries.
*/
func payloadOf(src any) (Pairs, bool) {
	switch src := src.(type) {
	case nil:
		return nil, false
	case Pairs:
		return src, true
	case []Pair:
		return Pairs(src), true
	case map[string]any:
		return mapPairs(r.ValueOf(src)), true
	}

	rval := r.ValueOf(src)
	rtype := rval.Type()
	if isScannableRtype(rtype) {
		return nil, false
	}

	switch refut.RtypeDeref(rtype).Kind() {
	case r.Map:
		if refut.RtypeDeref(rtype).Key().Kind() != r.String {
			return nil, false
		}
		if refut.IsRvalNil(rval) {
			return nil, true
		}
		return mapPairs(derefRval(rval)), true

	case r.Struct:
		if refut.IsRvalNil(rval) {
			return nil, true
		}
		return structPairs(derefRval(rval)), true

	default:
		return nil, false
	}
}

func mapPairs(rval r.Value) Pairs {
	keys := rval.MapKeys()
	sort.Slice(keys, func(one, two int) bool {
		return keys[one].String() < keys[two].String()
	})

	out := make(Pairs, 0, len(keys))
	for _, key := range keys {
		out = append(out, Pair{key.String(), rval.MapIndex(key).Interface()})
	}
	return out
}

func structPairs(rval r.Value) Pairs {
	var out Pairs

	err := refut.TraverseStructRval(rval, func(rval r.Value, sfield r.StructField, _ []int) error {
		if !sfield.IsExported() {
			return nil
		}
		key := refut.TagIdent(sfield.Tag.Get(TagNameDb))
		if key == `` {
			return nil
		}
		out = append(out, Pair{key, rval.Interface()})
		return nil
	})
	if err != nil {
		panic(ErrInvalidInput.while(`reading struct payload`).because(err))
	}

	return out
}

func derefRval(rval r.Value) r.Value {
	for rval.Kind() == r.Ptr {
		rval = rval.Elem()
	}
	return rval
}
