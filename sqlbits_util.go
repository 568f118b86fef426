package sqlbits

import (
	"database/sql"
	"database/sql/driver"
	r "reflect"
	"strings"
	"time"
	"unsafe"
)

var (
	typeTime        = r.TypeOf((*time.Time)(nil)).Elem()
	sqlScannerRtype = r.TypeOf((*sql.Scanner)(nil)).Elem()
	sqlValuerRtype  = r.TypeOf((*driver.Valuer)(nil)).Elem()

	charsetSpace      = new(charset).addStr(" \t\v")
	charsetNewline    = new(charset).addStr("\r\n")
	charsetWhitespace = new(charset).addSet(charsetSpace).addSet(charsetNewline)
	charsetDelimStart = new(charset).addSet(charsetWhitespace).addStr(`([{.`)
	charsetOperator   = new(charset).addSet(charsetWhitespace).addStr(`=<>!~`)
)

type charset [256]bool

func (self *charset) has(val byte) bool { return self[val] }

func (self *charset) addStr(vals string) *charset {
	for _, val := range vals {
		self[val] = true
	}
	return self
}

func (self *charset) addSet(vals *charset) *charset {
	for ind, val := range vals {
		if val {
			self[ind] = true
		}
	}
	return self
}

func hasSuffixIn(set *charset, val string) bool {
	return len(val) > 0 && set.has(val[len(val)-1])
}

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Should not be
used when the underlying byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func lowerASCII(val string) string { return strings.ToLower(val) }

func upperASCII(val string) string { return strings.ToUpper(val) }

func squashSpaces(val string) string { return strings.ReplaceAll(val, ` `, ``) }

/*
Types which represent a single SQL value even though they're structs or
byte arrays: `time.Time`, `sql.Scanner` and `driver.Valuer` implementations.
*/
func isScannableRtype(typ r.Type) bool {
	if typ == nil {
		return false
	}
	if typ.Implements(sqlValuerRtype) {
		return true
	}
	for typ.Kind() == r.Ptr {
		typ = typ.Elem()
	}
	return typ == typeTime ||
		typ.Implements(sqlValuerRtype) ||
		r.PtrTo(typ).Implements(sqlScannerRtype)
}

// Deep equality used for interning arguments and deduplicating `In` values.
func valuesEqual(one, two any) bool { return r.DeepEqual(one, two) }

/*
Returns the elements of a list-like input. Byte slices and byte arrays such as
UUIDs are single values, not lists.
*/
func listOf(src any) ([]any, bool) {
	switch src := src.(type) {
	case nil:
		return nil, false
	case []any:
		return src, true
	case []Param:
		out := make([]any, len(src))
		for ind, val := range src {
			out[ind] = val
		}
		return out, true
	case []string:
		out := make([]any, len(src))
		for ind, val := range src {
			out[ind] = val
		}
		return out, true
	}

	rval := r.ValueOf(src)
	switch rval.Kind() {
	case r.Slice, r.Array:
	default:
		return nil, false
	}
	if rval.Type().Elem().Kind() == r.Uint8 || isScannableRtype(rval.Type()) {
		return nil, false
	}

	out := make([]any, rval.Len())
	for ind := range out {
		out[ind] = rval.Index(ind).Interface()
	}
	return out, true
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func try1[A any](val A, err error) A {
	try(err)
	return val
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
