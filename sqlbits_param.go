package sqlbits

/*
Boxed, possibly-absent value. A `Param` with `.Valid = false` represents a value
that was not provided. It never contributes text or arguments, and any fragment
that depends on it is elided. Only `.Valid` determines presence: zero values,
false, empty strings and nil are all valid values.

`.Tag` is `TagNone` for plain values. Builders produce params tagged with
`TagIn` and `TagBetween`, whose `.Val` is `[]Param`, and `.Asc`/`.Desc` produce
params tagged with `TagAsc` and `TagDesc`.

Params are immutable; all methods return modified copies.
*/
type Param struct {
	Val   any
	Valid bool
	Tag   Tag
}

func (Param) fragment() {}

/*
The absent value. Fragments that reference it are dropped:

	sqlbits.Where(`id =`, sqlbits.Absent) == sqlbits.Empty{}
*/
var Absent = Param{}

/*
Short for "param". Boxes an arbitrary value, including nil, which is a valid
value representing SQL null. If the input is already a `Param`, it's returned
as-is.
*/
func P(val any) Param {
	impl, ok := val.(Param)
	if ok {
		return impl
	}
	return Param{Val: val, Valid: true}
}

// Boxes the value only if `ok` is true. Otherwise returns `Absent`.
func Maybe(val any, ok bool) Param {
	if ok {
		return P(val)
	}
	return Absent
}

/*
Boxes the value behind the pointer. A nil pointer is absent. Convenient for
optional fields of decoded inputs:

	var input struct{ Name *string }
	sqlbits.Where(`name =`, sqlbits.Opt(input.Name))
*/
func Opt[A any](val *A) Param {
	if val == nil {
		return Absent
	}
	return P(*val)
}

// Returns a copy tagged to render as "<placeholder> ASC" in ORDER BY and
// GROUP BY lists.
func (self Param) Asc() Param {
	self.Tag = TagAsc
	return self
}

// Returns a copy tagged to render as "<placeholder> DESC" in ORDER BY and
// GROUP BY lists.
func (self Param) Desc() Param {
	self.Tag = TagDesc
	return self
}

// Returns the inner items of an `In` or `Between` param, or nil.
func (self Param) Items() []Param {
	val, _ := self.Val.([]Param)
	return val
}

// Implement `fmt.Stringer` for debug purposes.
func (self Param) String() string {
	tag := `$`
	if self.Tag != TagNone {
		tag = self.Tag.String()
	}
	if !self.Valid {
		return `[` + tag + ` Param absent]`
	}
	return `[` + tag + ` Param]`
}
