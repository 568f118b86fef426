package sqlbits

/*
Single leaf fragment: a tag, an optional expression and the data the tag needs
to render. Usually produced by the builders in this package rather than
constructed by hand.

	* Conditions (`TagAnd`, `TagOr`, `TagWhere`, `TagOn`, `TagParen`, `TagSeq`)
	  use `.Expr` and `.Param`.
	* `TagSelect`, `TagUpdate`, `TagFrom`, `TagDeleteFrom`, `TagLimit` and
	  `TagOffset` use `.Expr` only.
	* `TagSet` uses `.Cols` and `.Vals`; `TagInsertInto` additionally uses
	  `.Expr` as the table name.
	* `TagOrderBy` and `TagGroupBy` use `.Items`, which contains strings and
	  `Param`s.
	* `TagRaw` uses `.Items`, which contains strings, `Param`s and nested
	  `Statement`s or `Group`s.
*/
type Statement struct {
	Tag   Tag
	Expr  string
	Param Param
	Cols  []string
	Vals  []Param
	Items []any
}

func (Statement) fragment() {}

// Implement `fmt.Stringer` for debug purposes.
func (self Statement) String() string {
	return `[` + self.Tag.String() + ` Statement]`
}

/*
Ordered collection of fragments sharing a tag. `TagParen` and the conditional
tags render their items in parens, the first item without its keyword.
`TagSeq` is transparent: items are rendered one after another.

Use the builders such as `And` and `SQL` instead of constructing groups by hand;
they collapse trivial groups.
*/
type Group struct {
	Tag   Tag
	Items []Fragment
}

func (Group) fragment() {}

// Implement `fmt.Stringer` for debug purposes.
func (self Group) String() string {
	return `[` + self.Tag.String() + ` Group]`
}

/*
Normalizes a list of items into a fragment. No items make `Empty`. A single
statement or group whose tag is the same as the group's tag, or is one of the
generic tags `TagSeq` and `TagParen`, is returned retagged instead of being
wrapped. The input is never mutated.
*/
func collapse(tag Tag, items []Fragment) Fragment {
	switch len(items) {
	case 0:
		return Empty{}

	case 1:
		switch item := items[0].(type) {
		case Statement:
			if collapsible(tag, item.Tag) {
				item.Tag = tag
				return item
			}
		case Group:
			if collapsible(tag, item.Tag) {
				item.Tag = tag
				return item
			}
		}
	}
	return Group{Tag: tag, Items: items}
}

func collapsible(outer, inner Tag) bool {
	return inner == outer || inner == TagSeq || inner == TagParen
}

// Appends the fragment unless it contributes nothing.
func appendFragment(out []Fragment, val Fragment) []Fragment {
	if IsEmpty(val) {
		return out
	}
	return append(out, val)
}

/*
True if the fragment contributes nothing when rendered: nil, `Empty` and absent
params. Statements and groups produced by builders are never empty.
*/
func IsEmpty(val Fragment) bool {
	switch val := val.(type) {
	case nil, Empty:
		return true
	case Param:
		return !val.Valid
	default:
		return false
	}
}
