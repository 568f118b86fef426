package sqlbits

import (
	"fmt"
	"strings"
)

/*
Renders the fragment into the buffer. Text is appended immediately; param
references stay unresolved until parameterization.
*/
func (self *bui) add(val Fragment) {
	if self.dialect == nil {
		panic(ErrNoDialect.while(`adding fragment`).because(
			fmt.Errorf(`context has no dialect; use sqlbits.New`),
		))
	}
	self.write(val, false)
}

/*
The lead flag is set for the first item of a parenthesized group, whose keyword
is omitted: "AND(a OR b)" rather than "AND(OR a OR b)".
*/
func (self *bui) write(val Fragment, lead bool) {
	switch val := val.(type) {
	case nil, Empty:
	case Param:
		self.writeParam(val)
	case Statement:
		self.writeStatement(val, lead)
	case Group:
		self.writeGroup(val, lead)
	default:
		panic(ErrInternal.while(`rendering fragment`).because(
			fmt.Errorf(`unsupported fragment type %T`, val),
		))
	}
}

func (self *bui) writeStatement(val Statement, lead bool) {
	switch val.Tag {
	case TagNone:

	case TagAnd, TagOr, TagWhere, TagOn, TagParen, TagSeq:
		self.space()
		if !lead && isConj(val.Tag) {
			self.str(self.keyword(val.Tag) + ` `)
		}
		self.str(val.Expr)
		if val.Param.Valid {
			self.writeParam(val.Param)
		}

	case TagSelect, TagUpdate, TagFrom, TagDeleteFrom, TagLimit, TagOffset:
		self.space()
		self.str(self.keyword(val.Tag) + ` ` + val.Expr)

	case TagOrderBy, TagGroupBy:
		self.space()
		self.str(self.keyword(val.Tag) + ` `)
		for ind, item := range val.Items {
			if ind > 0 {
				self.str(`,`)
			}
			switch item := item.(type) {
			case string:
				self.str(item)
			case Param:
				self.writeParam(item)
			}
		}

	case TagSet:
		self.space()
		self.str(self.keyword(TagSet) + ` `)
		for ind, col := range val.Cols {
			if ind > 0 {
				self.str(`,`)
			}
			self.str(col + `=`)
			self.writeValue(valAt(val.Vals, ind))
		}

	case TagInsertInto:
		self.space()
		self.str(self.keyword(TagInsertInto) + ` ` + val.Expr + ` (` + strings.Join(val.Cols, `,`) + `) `)
		self.str(self.keyword(TagValues) + ` (`)
		for ind := range val.Cols {
			if ind > 0 {
				self.str(`,`)
			}
			self.writeValue(valAt(val.Vals, ind))
		}
		self.str(`)`)

	case TagRaw:
		self.space()
		for _, item := range val.Items {
			switch item := item.(type) {
			case string:
				self.str(item)
			case Param:
				self.writeParam(item)
			case Fragment:
				self.write(item, false)
			}
		}

	default:
		panic(errUnknownTag(`rendering statement`, val.Tag))
	}
}

func (self *bui) writeGroup(val Group, lead bool) {
	switch val.Tag {
	case TagSeq:
		for ind, item := range val.Items {
			self.write(item, lead && ind == 0)
		}
		return

	case TagParen:
		self.space()

	case TagAnd, TagOr, TagWhere, TagOn:
		self.space()
		if !lead {
			self.str(self.keyword(val.Tag))
		}

	default:
		panic(errUnknownTag(`rendering group`, val.Tag))
	}

	self.str(`(`)
	for ind, item := range val.Items {
		self.write(item, ind == 0)
	}
	self.str(`)`)
}

func (self *bui) writeParam(val Param) {
	if !val.Valid {
		self.ref(val, false)
		return
	}

	switch val.Tag {
	case TagNone:
		self.ref(val, false)

	case TagAsc, TagDesc:
		self.ref(val, false)
		self.str(` ` + self.keyword(val.Tag))

	case TagIn:
		items := val.Items()
		if len(items) == 1 {
			self.str(`=`)
			self.ref(items[0], false)
			return
		}
		self.space()
		self.str(self.keyword(TagIn) + `(`)
		for ind, item := range items {
			if ind > 0 {
				self.str(`,`)
			}
			self.ref(item, false)
		}
		self.str(`)`)

	case TagBetween:
		items := val.Items()
		lo, hi := valAt(items, 0), valAt(items, 1)
		self.space()
		if !lo.Valid {
			self.str(`<=`)
			self.ref(hi, false)
		} else if !hi.Valid {
			self.str(`>=`)
			self.ref(lo, false)
		} else {
			self.str(self.keyword(TagBetween) + ` `)
			self.ref(lo, false)
			self.str(` ` + self.keyword(TagAnd) + ` `)
			self.ref(hi, false)
		}

	default:
		panic(errUnknownTag(`rendering param`, val.Tag))
	}
}

// Payload values of SET and INSERT INTO. Absent values use the column default.
func (self *bui) writeValue(val Param) {
	if !val.Valid {
		self.str(self.keyword(TagDefault))
		return
	}
	self.ref(Param{Val: val.Val, Valid: true}, true)
}

func (self *bui) keyword(tag Tag) string {
	out := self.dialect.Keyword(tag)
	if out == `` {
		panic(ErrUnknownTag.while(`rendering keyword`).because(
			fmt.Errorf(`dialect %v has no keyword for tag %v`, self.dialect, tag),
		))
	}
	return out
}

func isConj(tag Tag) bool {
	return tag == TagAnd || tag == TagOr || tag == TagWhere || tag == TagOn
}

func valAt(vals []Param, ind int) Param {
	if ind < len(vals) {
		return vals[ind]
	}
	return Absent
}

func errUnknownTag(while string, tag Tag) Err {
	return ErrUnknownTag.while(while).because(fmt.Errorf(`unexpected tag %#v`, tag))
}
