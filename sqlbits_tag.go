package sqlbits

import "fmt"

const (
	TagNone       Tag = iota
	TagSeq            // "_": transparent sequence, no parens
	TagParen          // "$": parenthesized group without a keyword
	TagAnd            // AND
	TagOr             // OR
	TagWhere          // WHERE
	TagOn             // ON
	TagSelect         // SELECT
	TagUpdate         // UPDATE
	TagFrom           // FROM
	TagDeleteFrom     // DELETE FROM
	TagInsertInto     // INSERT INTO
	TagSet            // SET
	TagOrderBy        // ORDER BY
	TagGroupBy        // GROUP BY
	TagLimit          // LIMIT
	TagOffset         // OFFSET
	TagRaw            // hand-written SQL, see `Raw`
	TagIn             // IN
	TagBetween        // BETWEEN
	TagAsc            // ASC
	TagDesc           // DESC
	TagValues         // VALUES
	TagDefault        // DEFAULT

	tagCount
)

/*
Enum of fragment kinds. Every `Statement` and `Group` carries one, and so do
`Param`s that render more than a bare placeholder. Tags that correspond to SQL
keywords are spelled by the `Dialect`; `TagNone`, `TagSeq`, `TagParen` and
`TagRaw` have no keyword.
*/
type Tag byte

var tagNames = [tagCount]string{
	TagNone:       ``,
	TagSeq:        `_`,
	TagParen:      `$`,
	TagAnd:        `AND`,
	TagOr:         `OR`,
	TagWhere:      `WHERE`,
	TagOn:         `ON`,
	TagSelect:     `SELECT`,
	TagUpdate:     `UPDATE`,
	TagFrom:       `FROM`,
	TagDeleteFrom: `DELETE FROM`,
	TagInsertInto: `INSERT INTO`,
	TagSet:        `SET`,
	TagOrderBy:    `ORDER BY`,
	TagGroupBy:    `GROUP BY`,
	TagLimit:      `LIMIT`,
	TagOffset:     `OFFSET`,
	TagRaw:        `RAW`,
	TagIn:         `IN`,
	TagBetween:    `BETWEEN`,
	TagAsc:        `ASC`,
	TagDesc:       `DESC`,
	TagValues:     `VALUES`,
	TagDefault:    `DEFAULT`,
}

// True if the tag is one of the known constants.
func (self Tag) Valid() bool { return self < tagCount }

// True if the dialect is expected to spell a keyword for this tag.
func (self Tag) HasKeyword() bool {
	switch self {
	case TagNone, TagSeq, TagParen, TagRaw:
		return false
	default:
		return self.Valid()
	}
}

// Implement `fmt.Stringer`. Returns the default keyword spelling.
func (self Tag) String() string {
	if self.Valid() {
		return tagNames[self]
	}
	return fmt.Sprintf(`Tag(%d)`, byte(self))
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self Tag) GoString() string {
	switch self {
	case TagNone:
		return `sqlbits.TagNone`
	case TagSeq:
		return `sqlbits.TagSeq`
	case TagParen:
		return `sqlbits.TagParen`
	case TagDeleteFrom:
		return `sqlbits.TagDeleteFrom`
	case TagInsertInto:
		return `sqlbits.TagInsertInto`
	case TagOrderBy:
		return `sqlbits.TagOrderBy`
	case TagGroupBy:
		return `sqlbits.TagGroupBy`
	case TagRaw:
		return `sqlbits.TagRaw`
	}
	if !self.Valid() {
		return fmt.Sprintf(`sqlbits.Tag(%d)`, byte(self))
	}
	name := tagNames[self]
	return `sqlbits.Tag` + name[:1] + lowerASCII(name[1:])
}

/*
Parses a tag from its default keyword spelling, case-insensitively. Also accepts
spellings without the inner space, such as "ORDERBY", like the names of the
builder functions. An empty string is `TagNone`, matching `.MarshalText`.
*/
func (self *Tag) Parse(src string) error {
	if src == `` {
		*self = TagNone
		return nil
	}

	key := upperASCII(src)
	for ind, name := range tagNames {
		if name != `` && (key == name || key == squashSpaces(name)) {
			*self = Tag(ind)
			return nil
		}
	}
	return ErrInvalidInput.while(`parsing tag`).because(fmt.Errorf(`unrecognized tag %q`, src))
}

// Implement `encoding.TextMarshaler`.
func (self Tag) MarshalText() ([]byte, error) {
	if !self.Valid() {
		return nil, ErrUnknownTag.while(`encoding tag`).because(fmt.Errorf(`unknown tag %d`, byte(self)))
	}
	return []byte(self.String()), nil
}

// Implement `encoding.TextUnmarshaler`.
func (self *Tag) UnmarshalText(src []byte) error {
	return self.Parse(bytesToMutableString(src))
}
