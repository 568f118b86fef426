package sqlbits

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

// Identifier quoting styles supported by `Syntax`.
const (
	QuoteNone     = ``
	QuoteDouble   = `double`
	QuoteBacktick = `backtick`
	QuoteBracket  = `bracket`
)

/*
Table-driven implementation of `Dialect`.

`.Param` is the placeholder format. "%d" is replaced with the 1-based ordinal;
a format without "%d", such as "?", makes placeholders anonymous.

`.Keywords` overrides the default spellings, which are the `Tag.String`
representations. Mapping a tag to an empty string makes rendering it panic with
`ErrUnknownTag`. If `.Lower` is true, keywords are lowercased.
*/
type Syntax struct {
	Name     string
	Param    string
	Lower    bool
	Quoting  string
	Keywords map[Tag]string
}

var (
	Postgres  = Syntax{Name: `postgres`, Param: `$%d`, Quoting: QuoteDouble}
	MySQL     = Syntax{Name: `mysql`, Param: `?`, Quoting: QuoteBacktick}
	SQLite    = Syntax{Name: `sqlite`, Param: `?%d`, Quoting: QuoteDouble}
	SQLServer = Syntax{Name: `sqlserver`, Param: `@p%d`, Quoting: QuoteBracket}
)

// Implement `Dialect`.
func (self Syntax) Keyword(tag Tag) string {
	if !tag.HasKeyword() {
		return ``
	}

	out, ok := self.Keywords[tag]
	if !ok {
		out = tag.String()
	}
	if self.Lower {
		out = lowerASCII(out)
	}
	return out
}

// Implement `Dialect`.
func (self Syntax) Placeholder(ord int) string {
	if self.Ordinal() {
		return strings.Replace(self.Param, `%d`, strconv.Itoa(ord), 1)
	}
	return self.Param
}

// Implement `Dialect`.
func (self Syntax) Ordinal() bool { return strings.Contains(self.Param, `%d`) }

// Implement `fmt.Stringer`.
func (self Syntax) String() string {
	if self.Name != `` {
		return self.Name
	}
	return `[Syntax]`
}

/*
Quotes an identifier such as a table or column name. Builders never quote
names; use this when names come from outside the program.

	sqlbits.Postgres.Quote(`user`)  // "user"
	sqlbits.MySQL.Quote(`user`)     // `user`
	sqlbits.SQLServer.Quote(`user`) // [user]
*/
func (self Syntax) Quote(ident string) string {
	switch self.Quoting {
	case QuoteDouble:
		return pq.QuoteIdentifier(ident)
	case QuoteBacktick:
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	case QuoteBracket:
		return `[` + strings.ReplaceAll(ident, `]`, `]]`) + `]`
	default:
		return ident
	}
}

// Returns an error if the syntax can't render placeholders or keywords.
func (self Syntax) Validate() error {
	param := self.Param
	if param == `` {
		return ErrInvalidInput.while(`validating dialect`).because(
			fmt.Errorf(`dialect %q has no placeholder format`, self.Name),
		)
	}

	verbs := strings.Count(param, `%`)
	ords := strings.Count(param, `%d`)
	if verbs != ords || ords > 1 {
		return ErrInvalidInput.while(`validating dialect`).because(
			fmt.Errorf(`placeholder format %q must contain at most one "%%d" and no other verbs`, param),
		)
	}

	switch self.Quoting {
	case QuoteNone, QuoteDouble, QuoteBacktick, QuoteBracket:
	default:
		return ErrInvalidInput.while(`validating dialect`).because(
			fmt.Errorf(`unknown quoting style %q`, self.Quoting),
		)
	}

	for tag, val := range self.Keywords {
		if !tag.HasKeyword() {
			return ErrInvalidInput.while(`validating dialect`).because(
				fmt.Errorf(`tag %v has no keyword`, tag),
			)
		}
		if val == `` {
			return ErrInvalidInput.while(`validating dialect`).because(
				fmt.Errorf(`empty keyword for tag %v`, tag),
			)
		}
	}
	return nil
}

// Shape of dialect definitions decoded by `ReadSyntax`.
type syntaxFile struct {
	Name     string            `yaml:"name"`
	Param    string            `yaml:"param"`
	Lower    bool              `yaml:"lower"`
	Quote    string            `yaml:"quote"`
	Keywords map[string]string `yaml:"keywords"`
}

/*
Decodes a dialect definition from YAML. Unknown fields, unknown tag names and
invalid placeholder formats are rejected with `ErrInvalidInput`. Example:

	name: oracle
	param: ":%d"
	lower: true
	quote: double
	keywords:
	  limit: FETCH FIRST
*/
func ReadSyntax(src io.Reader) (Syntax, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var file syntaxFile
	err := dec.Decode(&file)
	if err != nil {
		return Syntax{}, ErrInvalidInput.while(`decoding dialect`).because(err)
	}

	out := Syntax{
		Name:    file.Name,
		Param:   file.Param,
		Lower:   file.Lower,
		Quoting: file.Quote,
	}

	if len(file.Keywords) > 0 {
		out.Keywords = make(map[Tag]string, len(file.Keywords))
		for key, val := range file.Keywords {
			var tag Tag
			err := tag.Parse(key)
			if err != nil {
				return Syntax{}, err
			}
			out.Keywords[tag] = val
		}
	}

	err = out.Validate()
	if err != nil {
		return Syntax{}, err
	}
	return out, nil
}

// Same as `ReadSyntax` but for a byte slice.
func ParseSyntax(src []byte) (Syntax, error) {
	return ReadSyntax(bytes.NewReader(src))
}
