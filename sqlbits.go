package sqlbits

/*
Any value produced by a fragment builder. The set of implementations is closed:
`Empty`, `Statement`, `Group` and `Param`. Fragments are immutable values; the
same fragment may be added to any number of contexts.
*/
type Fragment interface{ fragment() }

/*
The "contributes nothing" fragment. Every builder that can't produce valid
output returns `Empty{}`, which can be compared with `==`:

	if sqlbits.From(table) == (sqlbits.Empty{}) {
		// No table.
	}
*/
type Empty struct{}

func (Empty) fragment() {}

// Implement `fmt.Stringer` for debug purposes.
func (Empty) String() string { return `[Empty]` }

/*
Short for "dialect". Supplies the keyword spellings and the placeholder format
used when rendering fragments. Must return a non-empty keyword for every tag
that renders one; otherwise rendering panics with `ErrUnknownTag`.

If `.Ordinal` returns false, placeholders don't carry an ordinal (as in "?"),
every parameter reference consumes its own argument, and equal values are not
deduplicated.

See `Syntax` for the implementation provided by this package.
*/
type Dialect interface {
	Keyword(Tag) string
	Placeholder(ord int) string
	Ordinal() bool
}

/*
Dialect used by the top-level shortcuts such as `SelectQ` and `Reify`. Changing
it affects only contexts created afterwards.
*/
var DefaultDialect Dialect = Postgres

/*
If true (default), arguments of `Raw` which are not referenced by any ordinal
parameter cause a panic. Turning this off can be convenient in development,
when changing queries rapidly.
*/
var CheckUnused = true
