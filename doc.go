/*
SQL Bits: composable SQL fragments with optional values. Oriented towards
building statements from inputs that may or may not be present, such as filters
decoded from a request, without branching on every field.

Key Features

• Conditions referring to absent values are dropped. Only `Param.Valid`
decides presence: zero values and nil are regular values.

• Trivial groups collapse: a group with no surviving items renders nothing, and
a group with a single compatible item renders that item without extra parens.

• Equal values share a placeholder. Placeholders are numbered in the order the
values are rendered.

• Chained calls on a `Context` return views which render only their own part of
the session, with placeholders numbered for the whole session.

• Pluggable dialects: keyword spellings and placeholder formats are supplied by
a `Dialect`. `Syntax` implements it and can be decoded from YAML.

• Hand-written SQL with `$N` parameters can be embedded via `Raw`.

Examples

	maybeName := sqlbits.Opt(input.Name)

	text, args := sqlbits.SelectQ(`*`).
		From(`users`).
		Where(`active`, sqlbits.TagAnd, `name =`, maybeName).
		OrderBy(`id`).
		Limit(input.Limit).
		Reify()

See `Context`, `And`, `In`, `Between`, `Set`, `InsertInto` for more.
*/
package sqlbits
