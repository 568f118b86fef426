package sqlbits

/*
Renders the fragments in a fresh session using `DefaultDialect` and returns the
resulting text and args. Shortcut for `Q(...).Reify()`. Provided mostly for
examples and tests.
*/
func Reify(args ...any) (string, []any) {
	return Q(args...).Reify()
}

/*
Starts a session with `DefaultDialect`, adding `SQL(args...)`. The result is a
view which can be chained further:

	text, args := sqlbits.Q(`SELECT * FROM users`).Where(`id =`, 10).Reify()
*/
func Q(args ...any) *Context { return New(DefaultDialect).SQL(args...) }

// Starts a session with `DefaultDialect`, adding `Select(expr)`.
func SelectQ(expr any) *Context { return New(DefaultDialect).Select(expr) }

// Starts a session with `DefaultDialect`, adding `InsertInto(table, payload)`.
func InsertQ(table, payload any) *Context {
	return New(DefaultDialect).InsertInto(table, payload)
}

// Starts a session with `DefaultDialect`, adding `DeleteFrom(table)`.
func DeleteQ(table any) *Context { return New(DefaultDialect).DeleteFrom(table) }

// Starts a session with `DefaultDialect`, adding `Update(table)`.
func UpdateQ(table any) *Context { return New(DefaultDialect).Update(table) }
