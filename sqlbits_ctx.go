package sqlbits

import "log/slog"

/*
Statement-building session. A root context owns an output buffer and the list
of interned arguments; every chained call appends to that buffer and returns a
view which renders only the text its chain contributed:

	ctx := sqlbits.New(sqlbits.Postgres)
	sel := ctx.Select(`id`)
	query := sel.From(`users`).Where(`id =`, 10)

	sel.Text()   // SELECT id
	query.Text() // SELECT id FROM users WHERE id =$1
	query.Args() // [10]

Views are never modified: reading a captured view after further chaining
still yields the same text, with placeholder numbers reflecting the whole
session. All views share the session, so a session must be confined to one
goroutine.

The zero value is a root without a dialect; adding fragments to it panics with
`ErrNoDialect`.
*/
type Context struct {
	bui   *bui
	start int
	end   int
	view  bool
}

// Creates a root context rendering with the given dialect.
func New(dialect Dialect) *Context {
	return &Context{bui: &bui{dialect: dialect}}
}

/*
Renders the fragment and returns a view over the output. On a root, the view
covers only this call's output. On a view, it extends the view to include
this call's output.
*/
func (self *Context) Add(val Fragment) *Context {
	if self.bui == nil {
		self.bui = new(bui)
	}

	start := len(self.bui.out)
	self.bui.add(val)

	if self.view {
		start = self.start
	}
	return &Context{bui: self.bui, start: start, end: len(self.bui.out), view: true}
}

/*
Same as `.Add` but catches panics, returning them as errors. Many functions in
this package panic on programmer errors such as a missing dialect or malformed
raw SQL; this should be used by apps that insist on errors-as-values.
*/
func (self *Context) Catch(val Fragment) (out *Context, err error) {
	defer rec(&err)
	out = self.Add(val)
	return
}

// Shortcut for `.Add(SQL(args...))`.
func (self *Context) SQL(args ...any) *Context { return self.Add(SQL(args...)) }

// Shortcut for `.Add(Paren(args...))`.
func (self *Context) Paren(args ...any) *Context { return self.Add(Paren(args...)) }

// Shortcut for `.Add(And(args...))`.
func (self *Context) And(args ...any) *Context { return self.Add(And(args...)) }

// Shortcut for `.Add(Or(args...))`.
func (self *Context) Or(args ...any) *Context { return self.Add(Or(args...)) }

// Shortcut for `.Add(Where(args...))`.
func (self *Context) Where(args ...any) *Context { return self.Add(Where(args...)) }

// Shortcut for `.Add(On(args...))`.
func (self *Context) On(args ...any) *Context { return self.Add(On(args...)) }

// Shortcut for `.Add(In(args...))`.
func (self *Context) In(args ...any) *Context { return self.Add(In(args...)) }

// Shortcut for `.Add(Between(low, high))`.
func (self *Context) Between(low, high any) *Context { return self.Add(Between(low, high)) }

// Shortcut for `.Add(OrderBy(args...))`.
func (self *Context) OrderBy(args ...any) *Context { return self.Add(OrderBy(args...)) }

// Shortcut for `.Add(GroupBy(args...))`.
func (self *Context) GroupBy(args ...any) *Context { return self.Add(GroupBy(args...)) }

// Shortcut for `.Add(Limit(val))`.
func (self *Context) Limit(val any) *Context { return self.Add(Limit(val)) }

// Shortcut for `.Add(Offset(val))`.
func (self *Context) Offset(val any) *Context { return self.Add(Offset(val)) }

// Shortcut for `.Add(From(table))`.
func (self *Context) From(table any) *Context { return self.Add(From(table)) }

// Shortcut for `.Add(DeleteFrom(table))`.
func (self *Context) DeleteFrom(table any) *Context { return self.Add(DeleteFrom(table)) }

// Shortcut for `.Add(Set(payload))`.
func (self *Context) Set(payload any) *Context { return self.Add(Set(payload)) }

// Shortcut for `.Add(InsertInto(table, payload))`.
func (self *Context) InsertInto(table, payload any) *Context {
	return self.Add(InsertInto(table, payload))
}

// Shortcut for `.Add(Select(expr))`.
func (self *Context) Select(expr any) *Context { return self.Add(Select(expr)) }

// Shortcut for `.Add(Update(table))`.
func (self *Context) Update(table any) *Context { return self.Add(Update(table)) }

// Shortcut for `.Add(Raw(src, args...))`.
func (self *Context) Raw(src string, args ...any) *Context { return self.Add(Raw(src, args...)) }

/*
Rendered text. For a root, that's the whole session; the result is cached until
the session grows. For a view, that's the view's own range.
*/
func (self *Context) Text() string {
	if self == nil || self.bui == nil {
		return ``
	}
	if !self.view {
		return self.bui.String()
	}
	return self.bui.render(self.start, self.end)
}

/*
Arguments matching the placeholders of `.Text`. For a root, that's every
interned argument. For a view with an ordinal dialect, that's the prefix up to
the highest ordinal the view references, which may include arguments
referenced only by earlier output. The result must not be modified.
*/
func (self *Context) Args() []any {
	if self == nil || self.bui == nil {
		return nil
	}
	if !self.view {
		self.bui.parameterize()
		args := self.bui.args
		return args[:len(args):len(args)]
	}
	return self.bui.argsIn(self.start, self.end)
}

// Shortcut for `.Text(), .Args()`, the inputs of database query methods.
func (self *Context) Reify() (string, []any) {
	return self.Text(), self.Args()
}

// Implement `fmt.Stringer`. Same as `.Text`.
func (self *Context) String() string { return self.Text() }

/*
True if the context rendered nothing. Convenient for checking whether a call
with possibly-absent inputs contributed anything:

	if ctx.Where(`id =`, maybeID).IsEmpty() {
		// No condition.
	}
*/
func (self *Context) IsEmpty() bool { return self.Text() == `` }

// Implement `slog.LogValuer`, logging the text and the arguments.
func (self *Context) LogValue() slog.Value {
	text, args := self.Reify()
	return slog.GroupValue(
		slog.String(`text`, text),
		slog.Any(`args`, args),
	)
}
