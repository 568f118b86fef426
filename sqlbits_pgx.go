package sqlbits

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var _ pgx.QueryRewriter = (*Context)(nil)

/*
Implement `pgx.QueryRewriter`, allowing a context to be passed directly to
query methods of `pgx`, with an empty query string:

	rows, err := conn.Query(ctx, ``, query)

The context replaces the query and its arguments, so any other query text or
arguments are rejected.
*/
func (self *Context) RewriteQuery(_ context.Context, _ *pgx.Conn, sql string, args []any) (string, []any, error) {
	if sql != `` || len(args) > 0 {
		return ``, nil, ErrInvalidInput.while(`rewriting query`).because(fmt.Errorf(
			`expected empty query and no other arguments, got query %q and %v arguments`,
			sql, len(args),
		))
	}
	text, out := self.Reify()
	return text, out, nil
}
