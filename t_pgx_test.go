package sqlbits

import (
	"context"
	"errors"
	"testing"
)

func Test_Context_RewriteQuery(t *testing.T) {
	query := New(Postgres).Select(`*`).From(`users`).Where(`id =`, 10)

	text, args, err := query.RewriteQuery(context.Background(), nil, ``, nil)
	eq(t, nil, err)
	eq(t, `SELECT * FROM users WHERE id =$1`, text)
	eq(t, list{10}, args)

	_, _, err = query.RewriteQuery(context.Background(), nil, `select 1`, nil)
	eq(t, true, errors.Is(err, ErrInvalidInput))

	_, _, err = query.RewriteQuery(context.Background(), nil, ``, list{1})
	eq(t, true, errors.Is(err, ErrInvalidInput))
}
