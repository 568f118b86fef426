package sqlbits_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	s "github.com/mitranim/sqlbits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestDriver_sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()

	mock.ExpectExec(`INSERT INTO users (id,name,role) VALUES ($1,$2,DEFAULT)`).
		WithArgs(id, `Alice`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(`UPDATE users SET name=$1 WHERE(id=$2 AND name <> $1)`).
		WithArgs(`Bob`, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT name FROM users WHERE id IN($1,$2) ORDER BY name LIMIT 10`).
		WithArgs(id, `other`).
		WillReturnRows(sqlmock.NewRows([]string{`name`}).AddRow(`Bob`))

	text, args := s.InsertQ(`users`, s.Pairs{{`id`, id}, {`name`, `Alice`}, {`role`, s.Absent}}).Reify()
	_, err = db.Exec(text, args...)
	require.NoError(t, err)

	text, args = s.UpdateQ(`users`).
		Set(s.Pairs{{`name`, `Bob`}}).
		Where(s.Pairs{{`id`, id}, {`name <> `, `Bob`}}).
		Reify()
	_, err = db.Exec(text, args...)
	require.NoError(t, err)

	text, args = s.SelectQ(`name`).
		From(`users`).
		Where(`id`, s.In(id, `other`, id)).
		OrderBy(`name`).
		Limit(10).
		Reify()
	var name string
	require.NoError(t, db.QueryRow(text, args...).Scan(&name))
	assert.Equal(t, `Bob`, name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func connectSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(`sqlite`, `:memory:`)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		create table users (
			id   text primary key,
			name text not null,
			age  integer
		)
	`)
	require.NoError(t, err)
	return db
}

func TestDriver_sqlite(t *testing.T) {
	db := connectSQLite(t)
	ctx := context.Background()

	exec := func(query *s.Context) int64 {
		t.Helper()
		text, args := query.Reify()
		res, err := db.ExecContext(ctx, text, args...)
		require.NoError(t, err, text)
		count, err := res.RowsAffected()
		require.NoError(t, err)
		return count
	}

	for _, row := range []s.Pairs{
		{{`id`, uuid.NewString()}, {`name`, `Alice`}, {`age`, 30}},
		{{`id`, uuid.NewString()}, {`name`, `Bob`}, {`age`, 17}},
		{{`id`, uuid.NewString()}, {`name`, `Carol`}, {`age`, 45}},
	} {
		assert.Equal(t, int64(1), exec(s.New(s.SQLite).InsertInto(`users`, row)))
	}

	names := func(query *s.Context) []string {
		t.Helper()
		text, args := query.Reify()
		rows, err := db.QueryContext(ctx, text, args...)
		require.NoError(t, err, text)
		defer rows.Close()

		var out []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			out = append(out, name)
		}
		require.NoError(t, rows.Err())
		return out
	}

	adults := s.New(s.SQLite).
		Select(`name`).
		From(`users`).
		Where(s.Pairs{
			{`age`, s.Between(18, s.Absent)},
			{`name`, s.In(`Alice`, `Bob`, `Carol`)},
		}).
		OrderBy(`name`)

	assert.Equal(
		t,
		`SELECT name FROM users WHERE(age >=?1 AND name IN(?2,?3,?4)) ORDER BY name`,
		adults.Text(),
	)
	assert.Equal(t, []string{`Alice`, `Carol`}, names(adults))

	var maybeAge *int
	assert.Equal(
		t,
		[]string{`Alice`, `Bob`, `Carol`},
		names(s.New(s.SQLite).Select(`name`).From(`users`).Where(`age =`, s.Opt(maybeAge)).OrderBy(`name`)),
	)

	assert.Equal(t, int64(1), exec(
		s.New(s.SQLite).Update(`users`).Set(s.Pairs{{`age`, 18}}).Where(`name =`, `Bob`),
	))

	assert.Equal(t, int64(1), exec(
		s.New(s.SQLite).DeleteFrom(`users`).Where(`age >`, 40),
	))

	assert.Equal(t, []string{`Alice`, `Bob`}, names(
		s.New(s.SQLite).Raw(`select name from users where age >= $1 $2`, 18, s.OrderBy(`name`)),
	))

	t.Run(`anonymous placeholders`, func(t *testing.T) {
		query := s.New(s.MySQL).
			Select(`count(*)`).
			From(`users`).
			Where(`age >=`, 18, s.TagAnd, `age >=`, 18)

		text, args := query.Reify()
		assert.Equal(t, `SELECT count(*) FROM users WHERE(age >=? AND age >=?)`, text)
		assert.Equal(t, []any{18, 18}, args)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, text, args...).Scan(&count))
		assert.Equal(t, 2, count)
	})
}
