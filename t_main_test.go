package sqlbits

import (
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type list = []any

// nolint:govet
type Embed struct {
	Id        string `json:"embedId"      db:"embed_id"`
	Name      string `json:"embedName"    db:"embed_name"`
	private   string `json:"embedPrivate" db:"embed_private"`
	Untagged0 string ``
	Untagged1 string `db:"-"`
	_         string `db:"blank"`
}

type Outer struct {
	Embed
	Id       string `json:"outerId"   db:"outer_id"`
	Name     string `json:"outerName" db:"outer_name"`
	OnlyJson string `json:"onlyJson"`
}

var testOuter = Outer{
	Id:   `outer id`,
	Name: `outer name`,
	Embed: Embed{
		Id:        `embed id`,
		Name:      `embed name`,
		private:   `private`,
		Untagged0: `untagged 0`,
		Untagged1: `untagged 1`,
	},
}

// Short for "reified".
type R struct {
	Text string
	Args list
}

func (self R) Norm() R {
	if len(self.Args) == 0 {
		self.Args = nil
	}
	return self
}

func rei(text string, args ...any) R { return R{text, args}.Norm() }

// Renders the fragments in a fresh Postgres session.
func reify(vals ...Fragment) R {
	return reifyWith(Postgres, vals...)
}

func reifyWith(dialect Dialect, vals ...Fragment) R {
	ctx := New(dialect)
	for _, val := range vals {
		ctx.Add(val)
	}
	return reiCtx(ctx)
}

func reiCtx(ctx *Context) R {
	text, args := ctx.Reify()
	return R{text, args}.Norm()
}

func testFrags(t testing.TB, exp R, vals ...Fragment) {
	t.Helper()
	eq(t, exp, reify(vals...))
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }
