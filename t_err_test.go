package sqlbits

import (
	"errors"
	"fmt"
	"testing"
)

func TestErr_formatting(t *testing.T) {
	test := func(src Err, exp string) {
		t.Helper()
		eq(t, exp, src.Error())
		eq(t, exp, fmt.Sprintf(`%v`, src))
	}

	test(Err{}, ``)
	test(ErrUnknownTag, `[sqlbits] UnknownTag: unknown tag`)
	test(ErrNoDialect.while(`adding fragment`), `[sqlbits] NoDialect while adding fragment: no dialect`)
	test(
		ErrInvalidInput.while(`parsing tag`).because(errors.New(`unrecognized tag "nope"`)),
		`[sqlbits] InvalidInput while parsing tag: unrecognized tag "nope"`,
	)
	test(Err{While: `testing`}, `[sqlbits] while testing`)
}

func TestErr_Is(t *testing.T) {
	cause := errors.New(`cause`)
	err := ErrUnusedArgument.while(`testing`).because(cause)

	eq(t, true, errors.Is(err, ErrUnusedArgument))
	eq(t, true, errors.Is(err, cause))
	eq(t, false, errors.Is(err, ErrUnknownTag))
	eq(t, cause, errors.Unwrap(err))

	wrapped := fmt.Errorf(`outer: %w`, err)
	eq(t, true, errors.Is(wrapped, ErrUnusedArgument))

	var target Err
	eq(t, true, errors.As(wrapped, &target))
	eq(t, ErrCodeUnusedArgument, target.Code)
}
