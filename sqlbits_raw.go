package sqlbits

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitranim/sqlp"
)

// Default capacity of the cache of parsed `Raw` sources.
const RawCacheSize = 1024

var rawCache = try1(lru.New[string, rawTemplate](RawCacheSize))

/*
Changes the capacity of the cache of parsed `Raw` sources, evicting the oldest
entries if needed. Non-positive sizes are ignored.
*/
func SetRawCacheSize(size int) {
	if size > 0 {
		rawCache.Resize(size)
	}
}

/*
Hand-written SQL with Postgres-style ordinal parameters, whose arguments are
interned like any other values and renumbered in the output. Arguments which
are `Statement` or `Group` are rendered in place of their parameter. Strings
are values, not SQL text:

	sqlbits.Raw(`select * from users where name = $1 and $2`, `Alice`, sqlbits.Where(...))

If any argument is `Empty` or an absent param, the whole fragment is elided,
like conditions referring to absent values.

Panics when: the code is malformed; the code has named parameters; a parameter
doesn't have a corresponding argument; an argument doesn't have a corresponding
parameter (unless `CheckUnused` is false).
*/
func Raw(src string, args ...any) Fragment {
	tpl := parseRaw(src)

	if tpl.maxOrd > len(args) {
		panic(ErrOrdinalOutOfBounds.while(`building raw fragment`).because(
			fmt.Errorf(`ordinal parameter $%v exceeds argument count %v`, tpl.maxOrd, len(args)),
		))
	}

	used := make([]bool, len(args))
	items := make([]any, 0, len(tpl.parts))
	elided := false

	for _, part := range tpl.parts {
		if part.ord == 0 {
			items = append(items, part.text)
			continue
		}

		ind := part.ord - 1
		used[ind] = true

		switch arg := args[ind].(type) {
		case Empty:
			elided = true
		case Statement, Group:
			items = append(items, arg)
		default:
			param := P(arg)
			if !param.Valid {
				elided = true
			}
			items = append(items, param)
		}
	}

	if CheckUnused {
		for ind, ok := range used {
			if !ok {
				panic(ErrUnusedArgument.while(`building raw fragment`).because(
					fmt.Errorf(`unused argument %#v at index %v`, args[ind], ind),
				))
			}
		}
	}

	if elided || len(items) == 0 {
		return Empty{}
	}
	return Statement{Tag: TagRaw, Items: items}
}

type rawTemplate struct {
	parts  []rawPart
	maxOrd int
}

// Either literal text or a 1-based ordinal.
type rawPart struct {
	text string
	ord  int
}

func parseRaw(src string) rawTemplate {
	tpl, ok := rawCache.Get(src)
	if ok {
		return tpl
	}

	tokenizer := sqlp.Tokenizer{Source: src}
	var text []byte

	flush := func() {
		if len(text) > 0 {
			tpl.parts = append(tpl.parts, rawPart{text: string(text)})
			text = text[:0]
		}
	}

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			ord := node.Index() + 1
			if ord < 1 {
				panic(ErrMissingArgument.while(`parsing raw fragment`).because(
					fmt.Errorf(`invalid ordinal parameter %v`, node),
				))
			}
			flush()
			tpl.parts = append(tpl.parts, rawPart{ord: ord})
			if ord > tpl.maxOrd {
				tpl.maxOrd = ord
			}

		case sqlp.NodeNamedParam:
			panic(ErrUnexpectedParameter.while(`parsing raw fragment`).because(
				fmt.Errorf(`expected only ordinal params, got named param %q`, string(node)),
			))

		default:
			node.Append(&text)
		}
	}
	flush()

	rawCache.Add(src, tpl)
	return tpl
}
