package sqlbits

/*
Transparent sequence. Strings are SQL text, other values are parameters, and
fragments are embedded as-is:

	sqlbits.SQL(`SELECT * FROM users WHERE id =`, sqlbits.P(10))
*/
func SQL(args ...any) Fragment { return group(TagSeq, args) }

/*
Parenthesized group without a keyword. The first string is the expression,
optionally followed by an inline value, like in `And`.
*/
func Paren(args ...any) Fragment { return group(TagParen, args) }

/*
Conjunction. The first argument is either an expression, optionally followed by
an inline value, or a keyed payload (see `Pairs`). A first argument of any
other non-fragment type is dropped. Remaining arguments are
fragments, SQL text, values, or tags followed by arguments for the
corresponding builder:

	sqlbits.And(`a =`, 10, sqlbits.TagOr, `b =`, 20)
	// AND(a =$1 OR b =$2)

A condition that refers to an absent value is dropped. Siblings that survive
keep the group's own tag.
*/
func And(args ...any) Fragment { return group(TagAnd, args) }

// Same as `And` but for OR.
func Or(args ...any) Fragment { return group(TagOr, args) }

// Same as `And` but for WHERE.
func Where(args ...any) Fragment { return group(TagWhere, args) }

// Same as `And` but for ON.
func On(args ...any) Fragment { return group(TagOn, args) }

/*
Static mapping of tags usable as arguments of condition builders. Must remain a
function: a package-level map would form an initialization cycle with the
builders it references.
*/
func tagBuilder(tag Tag) func(...any) Fragment {
	switch tag {
	case TagAnd:
		return And
	case TagOr:
		return Or
	case TagWhere:
		return Where
	case TagOn:
		return On
	default:
		return nil
	}
}

func group(tag Tag, args []any) Fragment {
	var items []Fragment
	ind := 0

	if tag != TagSeq && len(args) > 0 {
		switch head := args[0].(type) {
		case string:
			ind++
			if ind < len(args) && isInlineValue(args[ind]) {
				param := P(args[ind])
				ind++
				if param.Valid {
					items = append(items, Statement{Tag: tag, Expr: head, Param: param})
				}
			} else {
				items = append(items, Statement{Tag: tag, Expr: head})
			}

		case Fragment, Tag:

		default:
			ind++
			pairs, ok := payloadOf(head)
			if ok {
				items = appendConditions(items, pairs)
			}
		}
	}

	for ; ind < len(args); ind++ {
		switch arg := args[ind].(type) {
		case Tag:
			build := tagBuilder(arg)
			if build == nil || ind+1 >= len(args) {
				continue
			}
			ind++
			sub := []any{args[ind]}
			if ind+1 < len(args) && isInlineValue(args[ind+1]) {
				ind++
				sub = append(sub, args[ind])
			}
			items = appendFragment(items, build(sub...))

		case string:
			if arg != `` {
				items = append(items, Statement{Tag: TagSeq, Expr: arg})
			}

		case Fragment:
			items = appendFragment(items, arg)

		default:
			items = append(items, P(arg))
		}
	}

	return collapse(tag, items)
}

// Values which may follow the leading expression of a condition.
func isInlineValue(val any) bool {
	switch val.(type) {
	case string, Tag, Empty, Statement, Group:
		return false
	default:
		return true
	}
}

func appendConditions(items []Fragment, pairs Pairs) []Fragment {
	for _, pair := range pairs {
		param := P(pair.Val)
		if !param.Valid {
			continue
		}
		items = append(items, Statement{
			Tag:   TagAnd,
			Expr:  conditionExpr(pair.Key, param),
			Param: param,
		})
	}
	return items
}

/*
Keys are column names, optionally with a trailing operator such as "age >" or
"name like ". Bare column names compare for equality, except for `In` and
`Between` params which render their own operators.
*/
func conditionExpr(key string, param Param) string {
	if param.Tag == TagIn || param.Tag == TagBetween || hasSuffixIn(charsetOperator, key) {
		return key
	}
	return key + `=`
}

/*
Membership test. Flattens lists, drops absent values and values equal to an
earlier one. Returns `Absent` if nothing survives. A single survivor renders as
equality:

	sqlbits.SQL(`id`, sqlbits.In(1, 2, 3)) // id IN($1,$2,$3)
	sqlbits.SQL(`id`, sqlbits.In(1, 1))    // id=$1
*/
func In(args ...any) Param {
	var out []Param

	add := func(val any) {
		param := P(val)
		if !param.Valid {
			return
		}
		for _, prev := range out {
			if valuesEqual(prev.Val, param.Val) {
				return
			}
		}
		out = append(out, Param{Val: param.Val, Valid: true})
	}

	for _, arg := range args {
		if param, ok := arg.(Param); ok && param.Tag == TagIn {
			for _, val := range param.Items() {
				add(val)
			}
			continue
		}

		list, ok := listOf(arg)
		if ok {
			for _, val := range list {
				add(val)
			}
			continue
		}
		add(arg)
	}

	if len(out) == 0 {
		return Absent
	}
	return Param{Val: out, Valid: true, Tag: TagIn}
}

/*
Range test with optional bounds. Renders "BETWEEN $1 AND $2", or a one-sided
comparison ">=$1" or "<=$1" when one bound is absent. Returns `Absent` when both
are absent.
*/
func Between(low, high any) Param {
	lo, hi := P(low), P(high)
	if !lo.Valid && !hi.Valid {
		return Absent
	}
	return Param{Val: []Param{lo, hi}, Valid: true, Tag: TagBetween}
}

/*
ORDER BY clause. Accepts strings, which are SQL text, and params holding
strings, which may be tagged with `.Asc` or `.Desc`. Other inputs are dropped.
A single list argument is flattened. Returns `Empty` if nothing survives.
*/
func OrderBy(args ...any) Fragment { return listClause(TagOrderBy, args) }

// GROUP BY clause. Same rules as `OrderBy`.
func GroupBy(args ...any) Fragment { return listClause(TagGroupBy, args) }

func listClause(tag Tag, args []any) Fragment {
	if len(args) == 1 {
		list, ok := listOf(args[0])
		if ok {
			args = list
		}
	}

	var items []any
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			if arg != `` {
				items = append(items, arg)
			}
		case Param:
			if _, ok := arg.Val.(string); ok && arg.Valid {
				items = append(items, arg)
			}
		}
	}

	if len(items) == 0 {
		return Empty{}
	}
	return Statement{Tag: tag, Items: items}
}

/*
LIMIT clause. The input is coerced to a number; absent and non-numeric inputs
become 0. Never returns `Empty`.
*/
func Limit(val any) Fragment {
	return Statement{Tag: TagLimit, Expr: numberString(val)}
}

// OFFSET clause. Same rules as `Limit`.
func Offset(val any) Fragment {
	return Statement{Tag: TagOffset, Expr: numberString(val)}
}

// FROM clause. Returns `Empty` unless the table is a non-empty string.
func From(table any) Fragment { return exprClause(TagFrom, table) }

// DELETE FROM clause. Returns `Empty` unless the table is a non-empty string.
func DeleteFrom(table any) Fragment { return exprClause(TagDeleteFrom, table) }

// SELECT clause. Returns `Empty` unless the expression is a non-empty string.
func Select(expr any) Fragment { return exprClause(TagSelect, expr) }

// UPDATE clause. Returns `Empty` unless the table is a non-empty string.
func Update(table any) Fragment { return exprClause(TagUpdate, table) }

func exprClause(tag Tag, val any) Fragment {
	str, _ := val.(string)
	if str == `` {
		return Empty{}
	}
	return Statement{Tag: tag, Expr: str}
}

/*
SET clause from a keyed payload (see `Pairs`). Every entry is kept: absent
values render as DEFAULT. Returns `Empty` for an empty or unsupported payload.
*/
func Set(payload any) Fragment {
	pairs, _ := payloadOf(payload)
	if len(pairs) == 0 {
		return Empty{}
	}
	return Statement{Tag: TagSet, Cols: pairs.Keys(), Vals: pairs.Params()}
}

/*
INSERT INTO clause with columns and values from a keyed payload (see `Pairs`).
Every entry is kept: absent values render as DEFAULT. Returns `Empty` unless the
table is a non-empty string and the payload is non-empty.
*/
func InsertInto(table any, payload any) Fragment {
	str, _ := table.(string)
	pairs, _ := payloadOf(payload)
	if str == `` || len(pairs) == 0 {
		return Empty{}
	}
	return Statement{Tag: TagInsertInto, Expr: str, Cols: pairs.Keys(), Vals: pairs.Params()}
}
