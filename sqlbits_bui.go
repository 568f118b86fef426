package sqlbits

import "strings"

/*
Single entry of the output buffer: either literal text or a reference to a
param. Param references start unresolved and get their placeholder text and
ordinal during parameterization. References to absent params never render.
*/
type chunk struct {
	text     string
	param    Param
	isParam  bool
	distinct bool
	ord      int
}

// Visible means it contributes text once parameterized.
func (self chunk) visible() bool {
	if self.isParam {
		return self.param.Valid
	}
	return self.text != ``
}

/*
Short for "builder". Session state shared by a root `Context` and all of its
views: the output buffer, the interned arguments, and the cached full text.
Parameterization is monotonic: entries before `.done` are never revisited.
*/
type bui struct {
	dialect Dialect
	out     []chunk
	args    []any
	done    int
	text    string
	textLen int
}

// Adds a space if the preceding visible output doesn't already end with a
// delimiter.
func (self *bui) space() {
	if self.needSpace() {
		self.str(` `)
	}
}

func (self *bui) needSpace() bool {
	for ind := len(self.out) - 1; ind >= 0; ind-- {
		val := self.out[ind]
		if !val.visible() {
			continue
		}
		if val.isParam {
			return true
		}
		return !hasSuffixIn(charsetDelimStart, val.text)
	}
	return false
}

// Appends literal text as-is.
func (self *bui) str(val string) {
	if val != `` {
		self.out = append(self.out, chunk{text: val})
	}
}

/*
Appends an unresolved reference to the param. A distinct reference always
allocates a new argument instead of reusing an equal earlier one.
*/
func (self *bui) ref(val Param, distinct bool) {
	self.out = append(self.out, chunk{param: val, isParam: true, distinct: distinct})
}

// Resolves all pending param references to placeholders.
func (self *bui) parameterize() {
	for ; self.done < len(self.out); self.done++ {
		val := &self.out[self.done]
		if !val.isParam || !val.param.Valid {
			continue
		}
		val.ord = self.intern(val.param.Val, val.distinct)
		val.text = self.dialect.Placeholder(val.ord)
	}
}

/*
Returns the 1-based ordinal of the argument. Equal values share an ordinal,
unless the reference is distinct or the dialect has anonymous placeholders.
*/
func (self *bui) intern(val any, distinct bool) int {
	if !distinct && self.dialect.Ordinal() {
		for ind, prev := range self.args {
			if valuesEqual(prev, val) {
				return ind + 1
			}
		}
	}
	self.args = append(self.args, val)
	return len(self.args)
}

// Renders the full buffer, caching the result until the buffer grows.
func (self *bui) String() string {
	if self.textLen != len(self.out) {
		self.text = self.render(0, len(self.out))
		self.textLen = len(self.out)
	}
	return self.text
}

func (self *bui) render(start, end int) string {
	self.parameterize()

	var buf strings.Builder
	for _, val := range self.out[start:end] {
		buf.WriteString(val.text)
	}
	return buf.String()
}

/*
Arguments needed by the placeholders in the given range of the buffer. For
ordinal dialects, that's a prefix of all arguments, so that placeholder numbers
stay valid. For anonymous placeholders, that's exactly the arguments referenced
in the range.
*/
func (self *bui) argsIn(start, end int) []any {
	self.parameterize()

	lo, hi := 0, 0
	for _, val := range self.out[start:end] {
		if val.ord == 0 {
			continue
		}
		if lo == 0 || val.ord < lo {
			lo = val.ord
		}
		if val.ord > hi {
			hi = val.ord
		}
	}

	if hi == 0 {
		return nil
	}
	if self.dialect.Ordinal() {
		return self.args[:hi:hi]
	}
	return self.args[lo-1 : hi : hi]
}
