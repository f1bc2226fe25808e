// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package scan

import "github.com/db47h/lexcore"

// NumberToken is the six-way numeric grammar:
//
//	Unsigned        [0-9][0-9_]*
//	DotPlain        [0-9][0-9_]*\.[0-9][0-9_]*
//	ScaleChar       [0-9][0-9_]*[TGMKkmupfa]
//	DotScaleChar    [0-9][0-9_]*\.[0-9][0-9_]*[TGMKkmupfa]
//	Exp             [0-9][0-9_]*[eE][+-]?[0-9][0-9_]*
//	DotExp          [0-9][0-9_]*\.[0-9][0-9_]*[eE][+-]?[0-9][0-9_]*
//
// The six alternatives are syntactically exclusive (a match is classified
// by whether it has a fractional part and by which suffix, scale char,
// exponent or none, follows it), so the routine below resolves the grammar
// deterministically rather than building a BestMatch over all six
// candidates.
type NumberToken int

const (
	NumberEnd NumberToken = iota
	NumberError
	NumberUnsigned
	NumberDotPlain
	NumberScaleChar
	NumberDotScaleChar
	NumberExp
	NumberDotExp
	NumberSize
)

// Number is the Grammar for NumberToken.
var Number = &lexcore.Grammar[NumberToken, string, struct{}]{
	Size:  int(NumberSize),
	End:   NumberEnd,
	Error: NumberError,
	Scan:  scanNumber,
}

func isScaleChar(b byte) bool {
	switch b {
	case 'T', 'G', 'M', 'K', 'k', 'm', 'u', 'p', 'f', 'a':
		return true
	default:
		return false
	}
}

// scanDigitRun consumes [0-9][0-9_]* starting at i, which must already be a
// digit, and returns the offset just past it.
func scanDigitRun(src lexcore.Source[string], i int) int {
	for {
		c, ok := lexcore.Read[byte](src, i)
		if !ok || !(isDigit(c) || c == '_') {
			return i
		}
		i++
	}
}

func scanNumber(l *lexcore.Lexer[NumberToken, string, struct{}]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, ok := lexcore.Read[byte](src, pos)
	if !ok || !isDigit(b) {
		l.EmitError()
		return
	}

	end := scanDigitRun(src, pos)

	hasDot := false
	if c, ok := lexcore.Read[byte](src, end); ok && c == '.' {
		if d, ok2 := lexcore.Read[byte](src, end+1); ok2 && isDigit(d) {
			hasDot = true
			end = scanDigitRun(src, end+1)
		}
	}

	var tok NumberToken
	if c, ok := lexcore.Read[byte](src, end); ok && isScaleChar(c) {
		end++
		if hasDot {
			tok = NumberDotScaleChar
		} else {
			tok = NumberScaleChar
		}
	} else {
		tok, end = scanExponent(src, end, hasDot)
	}

	l.SetSpan(pos, end)
	l.Token = tok
	l.SetPos(end)
}

// scanExponent attempts to consume [eE][+-]?[0-9][0-9_]* at i. If the
// exponent suffix isn't well-formed, it reports the plain (no-exponent)
// token and leaves i untouched.
func scanExponent(src lexcore.Source[string], i int, hasDot bool) (NumberToken, int) {
	c, ok := lexcore.Read[byte](src, i)
	if !ok || (c != 'e' && c != 'E') {
		if hasDot {
			return NumberDotPlain, i
		}
		return NumberUnsigned, i
	}
	j := i + 1
	if s, ok := lexcore.Read[byte](src, j); ok && (s == '+' || s == '-') {
		j++
	}
	d, ok := lexcore.Read[byte](src, j)
	if !ok || !isDigit(d) {
		if hasDot {
			return NumberDotPlain, i
		}
		return NumberUnsigned, i
	}
	j = scanDigitRun(src, j)
	if hasDot {
		return NumberDotExp, j
	}
	return NumberExp, j
}
