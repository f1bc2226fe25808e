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

// StringToken is the grammar {End, Error, String}, where String matches the
// JavaScript-like literal "([^"\\]|\\t|\\u|\\n|\\")*".
type StringToken int

const (
	StringEnd StringToken = iota
	StringError
	StringLiteral
	StringSize
)

// String is the Grammar for StringToken.
var String = &lexcore.Grammar[StringToken, string, struct{}]{
	Size:  int(StringSize),
	End:   StringEnd,
	Error: StringError,
	Scan:  scanString,
}

func isStringEscape(b byte) bool {
	switch b {
	case 't', 'u', 'n', '"':
		return true
	default:
		return false
	}
}

func scanString(l *lexcore.Lexer[StringToken, string, struct{}]) {
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, ok := lexcore.Read[byte](src, pos)
	if !ok || b != '"' {
		l.EmitError()
		return
	}

	i := pos + 1
	for {
		c, ok := lexcore.Read[byte](src, i)
		if !ok {
			// Ran out of input before a closing quote: no accepting state
			// was ever reached, so this is the no-match error path, not a
			// best-so-far commit.
			l.EmitError()
			return
		}
		if c == '"' {
			i++
			l.SetSpan(pos, i)
			l.Token = StringLiteral
			l.SetPos(i)
			return
		}
		if c == '\\' {
			d, ok := lexcore.Read[byte](src, i+1)
			if !ok || !isStringEscape(d) {
				l.EmitError()
				return
			}
			i += 2
			continue
		}
		i++
	}
}
