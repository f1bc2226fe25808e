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

// JSToken is a single combined grammar standing in for a small JavaScript-like
// tokenizer: identifiers and reserved words tie at the same end offset,
// punctuators prefix one another ("." vs "...", "+" vs "++", "=" vs "=="
// vs "===" vs "=>"), and a string literal runs alongside all of it. Unlike
// ReadmeToken, OperatorToken and IdentToken, which each isolate a single
// disambiguation case, this grammar exercises several at once in one Scan
// routine, the way a real generated grammar would.
type JSToken int

const (
	JSEnd JSToken = iota
	JSError
	JSIdentifier
	JSString
	JSPrivate
	JSPrimitive
	JSProtected
	JSIn
	JSInstanceof
	JSAccessor
	JSEllipsis
	JSParenOpen
	JSParenClose
	JSBraceOpen
	JSBraceClose
	JSOpAddition
	JSOpIncrement
	JSOpAssign
	JSOpEquality
	JSOpStrictEquality
	JSFatArrow
	JSSize
)

// JS is the Grammar for JSToken.
var JS = &lexcore.Grammar[JSToken, string, struct{}]{
	Size:  int(JSSize),
	End:   JSEnd,
	Error: JSError,
	Scan:  scanJS,
}

var jsKeywords = []struct {
	lit string
	tok JSToken
}{
	{"private", JSPrivate},
	{"primitive", JSPrimitive},
	{"protected", JSProtected},
	{"in", JSIn},
	{"instanceof", JSInstanceof},
}

func isJSIdentStart(b byte) bool {
	return isAlpha(b) || b == '_' || b == '$'
}

func isJSIdentCont(b byte) bool {
	return isJSIdentStart(b) || isDigit(b)
}

func scanJS(l *lexcore.Lexer[JSToken, string, struct{}]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, ok := lexcore.Read[byte](src, pos)
	if !ok {
		l.EmitError()
		return
	}

	switch {
	case isJSIdentStart(b):
		scanJSIdentOrKeyword(l, pos)
	case b == '"':
		scanJSString(l, pos)
	case b == '.':
		// "." : priority 2 (1 literal byte). "..." : priority 6 (3 literal
		// bytes); only a genuine candidate when the next two bytes also
		// match, so the longer one wins on length, never on priority alone.
		best := l.Scratch()
		best.Update(pos+1, JSAccessor, 2)
		if c, ok := lexcore.Read[[3]byte](src, pos); ok && c == [3]byte{'.', '.', '.'} {
			best.Update(pos+3, JSEllipsis, 6)
		}
		l.Commit(best)
	case b == '+':
		best := l.Scratch()
		best.Update(pos+1, JSOpAddition, 2)
		if c, ok := lexcore.Read[[2]byte](src, pos); ok && c == [2]byte{'+', '+'} {
			best.Update(pos+2, JSOpIncrement, 4)
		}
		l.Commit(best)
	case b == '=':
		best := l.Scratch()
		best.Update(pos+1, JSOpAssign, 2)
		if c, ok := lexcore.Read[[2]byte](src, pos); ok {
			switch c {
			case [2]byte{'=', '='}:
				best.Update(pos+2, JSOpEquality, 4)
			case [2]byte{'=', '>'}:
				best.Update(pos+2, JSFatArrow, 4)
			}
		}
		if c, ok := lexcore.Read[[3]byte](src, pos); ok && c == [3]byte{'=', '=', '='} {
			best.Update(pos+3, JSOpStrictEquality, 6)
		}
		l.Commit(best)
	case b == '(':
		single(l, JSParenOpen)
	case b == ')':
		single(l, JSParenClose)
	case b == '{':
		single(l, JSBraceOpen)
	case b == '}':
		single(l, JSBraceClose)
	default:
		l.EmitError()
	}
}

// scanJSIdentOrKeyword resolves the tie between the generic Identifier class
// and the grammar's reserved words: both are candidates tracked in the same
// BestMatch, so a keyword that is merely a prefix of a longer identifier
// (e.g. "in" inside "instanceof") loses on length rather than needing a
// separate boundary check.
func scanJSIdentOrKeyword(l *lexcore.Lexer[JSToken, string, struct{}], pos int) {
	src := l.Source()
	end := pos
	for {
		c, ok := lexcore.Read[byte](src, end)
		if !ok || !isJSIdentCont(c) {
			break
		}
		end++
	}

	best := l.Scratch()
	best.Update(end, JSIdentifier, 1)

	buf := src.Bytes()
	for _, kw := range jsKeywords {
		n := len(kw.lit)
		if pos+n <= len(buf) && string(buf[pos:pos+n]) == kw.lit {
			best.Update(pos+n, kw.tok, 2*n)
		}
	}
	l.Commit(best)
}

// scanJSString scans the grammar's JavaScript-like string literal, identical
// in shape to StringToken's own scanString (see string.go) but folded into
// the combined grammar's JSToken/JSString variant.
func scanJSString(l *lexcore.Lexer[JSToken, string, struct{}], pos int) {
	src := l.Source()
	i := pos + 1
	for {
		c, ok := lexcore.Read[byte](src, i)
		if !ok {
			l.EmitError()
			return
		}
		if c == '"' {
			i++
			l.SetSpan(pos, i)
			l.Token = JSString
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
