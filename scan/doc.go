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

// Package scan contains hand-written Scan routines in the exact shape a
// token-lexer code generator is expected to emit: byte-switch dispatch,
// chunked literal compares, and accept-state bookkeeping through
// lexcore.BestMatch. None of this is generated; each file here stands in for
// what a generator would have produced for one small grammar, so that the
// core's contract (longest match, priority tie-break, callback timing,
// error-path progress) has concrete exercise and regression coverage.
package scan

import "github.com/db47h/lexcore"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// single commits a one-byte-wide token at the cursor and advances past it.
func single[T comparable, E any](l *lexcore.Lexer[T, string, E], tok T) {
	pos := l.Pos()
	l.SetSpan(pos, pos+1)
	l.Token = tok
	l.SetPos(pos + 1)
}

// skipSpaces advances the cursor over ASCII blanks with no token emission,
// the "skip" variant the grammar compiler supports but does not surface in
// the public Token trait (spec.md §5).
func skipSpaces[T comparable, E any](l *lexcore.Lexer[T, string, E]) {
	src := l.Source()
	pos := l.Pos()
	for {
		c, ok := lexcore.Read[byte](src, pos)
		if !ok || (c != ' ' && c != '\t' && c != '\n' && c != '\r') {
			break
		}
		pos++
	}
	l.SetPos(pos)
}
