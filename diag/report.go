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

package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Report writes a "name:line:col: msg" line to w, followed by the source
// line containing the span and a caret line underneath it. Column alignment
// accounts for East Asian wide runes using golang.org/x/text/width, the same
// technique a streaming lexer's file-position example would use to keep the
// caret under the right rune in a mixed-width source line.
func Report(w io.Writer, idx *Index, name string, buf []byte, span [2]int, msg string) {
	pos := idx.Position(span[0])
	fmt.Fprintf(w, "%s:%s: %s\n", name, pos, msg)

	line := idx.LineBytes(buf, span[0])
	lineStart := span[0] - (pos.Column - 1)
	fmt.Fprintf(w, "|%s\n", line)

	var b strings.Builder
	b.WriteByte('|')
	i := 0
	for i < pos.Column-1 && i < len(line) {
		r, n := utf8.DecodeRune(line[i:])
		if runeDisplayWidth(r) == 2 {
			b.WriteString("  ")
		} else {
			b.WriteByte(' ')
		}
		i += n
	}
	caretLen := span[1] - span[0]
	if caretLen < 1 {
		caretLen = 1
	}
	for n := 0; n < caretLen && lineStart+i < len(buf); n++ {
		b.WriteByte('^')
	}
	fmt.Fprintln(w, b.String())
}

// runeDisplayWidth reports 2 for runes that occupy two terminal columns
// (East Asian wide/fullwidth) and 1 otherwise.
func runeDisplayWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
