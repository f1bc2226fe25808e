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

// Package diag turns a byte offset (or span) produced by a Lexer's ERROR
// token into a human-readable line:column position and a caret-annotated
// source excerpt.
//
// Unlike a streaming lexer, which discovers line boundaries as it reads
// (see e.g. token.File.AddLine in a streaming implementation), the source
// here is fully materialized up front, so the line table is built once, in
// full, at Index construction instead of incrementally.
package diag

import (
	"fmt"
)

// Position is a 1-based line and a 1-based, byte-offset column within a
// source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Index maps byte offsets in a buffer to line/column positions. Build one
// with NewIndex once the whole buffer is available, then call Position as
// many times as needed; Index holds no reference to the buffer itself.
type Index struct {
	lines []int // 0-based byte offset of the start of each line
}

// NewIndex scans buf once and records the offset of every line start.
func NewIndex(buf []byte) *Index {
	lines := make([]int, 1, 64)
	lines[0] = 0
	for i, b := range buf {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Index{lines: lines}
}

// Position returns the 1-based line and column for offset. The column is a
// byte offset within the line, not a rune offset, mirroring how a streaming
// lexer's token.File.Position reports columns.
func (idx *Index) Position(offset int) Position {
	// Binary search for the last line start <= offset, same probe as a
	// streaming file index's line table, just run against a table built
	// once instead of grown one AddLine call at a time.
	i, j := 0, len(idx.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if idx.lines[h] <= offset {
			i = h + 1
		} else {
			j = h
		}
	}
	line := i // i is now the count of line-starts <= offset, so i-1 is 0-based line index
	lineStart := 0
	if line > 0 {
		lineStart = idx.lines[line-1]
	} else {
		line = 1
	}
	return Position{Line: line, Column: offset - lineStart + 1}
}

// LineBytes returns the raw bytes of the line containing offset, without the
// trailing newline.
func (idx *Index) LineBytes(buf []byte, offset int) []byte {
	pos := idx.Position(offset)
	start := idx.lines[pos.Line-1]
	end := len(buf)
	if pos.Line < len(idx.lines) {
		end = idx.lines[pos.Line] - 1
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start > end {
		start = end
	}
	return buf[start:end]
}
