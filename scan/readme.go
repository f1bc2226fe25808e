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

// ReadmeToken is the grammar {End, Error, Fast="fast", Period=".", Text=[a-zA-Z]+}
// used throughout the package's introductory example.
type ReadmeToken int

const (
	ReadmeEnd ReadmeToken = iota
	ReadmeError
	ReadmeText
	ReadmeFast
	ReadmePeriod
	ReadmeSize
)

// Readme is the Grammar for ReadmeToken, its Scan routine hand-written in
// the shape a generator would emit for this pattern set.
var Readme = &lexcore.Grammar[ReadmeToken, string, struct{}]{
	Size:  int(ReadmeSize),
	End:   ReadmeEnd,
	Error: ReadmeError,
	Scan:  scanReadme,
}

func scanReadme(l *lexcore.Lexer[ReadmeToken, string, struct{}]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, _ := lexcore.Read[byte](src, pos)
	switch {
	case isAlpha(b):
		best := l.Scratch()
		end := pos
		for {
			c, ok := lexcore.Read[byte](src, end)
			if !ok || !isAlpha(c) {
				break
			}
			end++
		}
		// [a-zA-Z]+ : priority 1 (Plus over a Class).
		best.Update(end, ReadmeText, 1)
		// "fast" : priority 8 (4 literal bytes * 2).
		if chunk, ok := lexcore.Read[[4]byte](src, pos); ok && chunk == [4]byte{'f', 'a', 's', 't'} {
			best.Update(pos+4, ReadmeFast, 8)
		}
		l.Commit(best)
	case b == '.':
		single(l, ReadmePeriod)
	default:
		l.EmitError()
	}
}
