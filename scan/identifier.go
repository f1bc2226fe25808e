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

// IdentToken is the grammar {End, Error, Else="else", Exposed="exposed",
// Ident=[^ \t\n\r"'!@#$%^&*()\-+=,.<>/?;:\[\]{}\\|`~]+}. It demonstrates a
// generic identifier class outrunning literal keywords that are themselves
// valid prefixes of a longer identifier.
type IdentToken int

const (
	IdentEnd IdentToken = iota
	IdentError
	IdentIdent
	IdentElse
	IdentExposed
	IdentSize
)

var identKeywords = []struct {
	lit string
	tok IdentToken
}{
	{"else", IdentElse},
	{"exposed", IdentExposed},
}

// Ident is the Grammar for IdentToken.
var Ident = &lexcore.Grammar[IdentToken, string, struct{}]{
	Size:  int(IdentSize),
	End:   IdentEnd,
	Error: IdentError,
	Scan:  scanIdent,
}

// identPunctuation is the set of bytes excluded from the identifier class.
const identPunctuation = " \t\n\r\"'!@#$%^&*()-+=,.<>/?;:[]{}\\|`~"

func isIdentByte(b byte) bool {
	for i := 0; i < len(identPunctuation); i++ {
		if identPunctuation[i] == b {
			return false
		}
	}
	return true
}

func scanIdent(l *lexcore.Lexer[IdentToken, string, struct{}]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, ok := lexcore.Read[byte](src, pos)
	if !ok || !isIdentByte(b) {
		l.EmitError()
		return
	}

	best := l.Scratch()
	end := pos
	for {
		c, ok := lexcore.Read[byte](src, end)
		if !ok || !isIdentByte(c) {
			break
		}
		end++
	}
	best.Update(end, IdentIdent, 1)

	buf := src.Bytes()
	for _, kw := range identKeywords {
		n := len(kw.lit)
		if pos+n <= len(buf) && string(buf[pos:pos+n]) == kw.lit {
			best.Update(pos+n, kw.tok, 2*n)
		}
	}
	l.Commit(best)
}
