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

// OperatorToken is the grammar {End, Error, StrictEq="===", Eq="==", Assign="="},
// the classic nested-literal longest-match case.
type OperatorToken int

const (
	OperatorEnd OperatorToken = iota
	OperatorError
	OperatorStrictEq
	OperatorEq
	OperatorAssign
	OperatorSize
)

// Operator is the Grammar for OperatorToken.
var Operator = &lexcore.Grammar[OperatorToken, string, struct{}]{
	Size:  int(OperatorSize),
	End:   OperatorEnd,
	Error: OperatorError,
	Scan:  scanOperator,
}

func scanOperator(l *lexcore.Lexer[OperatorToken, string, struct{}]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()

	best := l.Scratch()
	if c, ok := lexcore.Read[[3]byte](src, pos); ok && c == [3]byte{'=', '=', '='} {
		best.Update(pos+3, OperatorStrictEq, 6)
	}
	if c, ok := lexcore.Read[[2]byte](src, pos); ok && c == [2]byte{'=', '='} {
		best.Update(pos+2, OperatorEq, 4)
	}
	if c, ok := lexcore.Read[byte](src, pos); ok && c == '=' {
		best.Update(pos+1, OperatorAssign, 2)
	}
	if !best.Ok() {
		l.EmitError()
		return
	}
	l.Commit(best)
}
