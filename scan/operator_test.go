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

package scan_test

import (
	"testing"

	"github.com/db47h/lexcore"
	"github.com/db47h/lexcore/scan"
	"github.com/stretchr/testify/assert"
)

func TestOperatorLongestMatch(t *testing.T) {
	l := scan.Operator.Lexer(lexcore.NewTextSource("==="))
	assert.Equal(t, scan.OperatorStrictEq, l.Token)
	assert.Equal(t, "===", l.Slice())
	l.Advance()
	assert.Equal(t, scan.OperatorEnd, l.Token)
}

func TestOperatorAllThree(t *testing.T) {
	l := scan.Operator.Lexer(lexcore.NewTextSource("= == ==="))

	type want struct {
		tok   scan.OperatorToken
		slice string
	}
	wants := []want{
		{scan.OperatorAssign, "="},
		{scan.OperatorEq, "=="},
		{scan.OperatorStrictEq, "==="},
	}
	for _, w := range wants {
		assert.Equal(t, w.tok, l.Token)
		assert.Equal(t, w.slice, l.Slice())
		l.Advance()
	}
	assert.Equal(t, scan.OperatorEnd, l.Token)
}
