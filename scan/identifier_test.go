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
	"github.com/stretchr/testify/require"
)

func TestIdentOutrunsKeyword(t *testing.T) {
	l := scan.Ident.Lexer(lexcore.NewTextSource("exposed_function"))
	require.Equal(t, scan.IdentIdent, l.Token)
	assert.Equal(t, "exposed_function", l.Slice())
	start, end := l.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 16, end)
}

func TestIdentKeywordWhenNotExtended(t *testing.T) {
	l := scan.Ident.Lexer(lexcore.NewTextSource("else exposed"))
	require.Equal(t, scan.IdentElse, l.Token)
	assert.Equal(t, "else", l.Slice())

	l.Advance()
	require.Equal(t, scan.IdentExposed, l.Token)
	assert.Equal(t, "exposed", l.Slice())

	l.Advance()
	assert.Equal(t, scan.IdentEnd, l.Token)
}
