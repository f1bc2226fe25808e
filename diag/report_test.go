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

package diag_test

import (
	"bytes"
	"testing"

	"github.com/db47h/lexcore/diag"
	"github.com/stretchr/testify/assert"
)

func TestReportASCII(t *testing.T) {
	buf := []byte("let x = 1\nlet y = @\n")
	idx := diag.NewIndex(buf)

	var out bytes.Buffer
	// The '@' at offset 18 is the 9th byte of its line ("let y = @").
	diag.Report(&out, idx, "INPUT", buf, [2]int{18, 19}, "unexpected character")

	want := "INPUT:2:9: unexpected character\n" +
		"|let y = @\n" +
		"|        ^\n"
	assert.Equal(t, want, out.String())
}

func TestReportWideRunes(t *testing.T) {
	// "世界" are East-Asian wide runes occupying two terminal columns each;
	// the caret must land under '1', not drift right as a byte-width count
	// would produce.
	buf := []byte("世界 1\n")
	idx := diag.NewIndex(buf)

	var out bytes.Buffer
	offset := len("世界 ")
	diag.Report(&out, idx, "INPUT", buf, [2]int{offset, offset + 1}, "digit")

	want := "INPUT:1:" + diag.Position{Line: 1, Column: offset + 1}.String()[2:] + ": digit\n" +
		"|世界 1\n" +
		"|     ^\n"
	assert.Equal(t, want, out.String())
}
