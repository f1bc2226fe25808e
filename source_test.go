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

package lexcore_test

import (
	"testing"

	"github.com/db47h/lexcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSourceRead(t *testing.T) {
	src := lexcore.NewTextSource("foo")

	c1, ok := lexcore.Read[[3]byte](src, 0)
	require.True(t, ok)
	assert.Equal(t, [3]byte{'f', 'o', 'o'}, c1)

	c2, ok := lexcore.Read[[2]byte](src, 0)
	require.True(t, ok)
	assert.Equal(t, [2]byte{'f', 'o'}, c2)

	c3, ok := lexcore.Read[byte](src, 2)
	require.True(t, ok)
	assert.Equal(t, byte('o'), c3)

	_, ok = lexcore.Read[[4]byte](src, 0)
	assert.False(t, ok, "reading past the end must report false, not panic")

	_, ok = lexcore.Read[[2]byte](src, 2)
	assert.False(t, ok)
}

func TestBytesSourceIsBinary(t *testing.T) {
	src := lexcore.NewBytesSource([]byte{0xff, 0x00, 0x80})
	var _ lexcore.BinarySource[[]byte] = src

	b, ok := lexcore.Read[byte](src, 0)
	require.True(t, ok)
	assert.Equal(t, byte(0xff), b)
}

func TestTextSourceFindBoundary(t *testing.T) {
	// "世" is a 3-byte UTF-8 sequence starting at offset 0.
	src := lexcore.NewTextSource("世界")
	assert.Equal(t, 0, src.FindBoundary(0))
	assert.Equal(t, 3, src.FindBoundary(1))
	assert.Equal(t, 3, src.FindBoundary(2))
	assert.Equal(t, 3, src.FindBoundary(3))
}

func TestBytesSourceFindBoundaryIsIdentity(t *testing.T) {
	src := lexcore.NewBytesSource([]byte{1, 2, 3})
	for i := 0; i <= 3; i++ {
		assert.Equal(t, i, src.FindBoundary(i))
	}
}

func TestTextSourceSliceRejectsNonBoundary(t *testing.T) {
	// "世界" splits as [0,3) and [3,6); slicing into the middle of "世" must
	// fail instead of cutting a code point in half.
	src := lexcore.NewTextSource("世界")

	_, ok := src.Slice(1, 2)
	assert.False(t, ok, "slicing a non-boundary range must report false")

	_, ok = src.Slice(0, 2)
	assert.False(t, ok, "a range ending mid-code-point must report false")

	got, ok := src.Slice(0, 3)
	require.True(t, ok)
	assert.Equal(t, "世", got)
}

func TestSliceUncheckedMatchesSourceBytes(t *testing.T) {
	const s = "hello world"
	src := lexcore.NewTextSource(s)
	got := src.SliceUnchecked(6, 11)
	assert.Equal(t, s[6:11], got)
}
