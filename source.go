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

package lexcore

import "unsafe"

// Source is a random-access, immutable view over a fully materialized byte
// buffer. S is the type a Slice of this Source is handed back as: string for
// text, []byte for binary.
//
// Implementations are expected to be cheap value types (a string or a []byte
// header) so that wrapping one in a Lexer costs nothing.
type Source[S any] interface {
	// Len returns the length of the source, in bytes.
	Len() int

	// Bytes returns the raw backing bytes of the source. It exists so that
	// the generic Read function can batch bounds checks without Source
	// itself needing a generic method (Go interface methods cannot carry
	// their own type parameters).
	Bytes() []byte

	// Slice returns the sub-range [start, end), or false if the range is out
	// of bounds or (for text sources) does not fall on code-point
	// boundaries.
	Slice(start, end int) (S, bool)

	// SliceUnchecked returns the sub-range [start, end) without validating
	// it. Callers must only pass ranges they have already proven valid by
	// construction; violating that precondition is undefined behavior.
	SliceUnchecked(start, end int) S

	// FindBoundary returns the smallest j >= i that is safe to slice at. For
	// binary sources this is the identity function.
	FindBoundary(i int) int
}

// BinarySource is a marker for Source implementations that accept arbitrary
// byte ranges with no regard to any character encoding. A grammar whose
// alphabet admits bytes that aren't constrained to valid code points must be
// built against a BinarySource, never a text Source; RequireBinarySource
// encodes that constraint at the type level.
type BinarySource[S any] interface {
	Source[S]

	// AllowsArbitraryBytes is a marker method with no behavior; only
	// BytesSource implements it, which is what makes BinarySource a proper
	// subset of Source for overload-resolution purposes.
	AllowsArbitraryBytes()
}

// TextSource is a Source over a UTF-8 string.
type TextSource string

// NewTextSource wraps s as a Source. The caller retains ownership of s for
// as long as any Lexer or Slice derived from it is in use.
func NewTextSource(s string) TextSource { return TextSource(s) }

// Len implements Source.
func (s TextSource) Len() int { return len(s) }

// Bytes implements Source. It returns the string's own storage without
// copying it; the returned slice must not be modified.
func (s TextSource) Bytes() []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}

// Slice implements Source. It reports false not only for an out-of-bounds
// range but also for one that splits a UTF-8 code point, mirroring
// str::get's behavior over slicing blindly.
func (s TextSource) Slice(start, end int) (string, bool) {
	if start < 0 || start > end || end > len(s) {
		return "", false
	}
	if !isCodePointBoundary(s, start) || !isCodePointBoundary(s, end) {
		return "", false
	}
	return string(s[start:end]), true
}

// isCodePointBoundary reports whether i is a valid code-point boundary in s:
// either the very end of s, or an offset whose byte isUTF8Boundary accepts.
func isCodePointBoundary(s TextSource, i int) bool {
	return i == len(s) || isUTF8Boundary(s[i])
}

// SliceUnchecked implements Source.
func (s TextSource) SliceUnchecked(start, end int) string {
	return string(s[start:end])
}

// FindBoundary implements Source, rounding i up to the next UTF-8 code-point
// boundary (or to len(s) if no boundary follows i). An i already past the
// end is returned unchanged.
func (s TextSource) FindBoundary(i int) int {
	n := len(s)
	for i < n && !isUTF8Boundary(s[i]) {
		i++
	}
	return i
}

// isUTF8Boundary reports whether b cannot be a UTF-8 continuation byte, i.e.
// it is either ASCII or the first byte of a multi-byte sequence.
func isUTF8Boundary(b byte) bool {
	return b&0xC0 != 0x80
}

// BytesSource is a Source over an arbitrary, not-necessarily-UTF-8 byte
// buffer.
type BytesSource []byte

// NewBytesSource wraps b as a Source. The caller retains ownership of b for
// as long as any Lexer or Slice derived from it is in use; b must not be
// mutated while in use.
func NewBytesSource(b []byte) BytesSource { return BytesSource(b) }

// Len implements Source.
func (s BytesSource) Len() int { return len(s) }

// Bytes implements Source.
func (s BytesSource) Bytes() []byte { return s }

// Slice implements Source.
func (s BytesSource) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > len(s) {
		return nil, false
	}
	return s[start:end], true
}

// SliceUnchecked implements Source.
func (s BytesSource) SliceUnchecked(start, end int) []byte {
	return s[start:end]
}

// FindBoundary implements Source; every offset is a valid boundary in a
// binary source.
func (s BytesSource) FindBoundary(i int) int { return i }

// AllowsArbitraryBytes implements BinarySource.
func (s BytesSource) AllowsArbitraryBytes() {}
