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

// Chunk is the set of fixed-size values a Source can hand back from a single
// read. A single byte and byte arrays of length 1 through 16 are supported;
// that range is the fan-out a generated scan routine needs to compare short
// literals with one wide load instead of N single-byte reads.
type Chunk interface {
	byte |
		[1]byte | [2]byte | [3]byte | [4]byte |
		[5]byte | [6]byte | [7]byte | [8]byte |
		[9]byte | [10]byte | [11]byte | [12]byte |
		[13]byte | [14]byte | [15]byte | [16]byte
}

// Read reads a Chunk from src at offset off. It reports false, without
// panicking, if off+sizeof(C) would read past the end of src.
//
// Bounds are checked once per call regardless of C's size, which is the
// coarsest granularity the contract allows: a generator should prefer one
// Read of an N-byte chunk over N single-byte reads.
func Read[C Chunk, S any](src Source[S], off int) (C, bool) {
	var zero C
	size := int(unsafe.Sizeof(zero))
	if off < 0 {
		return zero, false
	}
	b := src.Bytes()
	if off+size > len(b) {
		return zero, false
	}
	return *(*C)(unsafe.Pointer(&b[off])), true
}
