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

// BestMatch tracks the furthest offset and token variant of the best
// accepting state seen so far during a single Scan invocation. A generated
// (or hand-written) Scan routine walks the source from the cursor, updating
// BestMatch every time it passes through an accepting DFA state, and commits
// to whatever BestMatch holds once it hits a dead state or runs out of
// input.
//
// Two slots are sufficient: the scan never needs to remember every accepting
// candidate on the current path, only the best one, because longest match
// strictly dominates and priority only breaks ties at equal length.
type BestMatch[T any] struct {
	end      int
	variant  T
	priority int
	ok       bool
}

// Reset clears the tracker for a new Scan call starting at pos.
func (b *BestMatch[T]) Reset() {
	b.end, b.ok = 0, false
}

// Update records a candidate accept at byte offset end with the given
// variant and priority. It keeps the candidate with the greatest end; on a
// tie it keeps the one with the greater priority. The caller is responsible
// for only calling Update from states that are actually accepting, and for
// passing a priority consistent with the static scoring rules in the
// priority subpackage.
func (b *BestMatch[T]) Update(end int, variant T, priority int) {
	if !b.ok || end > b.end {
		b.end, b.variant, b.ok = end, variant, true
		b.priority = priority
		return
	}
	if end == b.end && priority > b.priority {
		b.variant = variant
		b.priority = priority
	}
}

// Ok reports whether at least one accepting state was recorded.
func (b *BestMatch[T]) Ok() bool { return b.ok }

// End returns the end offset of the current best match. Valid only if Ok
// returns true.
func (b *BestMatch[T]) End() int { return b.end }

// Variant returns the token variant of the current best match. Valid only if
// Ok returns true.
func (b *BestMatch[T]) Variant() T { return b.variant }
