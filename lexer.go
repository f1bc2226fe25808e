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

// Lexer holds the state of a single scan over a Source: the source itself,
// the cursor, the most recently recognized token's span and variant, and
// user-defined Extras. A Lexer is single-threaded and cooperative: Advance
// always runs to completion, there are no suspension points, and the caller
// owns the Lexer exclusively between calls.
//
// The zero value of Lexer is not usable; construct one through
// Grammar.Lexer.
type Lexer[T comparable, S any, E any] struct {
	source  Source[S]
	grammar *Grammar[T, S, E]

	pos       int
	spanStart int
	spanEnd   int
	scratch   BestMatch[T]

	// Token is the most recently recognized token's variant. It is safe for
	// a callback to reclassify it, but nothing else should write to it.
	Token T

	// Extras is user-defined state, created as E's zero value when the
	// Lexer was constructed, and mutated only by grammar callbacks.
	Extras E
}

// Source returns the Source this Lexer was constructed over.
func (l *Lexer[T, S, E]) Source() Source[S] { return l.source }

// Pos returns the current cursor offset, i.e. where the next Scan
// invocation will start reading from.
func (l *Lexer[T, S, E]) Pos() int { return l.pos }

// Range returns the byte span [start, end) of the current token.
func (l *Lexer[T, S, E]) Range() (int, int) { return l.spanStart, l.spanEnd }

// Slice returns the current token's slice of the source. It is only valid
// to call this between a Scan invocation (construction or Advance) and the
// next one.
func (l *Lexer[T, S, E]) Slice() S {
	return l.source.SliceUnchecked(l.spanStart, l.spanEnd)
}

// Scratch returns this Lexer's reusable best-so-far tracker, reset and ready
// for a new accepting-state walk starting at the current cursor. A Scan
// routine calls this instead of declaring its own BestMatch, so the same
// two-slot storage is reused call after call rather than re-zeroed stack
// space every time: the lexer-resident state the zero-allocation contract
// asks for (spec.md §5, §9).
func (l *Lexer[T, S, E]) Scratch() *BestMatch[T] {
	l.scratch.Reset()
	return &l.scratch
}

// Advance runs the grammar's Scan routine again to move to the next token.
// It is idempotent once Token == grammar.End: a Scan routine is required to
// leave (Token, spanStart, spanEnd, pos) unchanged when it is invoked with
// pos already at len(source).
func (l *Lexer[T, S, E]) Advance() {
	l.grammar.Scan(l)
}

// SetSpan sets the current token's span. It exists for use by generated (or
// hand-written) Scan routines; ordinary callers should never need it.
func (l *Lexer[T, S, E]) SetSpan(start, end int) {
	l.spanStart, l.spanEnd = start, end
}

// SetPos moves the cursor. It exists for use by generated Scan routines.
func (l *Lexer[T, S, E]) SetPos(pos int) {
	l.pos = pos
}

// EmitEnd implements the end-of-input case of the scan contract: if the
// cursor is already at the end of the source, it sets span and token
// accordingly and reports true. Scan routines are expected to call this
// first, before attempting to match any pattern.
func (l *Lexer[T, S, E]) EmitEnd() bool {
	n := l.source.Len()
	if l.pos != n {
		return false
	}
	l.spanStart, l.spanEnd = n, n
	l.Token = l.grammar.End
	return true
}

// EmitError implements the no-match case of the scan contract: no pattern
// accepted even a single byte starting at the cursor. It advances pos by at
// least one unit of progress via source.FindBoundary(pos+1), which for text
// sources rounds up to the next code point and for binary sources is just
// pos+1. It sets the span to [pos, newPos) and the token to grammar.Error.
func (l *Lexer[T, S, E]) EmitError() {
	start := l.pos
	end := l.source.FindBoundary(start + 1)
	if end <= start {
		end = start + 1
	}
	if n := l.source.Len(); end > n {
		end = n
	}
	l.spanStart, l.spanEnd = start, end
	l.Token = l.grammar.Error
	l.pos = end
}

// Commit implements the accept-state bookkeeping case of the scan contract:
// given a BestMatch produced while scanning from the cursor, it sets the
// span to [pos, best.End()), sets Token to best.Variant(), and advances pos
// to best.End(). The caller must have already checked best.Ok(); Commit does
// not fall back to EmitError itself so that a Scan routine can choose its
// own ordering of checks.
func (l *Lexer[T, S, E]) Commit(best *BestMatch[T]) {
	start := l.pos
	end := best.End()
	l.spanStart, l.spanEnd = start, end
	l.Token = best.Variant()
	l.pos = end
}
