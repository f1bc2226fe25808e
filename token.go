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

// Grammar is the runtime counterpart of what a code generator emits for a
// token enumeration T: an associated-constants trait in a language that has
// them, carried here as plain struct fields, since Go has no way to attach
// associated constants to a generic type parameter.
//
//   - T is the token enumeration. It must be comparable so a Lexer's Token
//     can be compared against End/Error.
//   - S is the Slice type of the Source this grammar scans (string or
//     []byte).
//   - E is the Extras type; E's zero value is the default-constructed
//     extras a Lexer starts with. Grammars with no need for extras should
//     use struct{}.
type Grammar[T comparable, S any, E any] struct {
	// Size is the cardinality of T. Every variant's ordinal must be < Size;
	// the generator is responsible for that invariant, this struct merely
	// carries the number so callers can size flat per-variant arrays.
	Size int

	// End is the sentinel variant emitted once the source is exhausted.
	End T

	// Error is the sentinel variant emitted when no pattern matches at the
	// cursor.
	Error T

	// Scan is the generated scanning routine: a longest-match, priority
	// tie-broken dispatcher that reads from lexer.source starting at
	// lexer.pos, and on return has set lexer.spanStart, lexer.spanEnd,
	// lexer.Token and lexer.pos, having also run any callback associated
	// with the matched pattern. See the scan subpackage for examples of the
	// shape Scan is expected to take.
	Scan func(*Lexer[T, S, E])
}

// Lexer constructs a new Lexer over source and immediately runs Scan once so
// that the first token is already materialized, per the framework's
// pre-populate convention: callers never observe a lexer with no current
// token.
func (g *Grammar[T, S, E]) Lexer(source Source[S]) *Lexer[T, S, E] {
	l := &Lexer[T, S, E]{
		source:  source,
		grammar: g,
	}
	g.Scan(l)
	return l
}

// RequireBinarySource is a compile-time assertion helper: instantiate it
// with a grammar's S to make sure only BinarySource-backed sources can be
// used with a grammar whose alphabet admits arbitrary bytes. A generator
// that determined a grammar needs binary input should call this (or an
// equivalent constraint) instead of accepting any Source[[]byte].
func RequireBinarySource[S any](_ BinarySource[S]) {}
