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

// Package priority computes the static disambiguation score a code
// generator must use to break longest-match ties between patterns.
//
// A pattern is scored by walking its minimal matching path, the shortest
// word its language accepts, and summing +2 for every literal byte and +1
// for every character class or range along that path. Unbounded repetitions
// contribute only their minimum occurrence count (zero for *, one for +);
// optional groups contribute nothing; alternations take the minimum score
// over their branches, since the shortest possible match through an
// alternation is what determines how specific it is.
package priority

// Pattern is a node in a pattern's syntax tree, compile-time only: nothing
// in this package runs at lex time. A code generator builds a Pattern tree
// from whatever surface syntax it parses (a literal string, a regex, ...)
// and calls Score on the root to get the value BestMatch.Update expects as
// its priority argument.
type Pattern interface {
	score() int
}

// Literal is a run of exact bytes, e.g. the pattern for the keyword "else".
// Each byte contributes +2.
type Literal []byte

func (p Literal) score() int { return 2 * len(p) }

// Class is a single character class or range, e.g. [a-z] or \d. It
// contributes +1 regardless of how many characters the class spans.
type Class struct{}

func (Class) score() int { return 1 }

// Concat is a sequence of sub-patterns matched one after another; its score
// is the sum of its parts' scores, since the minimal matching path walks
// through all of them.
type Concat []Pattern

func (p Concat) score() int {
	total := 0
	for _, sub := range p {
		total += Score(sub)
	}
	return total
}

// Alternation is a choice between sub-patterns, e.g. (foo|hello). Its score
// is the minimum over its branches: the shortest branch is the one that
// determines the minimal matching path, and hence the pattern's priority.
type Alternation []Pattern

func (p Alternation) score() int {
	if len(p) == 0 {
		return 0
	}
	min := Score(p[0])
	for _, sub := range p[1:] {
		if s := Score(sub); s < min {
			min = s
		}
	}
	return min
}

// Optional is a sub-pattern that may be absent, e.g. (bar)?. It contributes
// nothing to the score: the minimal matching path skips it entirely.
type Optional struct{ Pattern Pattern }

func (Optional) score() int { return 0 }

// Star is an unbounded repetition that may match zero times, e.g. [a-z]*.
// Like Optional, its minimal matching path takes zero occurrences, so it
// contributes nothing.
type Star struct{ Elem Pattern }

func (Star) score() int { return 0 }

// Plus is an unbounded repetition that must match at least once, e.g.
// [a-z]+. Its minimal matching path takes exactly one occurrence of Elem.
type Plus struct{ Elem Pattern }

func (p Plus) score() int { return Score(p.Elem) }

// Score computes p's priority: the value a generated Scan routine passes to
// BestMatch.Update for a pattern compiled from p.
func Score(p Pattern) int {
	if p == nil {
		return 0
	}
	return p.score()
}

// Ambiguous reports whether two patterns of otherwise-equal minimal match
// length would tie under the priority rule, meaning a grammar containing
// both must be rejected at generation time rather than left for the runtime
// to arbitrate (the runtime never tie-breaks beyond priority).
func Ambiguous(a, b Pattern) bool {
	return Score(a) == Score(b)
}
