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

/*
Package lexcore is the runtime core that a token-lexer code generator targets.

It does not contain a regex-to-DFA compiler. Instead it defines the small set
of contracts a generated scanner relies on:

  - Source, a random-access, fully materialized view over text or binary
    input (source.go).
  - Chunk, a fixed-size read from a Source used to batch bounds checks
    (chunk.go).
  - Grammar, the association between a token enumeration, its extras type
    and its generated Scan routine (token.go).
  - Lexer, the cursor/token/span/extras state a Scan routine mutates
    (lexer.go).
  - BestMatch, the accept-state bookkeeping a longest-match Scan routine
    closes over (bestmatch.go).

A generated Scan routine is expected to be a longest-match, priority
tie-broken dispatcher over Source reads; see the priority subpackage for the
static scoring rules a grammar compiler must honor, and the scan subpackage
for hand-written routines in the shape a generator would emit.

Unlike a streaming lexer, a Source here is never partially filled: the whole
input is in memory before the first Lexer is constructed, so Advance never
blocks and never allocates.
*/
package lexcore
