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

package scan

import (
	"math/big"

	"github.com/db47h/lexcore"
)

// DenominationToken is the grammar {End, Error, Number}, with three patterns
// sharing the Number variant, each running its own callback:
//
//	[0-9]+    -> denomination = 1
//	[0-9]+k   -> denomination = 1_000
//	[0-9]+m   -> denomination = 1_000_000
//
// Scales are held as math/big values rather than a machine word. Each
// callback overwrites the extras value with its pattern's scale; values are
// not accumulated across tokens.
type DenominationToken int

const (
	DenominationEnd DenominationToken = iota
	DenominationError
	DenominationNumber
	DenominationSize
)

// DenominationExtras is the per-lexer state the three callbacks mutate.
type DenominationExtras struct {
	Denomination big.Int
}

// Denomination is the Grammar for DenominationToken.
var Denomination = &lexcore.Grammar[DenominationToken, string, DenominationExtras]{
	Size:  int(DenominationSize),
	End:   DenominationEnd,
	Error: DenominationError,
	Scan:  scanDenomination,
}

var (
	one  = big.NewInt(1)
	kilo = big.NewInt(1_000)
	mega = big.NewInt(1_000_000)
)

func scanDenomination(l *lexcore.Lexer[DenominationToken, string, DenominationExtras]) {
	skipSpaces(l)
	if l.EmitEnd() {
		return
	}
	src := l.Source()
	pos := l.Pos()
	b, ok := lexcore.Read[byte](src, pos)
	if !ok || !isDigit(b) {
		l.EmitError()
		return
	}

	end := pos
	for {
		c, ok := lexcore.Read[byte](src, end)
		if !ok || !isDigit(c) {
			break
		}
		end++
	}

	scale := one
	if c, ok := lexcore.Read[byte](src, end); ok {
		switch c {
		case 'k':
			scale = kilo
			end++
		case 'm':
			scale = mega
			end++
		}
	}

	l.SetSpan(pos, end)
	l.Token = DenominationNumber
	l.SetPos(end)

	// Callback: runs after the span and token have been finalized, so
	// Slice/Range/Token are all observable from inside it, per the
	// contract. Here it is inlined rather than dispatched through a
	// function table, since a generator would hard-code the call site too.
	l.Extras.Denomination.Set(scale)
}
