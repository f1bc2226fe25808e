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

package priority_test

import (
	"testing"

	"github.com/db47h/lexcore/priority"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name string
		p    priority.Pattern
		want int
	}{
		{
			name: "class plus, [a-zA-Z]+",
			p:    priority.Plus{Elem: priority.Class{}},
			want: 1,
		},
		{
			name: "literal foobar",
			p:    priority.Literal("foobar"),
			want: 12,
		},
		{
			name: "(foo|hello)(bar)?",
			p: priority.Concat{
				priority.Alternation{priority.Literal("foo"), priority.Literal("hello")},
				priority.Optional{Pattern: priority.Literal("bar")},
			},
			want: 6,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, priority.Score(c.p))
		})
	}
}

func TestAmbiguous(t *testing.T) {
	assert.True(t, priority.Ambiguous(priority.Literal("=="), priority.Literal("ab")))
	assert.False(t, priority.Ambiguous(priority.Literal("=="), priority.Literal("abc")))
}
