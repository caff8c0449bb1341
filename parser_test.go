package automata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAutomaton = `1:X:q0,q1
2:X:a,b
3:X:q0
4:X:q1
5:X:q0,a,q1;q0,b,q0;q1,a,q1;q1,b,q0
`

func TestParser_RoundTrip(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.Parse(sampleAutomaton))

	a, ok := p.Automaton("X")
	require.True(t, ok)
	require.True(t, a.Validate().IsValid)

	res := a.RecognizeWord("a")
	assert.True(t, res.Accepted)
	assert.Equal(t, "q1", res.FinalState)

	res = a.RecognizeWord("b")
	assert.False(t, res.Accepted)
	assert.Equal(t, "q0", res.FinalState)
}

func TestParser_Grammar(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.Parse("6:G:S,A\n7:G:a,b\n8:G:S\n9:G:S->aA;S->b;A->a;A->ε\n"))

	g, ok := p.Grammar("G")
	require.True(t, ok)
	assert.True(t, g.Validate().IsValid)
	assert.Equal(t, 4, g.Info().ProductionsCount)
}

func TestParser_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"missing separator", "1:X", 1},
		{"too many separators", "1:X:q0:extra", 1},
		{"non-integer code", "x:X:q0", 1},
		{"unknown code", "12:X:q0", 1},
		{"transition with four fields", "1:X:q0,q1\n5:X:q0,a,q1,q2", 2},
		{"production without arrow", "6:G:S\n7:G:a\n8:G:S\n9:G:S=a", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			err := p.Parse(tt.content)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.line, fe.Line)
			assert.Contains(t, err.Error(), fe.Raw)
		})
	}
}

func TestParser_SetterErrorsArePropagated(t *testing.T) {
	t.Run("initial state before states", func(t *testing.T) {
		err := NewParser().Parse("3:X:q0")
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, ErrUnknownState)
	})

	t.Run("transitions before alphabet", func(t *testing.T) {
		err := NewParser().Parse("1:X:q0,q1\n5:X:q0,a,q1")
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 2, fe.Line)
		assert.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("start symbol before nonterminals", func(t *testing.T) {
		err := NewParser().Parse("8:G:S")
		assert.ErrorIs(t, err, ErrUnknownNonTerminal)
	})
}

func TestParser_NoPartialStateAfterFailure(t *testing.T) {
	p := NewParser()
	err := p.Parse(sampleAutomaton + "5:X:q0,a,q1,q2\n")
	require.Error(t, err)

	assert.Empty(t, p.Automata())
	assert.Empty(t, p.Grammars())

	// A clean retry on the same parser works.
	require.NoError(t, p.Parse(sampleAutomaton))
	_, ok := p.Automaton("X")
	assert.True(t, ok)
}

func TestParser_Clear(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.Parse(sampleAutomaton))
	require.Len(t, p.Automata(), 1)

	p.Clear()
	assert.Empty(t, p.Automata())
	assert.Empty(t, p.Grammars())
}

func TestParser_BlankLinesAndWhitespace(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.Parse("\n  1 : X : q0 , q1 \n\n\t\n  2:X:a\n"))

	a, ok := p.Automaton("X")
	require.True(t, ok)
	assert.Equal(t, []string{"q0", "q1"}, a.Info().States)
	assert.Equal(t, []string{"a"}, a.Info().Alphabet)
}

func TestParser_MultipleModels(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.Parse("1:X:q0\n1:Y:s0\n2:X:a\n2:Y:b\n6:X:S\n"))

	assert.Len(t, p.Automata(), 2)
	// An automaton and a grammar may share a name; codes keep them apart.
	assert.Len(t, p.Grammars(), 1)

	x, ok := p.Automaton("X")
	require.True(t, ok)
	assert.Equal(t, []string{"q0"}, x.Info().States)
}

func TestParser_ExampleFile(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "example.txt"))
	require.NoError(t, err)

	p := NewParser()
	require.NoError(t, p.Parse(string(content)))

	a, ok := p.Automaton("X")
	require.True(t, ok)
	assert.True(t, a.Validate().IsValid)

	g, ok := p.Grammar("G")
	require.True(t, ok)
	assert.True(t, g.Validate().IsValid)
}
