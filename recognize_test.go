package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSymbol_NotInitialized(t *testing.T) {
	a := endsInA(t)
	_, err := a.ProcessSymbol("a")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestProcessSymbol(t *testing.T) {
	a := endsInA(t)
	a.Reset()

	t.Run("symbol outside alphabet", func(t *testing.T) {
		ok, err := a.ProcessSymbol("z")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Len(t, a.Trace(), 1)
	})

	t.Run("defined transition advances", func(t *testing.T) {
		ok, err := a.ProcessSymbol("a")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []TraceStep{
			{State: "q0", Step: 0},
			{State: "q1", Symbol: "a", Step: 1},
		}, a.Trace())
	})
}

func TestRecognizeWord(t *testing.T) {
	a := endsInA(t)

	t.Run("accepted", func(t *testing.T) {
		res := a.RecognizeWord("a")
		assert.True(t, res.Accepted)
		assert.Equal(t, "q1", res.FinalState)
		assert.Empty(t, res.Error)
		assert.Equal(t, []TraceStep{
			{State: "q0", Step: 0},
			{State: "q1", Symbol: "a", Step: 1},
		}, res.Path)
	})

	t.Run("rejected", func(t *testing.T) {
		res := a.RecognizeWord("b")
		assert.False(t, res.Accepted)
		assert.Equal(t, "q0", res.FinalState)
		assert.Empty(t, res.Error)
	})

	t.Run("empty word", func(t *testing.T) {
		res := a.RecognizeWord("")
		assert.False(t, res.Accepted)
		assert.Equal(t, "q0", res.FinalState)
		assert.Len(t, res.Path, 1)
	})

	t.Run("symbol outside alphabet", func(t *testing.T) {
		res := a.RecognizeWord("ac")
		assert.False(t, res.Accepted)
		assert.Empty(t, res.FinalState)
		assert.Contains(t, res.Error, `"c"`)
		assert.Contains(t, res.Error, `"q1"`)
		// Trace keeps everything consumed before the failure.
		assert.Len(t, res.Path, 2)
	})

	t.Run("no initial state", func(t *testing.T) {
		b := NewFiniteAutomaton("B")
		b.SetStates([]string{"q0"})
		b.SetAlphabet([]string{"a"})
		res := b.RecognizeWord("a")
		assert.False(t, res.Accepted)
		assert.NotEmpty(t, res.Error)
		assert.Empty(t, res.Path)
	})
}

func TestRecognizeWord_Idempotent(t *testing.T) {
	a := endsInA(t)
	for _, word := range []string{"", "a", "b", "abab", "bbba", "ax"} {
		first := a.RecognizeWord(word)
		second := a.RecognizeWord(word)
		assert.Equal(t, first, second, "word %q", word)
	}
}

// TestRecognizeWord_MatchesManualWalk cross-checks the recognition engine
// against a hand-rolled walk of the transition table.
func TestRecognizeWord_MatchesManualWalk(t *testing.T) {
	a := endsInA(t)

	for _, word := range wordsUpTo([]string{"a", "b"}, 5) {
		state := "q0"
		consumable := true
		for _, r := range word {
			next, ok := a.Step(state, string(r))
			if !ok {
				consumable = false
				break
			}
			state = next
		}
		want := consumable && a.IsFinal(state)

		res := a.RecognizeWord(word)
		require.Equal(t, want, res.Accepted, "word %q", word)
		if consumable {
			require.Equal(t, state, res.FinalState, "word %q", word)
		}
	}
}

// wordsUpTo enumerates every word over the alphabet with length <= maxLen,
// including the empty word.
func wordsUpTo(alphabet []string, maxLen int) []string {
	words := []string{""}
	previous := []string{""}
	for i := 0; i < maxLen; i++ {
		next := make([]string, 0, len(previous)*len(alphabet))
		for _, w := range previous {
			for _, s := range alphabet {
				next = append(next, w+s)
			}
		}
		words = append(words, next...)
		previous = next
	}
	return words
}
