package automata

import "fmt"

// TraceStep is one entry of a recognition trace: the state reached, the
// symbol consumed to reach it (empty on the initial step), and the step
// index. Step 0 is always the initial state with no symbol.
type TraceStep struct {
	State  string `json:"state"`
	Symbol string `json:"symbol,omitempty"`
	Step   int    `json:"step"`
}

// Recognition is the outcome of running a word through an automaton. A
// rejected or unconsumable word is an expected outcome, so failures are
// carried in Error rather than returned as a Go error. FinalState is set
// only when the whole word was consumed.
type Recognition struct {
	Word       string      `json:"word"`
	Accepted   bool        `json:"accepted"`
	Path       []TraceStep `json:"path"`
	Error      string      `json:"error,omitempty"`
	FinalState string      `json:"finalState,omitempty"`
}

// Reset Moves the execution state back to the initial state and starts a
// fresh trace. Must be called before ProcessSymbol; RecognizeWord calls it
// itself. When no initial state is set the trace starts empty and every
// subsequent symbol fails to advance.
func (a *FiniteAutomaton) Reset() {
	a.current = a.initial
	a.initialized = true
	a.trace = nil
	if a.initial != "" {
		a.trace = []TraceStep{{State: a.initial, Step: 0}}
	}
}

// ProcessSymbol Advances the execution state by one symbol. Returns false
// without mutating anything when the symbol is outside the alphabet or no
// transition is defined for (currentState, symbol); returns an error only
// when Reset has not been called.
func (a *FiniteAutomaton) ProcessSymbol(symbol string) (bool, error) {
	if !a.initialized {
		return false, fmt.Errorf("%w: call Reset before ProcessSymbol", ErrNotInitialized)
	}
	if _, ok := a.alphabet[symbol]; !ok {
		return false, nil
	}
	to, ok := a.Step(a.current, symbol)
	if !ok {
		return false, nil
	}
	a.current = to
	a.trace = append(a.trace, TraceStep{State: to, Symbol: symbol, Step: len(a.trace)})
	return true, nil
}

// RecognizeWord Resets the automaton and feeds the word through it one code
// point at a time. On the first symbol that cannot be consumed the result
// carries Accepted=false, an error naming the symbol and the state it failed
// from, and the trace accumulated up to that point. On full consumption the
// word is accepted exactly when the state reached is a final state.
//
// Repeated calls with the same word always produce the same result; nothing
// outside this automaton instance is touched.
func (a *FiniteAutomaton) RecognizeWord(word string) Recognition {
	a.Reset()
	res := Recognition{Word: word}

	for _, r := range word {
		symbol := string(r)
		ok, err := a.ProcessSymbol(symbol)
		if err != nil {
			res.Error = err.Error()
			res.Path = a.pathCopy()
			return res
		}
		if !ok {
			res.Error = fmt.Sprintf("no transition from state %q on symbol %q", a.current, symbol)
			res.Path = a.pathCopy()
			return res
		}
	}

	res.FinalState = a.current
	res.Accepted = a.IsFinal(a.current)
	res.Path = a.pathCopy()
	return res
}

// Trace Returns a copy of the trace of the most recent run.
func (a *FiniteAutomaton) Trace() []TraceStep {
	return a.pathCopy()
}

func (a *FiniteAutomaton) pathCopy() []TraceStep {
	path := make([]TraceStep, len(a.trace))
	copy(path, a.trace)
	return path
}
