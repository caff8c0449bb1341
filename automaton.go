package automata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// FiniteAutomaton Represents a deterministic finite automaton over named
// states and symbols. Determinism is structural: transitions are keyed by
// (state, symbol), so at most one target can exist per pair. Registering a
// second target for an existing pair overwrites the first and reports the
// overwrite through Logger instead of failing.
//
// Build an automaton incrementally: SetStates and SetAlphabet first, then
// SetInitialState, SetFinalStates and AddTransition. Each setter validates
// against the sets in place when it runs, so transitions must come after
// states and alphabet.
type FiniteAutomaton struct {
	name        string
	states      map[string]struct{}
	alphabet    map[string]struct{}
	initial     string
	finals      map[string]struct{}
	transitions map[transitionKey]string

	// Execution state for the recognition engine; see recognize.go.
	current     string
	trace       []TraceStep
	initialized bool
}

type transitionKey struct {
	from   string
	symbol string
}

// Transition is the read-only view of a single transition, as exposed to the
// presentation layer through Info.
type Transition struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// Validation is the outcome of Validate on either model kind. It is derived
// on demand and never stored.
type Validation struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AutomatonInfo is the read-only snapshot consumed by the presentation
// layer. Set and transition orderings are sorted for stable display.
type AutomatonInfo struct {
	Name             string       `json:"name"`
	States           []string     `json:"states"`
	Alphabet         []string     `json:"alphabet"`
	InitialState     string       `json:"initialState,omitempty"`
	FinalStates      []string     `json:"finalStates"`
	TransitionsCount int          `json:"transitionsCount"`
	Transitions      []Transition `json:"transitions"`
}

// NewFiniteAutomaton Creates an empty automaton with the given name.
func NewFiniteAutomaton(name string) *FiniteAutomaton {
	return &FiniteAutomaton{
		name:        name,
		states:      make(map[string]struct{}),
		alphabet:    make(map[string]struct{}),
		finals:      make(map[string]struct{}),
		transitions: make(map[transitionKey]string),
	}
}

// Name Returns the automaton's identifying name.
func (a *FiniteAutomaton) Name() string {
	return a.name
}

// SetStates Replaces the state set. Names are trimmed; duplicates and blank
// entries are absorbed silently.
func (a *FiniteAutomaton) SetStates(names []string) {
	a.states = trimmedSet(names)
}

// SetAlphabet Replaces the alphabet. Symbols are trimmed; duplicates and
// blank entries are absorbed silently.
func (a *FiniteAutomaton) SetAlphabet(symbols []string) {
	a.alphabet = trimmedSet(symbols)
}

// SetInitialState Marks the initial state. The name must already be a member
// of the state set.
func (a *FiniteAutomaton) SetInitialState(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := a.states[name]; !ok {
		return fmt.Errorf("%w: %q is not a state of %q", ErrUnknownState, name, a.name)
	}
	a.initial = name
	return nil
}

// SetFinalStates Replaces the final-state set. Every name must already be a
// member of the state set; the initial state carries no special role here.
func (a *FiniteAutomaton) SetFinalStates(names []string) error {
	finals := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := a.states[name]; !ok {
			return fmt.Errorf("%w: final state %q is not a state of %q", ErrUnknownState, name, a.name)
		}
		finals[name] = struct{}{}
	}
	a.finals = finals
	return nil
}

// AddTransition Registers the transition from --symbol--> to. Both states
// must exist and the symbol must belong to the alphabet. A transition already
// registered for (from, symbol) is overwritten; the overwrite is reported
// through Logger as a non-fatal anomaly.
func (a *FiniteAutomaton) AddTransition(from, symbol, to string) error {
	from = strings.TrimSpace(from)
	symbol = strings.TrimSpace(symbol)
	to = strings.TrimSpace(to)

	if _, ok := a.states[from]; !ok {
		return fmt.Errorf("%w: %q is not a state of %q", ErrUnknownState, from, a.name)
	}
	if _, ok := a.states[to]; !ok {
		return fmt.Errorf("%w: %q is not a state of %q", ErrUnknownState, to, a.name)
	}
	if _, ok := a.alphabet[symbol]; !ok {
		return fmt.Errorf("%w: %q is not in the alphabet of %q", ErrUnknownSymbol, symbol, a.name)
	}

	key := transitionKey{from: from, symbol: symbol}
	if prev, ok := a.transitions[key]; ok {
		Logger.Warn("transition overwritten",
			"automaton", a.name,
			"from", from,
			"symbol", symbol,
			"previous", prev,
			"new", to)
	}
	a.transitions[key] = to
	return nil
}

// SetTransitions Parses a transition list of the form
// "from,symbol,to;from,symbol,to;..." and registers each triple through
// AddTransition. A piece with other than three comma-separated fields is a
// fatal format error.
func (a *FiniteAutomaton) SetTransitions(text string) error {
	for _, piece := range strings.Split(text, ";") {
		fields := strings.Split(piece, ",")
		if len(fields) != 3 {
			return fmt.Errorf("transition %q must have exactly three comma-separated fields (from, symbol, to)", piece)
		}
		if err := a.AddTransition(fields[0], fields[1], fields[2]); err != nil {
			return err
		}
	}
	return nil
}

// Step Performs a single deterministic lookup in the transition table.
// Returns the destination state and whether a transition is defined for
// (state, symbol).
func (a *FiniteAutomaton) Step(state, symbol string) (string, bool) {
	to, ok := a.transitions[transitionKey{from: state, symbol: symbol}]
	return to, ok
}

// IsFinal Reports whether the given state is an accept state.
func (a *FiniteAutomaton) IsFinal(state string) bool {
	_, ok := a.finals[state]
	return ok
}

// Validate Checks structural well-formedness without mutating the model.
// Errors: empty state set, empty alphabet, unset initial state. Warnings: no
// final states, and an incomplete transition table (reported with the count
// of missing (state, symbol) pairs over the full cross-product).
func (a *FiniteAutomaton) Validate() Validation {
	v := Validation{Errors: []string{}, Warnings: []string{}}

	if len(a.states) == 0 {
		v.Errors = append(v.Errors, "automaton has no states")
	}
	if len(a.alphabet) == 0 {
		v.Errors = append(v.Errors, "automaton has no alphabet")
	}
	if a.initial == "" {
		v.Errors = append(v.Errors, "automaton has no initial state")
	}
	if len(a.finals) == 0 {
		v.Warnings = append(v.Warnings, "automaton has no final states")
	}

	if len(a.states) > 0 && len(a.alphabet) > 0 {
		states := sortedKeys(a.states)
		symbols := sortedKeys(a.alphabet)
		stateIdx := make(map[string]int, len(states))
		for i, s := range states {
			stateIdx[s] = i
		}
		symbolIdx := make(map[string]int, len(symbols))
		for i, s := range symbols {
			symbolIdx[s] = i
		}

		covered := bitset.New(uint(len(states) * len(symbols)))
		for key := range a.transitions {
			covered.Set(uint(stateIdx[key.from]*len(symbols) + symbolIdx[key.symbol]))
		}
		if missing := len(states)*len(symbols) - int(covered.Count()); missing > 0 {
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("transition table is incomplete: %d missing (state, symbol) pairs", missing))
		}
	}

	v.IsValid = len(v.Errors) == 0
	return v
}

// Info Returns the read-only snapshot of the automaton for display.
func (a *FiniteAutomaton) Info() AutomatonInfo {
	return AutomatonInfo{
		Name:             a.name,
		States:           sortedKeys(a.states),
		Alphabet:         sortedKeys(a.alphabet),
		InitialState:     a.initial,
		FinalStates:      sortedKeys(a.finals),
		TransitionsCount: len(a.transitions),
		Transitions:      a.sortedTransitions(),
	}
}

func (a *FiniteAutomaton) String() string {
	return fmt.Sprintf("automaton %s: %d states, %d symbols, %d transitions",
		a.name, len(a.states), len(a.alphabet), len(a.transitions))
}

func (a *FiniteAutomaton) sortedTransitions() []Transition {
	out := make([]Transition, 0, len(a.transitions))
	for key, to := range a.transitions {
		out = append(out, Transition{From: key.from, Symbol: key.symbol, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].To < out[j].To
	})
	return out
}

func trimmedSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
