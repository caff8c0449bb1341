package automata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState is returned when an operation references a state that
	// is not a member of the automaton's state set.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSymbol is returned when a transition references a symbol
	// outside the automaton's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnknownNonTerminal is returned when a grammar operation references
	// a symbol that is not a declared nonterminal.
	ErrUnknownNonTerminal = errors.New("unknown nonterminal")

	// ErrNotInitialized is returned by ProcessSymbol when Reset has not been
	// called on the automaton.
	ErrNotInitialized = errors.New("automaton not initialized")
)

// FormatError is a fatal, line-addressed error raised while parsing a
// description file. It aborts the whole load; no partially parsed models
// survive it.
type FormatError struct {
	Line int    // 1-based line number
	Raw  string // the offending line, verbatim
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Raw)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
