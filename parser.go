package automata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field codes of the description format. Codes 1-5 address automaton fields,
// 6-9 grammar fields; the name between the colons selects which model the
// line applies to.
const (
	codeStates       = 1
	codeAlphabet     = 2
	codeInitialState = 3
	codeFinalStates  = 4
	codeTransitions  = 5
	codeNonTerminals = 6
	codeTerminals    = 7
	codeStartSymbol  = 8
	codeProductions  = 9
)

// Parser Reads line-oriented descriptions of the form <code>:<name>:<payload>
// and owns the resulting name-keyed model collections. Models are created
// lazily on the first line referencing their name and updated in line order.
//
// A Parser is not safe for concurrent use; callers serialize access.
type Parser struct {
	automata map[string]*FiniteAutomaton
	grammars map[string]*RegularGrammar
}

// NewParser Creates a parser with empty collections.
func NewParser() *Parser {
	p := &Parser{}
	p.Clear()
	return p
}

// Clear Discards both collections. Callable at any time, in particular
// before re-parsing after a failed load.
func (p *Parser) Clear() {
	p.automata = make(map[string]*FiniteAutomaton)
	p.grammars = make(map[string]*RegularGrammar)
}

// Parse Folds the full text of a description file into the parser's
// collections. Blank lines are ignored; any other line must consist of an
// integer field code, a model name and a payload separated by exactly two
// colons. The first malformed line or failing field setter aborts the whole
// load with a *FormatError carrying the 1-based line number and the raw
// line, and both collections are cleared so no partial state survives.
func (p *Parser) Parse(content string) error {
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 3 {
			p.Clear()
			return &FormatError{
				Line: i + 1,
				Raw:  raw,
				Err:  fmt.Errorf("expected <code>:<name>:<payload> with exactly two colons, got %d fields", len(parts)),
			}
		}

		code, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			p.Clear()
			return &FormatError{
				Line: i + 1,
				Raw:  raw,
				Err:  fmt.Errorf("field code %q is not an integer", strings.TrimSpace(parts[0])),
			}
		}

		name := strings.TrimSpace(parts[1])
		payload := strings.TrimSpace(parts[2])
		if err := p.apply(code, name, payload); err != nil {
			p.Clear()
			return &FormatError{Line: i + 1, Raw: raw, Err: err}
		}
	}
	return nil
}

func (p *Parser) apply(code int, name, payload string) error {
	switch code {
	case codeStates:
		p.automaton(name).SetStates(strings.Split(payload, ","))
		return nil
	case codeAlphabet:
		p.automaton(name).SetAlphabet(strings.Split(payload, ","))
		return nil
	case codeInitialState:
		return p.automaton(name).SetInitialState(payload)
	case codeFinalStates:
		return p.automaton(name).SetFinalStates(strings.Split(payload, ","))
	case codeTransitions:
		return p.automaton(name).SetTransitions(payload)
	case codeNonTerminals:
		p.grammar(name).SetNonTerminals(strings.Split(payload, ","))
		return nil
	case codeTerminals:
		p.grammar(name).SetTerminals(strings.Split(payload, ","))
		return nil
	case codeStartSymbol:
		return p.grammar(name).SetStartSymbol(payload)
	case codeProductions:
		return p.grammar(name).SetProductions(payload)
	default:
		return fmt.Errorf("unknown field code %d", code)
	}
}

// automaton returns the named automaton, creating it on first reference.
func (p *Parser) automaton(name string) *FiniteAutomaton {
	a, ok := p.automata[name]
	if !ok {
		a = NewFiniteAutomaton(name)
		p.automata[name] = a
	}
	return a
}

// grammar returns the named grammar, creating it on first reference.
func (p *Parser) grammar(name string) *RegularGrammar {
	g, ok := p.grammars[name]
	if !ok {
		g = NewRegularGrammar(name)
		p.grammars[name] = g
	}
	return g
}

// Automaton Looks up a loaded automaton by name.
func (p *Parser) Automaton(name string) (*FiniteAutomaton, bool) {
	a, ok := p.automata[name]
	return a, ok
}

// Grammar Looks up a loaded grammar by name.
func (p *Parser) Grammar(name string) (*RegularGrammar, bool) {
	g, ok := p.grammars[name]
	return g, ok
}

// Automata Returns the loaded automata sorted by name.
func (p *Parser) Automata() []*FiniteAutomaton {
	out := make([]*FiniteAutomaton, 0, len(p.automata))
	for _, a := range p.automata {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Grammars Returns the loaded grammars sorted by name.
func (p *Parser) Grammars() []*RegularGrammar {
	out := make([]*RegularGrammar, 0, len(p.grammars))
	for _, g := range p.grammars {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
