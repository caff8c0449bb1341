package automata

import (
	"fmt"
	"strings"
)

// Epsilon is the marker for an empty right-hand side in a production.
const Epsilon = "ε"

// RegularGrammar Represents a right-linear regular grammar: nonterminals,
// terminals, an optional start symbol and per-nonterminal production lists.
// Right-linearity (right-hand sides of the form ε, a, or aB) is enforced by
// Validate, not by the setters, so malformed productions can be stored and
// are flagged later.
type RegularGrammar struct {
	name         string
	nonTerminals map[string]struct{}
	terminals    map[string]struct{}
	start        string
	productions  map[string][]string
	order        []string // nonterminals in first-production order, for display
}

// GrammarInfo is the read-only snapshot of a grammar for the presentation
// layer. Productions are rendered as "A -> rhs" strings, grouped by
// nonterminal in first-production order with each group's insertion order
// preserved.
type GrammarInfo struct {
	Name             string   `json:"name"`
	NonTerminals     []string `json:"nonTerminals"`
	Terminals        []string `json:"terminals"`
	StartSymbol      string   `json:"startSymbol,omitempty"`
	Productions      []string `json:"productions"`
	ProductionsCount int      `json:"productionsCount"`
}

// NewRegularGrammar Creates an empty grammar with the given name.
func NewRegularGrammar(name string) *RegularGrammar {
	return &RegularGrammar{
		name:         name,
		nonTerminals: make(map[string]struct{}),
		terminals:    make(map[string]struct{}),
		productions:  make(map[string][]string),
	}
}

// Name Returns the grammar's identifying name.
func (g *RegularGrammar) Name() string {
	return g.name
}

// SetNonTerminals Replaces the nonterminal set. Names are trimmed;
// duplicates and blank entries are absorbed silently.
func (g *RegularGrammar) SetNonTerminals(names []string) {
	g.nonTerminals = trimmedSet(names)
}

// SetTerminals Replaces the terminal set.
func (g *RegularGrammar) SetTerminals(names []string) {
	g.terminals = trimmedSet(names)
}

// SetStartSymbol Marks the start symbol. The name must already be a declared
// nonterminal.
func (g *RegularGrammar) SetStartSymbol(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := g.nonTerminals[name]; !ok {
		return fmt.Errorf("%w: %q is not a nonterminal of %q", ErrUnknownNonTerminal, name, g.name)
	}
	g.start = name
	return nil
}

// AddProduction Appends a right-hand side to the given nonterminal's
// production list. The left side must be a declared nonterminal; the right
// side is trimmed once and stored as-is, with no shape validation (Validate
// flags non-right-linear productions later).
func (g *RegularGrammar) AddProduction(left, right string) error {
	left = strings.TrimSpace(left)
	if _, ok := g.nonTerminals[left]; !ok {
		return fmt.Errorf("%w: %q is not a nonterminal of %q", ErrUnknownNonTerminal, left, g.name)
	}
	if _, ok := g.productions[left]; !ok {
		g.order = append(g.order, left)
	}
	g.productions[left] = append(g.productions[left], strings.TrimSpace(right))
	return nil
}

// SetProductions Parses a production list of the form "A->rhs;B->rhs;..."
// and registers each pair through AddProduction. A piece with other than two
// sides around "->" is a fatal format error.
func (g *RegularGrammar) SetProductions(text string) error {
	for _, piece := range strings.Split(text, ";") {
		sides := strings.Split(piece, "->")
		if len(sides) != 2 {
			return fmt.Errorf("production %q must have exactly two sides separated by \"->\"", piece)
		}
		if err := g.AddProduction(sides[0], sides[1]); err != nil {
			return err
		}
	}
	return nil
}

// Validate Checks structural well-formedness without mutating the model.
// Errors: empty nonterminal, terminal or production sets, unset start
// symbol, and every stored production whose right-hand side is not ε, a
// single terminal, or a terminal followed by a nonterminal.
func (g *RegularGrammar) Validate() Validation {
	v := Validation{Errors: []string{}, Warnings: []string{}}

	if len(g.nonTerminals) == 0 {
		v.Errors = append(v.Errors, "grammar has no nonterminals")
	}
	if len(g.terminals) == 0 {
		v.Errors = append(v.Errors, "grammar has no terminals")
	}
	if len(g.productions) == 0 {
		v.Errors = append(v.Errors, "grammar has no productions")
	}
	if g.start == "" {
		v.Errors = append(v.Errors, "grammar has no start symbol")
	}

	for _, left := range g.order {
		for _, rhs := range g.productions[left] {
			if g.classify(rhs) == prodInvalid {
				v.Errors = append(v.Errors,
					fmt.Sprintf("production %s -> %s is not right-linear", left, rhs))
			}
		}
	}

	v.IsValid = len(v.Errors) == 0
	return v
}

// Info Returns the read-only snapshot of the grammar for display.
func (g *RegularGrammar) Info() GrammarInfo {
	count := 0
	rendered := make([]string, 0, len(g.order))
	for _, left := range g.order {
		for _, rhs := range g.productions[left] {
			rendered = append(rendered, fmt.Sprintf("%s -> %s", left, rhs))
			count++
		}
	}
	return GrammarInfo{
		Name:             g.name,
		NonTerminals:     sortedKeys(g.nonTerminals),
		Terminals:        sortedKeys(g.terminals),
		StartSymbol:      g.start,
		Productions:      rendered,
		ProductionsCount: count,
	}
}

func (g *RegularGrammar) String() string {
	count := 0
	for _, list := range g.productions {
		count += len(list)
	}
	return fmt.Sprintf("grammar %s: %d nonterminals, %d terminals, %d productions",
		g.name, len(g.nonTerminals), len(g.terminals), count)
}

type prodShape int

const (
	prodInvalid prodShape = iota
	prodEpsilon
	prodTerminal        // single terminal: A -> a
	prodTerminalNonTerm // terminal then nonterminal: A -> aB
)

// classify decides the right-linear shape of a right-hand side, comparing
// code points against the declared terminal and nonterminal sets.
func (g *RegularGrammar) classify(rhs string) prodShape {
	if rhs == "" || rhs == Epsilon {
		return prodEpsilon
	}
	runes := []rune(rhs)
	switch len(runes) {
	case 1:
		if _, ok := g.terminals[rhs]; ok {
			return prodTerminal
		}
	case 2:
		_, t := g.terminals[string(runes[0])]
		_, n := g.nonTerminals[string(runes[1])]
		if t && n {
			return prodTerminalNonTerm
		}
	}
	return prodInvalid
}
