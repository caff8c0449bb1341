package automata

// Equivalence constructions between the two representations. Both directions
// are pure: the source model is never mutated, and converting twice yields
// two structurally equal but independent results. Neither direction
// re-validates its source; an incomplete source (for example a missing
// initial state) surfaces as whatever reference error the target's setters
// raise.

// ToRegularGrammar Builds the right-linear grammar equivalent to this
// automaton. Nonterminals are the automaton's states, terminals its
// alphabet, the start symbol its initial state. Every transition
// (q, a) -> p contributes the production q -> ap, plus the shortened
// q -> a when p is a final state; when the initial state is itself final
// the grammar additionally gets initial -> ε.
func (a *FiniteAutomaton) ToRegularGrammar() (*RegularGrammar, error) {
	g := NewRegularGrammar(a.name + "_grammar")
	g.SetNonTerminals(sortedKeys(a.states))
	g.SetTerminals(sortedKeys(a.alphabet))
	if err := g.SetStartSymbol(a.initial); err != nil {
		return nil, err
	}

	for _, t := range a.sortedTransitions() {
		if err := g.AddProduction(t.From, t.Symbol+t.To); err != nil {
			return nil, err
		}
		if a.IsFinal(t.To) {
			if err := g.AddProduction(t.From, t.Symbol); err != nil {
				return nil, err
			}
		}
	}

	if a.initial != "" && a.IsFinal(a.initial) {
		if err := g.AddProduction(a.initial, Epsilon); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ToFiniteAutomaton Builds the automaton equivalent to this grammar. States
// are the nonterminals plus one synthetic final state, the alphabet is the
// terminal set, the initial state is the start symbol. Final states are the
// synthetic state plus every nonterminal holding an ε production. Each
// production A -> a becomes A --a--> syntheticFinal and each A -> aB becomes
// A --a--> B; ε productions and non-right-linear right-hand sides contribute
// no transition.
func (g *RegularGrammar) ToFiniteAutomaton() (*FiniteAutomaton, error) {
	final := g.syntheticFinal()

	a := NewFiniteAutomaton(g.name + "_automaton")
	a.SetStates(append(sortedKeys(g.nonTerminals), final))
	a.SetAlphabet(sortedKeys(g.terminals))
	if err := a.SetInitialState(g.start); err != nil {
		return nil, err
	}

	finals := []string{final}
	for _, left := range g.order {
		for _, rhs := range g.productions[left] {
			if g.classify(rhs) == prodEpsilon {
				finals = append(finals, left)
			}
		}
	}
	if err := a.SetFinalStates(finals); err != nil {
		return nil, err
	}

	for _, left := range g.order {
		for _, rhs := range g.productions[left] {
			symbol, target, ok := g.splitRHS(rhs, final)
			if !ok {
				continue
			}
			if err := a.AddTransition(left, symbol, target); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// splitRHS decomposes a right-hand side into the symbol consumed and the
// target state of the transition it contributes. The leading code point must
// be a terminal; an empty remainder targets the synthetic final state, a
// remainder naming a nonterminal targets that nonterminal. Unlike the strict
// two-code-point check in Validate, the remainder may be a multi-character
// nonterminal name, so grammars produced by ToRegularGrammar convert back
// regardless of how the source automaton named its states. ε productions and
// any other shape contribute nothing.
func (g *RegularGrammar) splitRHS(rhs, final string) (symbol, target string, ok bool) {
	if rhs == "" || rhs == Epsilon {
		return "", "", false
	}
	runes := []rune(rhs)
	first := string(runes[0])
	if _, isTerminal := g.terminals[first]; !isTerminal {
		return "", "", false
	}
	rest := string(runes[1:])
	if rest == "" {
		return first, final, true
	}
	if _, isNonTerminal := g.nonTerminals[rest]; isNonTerminal {
		return first, rest, true
	}
	return "", "", false
}

// syntheticFinal picks a final-state name that cannot collide with an
// existing nonterminal.
func (g *RegularGrammar) syntheticFinal() string {
	name := "qf"
	for {
		if _, ok := g.nonTerminals[name]; !ok {
			return name
		}
		name += "'"
	}
}
