package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file> <name>",
	Short: "Convert between automaton and grammar",
	Long: `Converts the named model to its equivalent counterpart: an automaton
becomes a right-linear grammar, a grammar becomes an automaton. The result
is printed as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := loadFile(args[0])
		if err != nil {
			return err
		}
		name := args[1]

		if a, ok := parser.Automaton(name); ok {
			g, err := a.ToRegularGrammar()
			if err != nil {
				return fmt.Errorf("converting %s: %w", name, err)
			}
			return printJSON(g.Info())
		}
		if g, ok := parser.Grammar(name); ok {
			a, err := g.ToFiniteAutomaton()
			if err != nil {
				return fmt.Errorf("converting %s: %w", name, err)
			}
			return printJSON(a.Info())
		}
		return fmt.Errorf("no automaton or grammar named %q in %s", name, args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
