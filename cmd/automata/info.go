package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file> [name]",
	Short: "Show the models in a description file",
	Long:  `Prints each loaded automaton and grammar as JSON, or only the named one.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := loadFile(args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			name := args[1]
			if a, ok := parser.Automaton(name); ok {
				return printJSON(a.Info())
			}
			if g, ok := parser.Grammar(name); ok {
				return printJSON(g.Info())
			}
			return fmt.Errorf("no automaton or grammar named %q in %s", name, args[0])
		}

		for _, a := range parser.Automata() {
			if err := printJSON(a.Info()); err != nil {
				return err
			}
		}
		for _, g := range parser.Grammars() {
			if err := printJSON(g.Info()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
