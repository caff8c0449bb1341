package main

import (
	"fmt"
	"os"

	automata "github.com/fernando-spec432/ProyectoAutomatas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check every model in a description file",
	Long:  `Runs structural validation on each loaded automaton and grammar and reports errors and warnings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	parser, err := loadFile(path)
	if err != nil {
		return err
	}

	invalid := 0
	for _, a := range parser.Automata() {
		if !report(a.String(), a.Validate()) {
			invalid++
		}
	}
	for _, g := range parser.Grammars() {
		if !report(g.String(), g.Validate()) {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid model(s) in %s", invalid, path)
	}
	return nil
}

func report(header string, v automata.Validation) bool {
	fmt.Println(header)
	for _, e := range v.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range v.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	if v.IsValid {
		fmt.Println("  ok")
	}
	return v.IsValid
}
