package main

import (
	"fmt"
	"os"

	automata "github.com/fernando-spec432/ProyectoAutomatas"
	"github.com/fernando-spec432/ProyectoAutomatas/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Work with finite automata and regular grammars",
	Long: `Automata loads line-oriented descriptions of deterministic finite
automata and right-linear regular grammars, validates them, runs words
against automata and converts between the two representations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		automata.Logger = logging.New(logging.ParseLevel(level))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// loadFile parses a description file into a fresh parser.
func loadFile(path string) (*automata.Parser, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parser := automata.NewParser()
	if err := parser.Parse(string(content)); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return parser, nil
}
