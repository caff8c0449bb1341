package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run <file> <automaton> <word>...",
	Short: "Run words against an automaton",
	Long:  `Feeds each word through the named automaton and prints the verdict and the visited states.`,
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := loadFile(args[0])
		if err != nil {
			return err
		}
		a, ok := parser.Automaton(args[1])
		if !ok {
			return fmt.Errorf("no automaton named %q in %s", args[1], args[0])
		}

		for _, word := range args[2:] {
			res := a.RecognizeWord(word)
			if runJSON {
				if err := printJSON(res); err != nil {
					return err
				}
				continue
			}

			verdict := "rejected"
			if res.Accepted {
				verdict = "accepted"
			}
			fmt.Printf("%q %s", word, verdict)
			if res.Error != "" {
				fmt.Printf(" (%s)", res.Error)
			}
			fmt.Println()
			for _, step := range res.Path {
				if step.Symbol == "" {
					fmt.Printf("  %d: start at %s\n", step.Step, step.State)
					continue
				}
				fmt.Printf("  %d: --%s--> %s\n", step.Step, step.Symbol, step.State)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print recognition results as JSON")
	rootCmd.AddCommand(runCmd)
}
