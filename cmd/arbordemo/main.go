// Command arbordemo demonstrates the arbor tree container: it builds small
// trees, mutates them (rebase, remove, reorder) and renders the results to
// the terminal or as Graphviz DOT.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	root := &cobra.Command{
		Use:           "arbordemo",
		Short:         "Showcase for the arbor keyed tree container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(demoCmd())
	root.AddCommand(outlineCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("arbordemo: %v", err))
		os.Exit(1)
	}
}
