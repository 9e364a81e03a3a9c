package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/spf13/cobra"
)

func outlineCmd() *cobra.Command {
	var asDot bool
	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Build a tree from an indented outline and render it",
		Long: `Build a tree from an indented outline and render it.

The outline is read from the given file, or from stdin. One node per line;
each tab (or two spaces) of indentation adds one level of depth:

	fruit
		citrus
			lemon
		berries`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			tree, err := parseOutline(in)
			if err != nil {
				return err
			}
			if asDot {
				arbor.Tree2Dot(tree, os.Stdout)
				return nil
			}
			return renderTree(tree, "")
		},
	}
	cmd.Flags().BoolVar(&asDot, "dot", false, "emit Graphviz DOT instead of a terminal tree")
	return cmd
}

// parseOutline stages an indented outline into a Builder and materializes it.
func parseOutline(r io.Reader) (*arbor.Tree[string], error) {
	var b arbor.Builder[string]
	// hooks[d] is the builder index of the most recent node at depth d
	var hooks []int

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth, label := splitIndent(line)
		switch {
		case len(hooks) == 0:
			if depth != 0 {
				return nil, fmt.Errorf("line %d: first entry must not be indented", lineno)
			}
			hooks = append(hooks, b.PushRoot(label))
		case depth == 0:
			return nil, fmt.Errorf("line %d: second top-level entry %q (a tree has one root)", lineno, label)
		case depth > len(hooks):
			return nil, fmt.Errorf("line %d: entry %q skips an indentation level", lineno, label)
		default:
			idx := b.Push(label, hooks[depth-1])
			hooks = append(hooks[:depth], idx)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Tree(), nil
}

// splitIndent splits a line into its indentation depth and trimmed label.
// A tab counts as one level, as does every run of two spaces.
func splitIndent(line string) (int, string) {
	depth := 0
	spaces := 0
	for i, r := range line {
		switch r {
		case '\t':
			depth++
			spaces = 0
		case ' ':
			spaces++
			if spaces == 2 {
				depth++
				spaces = 0
			}
		default:
			return depth, strings.TrimSpace(line[i:])
		}
	}
	return depth, ""
}
