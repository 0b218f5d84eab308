package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var projectMode string

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project <path>",
	Short: "Print the syntax tree projection of a file or directory",
	Long: `Parse the given file, or every supported file under the given
directory, and print one XML projection per file.

Mode 'full' emits the whole syntax tree; 'overview' keeps only
definitions and comments.

Example:
  sitter-tree-mcp project src/ --mode overview`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVar(&projectMode, "mode", "full", "projection mode: full or overview")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	svc, _, _, err := newService()
	if err != nil {
		return err
	}
	svc.Progress = newBatchProgress("Projecting files")

	results, err := svc.ProjectPaths(args[0], projectMode)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// printResults writes the projections to stdout in path order, separated
// by blank lines.
func printResults(results map[string]string) {
	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for i, path := range paths {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(results[path])
	}
}
