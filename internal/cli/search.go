package cli

import (
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <path> <keyword> [keyword...]",
	Short: "Search for keywords and print the matching syntax tree branches",
	Long: `Search the given file, or every supported file under the given
directory, for one or more keywords. For each file the syntax tree is
printed with every branch pruned that does not lead to a match.

Keywords are single names (class, struct, member, function or variable
names); expressions like 'func(' are not supported.

Example:
  sitter-tree-mcp search src/ factorial Calculator`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, _, _, err := newService()
	if err != nil {
		return err
	}
	svc.Progress = newBatchProgress("Searching files")

	results, err := svc.SearchPaths(args[0], args[1:])
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}
