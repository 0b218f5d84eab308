// Package cli wires the cobra command tree for the sitter-tree-mcp
// binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RedSiamese/sitter-tree-mcp/internal/config"
	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
	"github.com/RedSiamese/sitter-tree-mcp/internal/service"
	"github.com/RedSiamese/sitter-tree-mcp/internal/treecache"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitter-tree-mcp",
	Short: "Project source code syntax trees as XML",
	Long: `sitter-tree-mcp parses source files with tree-sitter grammars and
projects the syntax trees as XML: the full tree, a definitions-only
overview, or the branches leading to keyword matches.

The same operations are available one-shot on the command line and as
MCP tools over stdio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./sitter-tree.yaml, then $HOME)")
}

// newService builds the projection service from the loaded configuration:
// registry, parse cache and path resolver.
func newService() (*service.Service, *treecache.Cache, *service.Resolver, error) {
	registry, err := lang.NewRegistry(lang.Options{
		ForwardDecls: cfg.Overview.ForwardDecls,
		Languages:    cfg.Languages,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	resolver, err := service.NewResolver(registry, cfg.Ignore)
	if err != nil {
		return nil, nil, nil, err
	}
	cache := treecache.New(treecache.NewEngine())
	return service.New(resolver, cache, 0), cache, resolver, nil
}
