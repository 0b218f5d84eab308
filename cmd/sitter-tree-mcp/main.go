package main

import (
	"github.com/RedSiamese/sitter-tree-mcp/internal/cli"
)

func main() {
	cli.Execute()
}
