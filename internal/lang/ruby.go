package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

func rubyLanguage() Language {
	return Language{
		Name:       "ruby",
		Extensions: []string{".rb"},
		Grammar:    sitter.NewLanguage(ruby.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"program":          true,
				"class":            true,
				"module":           true,
				"method":           true,
				"singleton_method": true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"comment": true,
			},
			// Ruby definitions have no brace or semicolon; the first line
			// is the signature.
			Snippets: map[string]SnippetRule{
				"class":            declPrefix("\n"),
				"module":           declPrefix("\n"),
				"method":           declPrefix("\n"),
				"singleton_method": declPrefix("\n"),
			},
		},
	}
}
