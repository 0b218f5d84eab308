package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

func goLanguage() Language {
	return Language{
		Name:       "go",
		Extensions: []string{".go"},
		Grammar:    sitter.NewLanguage(golang.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"source_file":          true,
				"package_clause":       true,
				"import_declaration":   true,
				"function_declaration": true,
				"method_declaration":   true,
				"type_declaration":     true,
				"const_declaration":    true,
				"var_declaration":      true,
				"field_declaration":    true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"comment": true,
			},
			Snippets: map[string]SnippetRule{
				"package_clause":       declPrefix(""),
				"import_declaration":   declPrefix(""),
				"function_declaration": declPrefix("{"),
				"method_declaration":   declPrefix("{"),
				"type_declaration":     declPrefix("{"),
				"const_declaration":    declPrefix(""),
				"var_declaration":      declPrefix(""),
				"field_declaration":    declPrefix(""),
			},
		},
	}
}
