package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

func cLanguage() Language {
	return Language{
		Name:       "c",
		Extensions: []string{".c", ".h"},
		Grammar:    sitter.NewLanguage(c.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"translation_unit":     true,
				"preproc_include":      true,
				"preproc_def":          true,
				"preproc_function_def": true,
				"function_definition":  true,
				"struct_specifier":     true,
				"union_specifier":      true,
				"enum_specifier":       true,
				"field_declaration":    true,
				"type_definition":      true,
			},
			ForwardDecls: map[string]bool{
				"declaration":         true,
				"function_declarator": true,
			},
			Comments: map[string]bool{
				"comment": true,
			},
			Snippets: map[string]SnippetRule{
				"preproc_include":      declPrefix(""),
				"preproc_def":          declPrefix(""),
				"preproc_function_def": declPrefix(""),
				"function_definition":  declPrefix("{;"),
				"struct_specifier":     declPrefix("{;"),
				"union_specifier":      declPrefix("{;"),
				"enum_specifier":       declPrefix("{;"),
				"field_declaration":    declPrefix("{;"),
				"type_definition":      declPrefix(";"),
				"declaration":          declPrefix("{;"),
				"function_declarator":  {Attr: AttrDeclarationText, FromParent: true},
			},
		},
	}
}
