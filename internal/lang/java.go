package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func javaLanguage() Language {
	return Language{
		Name:       "java",
		Extensions: []string{".java"},
		Grammar:    sitter.NewLanguage(java.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"program":                     true,
				"package_declaration":         true,
				"import_declaration":          true,
				"class_declaration":           true,
				"interface_declaration":       true,
				"enum_declaration":            true,
				"record_declaration":          true,
				"annotation_type_declaration": true,
				"method_declaration":          true,
				"constructor_declaration":     true,
				"field_declaration":           true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"line_comment":  true,
				"block_comment": true,
			},
			Snippets: map[string]SnippetRule{
				"package_declaration":         declPrefix(";"),
				"import_declaration":          declPrefix(";"),
				"class_declaration":           declPrefix("{"),
				"interface_declaration":       declPrefix("{"),
				"enum_declaration":            declPrefix("{"),
				"record_declaration":          declPrefix("{"),
				"annotation_type_declaration": declPrefix("{"),
				"method_declaration":          declPrefix("{;"),
				"constructor_declaration":     declPrefix("{"),
				"field_declaration":           declPrefix(";"),
			},
		},
	}
}
