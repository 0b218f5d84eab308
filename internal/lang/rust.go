package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

func rustLanguage() Language {
	return Language{
		Name:       "rust",
		Extensions: []string{".rs"},
		Grammar:    sitter.NewLanguage(rust.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"source_file":       true,
				"use_declaration":   true,
				"function_item":     true,
				"struct_item":       true,
				"enum_item":         true,
				"union_item":        true,
				"trait_item":        true,
				"impl_item":         true,
				"mod_item":          true,
				"type_item":         true,
				"const_item":        true,
				"static_item":       true,
				"macro_definition":  true,
				"field_declaration": true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"line_comment":  true,
				"block_comment": true,
			},
			Snippets: map[string]SnippetRule{
				"use_declaration":   declPrefix(";"),
				"function_item":     declPrefix("{;"),
				"struct_item":       declPrefix("{;"),
				"enum_item":         declPrefix("{"),
				"union_item":        declPrefix("{"),
				"trait_item":        declPrefix("{"),
				"impl_item":         declPrefix("{"),
				"mod_item":          declPrefix("{;"),
				"type_item":         declPrefix(";"),
				"const_item":        declPrefix(";"),
				"static_item":       declPrefix(";"),
				"macro_definition":  declPrefix("{"),
				"field_declaration": declPrefix(","),
			},
		},
	}
}
