package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

func phpLanguage() Language {
	return Language{
		Name:       "php",
		Extensions: []string{".php"},
		Grammar:    sitter.NewLanguage(php.LanguagePHP()),
		Table: &Table{
			Definitions: map[string]bool{
				"program":                   true,
				"namespace_definition":      true,
				"namespace_use_declaration": true,
				"class_declaration":         true,
				"interface_declaration":     true,
				"trait_declaration":         true,
				"enum_declaration":          true,
				"function_definition":       true,
				"method_declaration":        true,
				"property_declaration":      true,
				"const_declaration":         true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"comment": true,
			},
			Snippets: map[string]SnippetRule{
				"namespace_definition":      declPrefix("{;"),
				"namespace_use_declaration": declPrefix(";"),
				"class_declaration":         declPrefix("{"),
				"interface_declaration":     declPrefix("{"),
				"trait_declaration":         declPrefix("{"),
				"enum_declaration":          declPrefix("{"),
				"function_definition":       declPrefix("{"),
				"method_declaration":        declPrefix("{;"),
				"property_declaration":      declPrefix(";"),
				"const_declaration":         declPrefix(";"),
			},
		},
	}
}
