package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func typescriptLanguage() Language {
	return Language{
		Name:       "typescript",
		Extensions: []string{".ts", ".tsx"},
		Grammar:    sitter.NewLanguage(typescript.LanguageTypescript()),
		Table: &Table{
			Definitions: map[string]bool{
				"program":                    true,
				"import_statement":           true,
				"function_declaration":       true,
				"class_declaration":          true,
				"abstract_class_declaration": true,
				"interface_declaration":      true,
				"enum_declaration":           true,
				"type_alias_declaration":     true,
				"method_definition":          true,
				"method_signature":           true,
				"property_signature":         true,
				"public_field_definition":    true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"comment": true,
			},
			Snippets: map[string]SnippetRule{
				"import_statement":           declPrefix(";"),
				"function_declaration":       declPrefix("{"),
				"class_declaration":          declPrefix("{"),
				"abstract_class_declaration": declPrefix("{"),
				"interface_declaration":      declPrefix("{"),
				"enum_declaration":           declPrefix("{"),
				"type_alias_declaration":     declPrefix(";"),
				"method_definition":          declPrefix("{"),
				"method_signature":           declPrefix(";"),
				"property_signature":         declPrefix(";"),
				"public_field_definition":    declPrefix(";"),
			},
		},
	}
}
