package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

func pythonLanguage() Language {
	return Language{
		Name:       "python",
		Extensions: []string{".py", ".pyi"},
		Grammar:    sitter.NewLanguage(python.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"module":                true,
				"import_statement":      true,
				"import_from_statement": true,
				"function_definition":   true,
				"class_definition":      true,
				"decorated_definition":  true,
			},
			ForwardDecls: map[string]bool{},
			Comments: map[string]bool{
				"comment": true,
			},
			// Python bodies start after a colon rather than a brace.
			Snippets: map[string]SnippetRule{
				"import_statement":      declPrefix(""),
				"import_from_statement": declPrefix(""),
				"function_definition":   declPrefix(":"),
				"class_definition":      declPrefix(":"),
				"decorated_definition":  declPrefix(":"),
			},
		},
	}
}
