package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

func cppLanguage() Language {
	return Language{
		Name:       "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".c++", ".hpp", ".hxx", ".h++"},
		Grammar:    sitter.NewLanguage(cpp.Language()),
		Table: &Table{
			Definitions: map[string]bool{
				"translation_unit":     true,
				"preproc_include":      true,
				"preproc_def":          true,
				"preproc_function_def": true,
				"function_definition":  true,
				"class_specifier":      true,
				"struct_specifier":     true,
				"union_specifier":      true,
				"enum_specifier":       true,
				"namespace_definition": true,
				"template_declaration": true,
				"field_declaration":    true,
				"type_definition":      true,
				"alias_declaration":    true,
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
				"class_specifier":      declPrefix("{;"),
				"struct_specifier":     declPrefix("{;"),
				"union_specifier":      declPrefix("{;"),
				"enum_specifier":       declPrefix("{;"),
				"namespace_definition": declPrefix("{"),
				"template_declaration": {Attr: AttrTemplateText, Stop: ">"},
				"field_declaration":    declPrefix("{;"),
				"type_definition":      declPrefix(";"),
				"alias_declaration":    declPrefix(";"),
				"declaration":          declPrefix("{;"),
				"function_declarator":  {Attr: AttrDeclarationText, FromParent: true},
			},
		},
	}
}
