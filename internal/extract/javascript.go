package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// javascriptRules maps tree-sitter-javascript node types onto symbol
// kinds. `const f = () => {}` becomes a Function, `const x = 1` a
// Constant, `let y` a Variable.
var javascriptRules = map[string]declRule{
	"function_declaration": {Kind: symbol.KindFunction, NameField: "name"},
	"class_declaration":    {Kind: symbol.KindClass, NameField: "name"},
	"method_definition":    {Kind: symbol.KindMethod, NameField: "name"},
	"variable_declarator": {
		Kind:      symbol.KindVariable,
		NameField: "name",
		Refine:    refineJSVariable,
	},
}

func refineJSVariable(node sitter.Node, _ []byte, kind Kind) Kind {
	value := node.ChildByFieldName("value")
	if !value.IsNull() {
		switch value.Type() {
		case "arrow_function", "function", "function_expression":
			return symbol.KindFunction
		}
	}
	parent := node.Parent()
	if !parent.IsNull() && declarationKeyword(parent) == "const" {
		return symbol.KindConstant
	}
	return kind
}

// declarationKeyword returns the leading "var"/"let"/"const" token of a
// variable_declaration or lexical_declaration node.
func declarationKeyword(node sitter.Node) string {
	if node.ChildCount() == 0 {
		return ""
	}
	first := node.Child(0)
	switch first.Type() {
	case "var", "let", "const":
		return first.Type()
	}
	return ""
}
