package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// cRules maps tree-sitter-c node types onto symbol kinds. C's declarator
// grammar nests the identifier inside pointer/function/array declarator
// wrappers, so these rules use NameNode instead of a flat field lookup.
var cRules = map[string]declRule{
	"function_definition": {Kind: symbol.KindFunction, NameNode: cDeclaredName},
	"declaration":          {Kind: symbol.KindVariable, NameNode: cDeclaredName},
	"struct_specifier":     {Kind: symbol.KindStruct, NameField: "name"},
	"enum_specifier":       {Kind: symbol.KindEnum, NameField: "name"},
	"enumerator":           {Kind: symbol.KindEnumMember, NameField: "name"},
	"type_definition":      {Kind: symbol.KindClass, NameNode: cDeclaredName},
}

// cDeclaredName digs through C's declarator chain (pointer_declarator,
// function_declarator, array_declarator, ...) down to the bare identifier.
func cDeclaredName(node sitter.Node) sitter.Node {
	declarator := node.ChildByFieldName("declarator")
	for !declarator.IsNull() {
		switch declarator.Type() {
		case "identifier", "field_identifier", "type_identifier":
			return declarator
		}
		inner := declarator.ChildByFieldName("declarator")
		if inner.IsNull() {
			return sitter.Node{}
		}
		declarator = inner
	}
	return sitter.Node{}
}
