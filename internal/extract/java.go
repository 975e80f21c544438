package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// javaRules maps tree-sitter-java node types onto symbol kinds.
var javaRules = map[string]declRule{
	"class_declaration":       {Kind: symbol.KindClass, NameField: "name"},
	"interface_declaration":   {Kind: symbol.KindInterface, NameField: "name"},
	"enum_declaration":        {Kind: symbol.KindEnum, NameField: "name"},
	"enum_constant":           {Kind: symbol.KindEnumMember, NameField: "name"},
	"method_declaration":      {Kind: symbol.KindMethod, NameField: "name"},
	"constructor_declaration": {Kind: symbol.KindConstructor, NameField: "name"},
	"field_declaration":       {Kind: symbol.KindField, NameNode: javaVariableDeclaratorName},
	"package_declaration":     {Kind: symbol.KindPackage, NameNode: javaFirstIdentifier},
}

// javaVariableDeclaratorName reaches through field_declaration's
// variable_declarator child to its "name" field.
func javaVariableDeclaratorName(node sitter.Node) sitter.Node {
	declarator := childByType(node, "variable_declarator")
	if declarator.IsNull() {
		return sitter.Node{}
	}
	return declarator.ChildByFieldName("name")
}

func javaFirstIdentifier(node sitter.Node) sitter.Node {
	if node.NamedChildCount() == 0 {
		return sitter.Node{}
	}
	return node.NamedChild(0)
}
