package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// goRules maps tree-sitter-go node types onto symbol kinds. type_spec
// covers struct, interface and other named type declarations uniformly; its
// underlying "type" field distinguishes the concrete kind. Alias
// declarations (`type X = Y`) are a separate type_alias node with no rule
// here, so they produce no symbol.
var goRules = map[string]declRule{
	"function_declaration": {Kind: symbol.KindFunction, NameField: "name"},
	"method_declaration":   {Kind: symbol.KindMethod, NameField: "name"},
	"type_spec": {
		Kind:      symbol.KindClass,
		NameField: "name",
		Refine:    refineGoTypeSpec,
	},
	"type_parameter_declaration": {Kind: symbol.KindTypeParameter, NameField: "name"},
	"const_spec":                 {Kind: symbol.KindConstant, NameField: "name"},
	"var_spec":                   {Kind: symbol.KindVariable, NameField: "name"},
	"field_declaration":          {Kind: symbol.KindField, NameField: "name"},
	"method_elem":                {Kind: symbol.KindMethod, NameField: "name"},
}

func refineGoTypeSpec(node sitter.Node, _ []byte, kind Kind) Kind {
	underlying := node.ChildByFieldName("type")
	if underlying.IsNull() {
		return kind
	}
	switch underlying.Type() {
	case "struct_type":
		return symbol.KindStruct
	case "interface_type":
		return symbol.KindInterface
	default:
		return kind
	}
}
