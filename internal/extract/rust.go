package extract

import "github.com/logos-lang/logos-go/internal/symbol"

// rustRules maps tree-sitter-rust node types onto symbol kinds.
var rustRules = map[string]declRule{
	"function_item": {
		Kind:      symbol.KindFunction,
		NameField: "name",
		Refine:    refineMethodIfInside("impl_item", "trait_item"),
	},
	"struct_item":  {Kind: symbol.KindStruct, NameField: "name"},
	"enum_item":    {Kind: symbol.KindEnum, NameField: "name"},
	"enum_variant": {Kind: symbol.KindEnumMember, NameField: "name"},
	"trait_item":   {Kind: symbol.KindInterface, NameField: "name"},
	"mod_item":     {Kind: symbol.KindModule, NameField: "name"},
	"const_item":   {Kind: symbol.KindConstant, NameField: "name"},
	// static items default to Variable: `static mut` makes them mutable,
	// and the grammar doesn't expose mutability as a simple name-adjacent
	// field worth a Refine hook here.
	"static_item":         {Kind: symbol.KindVariable, NameField: "name"},
	"field_declaration":   {Kind: symbol.KindField, NameField: "name"},
	"type_item":           {Kind: symbol.KindClass, NameField: "name"},
}
