package extract

import "github.com/logos-lang/logos-go/internal/symbol"

// cppRules extends the C declarator-walk approach with class/namespace
// declarations; a function_definition inside a class/struct body becomes a
// Method, the same at namespace scope stays a Function.
var cppRules = map[string]declRule{
	"function_definition": {
		Kind:     symbol.KindFunction,
		NameNode: cDeclaredName,
		Refine:   refineMethodIfInside("class_specifier", "struct_specifier"),
	},
	"declaration":          {Kind: symbol.KindVariable, NameNode: cDeclaredName},
	"field_declaration":    {Kind: symbol.KindField, NameNode: cDeclaredName},
	"class_specifier":      {Kind: symbol.KindClass, NameField: "name"},
	"struct_specifier":     {Kind: symbol.KindStruct, NameField: "name"},
	"enum_specifier":       {Kind: symbol.KindEnum, NameField: "name"},
	"enumerator":           {Kind: symbol.KindEnumMember, NameField: "name"},
	"namespace_definition": {Kind: symbol.KindNamespace, NameField: "name"},
	"type_definition":      {Kind: symbol.KindClass, NameNode: cDeclaredName},
}
