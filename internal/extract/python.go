package extract

import "github.com/logos-lang/logos-go/internal/symbol"

// pythonRules maps tree-sitter-python node types onto symbol kinds.
// Module-level and class-body assignments are recognized via the bare
// "assignment" node rather than a dedicated declaration node (Python has
// none); this also picks up local assignments inside function bodies,
// a conservative over-approximation consistent with the reference/
// declaration conflation accepted elsewhere in the symbol model.
var pythonRules = map[string]declRule{
	"function_definition": {
		Kind:      symbol.KindFunction,
		NameField: "name",
		Refine:    refineMethodIfInside("class_definition"),
	},
	"class_definition": {
		Kind:      symbol.KindClass,
		NameField: "name",
	},
	"assignment": {
		Kind:      symbol.KindVariable,
		NameField: "left",
		Refine:    refineConstantByFieldName("left"),
	},
}
