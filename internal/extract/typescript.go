package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// typescriptRules is javascriptRules plus TypeScript's additional type-level
// declarations. Enum members are intentionally left unflattened: TS enum
// bodies hold bare identifiers indistinguishable, at this generic-rule
// level, from any other identifier use — unlike Java's enum_constant or
// Rust's enum_variant, which are their own grammar node type.
var typescriptRules = mergedRules(javascriptRules, map[string]declRule{
	"interface_declaration":  {Kind: symbol.KindInterface, NameField: "name"},
	"type_alias_declaration": {Kind: symbol.KindClass, NameField: "name"},
	"enum_declaration":       {Kind: symbol.KindEnum, NameField: "name"},
	"public_field_definition": {
		Kind:      symbol.KindField,
		NameField: "name",
	},
})

func mergedRules(base, extra map[string]declRule) map[string]declRule {
	out := make(map[string]declRule, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// collectImports gathers every import_statement, producing module path,
// imported items with optional aliases, and the type-only flag.
func collectImports(root sitter.Node, content []byte) []symbol.Import {
	var out []symbol.Import
	forEachOfType(root, "import_statement", func(node sitter.Node) {
		source := node.ChildByFieldName("source")
		modulePath := ""
		if !source.IsNull() {
			modulePath = trimQuotes(source.Content(content))
		}
		typeOnly := false
		var items []symbol.ImportedItem

		clause := childByType(node, "import_clause")
		if !clause.IsNull() {
			if childByType(clause, "named_imports").Type() == "named_imports" {
				named := childByType(clause, "named_imports")
				n := named.NamedChildCount()
				for i := uint32(0); i < n; i++ {
					spec := named.NamedChild(i)
					if spec.Type() != "import_specifier" {
						continue
					}
					nameNode := spec.ChildByFieldName("name")
					aliasNode := spec.ChildByFieldName("alias")
					item := symbol.ImportedItem{}
					if !nameNode.IsNull() {
						item.Name = nameNode.Content(content)
					}
					if !aliasNode.IsNull() {
						item.Alias = aliasNode.Content(content)
					}
					items = append(items, item)
				}
			}
			if def := childByType(clause, "identifier"); !def.IsNull() {
				items = append(items, symbol.ImportedItem{Name: def.Content(content)})
			}
		}

		// `import type { ... }` carries an anonymous "type" keyword child.
		for i := uint32(0); i < node.ChildCount(); i++ {
			if node.Child(i).Type() == "type" {
				typeOnly = true
			}
		}

		out = append(out, symbol.Import{
			ModulePath: modulePath,
			Items:      items,
			TypeOnly:   typeOnly,
			Range:      nodeToRange(node),
		})
	})
	return out
}

// collectExports gathers named/default exports and re-exports.
func collectExports(root sitter.Node, content []byte) []symbol.Export {
	var out []symbol.Export
	forEachOfType(root, "export_statement", func(node sitter.Node) {
		isDefault := false
		for i := uint32(0); i < node.ChildCount(); i++ {
			if node.Child(i).Type() == "default" {
				isDefault = true
			}
		}
		fromModule := ""
		if source := node.ChildByFieldName("source"); !source.IsNull() {
			fromModule = trimQuotes(source.Content(content))
		}

		declared := node.ChildByFieldName("declaration")
		if !declared.IsNull() {
			if nameNode := declared.ChildByFieldName("name"); !nameNode.IsNull() {
				out = append(out, symbol.Export{
					Name:       nameNode.Content(content),
					IsDefault:  isDefault,
					FromModule: fromModule,
					Range:      nodeToRange(node),
				})
				return
			}
		}

		if clause := childByType(node, "export_clause"); !clause.IsNull() {
			n := clause.NamedChildCount()
			for i := uint32(0); i < n; i++ {
				spec := clause.NamedChild(i)
				if spec.Type() != "export_specifier" {
					continue
				}
				nameNode := spec.ChildByFieldName("name")
				name := ""
				if !nameNode.IsNull() {
					name = nameNode.Content(content)
				}
				out = append(out, symbol.Export{
					Name:       name,
					IsDefault:  isDefault,
					FromModule: fromModule,
					Range:      nodeToRange(spec),
				})
			}
		}
	})
	return out
}

// collectCalls gathers call_expression and new_expression nodes.
func collectCalls(root sitter.Node, content []byte) []symbol.Call {
	var out []symbol.Call
	forEachOfType(root, "call_expression", func(node sitter.Node) {
		out = append(out, buildCall(node, content, false))
	})
	forEachOfType(root, "new_expression", func(node sitter.Node) {
		out = append(out, buildCall(node, content, true))
	})
	return out
}

func buildCall(node sitter.Node, content []byte, isNew bool) symbol.Call {
	callee := node.ChildByFieldName("function")
	if callee.IsNull() {
		callee = node.ChildByFieldName("constructor")
	}
	call := symbol.Call{IsNew: isNew, Range: nodeToRange(node)}
	if callee.IsNull() {
		return call
	}
	qualified := callee.Content(content)
	call.QualifiedName = qualified
	simple := qualified
	if member := childByType(callee, "property_identifier"); !member.IsNull() {
		simple = member.Content(content)
	} else if callee.Type() == "identifier" {
		simple = callee.Content(content)
	}
	call.CalleeName = simple
	return call
}

// collectTypeRelations gathers extends/implements edges between named
// types.
func collectTypeRelations(root sitter.Node, content []byte) []symbol.TypeRelation {
	var out []symbol.TypeRelation
	forEachOfType(root, "class_declaration", func(node sitter.Node) {
		nameNode := node.ChildByFieldName("name")
		if nameNode.IsNull() {
			return
		}
		from := nameNode.Content(content)

		heritage := childByType(node, "class_heritage")
		if heritage.IsNull() {
			return
		}
		n := heritage.NamedChildCount()
		for i := uint32(0); i < n; i++ {
			clause := heritage.NamedChild(i)
			kind := symbol.RelationImplements
			if clause.Type() == "extends_clause" {
				kind = symbol.RelationExtends
			}
			m := clause.NamedChildCount()
			for j := uint32(0); j < m; j++ {
				typeNode := clause.NamedChild(j)
				if typeNode.Type() != "identifier" && typeNode.Type() != "type_identifier" {
					continue
				}
				out = append(out, symbol.TypeRelation{
					Kind:     kind,
					FromType: from,
					ToType:   typeNode.Content(content),
					Range:    nodeToRange(clause),
				})
			}
		}
	})
	return out
}

func forEachOfType(node sitter.Node, typeName string, fn func(sitter.Node)) {
	if node.IsNull() {
		return
	}
	if node.Type() == typeName {
		fn(node)
	}
	n := node.NamedChildCount()
	for i := uint32(0); i < n; i++ {
		forEachOfType(node.NamedChild(i), typeName, fn)
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'' || s[0] == '`') {
		return s[1 : len(s)-1]
	}
	return s
}
