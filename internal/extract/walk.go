package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// declRule describes how one syntax-tree node type becomes a Symbol,
// driving a single shared walk across every supported language.
type declRule struct {
	Kind Kind
	// NameField is the field holding the identifier subnode. Defaults to
	// "name" when empty. Ignored when NameNode is set.
	NameField string
	// NameNode, when set, locates the identifier by walking the node
	// directly instead of a single field lookup — needed for C-family
	// declarators where the identifier is nested inside the declarator
	// chain rather than a direct field.
	NameNode func(node sitter.Node) sitter.Node
	// Refine, when set, can reclassify the Kind based on the node's
	// context (e.g. a C++ function_definition inside a class body becomes
	// a Method).
	Refine func(node sitter.Node, content []byte, kind Kind) Kind
}

// Kind is a local alias so per-language rule tables read naturally.
type Kind = symbol.Kind

// nodeToRange converts a tree-sitter node's span into a position.Range.
func nodeToRange(n sitter.Node) position.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return position.FromCoords(uint32(start.Row), uint32(start.Column), uint32(end.Row), uint32(end.Column))
}

// walkDecls performs a pre-order declaration walk: declaration nodes
// become Symbols (full range = node, selection range = identifier),
// non-declaration enclosing nodes are skipped over but still recursed
// into to find nested declarations.
func walkDecls(node sitter.Node, content []byte, rules map[string]declRule) []*symbol.Symbol {
	var out []*symbol.Symbol
	n := node.NamedChildCount()
	for i := uint32(0); i < n; i++ {
		child := node.NamedChild(i)
		if child.IsNull() {
			continue
		}
		rule, ok := rules[child.Type()]
		if !ok {
			out = append(out, walkDecls(child, content, rules)...)
			continue
		}

		kind := rule.Kind
		if rule.Refine != nil {
			kind = rule.Refine(child, content, kind)
		}

		var nameNode sitter.Node
		if rule.NameNode != nil {
			nameNode = rule.NameNode(child)
		} else {
			nameField := rule.NameField
			if nameField == "" {
				nameField = "name"
			}
			nameNode = child.ChildByFieldName(nameField)
		}

		name := "anonymous"
		selRange := position.Range{Start: nodeToRange(child).Start, End: nodeToRange(child).Start}
		if !nameNode.IsNull() {
			name = nameNode.Content(content)
			selRange = nodeToRange(nameNode)
		}

		sym := &symbol.Symbol{
			Name:           name,
			Kind:           kind,
			Range:          nodeToRange(child),
			SelectionRange: selRange,
			Children:       walkDecls(child, content, rules),
		}
		out = append(out, sym)
	}
	return out
}

// extractSyntaxErrors walks every node of tree looking for error/missing
// markers: parse problems become diagnostics but never abort extraction.
func extractSyntaxErrors(node sitter.Node, diags *[]symbol.Diagnostic) {
	if node.IsNull() {
		return
	}
	if node.IsMissing() {
		*diags = append(*diags, symbol.NewSyntaxError(nodeToRange(node), "Missing "+node.Type()))
	} else if node.IsError() {
		*diags = append(*diags, symbol.NewSyntaxError(nodeToRange(node), "Syntax error"))
	}
	n := node.NamedChildCount()
	for i := uint32(0); i < n; i++ {
		extractSyntaxErrors(node.NamedChild(i), diags)
	}
}
