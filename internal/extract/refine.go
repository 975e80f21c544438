package extract

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// isInside reports whether node has an ancestor whose Type() is one of types.
func isInside(node sitter.Node, types ...string) bool {
	for p := node.Parent(); !p.IsNull(); p = p.Parent() {
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
	}
	return false
}

// refineMethodIfInside returns a Refine func that upgrades Function to
// Method when the declaration sits inside one of containerTypes: a
// function_definition inside a class body becomes a Method while the
// same at namespace scope stays a Function.
func refineMethodIfInside(containerTypes ...string) func(sitter.Node, []byte, Kind) Kind {
	return func(node sitter.Node, _ []byte, kind Kind) Kind {
		if isInside(node, containerTypes...) {
			return symbol.KindMethod
		}
		return kind
	}
}

// isShoutingCase reports whether name looks like a SCREAMING_SNAKE_CASE
// constant: at least one letter, no lowercase letters.
func isShoutingCase(name string) bool {
	hasLetter := false
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if (r >= 'A' && r <= 'Z') || r == '_' {
			if r != '_' {
				hasLetter = true
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return hasLetter
}

// refineConstantByFieldName treats an identifier bound by fieldName as a
// Constant when it is written in SCREAMING_SNAKE_CASE, else leaves kind
// unchanged. Used where the grammar has no dedicated "const" node (Python
// module-level assignment).
func refineConstantByFieldName(fieldName string) func(sitter.Node, []byte, Kind) Kind {
	return func(node sitter.Node, content []byte, kind Kind) Kind {
		nameNode := node.ChildByFieldName(fieldName)
		if nameNode.IsNull() {
			return kind
		}
		name := strings.TrimSpace(nameNode.Content(content))
		if isShoutingCase(name) {
			return symbol.KindConstant
		}
		return kind
	}
}

// childByType returns the first named child of node whose Type() matches
// one of types, or a null Node.
func childByType(node sitter.Node, types ...string) sitter.Node {
	n := node.NamedChildCount()
	for i := uint32(0); i < n; i++ {
		child := node.NamedChild(i)
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return sitter.Node{}
}
