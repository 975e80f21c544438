package extract

import (
	"context"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/logos-lang/logos-go/internal/symbol"
)

// Result is the product of extracting one document: its top-level symbol
// trees plus any syntax diagnostics found along the way.
type Result struct {
	Symbols     []*symbol.Symbol
	Diagnostics []symbol.Diagnostic
}

// Extract parses content with l's grammar and walks it for declarations.
// Parse errors never abort extraction: a partial symbol tree is always
// returned alongside any diagnostics.
func Extract(l Language, content []byte) (Result, error) {
	parser, err := NewParser(l)
	if err != nil {
		return Result{}, err
	}
	defer parser.Close()

	tree, err := parser.ParseString(context.Background(), sitter.Tree{}, content)
	if err != nil {
		return Result{}, err
	}
	defer tree.Close()

	root := tree.RootNode()
	rules := rulesFor(l)

	var diags []symbol.Diagnostic
	extractSyntaxErrors(root, &diags)

	return Result{
		Symbols:     walkDecls(root, content, rules),
		Diagnostics: diags,
	}, nil
}

// ExtractRich additionally runs the import/export/call/type-relation
// analyses available for the JavaScript and TypeScript adapters. Other
// languages return the plain Result's symbols with empty rich fields.
func ExtractRich(l Language, content []byte) (symbol.RichExtraction, []symbol.Diagnostic, error) {
	res, err := Extract(l, content)
	if err != nil {
		return symbol.RichExtraction{}, nil, err
	}
	rich := symbol.RichExtraction{Symbols: res.Symbols}
	if l == JavaScript || l == TypeScript {
		parser, err := NewParser(l)
		if err != nil {
			return rich, res.Diagnostics, err
		}
		defer parser.Close()
		tree, err := parser.ParseString(context.Background(), sitter.Tree{}, content)
		if err != nil {
			return rich, res.Diagnostics, err
		}
		defer tree.Close()
		root := tree.RootNode()
		rich.Imports = collectImports(root, content)
		rich.Exports = collectExports(root, content)
		rich.Calls = collectCalls(root, content)
		rich.Relations = collectTypeRelations(root, content)
	}
	return rich, res.Diagnostics, nil
}

func rulesFor(l Language) map[string]declRule {
	switch l {
	case Python:
		return pythonRules
	case Go:
		return goRules
	case Rust:
		return rustRules
	case C:
		return cRules
	case Cpp:
		return cppRules
	case Java:
		return javaRules
	case JavaScript:
		return javascriptRules
	case TypeScript:
		return typescriptRules
	default:
		return nil
	}
}
