// Package symbol defines the named-entity tree produced by the
// per-language extractors and the closed kind set they draw from.
package symbol

import "github.com/logos-lang/logos-go/internal/position"

// Kind is the closed set of symbol kinds a document can contain.
type Kind int

const (
	KindFile Kind = iota + 1
	KindModule
	KindNamespace
	KindPackage
	KindClass
	KindMethod
	KindProperty
	KindField
	KindConstructor
	KindEnum
	KindInterface
	KindFunction
	KindVariable
	KindConstant
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindKey
	KindNull
	KindEnumMember
	KindStruct
	KindEvent
	KindOperator
	KindTypeParameter
	KindParameter
)

var kindNames = map[Kind]string{
	KindFile:          "File",
	KindModule:        "Module",
	KindNamespace:     "Namespace",
	KindPackage:       "Package",
	KindClass:         "Class",
	KindMethod:        "Method",
	KindProperty:      "Property",
	KindField:         "Field",
	KindConstructor:   "Constructor",
	KindEnum:          "Enum",
	KindInterface:     "Interface",
	KindFunction:      "Function",
	KindVariable:      "Variable",
	KindConstant:      "Constant",
	KindString:        "String",
	KindNumber:        "Number",
	KindBoolean:       "Boolean",
	KindArray:         "Array",
	KindObject:        "Object",
	KindKey:           "Key",
	KindNull:          "Null",
	KindEnumMember:    "EnumMember",
	KindStruct:        "Struct",
	KindEvent:         "Event",
	KindOperator:      "Operator",
	KindTypeParameter: "TypeParameter",
	KindParameter:     "Parameter",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// monacoKind maps a Kind onto the numeric enumeration used by the embedded
// front-end's host editor. Values follow the de-facto LSP SymbolKind
// numbering.
var monacoKind = map[Kind]uint32{
	KindFile:          1,
	KindModule:        2,
	KindNamespace:     3,
	KindPackage:       4,
	KindClass:         5,
	KindMethod:        6,
	KindProperty:      7,
	KindField:         8,
	KindConstructor:   9,
	KindEnum:          10,
	KindInterface:     11,
	KindFunction:      12,
	KindVariable:      13,
	KindConstant:      14,
	KindString:        15,
	KindNumber:        16,
	KindBoolean:       17,
	KindArray:         18,
	KindObject:        19,
	KindKey:           20,
	KindNull:          21,
	KindEnumMember:    22,
	KindStruct:        23,
	KindEvent:         24,
	KindOperator:      25,
	KindTypeParameter: 26,
}

// ToMonacoKind returns the numeric symbol-kind enumeration value.
func (k Kind) ToMonacoKind() uint32 { return monacoKind[k] }

// completionKind maps a Kind onto the LSP CompletionItemKind numbering, a
// separate enumeration from SymbolKind (Function/Method share one
// completion kind, Struct and Class do not).
var completionKind = map[Kind]uint32{
	KindFunction:    3,
	KindMethod:      3,
	KindClass:       7,
	KindInterface:   8,
	KindVariable:    6,
	KindConstant:    21,
	KindEnum:        13,
	KindStruct:      22,
	KindModule:      9,
	KindNamespace:   9,
	KindPackage:     9,
	KindProperty:    10,
	KindField:       10,
	KindEnumMember:  20,
	KindConstructor: 4,
}

// ToCompletionKind returns the numeric CompletionItemKind, defaulting to
// Text (1) for kinds with no closer completion-item analogue.
func (k Kind) ToCompletionKind() uint32 {
	if ck, ok := completionKind[k]; ok {
		return ck
	}
	return 1
}

// Symbol is a named entity extracted from source, forming a tree whose
// depth mirrors source nesting.
type Symbol struct {
	Name            string
	Kind            Kind
	Range           position.Range // full declaration
	SelectionRange  position.Range // identifier only
	Detail          string
	Children        []*Symbol
}

// Valid reports the structural invariant SelectionRange ⊆ Range.
func (s *Symbol) Valid() bool {
	return s.Range.ContainsRange(s.SelectionRange)
}

// Indexed is the flattened, store-ready copy of a Symbol plus its owning
// URI.
type Indexed struct {
	URI            string
	Name           string
	Kind           Kind
	Range          position.Range
	SelectionRange position.Range
	Detail         string
}

// Flatten walks a symbol tree in source order, producing Indexed copies.
func Flatten(uri string, symbols []*Symbol) []Indexed {
	var out []Indexed
	var walk func([]*Symbol)
	walk = func(syms []*Symbol) {
		for _, s := range syms {
			out = append(out, Indexed{
				URI:            uri,
				Name:           s.Name,
				Kind:           s.Kind,
				Range:          s.Range,
				SelectionRange: s.SelectionRange,
				Detail:         s.Detail,
			})
			walk(s.Children)
		}
	}
	walk(symbols)
	return out
}
