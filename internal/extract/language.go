// Package extract implements the per-language AST walk that produces a
// flat-then-nested tree of symbols from a parsed syntax tree. The
// concrete-syntax-tree provider is
// github.com/alexaandru/go-tree-sitter-bare with per-language grammars
// from github.com/alexaandru/go-sitter-forest.
package extract

import "strings"

// Language is the closed set of eight host languages the engine supports.
type Language int

const (
	Python Language = iota + 1
	Go
	Rust
	C
	Cpp
	Java
	JavaScript
	TypeScript
)

// FromString maps an LSP languageId (or common alias) onto a Language.
// Unknown tags yield (0, false): the caller skips extraction rather than
// guessing a language.
func FromString(s string) (Language, bool) {
	switch strings.ToLower(s) {
	case "python", "py":
		return Python, true
	case "go", "golang":
		return Go, true
	case "rust", "rs":
		return Rust, true
	case "c":
		return C, true
	case "cpp", "c++", "cxx":
		return Cpp, true
	case "java":
		return Java, true
	case "javascript", "js":
		return JavaScript, true
	case "typescript", "ts":
		return TypeScript, true
	default:
		return 0, false
	}
}

func (l Language) String() string {
	switch l {
	case Python:
		return "python"
	case Go:
		return "go"
	case Rust:
		return "rust"
	case C:
		return "c"
	case Cpp:
		return "cpp"
	case Java:
		return "java"
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	default:
		return "unknown"
	}
}
