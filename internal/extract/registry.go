package extract

import (
	cforest "github.com/alexaandru/go-sitter-forest/c"
	cppforest "github.com/alexaandru/go-sitter-forest/cpp"
	goforest "github.com/alexaandru/go-sitter-forest/golang"
	javaforest "github.com/alexaandru/go-sitter-forest/java"
	jsforest "github.com/alexaandru/go-sitter-forest/javascript"
	pythonforest "github.com/alexaandru/go-sitter-forest/python"
	rustforest "github.com/alexaandru/go-sitter-forest/rust"
	tsforest "github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// rawGrammar returns the tree-sitter grammar pointer for a Language.
func rawGrammar(l Language) (any, bool) {
	switch l {
	case Python:
		return pythonforest.GetLanguage(), true
	case Go:
		return goforest.GetLanguage(), true
	case Rust:
		return rustforest.GetLanguage(), true
	case C:
		return cforest.GetLanguage(), true
	case Cpp:
		return cppforest.GetLanguage(), true
	case Java:
		return javaforest.GetLanguage(), true
	case JavaScript:
		return jsforest.GetLanguage(), true
	case TypeScript:
		return tsforest.GetLanguage(), true
	default:
		return nil, false
	}
}

// NewParser builds a tree-sitter parser configured for l.
func NewParser(l Language) (*sitter.Parser, error) {
	grammar, ok := rawGrammar(l)
	if !ok {
		return nil, ErrUnsupportedLanguage{Language: l}
	}
	parser := sitter.NewParser()
	lang := sitter.NewLanguage(grammar)
	if err := parser.SetLanguage(lang); err != nil {
		return nil, err
	}
	return parser, nil
}

// ErrUnsupportedLanguage is returned when a Language has no grammar bound.
type ErrUnsupportedLanguage struct {
	Language Language
}

func (e ErrUnsupportedLanguage) Error() string {
	return "unsupported language: " + e.Language.String()
}
