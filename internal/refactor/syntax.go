package refactor

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos-go/internal/extract"
)

// isBalanced performs a character-level balanced-paren/quote scan in
// place of re-parsing: every bracket closes in the correct order and no
// quote is left open.
func isBalanced(text string) bool {
	var stack []byte
	var quote byte
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return false
			}
			top := stack[len(stack)-1]
			if !matches(top, c) {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return quote == 0 && len(stack) == 0
}

func matches(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	}
	return false
}

// containsStatementTerminator reports whether text crosses an expression
// boundary: an embedded newline, or (outside quotes) a bare semicolon.
func containsStatementTerminator(text string) bool {
	if strings.Contains(text, "\n") {
		return true
	}
	var quote byte
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case ';':
			return true
		}
	}
	return false
}

// leadingWhitespace returns the run of spaces/tabs a line begins with.
func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// declarationLine renders the language-idiomatic local-variable binding
// line for extract-variable (`const` in JS/TS, `:=` in Go, `let` in
// Rust).
func declarationLine(lang extract.Language, name, expr string) string {
	switch lang {
	case extract.Go:
		return fmt.Sprintf("%s := %s\n", name, expr)
	case extract.Rust:
		return fmt.Sprintf("let %s = %s;\n", name, expr)
	case extract.Python:
		return fmt.Sprintf("%s = %s\n", name, expr)
	case extract.JavaScript, extract.TypeScript:
		return fmt.Sprintf("const %s = %s;\n", name, expr)
	case extract.C, extract.Cpp:
		return fmt.Sprintf("auto %s = %s;\n", name, expr)
	case extract.Java:
		return fmt.Sprintf("var %s = %s;\n", name, expr)
	default:
		return fmt.Sprintf("%s = %s\n", name, expr)
	}
}

// statementTerminator returns the language's statement-ending token, used
// when emitting generated call sites for extract-method.
func statementTerminator(lang extract.Language) string {
	switch lang {
	case extract.Python:
		return ""
	default:
		return ";"
	}
}

// functionTemplate renders a new top-level function/method definition with
// the given name, parameter names, and body lines.
func functionTemplate(lang extract.Language, name string, params []string, returns string, body []string) string {
	var b strings.Builder
	switch lang {
	case extract.Python:
		fmt.Fprintf(&b, "def %s(%s):\n", name, strings.Join(params, ", "))
		for _, line := range body {
			b.WriteString("    " + line + "\n")
		}
		if returns != "" {
			fmt.Fprintf(&b, "    return %s\n", returns)
		}
	case extract.Go:
		fmt.Fprintf(&b, "func %s(%s) {\n", name, goParamList(params))
		for _, line := range body {
			b.WriteString("\t" + line + "\n")
		}
		if returns != "" {
			fmt.Fprintf(&b, "\treturn %s\n", returns)
		}
		b.WriteString("}\n")
	case extract.Rust:
		fmt.Fprintf(&b, "fn %s(%s) {\n", name, rustParamList(params))
		for _, line := range body {
			b.WriteString("    " + line + "\n")
		}
		if returns != "" {
			fmt.Fprintf(&b, "    %s\n", returns)
		}
		b.WriteString("}\n")
	case extract.JavaScript:
		fmt.Fprintf(&b, "function %s(%s) {\n", name, strings.Join(params, ", "))
		for _, line := range body {
			b.WriteString("  " + line + "\n")
		}
		if returns != "" {
			fmt.Fprintf(&b, "  return %s;\n", returns)
		}
		b.WriteString("}\n")
	case extract.TypeScript:
		fmt.Fprintf(&b, "function %s(%s) {\n", name, strings.Join(params, ", "))
		for _, line := range body {
			b.WriteString("  " + line + "\n")
		}
		if returns != "" {
			fmt.Fprintf(&b, "  return %s;\n", returns)
		}
		b.WriteString("}\n")
	case extract.Java:
		fmt.Fprintf(&b, "void %s(%s) {\n", name, javaParamList(params))
		for _, line := range body {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("}\n")
	case extract.C, extract.Cpp:
		fmt.Fprintf(&b, "void %s(%s) {\n", name, cParamList(params))
		for _, line := range body {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func goParamList(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p + " any"
	}
	return strings.Join(parts, ", ")
}

func rustParamList(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p + ": &str"
	}
	return strings.Join(parts, ", ")
}

func javaParamList(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "Object " + p
	}
	return strings.Join(parts, ", ")
}

func cParamList(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "int " + p
	}
	return strings.Join(parts, ", ")
}

// callTemplate renders the call-site replacement for extract-method.
func callTemplate(lang extract.Language, name string, params []string, assignTo string) string {
	call := fmt.Sprintf("%s(%s)", name, strings.Join(params, ", "))
	if assignTo != "" {
		switch lang {
		case extract.Go:
			call = fmt.Sprintf("%s := %s", assignTo, call)
		case extract.Rust:
			call = fmt.Sprintf("let %s = %s", assignTo, call)
		case extract.JavaScript, extract.TypeScript:
			call = fmt.Sprintf("const %s = %s", assignTo, call)
		default:
			call = fmt.Sprintf("%s = %s", assignTo, call)
		}
	}
	return call + statementTerminator(lang)
}
