package extract

import (
	"testing"

	"github.com/logos-lang/logos-go/internal/symbol"
)

func findByName(symbols []*symbol.Symbol, name string) *symbol.Symbol {
	for _, s := range symbols {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func TestExtractGoFunctionAndStruct(t *testing.T) {
	src := `package main

type Point struct {
	X int
	Y int
}

func (p Point) Dist() int {
	return p.X + p.Y
}

func main() {
}
`
	res, err := Extract(Go, []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	point := findByName(res.Symbols, "Point")
	if point == nil {
		t.Fatal("expected to find Point struct")
	}
	if point.Kind != symbol.KindStruct {
		t.Fatalf("expected Point to be KindStruct, got %v", point.Kind)
	}

	dist := findByName(res.Symbols, "Dist")
	if dist == nil {
		t.Fatal("expected to find Dist method")
	}
	if dist.Kind != symbol.KindMethod {
		t.Fatalf("expected Dist to be KindMethod, got %v", dist.Kind)
	}

	main := findByName(res.Symbols, "main")
	if main == nil {
		t.Fatal("expected to find main function")
	}
	if main.Kind != symbol.KindFunction {
		t.Fatalf("expected main to be KindFunction, got %v", main.Kind)
	}
}

func TestExtractPythonClassAndMethod(t *testing.T) {
	src := `class Greeter:
    def greet(self, name):
        return "hi " + name
`
	res, err := Extract(Python, []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	greeter := findByName(res.Symbols, "Greeter")
	if greeter == nil {
		t.Fatal("expected to find Greeter class")
	}
	if greeter.Kind != symbol.KindClass {
		t.Fatalf("expected Greeter to be KindClass, got %v", greeter.Kind)
	}

	greet := findByName(greeter.Children, "greet")
	if greet == nil {
		t.Fatal("expected to find nested greet method")
	}
	if greet.Kind != symbol.KindMethod {
		t.Fatalf("expected greet to be KindMethod, got %v", greet.Kind)
	}
}

func TestFromStringUnknownLanguage(t *testing.T) {
	if _, ok := FromString("cobol"); ok {
		t.Fatal("expected unknown language id to fail")
	}
	if l, ok := FromString("TypeScript"); !ok || l != TypeScript {
		t.Fatal("expected case-insensitive match for TypeScript")
	}
}
