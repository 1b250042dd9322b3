package toml

import (
	"math"
	"testing"
)

// Scenarios mirror original_source/tests/parsing.rs and spec.md's §8
// concrete test scenarios.

func TestBoolsAndBareKeys(t *testing.T) {
	root, err := ParseString("a = true\nb = false\nkey-with-dash = 1\nkey_under = 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := root.GetBoolean("a")
	if err != nil || !a {
		t.Fatalf("a: got %v, %v", a, err)
	}
	b, err := root.GetBoolean("b")
	if err != nil || b {
		t.Fatalf("b: got %v, %v", b, err)
	}
	if _, err := root.GetInteger("key-with-dash"); err != nil {
		t.Fatalf("key-with-dash: %v", err)
	}
	if _, err := root.GetInteger("key_under"); err != nil {
		t.Fatalf("key_under: %v", err)
	}
}

func TestDottedKeysBuildNestedTables(t *testing.T) {
	root, err := ParseString("a.b.c = 1\na.b.d = 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := root.GetTable("a")
	if err != nil {
		t.Fatalf("a: %v", err)
	}
	b, err := a.GetTable("b")
	if err != nil {
		t.Fatalf("a.b: %v", err)
	}
	c, err := b.GetInteger("c")
	if err != nil || c != 1 {
		t.Fatalf("a.b.c: got %v, %v", c, err)
	}
	d, err := b.GetInteger("d")
	if err != nil || d != 2 {
		t.Fatalf("a.b.d: got %v, %v", d, err)
	}
}

func TestLiteralAndBasicStrings(t *testing.T) {
	root, err := ParseString(`lit = 'C:\no\escapes'
basic = "has\ttab\nand\"quote\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lit, err := root.GetString("lit")
	if err != nil || lit != `C:\no\escapes` {
		t.Fatalf("lit: got %q, %v", lit, err)
	}
	basic, err := root.GetString("basic")
	if err != nil || basic != "has\ttab\nand\"quote\"" {
		t.Fatalf("basic: got %q, %v", basic, err)
	}
}

func TestMultilineLiteralStringQuoteRun(t *testing.T) {
	root, err := ParseString(`s = '''a quote '' inside'''`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := root.GetString("s")
	if err != nil || s != "a quote '' inside" {
		t.Fatalf("s: got %q, %v", s, err)
	}
}

func TestIntegers(t *testing.T) {
	cases := map[string]int64{
		"dec = 42":       42,
		"neg = -17":      -17,
		"under = 1_000":  1000,
		"hex = 0xFF":     255,
		"oct = 0o17":     15,
		"bin = 0b101":    5,
		"zero = 0":       0,
		"min = -9223372036854775808": math.MinInt64,
	}
	for src, want := range cases {
		root, err := ParseString(src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		for _, key := range root.Keys() {
			got, err := root.GetInteger(key)
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			if got != want {
				t.Fatalf("%q: got %d want %d", src, got, want)
			}
		}
	}
}

func TestFloats(t *testing.T) {
	root, err := ParseString("a = 3.14\nb = -0.01\nc = 5e10\nd = 6.7e-3\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := root.GetFloat("a")
	if a != 3.14 {
		t.Fatalf("a: got %v", a)
	}
	c, _ := root.GetFloat("c")
	if c != 5e10 {
		t.Fatalf("c: got %v", c)
	}
}

func TestTablesAndHeaders(t *testing.T) {
	src := `
[a]
x = 1

[a.b]
y = 2
`
	root, err := ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := root.GetTable("a")
	if err != nil {
		t.Fatalf("a: %v", err)
	}
	x, err := a.GetInteger("x")
	if err != nil || x != 1 {
		t.Fatalf("a.x: got %v, %v", x, err)
	}
	b, err := a.GetTable("b")
	if err != nil {
		t.Fatalf("a.b: %v", err)
	}
	y, err := b.GetInteger("y")
	if err != nil || y != 2 {
		t.Fatalf("a.b.y: got %v, %v", y, err)
	}
}

func TestImplicitThenExplicitTablePromotion(t *testing.T) {
	src := `
a.b.c = 1

[a.b]
d = 2
`
	root, err := ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := root.GetTable("a")
	b, err := a.GetTable("b")
	if err != nil {
		t.Fatalf("a.b: %v", err)
	}
	c, err := b.GetInteger("c")
	if err != nil || c != 1 {
		t.Fatalf("a.b.c: got %v, %v", c, err)
	}
	d, err := b.GetInteger("d")
	if err != nil || d != 2 {
		t.Fatalf("a.b.d: got %v, %v", d, err)
	}
}

func TestExplicitTableCannotBeRedeclared(t *testing.T) {
	src := `
[a]
x = 1

[a]
y = 2
`
	_, err := ParseString(src)
	if err == nil {
		t.Fatalf("expected ReusedKey error, got nil")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != ErrReusedKey {
		t.Fatalf("expected ReusedKey, got %v", err)
	}
}

func TestArraysOfTablesAppend(t *testing.T) {
	src := `
[[fruit]]
name = "apple"

[[fruit]]
name = "banana"
`
	root, err := ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fruit, err := root.GetArray("fruit")
	if err != nil {
		t.Fatalf("fruit: %v", err)
	}
	if len(fruit) != 2 {
		t.Fatalf("want 2 elements, got %d", len(fruit))
	}
	second, _ := fruit[1].AsTable()
	name, err := second.GetString("name")
	if err != nil || name != "banana" {
		t.Fatalf("fruit[1].name: got %q, %v", name, err)
	}
}

func TestWeirdFormatsCRLFAndQuotedDottedSegment(t *testing.T) {
	src := "a = 1\r\n[parent . \"child.dotted\"]\r\nx = 1\r\n"
	root, err := ParseString(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := root.GetInteger("a"); err != nil {
		t.Fatalf("a: %v", err)
	}
	parent, err := root.GetTable("parent")
	if err != nil {
		t.Fatalf("parent: %v", err)
	}
	child, err := parent.GetTable("child.dotted")
	if err != nil {
		t.Fatalf(`parent."child.dotted": %v`, err)
	}
	if _, err := child.GetInteger("x"); err != nil {
		t.Fatalf("child.dotted.x: %v", err)
	}
}

func TestReusedKeyOnAssignment(t *testing.T) {
	_, err := ParseString("a = 1\na = 2\n")
	if err == nil {
		t.Fatalf("expected error")
	}
	if terr, ok := err.(*Error); !ok || terr.Kind != ErrReusedKey {
		t.Fatalf("expected ReusedKey, got %v", err)
	}
}

func TestInlineTableIsClosed(t *testing.T) {
	src := `
a = { x = 1 }
[a]
y = 2
`
	_, err := ParseString(src)
	if err == nil {
		t.Fatalf("expected error extending a closed inline table")
	}
}

func TestMixedArrayAllowedPerToml10(t *testing.T) {
	root, err := ParseString(`arr = [1, "two", true]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, err := root.GetArray("arr")
	if err != nil || len(arr) != 3 {
		t.Fatalf("arr: got %v, %v", arr, err)
	}
}
