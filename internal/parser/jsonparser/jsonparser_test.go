package jsonparser

import (
	"strings"
	"testing"

	"github.com/synless-editor/synless/internal/node"
)

func setup(t *testing.T) *node.Storage {
	t.Helper()
	s := node.NewStorage()
	if _, err := RegisterLanguage(s.Lang); err != nil {
		t.Fatalf("RegisterLanguage failed: %v", err)
	}
	return s
}

func parse(t *testing.T, source string) node.Node {
	t.Helper()
	s := setup(t)
	root, err := New().Parse(s, "[test]", source)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", source, err)
	}
	return root
}

func topValue(t *testing.T, root node.Node, s *node.Storage) node.Node {
	t.Helper()
	v, ok := root.FirstChild(s)
	if !ok {
		t.Fatalf("Document root has no child")
	}
	return v
}

func TestParseScalars(t *testing.T) {
	s := setup(t)
	cases := map[string]string{
		"null":  constructNull,
		"true":  constructTrue,
		"false": constructFalse,
	}
	for source, want := range cases {
		root, err := New().Parse(s, "[test]", source)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", source, err)
		}
		v := topValue(t, root, s)
		if got := v.Construct(s).Name(s.Lang); got != want {
			t.Fatalf("Parse(%q) construct = %q, want %q", source, got, want)
		}
	}
}

func TestParseNumberAndString(t *testing.T) {
	s := setup(t)
	root, err := New().Parse(s, "[test]", `-12.5e3`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v := topValue(t, root, s)
	txt, ok := v.Text(s)
	if !ok || txt.Source() != "-12.5e3" {
		t.Fatalf("number text = %+v", txt)
	}

	root2, err := New().Parse(s, "[test]", `"hi\nthere"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v2 := topValue(t, root2, s)
	txt2, _ := v2.Text(s)
	if txt2.Source() != "hi\nthere" {
		t.Fatalf("string text = %q, want %q", txt2.Source(), "hi\nthere")
	}
}

func TestParseArrayAndObject(t *testing.T) {
	s := setup(t)
	root, err := New().Parse(s, "[test]", `{"a": [1, 2, true], "b": null}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj := topValue(t, root, s)
	if got := obj.Construct(s).Name(s.Lang); got != constructObject {
		t.Fatalf("top value = %q, want Object", got)
	}
	n, _ := obj.NumChildren(s)
	if n != 2 {
		t.Fatalf("object has %d pairs, want 2", n)
	}
	firstPair, _ := obj.FirstChild(s)
	key, _ := firstPair.FirstChild(s)
	keyText, _ := key.Text(s)
	if keyText.Source() != "a" {
		t.Fatalf("first key = %q, want a", keyText.Source())
	}
	val, _ := firstPair.NthChild(s, 1)
	if got := val.Construct(s).Name(s.Lang); got != constructArray {
		t.Fatalf("first value = %q, want Array", got)
	}
	arrN, _ := val.NumChildren(s)
	if arrN != 3 {
		t.Fatalf("array has %d elements, want 3", arrN)
	}
}

func TestParseInvalidNumberReportsPosition(t *testing.T) {
	s := setup(t)
	_, err := New().Parse(s, "[test]", "[1,\n2,\n  five]")
	if err == nil {
		t.Fatalf("expected an error parsing 'five' as a value")
	}
	if !strings.Contains(err.Error(), "3:3") {
		t.Fatalf("expected error to mention position 3:3, got: %v", err)
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	s := setup(t)
	_, err := New().Parse(s, "[test]", "true false")
	if err == nil {
		t.Fatalf("expected an error for trailing content after the JSON value")
	}
}

func TestParseEmptyArray(t *testing.T) {
	s := setup(t)
	root, err := New().Parse(s, "[test]", `[]`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v := topValue(t, root, s)
	n, isBranch := v.NumChildren(s)
	if !isBranch || n != 0 {
		t.Fatalf("empty array NumChildren = (%d, %v), want (0, true)", n, isBranch)
	}
}
