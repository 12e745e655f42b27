package rdf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNTriplesRoundTrip(t *testing.T) {
	m := NewMemModel(testGraphIRI)
	if err := m.Add(NewStatement(testS, testP, testO)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add(NewStatement(testS, testP2, Literal{Lexical: "hi", Lang: "en"})); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add(NewStatement(BlankNode{ID: "b1"}, testP, Literal{Lexical: "1", Datatype: XSDInteger})); err != nil {
		t.Fatalf("add: %v", err)
	}

	var buf bytes.Buffer
	if err := m.WriteTo(&buf, FormatNTriples); err != nil {
		t.Fatalf("write: %v", err)
	}

	back := NewMemModel(testGraphIRI)
	if err := back.ReadFrom(&buf, FormatNTriples); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !m.Graph().IsIsomorphicWith(back.Graph()) {
		t.Fatalf("round trip changed the graph:\n%v\nvs\n%v", m.Statements(), back.Statements())
	}
}

func TestNTriplesParse(t *testing.T) {
	input := `# comment
<http://example.org/s> <http://example.org/p> "esc\"aped\n" .

_:b0 <http://example.org/p> <http://example.org/o> .
`
	dec := NewNTriplesReader(strings.NewReader(input))
	first, err := dec.Next()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	lit, ok := first.O.(Literal)
	if !ok || lit.Lexical != "esc\"aped\n" {
		t.Fatalf("unexpected literal: %#v", first.O)
	}
	second, err := dec.Next()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.S != Term(BlankNode{ID: "b0"}) {
		t.Fatalf("unexpected subject: %v", second.S)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestNTriplesParseError(t *testing.T) {
	dec := NewNTriplesReader(strings.NewReader("<http://example.org/s> nonsense\n"))
	_, err := dec.Next()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 1 {
		t.Fatalf("expected line 1, got %d", parseErr.Line)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	m := NewMemModel(testGraphIRI)
	if err := m.ReadFrom(strings.NewReader(""), Format("turtle")); err != ErrUnsupportedFormat {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPrefixMapping(t *testing.T) {
	pm := NewPrefixMapping()
	if err := pm.SetNsPrefix("ex", "http://example.org/"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if pm.NsPrefixURI("ex") != "http://example.org/" {
		t.Fatalf("unexpected prefix URI")
	}
	if pm.NsURIPrefix("http://example.org/") != "ex" {
		t.Fatalf("unexpected URI prefix")
	}
	if pm.ExpandPrefix("ex:s") != "http://example.org/s" {
		t.Fatalf("unexpected expansion")
	}
	if pm.ShortForm("http://example.org/s") != "ex:s" {
		t.Fatalf("unexpected short form")
	}
	pm.Lock()
	if err := pm.SetNsPrefix("ex2", "http://example.com/"); err == nil {
		t.Fatalf("expected locked mapping to reject mutation")
	}
}
