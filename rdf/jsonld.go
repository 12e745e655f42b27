package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// ReadJSONLD parses a JSON-LD document into triples. Named graphs are
// flattened into the default graph.
func ReadJSONLD(r io.Reader) ([]Triple, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Format: "jsonld", Err: err}
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	result, err := proc.ToRDF(doc, opts)
	if err != nil {
		return nil, &ParseError{Format: "jsonld", Err: err}
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, &ParseError{Format: "jsonld", Err: fmt.Errorf("unexpected ToRDF result %T", result)}
	}
	serializer := &ld.NQuadRDFSerializer{}
	serialized, err := serializer.Serialize(dataset)
	if err != nil {
		return nil, &ParseError{Format: "jsonld", Err: err}
	}
	nquads, ok := serialized.(string)
	if !ok {
		return nil, &ParseError{Format: "jsonld", Err: fmt.Errorf("unexpected serializer result %T", serialized)}
	}
	return parseNQuadLines(nquads)
}

// parseNQuadLines reads default-graph statements from N-Quads output,
// dropping graph labels.
func parseNQuadLines(nquads string) ([]Triple, error) {
	var out []Triple
	dec := NewNTriplesReader(strings.NewReader(stripGraphLabels(nquads)))
	for {
		t, err := dec.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}

// stripGraphLabels removes the optional fourth term from each N-Quads
// line so the N-Triples reader accepts it.
func stripGraphLabels(nquads string) string {
	lines := strings.Split(nquads, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(strings.TrimSpace(line), " .")
		if trimmed == "" {
			continue
		}
		fields := splitNQuadTerms(trimmed)
		if len(fields) == 4 {
			lines[i] = strings.Join(fields[:3], " ") + " ."
		}
	}
	return strings.Join(lines, "\n")
}

// splitNQuadTerms splits a statement into terms, honoring quoted
// literals.
func splitNQuadTerms(line string) []string {
	var fields []string
	var sb strings.Builder
	inLiteral := false
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
			sb.WriteRune(r)
		case r == '\\' && inLiteral:
			escaped = true
			sb.WriteRune(r)
		case r == '"':
			inLiteral = !inLiteral
			sb.WriteRune(r)
		case (r == ' ' || r == '\t') && !inLiteral:
			if sb.Len() > 0 {
				fields = append(fields, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 0 {
		fields = append(fields, sb.String())
	}
	return fields
}

// WriteJSONLD serializes triples as an expanded JSON-LD document.
func WriteJSONLD(w io.Writer, triples []Triple) error {
	var nquads strings.Builder
	enc := NewNTriplesWriter(&nquads)
	for _, t := range triples {
		if err := enc.Write(t); err != nil {
			return err
		}
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	doc, err := proc.FromRDF(nquads.String(), opts)
	if err != nil {
		return err
	}
	out := json.NewEncoder(w)
	out.SetIndent("", "  ")
	return out.Encode(doc)
}
