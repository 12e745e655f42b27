package rdf

import "io"

// Format names a supported I/O format.
type Format string

const (
	// FormatNTriples is the N-Triples line format.
	FormatNTriples Format = "ntriples"
	// FormatJSONLD is JSON-LD.
	FormatJSONLD Format = "jsonld"
)

// ReadFrom parses statements from the reader and adds them to the
// model.
func (m *Model) ReadFrom(r io.Reader, format Format) error {
	triples, err := ParseTriples(r, format)
	if err != nil {
		return err
	}
	for _, t := range triples {
		if err := m.graph.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo serializes the model's statements to the writer.
func (m *Model) WriteTo(w io.Writer, format Format) error {
	return WriteTriples(w, format, Collect(m.graph.Find(AnyTriple)))
}

// ParseTriples reads all triples from the input in the given format.
func ParseTriples(r io.Reader, format Format) ([]Triple, error) {
	switch format {
	case FormatNTriples:
		dec := NewNTriplesReader(r)
		defer dec.Close()
		var out []Triple
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
	case FormatJSONLD:
		return ReadJSONLD(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// WriteTriples serializes triples to the writer in the given format.
func WriteTriples(w io.Writer, format Format, triples []Triple) error {
	switch format {
	case FormatNTriples:
		enc := NewNTriplesWriter(w)
		for _, t := range triples {
			if err := enc.Write(t); err != nil {
				return err
			}
		}
		return enc.Flush()
	case FormatJSONLD:
		return WriteJSONLD(w, triples)
	default:
		return ErrUnsupportedFormat
	}
}
