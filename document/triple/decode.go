package triple

import (
	"errors"
	"fmt"
	"io"

	"github.com/knakk/rdf"
)

// Format is an RDF serialization syntax.
type Format string

const (
	// FormatNTriples is line-based N-Triples.
	FormatNTriples Format = "ntriples"

	// FormatTurtle is Terse RDF Triple Language.
	FormatTurtle Format = "turtle"

	// FormatRDFXML is RDF/XML, the usual OWL and SKOS interchange syntax.
	FormatRDFXML Format = "rdfxml"
)

// ErrUnsupportedFormat is returned for formats Decode cannot read.
var ErrUnsupportedFormat = errors.New("unsupported RDF format")

// Decode reads every triple from r. It stops at the first syntax error.
func Decode(r io.Reader, format Format) ([]Triple, error) {
	f, err := rdfFormat(format)
	if err != nil {
		return nil, err
	}

	dec := rdf.NewTripleDecoder(r, f)
	var out []Triple
	for {
		t, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s triple %d: %w", format, len(out)+1, err)
		}

		converted, err := fromRDF(t)
		if err != nil {
			return nil, fmt.Errorf("decode %s triple %d: %w", format, len(out)+1, err)
		}
		out = append(out, converted)
	}
}

func rdfFormat(format Format) (rdf.Format, error) {
	switch format {
	case FormatNTriples:
		return rdf.NTriples, nil
	case FormatTurtle:
		return rdf.Turtle, nil
	case FormatRDFXML:
		return rdf.RDFXML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func fromRDF(t rdf.Triple) (Triple, error) {
	subj, err := fromTerm(t.Subj)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	pred, err := fromTerm(t.Pred)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	obj, err := fromTerm(t.Obj)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	return Triple{Subject: subj, Predicate: pred, Object: obj}, nil
}

func fromTerm(term rdf.Term) (Term, error) {
	switch v := term.(type) {
	case rdf.IRI:
		return IRI(v.String()), nil
	case rdf.Blank:
		return Blank(v.String()), nil
	case rdf.Literal:
		if lang := v.Lang(); lang != "" {
			return Literal(v.String(), lang), nil
		}
		if dt := v.DataType.String(); dt != "" && dt != xsdString {
			return TypedLiteral(v.String(), dt), nil
		}
		return Literal(v.String(), ""), nil
	default:
		return Term{}, fmt.Errorf("unknown term type %T", term)
	}
}

const xsdString = "http://www.w3.org/2001/XMLSchema#string"
