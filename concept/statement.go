package concept

import (
	"fmt"

	"github.com/c360studio/skosread/vocabulary/skos"
)

// Kind distinguishes literal from reference statement values.
type Kind int

const (
	// KindLiteral values carry text and an optional language tag.
	KindLiteral Kind = iota + 1

	// KindReference values carry a URI.
	KindReference
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindReference:
		return "reference"
	default:
		return "invalid"
	}
}

// RawStatement is one SKOS-relevant fact emitted by a source adapter.
type RawStatement struct {
	Subject   string
	Predicate string
	Kind      Kind

	// Text and Lang are set for literal values.
	Text string
	Lang string

	// Target is set for reference values.
	Target string
}

// Literal returns a literal statement.
func Literal(subject, predicate, text, lang string) RawStatement {
	return RawStatement{Subject: subject, Predicate: predicate, Kind: KindLiteral, Text: text, Lang: lang}
}

// Reference returns a reference statement.
func Reference(subject, predicate, target string) RawStatement {
	return RawStatement{Subject: subject, Predicate: predicate, Kind: KindReference, Target: target}
}

// Declaration returns the statement typing subject as a skos:Concept.
// Adapters emit it first for every concept so concepts without any other
// recognized statement still become nodes.
func Declaration(subject string) RawStatement {
	return Reference(subject, skos.RDFType, skos.Concept)
}

// IsDeclaration reports whether s types its subject as a skos:Concept.
func (s RawStatement) IsDeclaration() bool {
	return s.Kind == KindReference && s.Predicate == skos.RDFType && s.Target == skos.Concept
}

// String renders the statement for diagnostics.
func (s RawStatement) String() string {
	switch s.Kind {
	case KindLiteral:
		if s.Lang != "" {
			return fmt.Sprintf("<%s> <%s> %q@%s", s.Subject, s.Predicate, s.Text, s.Lang)
		}
		return fmt.Sprintf("<%s> <%s> %q", s.Subject, s.Predicate, s.Text)
	case KindReference:
		return fmt.Sprintf("<%s> <%s> <%s>", s.Subject, s.Predicate, s.Target)
	default:
		return fmt.Sprintf("<%s> <%s> (invalid)", s.Subject, s.Predicate)
	}
}
