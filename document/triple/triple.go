// Package triple holds the RDF term and triple model shared by the
// vocabulary document backends, and decodes serialized RDF into it.
package triple

import (
	"fmt"
	"strings"
)

// Kind distinguishes the three RDF term kinds.
type Kind int

const (
	// KindIRI is a named resource.
	KindIRI Kind = iota + 1

	// KindBlank is an anonymous resource local to one document.
	KindBlank

	// KindLiteral is a lexical value with optional language or datatype.
	KindLiteral
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "invalid"
	}
}

// Term is one RDF term. The zero value is invalid.
type Term struct {
	Kind     Kind
	Value    string
	Lang     string
	Datatype string
}

// IRI returns a named resource term.
func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: strings.TrimPrefix(label, "_:")}
}

// Literal returns a plain literal, language-tagged when lang is not empty.
func Literal(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Lang: strings.ToLower(lang)}
}

// TypedLiteral returns a literal carrying a datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether t is a named resource.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// Key returns a string that identifies the term within one document.
// Literals with the same text but different language tags have different keys.
func (t Term) Key() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Lang)
		}
		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}
		return fmt.Sprintf("%q", t.Value)
	default:
		return ""
	}
}

// String renders the term in N-Triples-like notation.
func (t Term) String() string {
	return t.Key()
}

// Triple is one RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// String renders the triple in N-Triples-like notation.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Unique returns triples with duplicates removed, keeping the first
// occurrence of each statement.
func Unique(triples []Triple) []Triple {
	seen := make(map[[3]string]struct{}, len(triples))
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		key := [3]string{t.Subject.Key(), t.Predicate.Key(), t.Object.Key()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
