package skos

// Field identifies the concept attribute a recognized predicate populates.
type Field int

// Concept attributes populated from SKOS predicates.
const (
	FieldPrefLabel Field = iota + 1
	FieldAltLabel
	FieldScopeNote
	FieldDefinition
	FieldBroader
	FieldNarrower
	FieldRelated
)

// String returns the SKOS local name of the field.
func (f Field) String() string {
	switch f {
	case FieldPrefLabel:
		return "prefLabel"
	case FieldAltLabel:
		return "altLabel"
	case FieldScopeNote:
		return "scopeNote"
	case FieldDefinition:
		return "definition"
	case FieldBroader:
		return "broader"
	case FieldNarrower:
		return "narrower"
	case FieldRelated:
		return "related"
	default:
		return "unknown"
	}
}

// Range is the expected shape of a recognized predicate's value.
type Range int

const (
	// RangeLiteral values are text with an optional language tag.
	RangeLiteral Range = iota + 1

	// RangeConcept values are URIs of other concepts.
	RangeConcept
)

// String returns a readable name for the range.
func (r Range) String() string {
	switch r {
	case RangeLiteral:
		return "literal"
	case RangeConcept:
		return "concept"
	default:
		return "unknown"
	}
}

// Property describes one recognized SKOS predicate.
type Property struct {
	// IRI is the full predicate IRI.
	IRI string

	// Field is the concept attribute the predicate populates.
	Field Field

	// Range is the expected value shape.
	Range Range

	// Predicate is the dotted predicate name used for published triples.
	Predicate string
}

// Lookup returns the recognized property for a predicate IRI.
func Lookup(iri string) (Property, bool) {
	switch iri {
	case PrefLabel:
		return Property{IRI: PrefLabel, Field: FieldPrefLabel, Range: RangeLiteral, Predicate: PredicatePrefLabel}, true
	case AltLabel:
		return Property{IRI: AltLabel, Field: FieldAltLabel, Range: RangeLiteral, Predicate: PredicateAltLabel}, true
	case ScopeNote:
		return Property{IRI: ScopeNote, Field: FieldScopeNote, Range: RangeLiteral, Predicate: PredicateScopeNote}, true
	case Definition:
		return Property{IRI: Definition, Field: FieldDefinition, Range: RangeLiteral, Predicate: PredicateDefinition}, true
	case Broader:
		return Property{IRI: Broader, Field: FieldBroader, Range: RangeConcept, Predicate: PredicateBroader}, true
	case Narrower:
		return Property{IRI: Narrower, Field: FieldNarrower, Range: RangeConcept, Predicate: PredicateNarrower}, true
	case Related:
		return Property{IRI: Related, Field: FieldRelated, Range: RangeConcept, Predicate: PredicateRelated}, true
	default:
		return Property{}, false
	}
}

// IsRecognized reports whether the adapters extract values for iri.
func IsRecognized(iri string) bool {
	_, ok := Lookup(iri)
	return ok
}

// Properties returns all recognized properties in canonical order.
// The returned slice is freshly allocated on every call.
func Properties() []Property {
	iris := []string{PrefLabel, AltLabel, ScopeNote, Definition, Broader, Narrower, Related}
	props := make([]Property, 0, len(iris))
	for _, iri := range iris {
		p, _ := Lookup(iri)
		props = append(props, p)
	}
	return props
}

// PropertyFor returns the recognized property populating field.
func PropertyFor(field Field) (Property, bool) {
	for _, p := range Properties() {
		if p.Field == field {
			return p, true
		}
	}
	return Property{}, false
}
