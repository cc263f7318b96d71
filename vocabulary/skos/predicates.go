package skos

import "github.com/c360studio/semstreams/vocabulary"

// Dotted predicate names for published concept triples.
const (
	// PredicateType marks an entity as a SKOS concept.
	PredicateType = "skos.concept.type"

	// PredicatePrefLabel is the preferred label.
	PredicatePrefLabel = "skos.label.preferred"

	// PredicateAltLabel is an alternate label.
	PredicateAltLabel = "skos.label.alternate"

	// PredicateScopeNote is a scope note.
	PredicateScopeNote = "skos.documentation.scope_note"

	// PredicateDefinition is the formal definition.
	PredicateDefinition = "skos.documentation.definition"

	// PredicateBroader links to a parent concept.
	PredicateBroader = "skos.semantic.broader"

	// PredicateNarrower links to child concepts.
	PredicateNarrower = "skos.semantic.narrower"

	// PredicateRelated links to related concepts.
	PredicateRelated = "skos.semantic.related"
)

func init() {
	vocabulary.Register(PredicateType,
		vocabulary.WithDescription("SKOS concept class membership"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFType))

	vocabulary.Register(PredicatePrefLabel,
		vocabulary.WithDescription("Preferred label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PrefLabel),
		vocabulary.WithAlias(vocabulary.AliasTypeLabel, 0))

	vocabulary.Register(PredicateAltLabel,
		vocabulary.WithDescription("Alternate label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(AltLabel),
		vocabulary.WithAlias(vocabulary.AliasTypeLabel, 1))

	vocabulary.Register(PredicateScopeNote,
		vocabulary.WithDescription("Intended meaning or use of the concept"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(ScopeNote))

	vocabulary.Register(PredicateDefinition,
		vocabulary.WithDescription("Formal definition"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Definition))

	vocabulary.Register(PredicateBroader,
		vocabulary.WithDescription("Parent concept"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Broader))

	vocabulary.Register(PredicateNarrower,
		vocabulary.WithDescription("Child concepts"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Narrower))

	vocabulary.Register(PredicateRelated,
		vocabulary.WithDescription("Related concepts"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Related))
}
