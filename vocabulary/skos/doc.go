// Package skos provides the SKOS vocabulary recognized by the extractor.
//
// The package has two halves:
//   - A fixed lookup table from SKOS predicate IRIs to concept attributes
//     (Lookup, Properties). Adapters use it to decide which statements of a
//     vocabulary document are relevant and what shape their values must have.
//   - Dotted predicate names (skos.label.preferred, skos.semantic.broader, ...)
//     registered with the semstreams vocabulary registry so published concept
//     triples carry standard IRI metadata.
//
// # Recognized predicates
//
//	IRI                 Field         Range
//	skos:prefLabel      PrefLabel     literal
//	skos:altLabel       AltLabel      literal
//	skos:scopeNote      ScopeNote     literal
//	skos:definition     Definition    literal
//	skos:broader        Broader       concept
//	skos:narrower       Narrower      concept
//	skos:related        Related       concept
//
// Every other predicate is ignored by the adapters. The lookup table holds
// no mutable state and is safe to use from concurrent extraction runs.
package skos
