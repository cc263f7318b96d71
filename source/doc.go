// Package source adapts the three document backends to a single statement
// stream.
//
// An Adapter wraps one loaded backend handle and yields the SKOS-relevant
// facts it holds as concept.RawStatements. Statements are ordered by
// concept discovery order, then by the order of the concept's statements
// in the source document. For every concept the typing statement
// (rdf:type skos:Concept) comes first, so concepts without labels or
// relations still reach the normalizer.
//
// Values that cannot be expressed as a statement, such as blank nodes,
// anonymous individuals, relative URIs, or a literal where a concept
// reference is expected, are skipped. Each one is reported once per pass
// as a MalformedStatement to the adapter's diagnostics sink, which logs a
// warning unless WithDiagnostics replaces it.
//
// Statements iterates lazily and may be ranged over more than once; every
// pass yields the same sequence.
package source
