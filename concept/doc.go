// Package concept holds the canonical, backend-independent representation
// of a SKOS vocabulary and the normalizer that builds it.
//
// Source adapters describe a document as a sequence of RawStatements.
// Normalize folds that sequence into a Graph: one Concept per distinct
// subject URI, in first-seen order, with multi-valued language-tagged text
// attributes and URI-valued relation sets.
//
// # Value semantics
//
// Label and note attributes are multisets: a repeated (lang, text) pair is
// kept twice, and several preferred labels may share a language tag.
// Relation attributes (broader, narrower, related) are sets that keep
// insertion order. Relation targets are plain URIs and need not name a
// concept of the same graph; Normalize never creates nodes for them.
//
// A Graph is read-only once Normalize returns it. Accessors return copies,
// so a Graph may be shared by concurrent readers.
//
// This package never logs or prints.
package concept
