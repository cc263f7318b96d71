// Package graph publishes normalized concepts to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	errs "github.com/c360studio/semstreams/pkg/errs"
	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/skosread/concept"
	"github.com/c360studio/skosread/vocabulary/skos"
)

// GraphIngestSubject is the default subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// tripleSource identifies skosread as the origin of published triples.
const tripleSource = "skosread"

// Publisher sends one message. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ConceptTriples flattens a concept into graph triples using the dotted
// SKOS predicates. Language-tagged text is rendered as "text@lang".
func ConceptTriples(c *concept.Concept, now time.Time) []message.Triple {
	id := c.URI()
	triple := func(predicate string, object any) message.Triple {
		return message.Triple{
			Subject:    id,
			Predicate:  predicate,
			Object:     object,
			Source:     tripleSource,
			Timestamp:  now,
			Confidence: 1.0,
		}
	}

	triples := []message.Triple{triple(skos.PredicateType, skos.Concept)}
	for _, v := range c.PrefLabels() {
		triples = append(triples, triple(skos.PredicatePrefLabel, langText(v)))
	}
	for _, v := range c.AltLabels() {
		triples = append(triples, triple(skos.PredicateAltLabel, langText(v)))
	}
	for _, v := range c.ScopeNotes() {
		triples = append(triples, triple(skos.PredicateScopeNote, langText(v)))
	}
	for _, v := range c.Definitions() {
		triples = append(triples, triple(skos.PredicateDefinition, langText(v)))
	}
	for _, uri := range c.Broader() {
		triples = append(triples, triple(skos.PredicateBroader, uri))
	}
	for _, uri := range c.Narrower() {
		triples = append(triples, triple(skos.PredicateNarrower, uri))
	}
	for _, uri := range c.Related() {
		triples = append(triples, triple(skos.PredicateRelated, uri))
	}
	return triples
}

func langText(v concept.LangString) string {
	if v.Lang == "" {
		return v.Text
	}
	return v.Text + "@" + v.Lang
}

// NewConceptPayload builds the ingestion payload for c.
func NewConceptPayload(c *concept.Concept, runID string, now time.Time) *ConceptPayload {
	return &ConceptPayload{
		EntityID_:  c.URI(),
		TripleData: ConceptTriples(c, now),
		RunID:      runID,
		UpdatedAt:  now,
	}
}

// PublishGraph publishes one ConceptPayload per concept of g on subject,
// in graph order, and returns how many were published. An empty subject
// means GraphIngestSubject. A nil publisher publishes nothing.
func PublishGraph(ctx context.Context, pub Publisher, subject string, g *concept.Graph, runID string) (int, error) {
	if pub == nil {
		return 0, nil // Skip publishing if no connection (graceful degradation)
	}
	if subject == "" {
		subject = GraphIngestSubject
	}

	now := time.Now()
	published := 0
	for c := range g.All() {
		if err := ctx.Err(); err != nil {
			return published, errs.WrapTransient(err, "graph", "PublishGraph", "publish concepts")
		}

		payload := NewConceptPayload(c, runID, now)
		if err := payload.Validate(); err != nil {
			return published, errs.WrapInvalid(err, "graph", "PublishGraph", "validate concept")
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return published, errs.WrapInvalid(err, "graph", "PublishGraph", "marshal concept")
		}

		if err := pub.Publish(subject, data); err != nil {
			return published, errs.WrapTransient(err, "graph", "PublishGraph", fmt.Sprintf("publish to %s", subject))
		}
		published++
	}
	return published, nil
}
