// Package storage keeps the latest snapshot of each normalized concept in
// a NATS KV bucket.
package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/skosread/concept"
)

// DefaultBucket is the bucket used when none is configured.
const DefaultBucket = "SKOSREAD_CONCEPTS"

// Record is the stored form of one concept.
type Record struct {
	URI         string               `json:"uri"`
	PrefLabels  []concept.LangString `json:"pref_labels"`
	AltLabels   []concept.LangString `json:"alt_labels"`
	ScopeNotes  []concept.LangString `json:"scope_notes,omitempty"`
	Definitions []concept.LangString `json:"definitions,omitempty"`
	Broader     []string             `json:"broader"`
	Narrower    []string             `json:"narrower"`
	Related     []string             `json:"related"`
	RunID       string               `json:"run_id"`
	Source      string               `json:"source"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewRecord copies c into a record stamped with the run that produced it.
func NewRecord(c *concept.Concept, runID, source string, now time.Time) *Record {
	return &Record{
		URI:         c.URI(),
		PrefLabels:  c.PrefLabels(),
		AltLabels:   c.AltLabels(),
		ScopeNotes:  c.ScopeNotes(),
		Definitions: c.Definitions(),
		Broader:     c.Broader(),
		Narrower:    c.Narrower(),
		Related:     c.Related(),
		RunID:       runID,
		Source:      source,
		UpdatedAt:   now,
	}
}

// Key maps a concept URI onto a valid KV key. URIs contain characters KV
// keys reject, so the URI is base64url encoded.
func Key(uri string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(uri))
}

// URIFromKey reverses Key.
func URIFromKey(key string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("invalid concept key %q: %w", key, err)
	}
	return string(b), nil
}

// Store provides concept storage backed by NATS KV.
type Store struct {
	concepts jetstream.KeyValue
}

// NewStore creates a Store on the given JetStream context, creating the
// bucket if it doesn't exist.
func NewStore(ctx context.Context, js jetstream.JetStream, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	kv, err := getOrCreateBucket(ctx, js, bucket)
	if err != nil {
		return nil, fmt.Errorf("create %s bucket: %w", bucket, err)
	}
	return &Store{concepts: kv}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("skosread %s snapshots", strings.ToLower(name)),
		History:     5,
	})
}

// PutGraph makes the bucket hold g as the latest snapshot of source: every
// concept of g is written, then records from an earlier run of the same
// source whose concept is no longer in g are deleted. It returns how many
// concepts were written.
func (s *Store) PutGraph(ctx context.Context, g *concept.Graph, runID, source string) (int, error) {
	now := time.Now()
	n := 0
	for c := range g.All() {
		if err := s.Put(ctx, NewRecord(c, runID, source, now)); err != nil {
			return n, err
		}
		n++
	}

	if err := s.prune(ctx, g, source); err != nil {
		return n, err
	}
	return n, nil
}

// prune deletes the records of source whose concept is not in g.
func (s *Store) prune(ctx context.Context, g *concept.Graph, source string) error {
	uris, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, uri := range uris {
		if g.Has(uri) {
			continue
		}
		r, err := s.Get(ctx, uri)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}
		if r.Source != source {
			continue
		}
		if err := s.Delete(ctx, uri); err != nil {
			return err
		}
	}
	return nil
}

// Put stores one record.
func (s *Store) Put(ctx context.Context, r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal concept: %w", err)
	}
	if _, err := s.concepts.Put(ctx, Key(r.URI), data); err != nil {
		return fmt.Errorf("store concept %s: %w", r.URI, err)
	}
	return nil
}

// Get retrieves the record for a concept URI.
func (s *Store) Get(ctx context.Context, uri string) (*Record, error) {
	entry, err := s.concepts.Get(ctx, Key(uri))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get concept: %w", err)
	}

	var r Record
	if err := json.Unmarshal(entry.Value(), &r); err != nil {
		return nil, fmt.Errorf("unmarshal concept: %w", err)
	}
	return &r, nil
}

// List returns the URIs of all stored concepts.
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.concepts.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list concept keys: %w", err)
	}

	uris := make([]string, 0, len(keys))
	for _, key := range keys {
		uri, err := URIFromKey(key)
		if err != nil {
			continue // Skip keys written by something else
		}
		uris = append(uris, uri)
	}
	return uris, nil
}

// Delete removes the record for a concept URI.
func (s *Store) Delete(ctx context.Context, uri string) error {
	if err := s.concepts.Delete(ctx, Key(uri)); err != nil {
		return fmt.Errorf("delete concept: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound)
}
