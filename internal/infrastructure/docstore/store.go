// Package docstore is a small collection-oriented JSON document store with
// PostgreSQL (JSONB), MongoDB and SQLite backends. Every document lives in a
// named collection under a string id; queries support equality filters on
// top-level fields, ordering by one field and a limit.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Collection names
const (
	TeamMembers     = "teamMembers"
	Hackathons      = "hackathons"
	BlogPosts       = "blogPosts"
	Applications    = "applications"
	ContactMessages = "contactMessages"
	Settings        = "settings"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
	ErrInvalidField  = errors.New("invalid field name")
	ErrInvalidData   = errors.New("document data must be a JSON object")
)

var fieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Document is a stored JSON object plus store-managed timestamps
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter matches documents whose top-level Field equals Value (string compare)
type Filter struct {
	Field string
	Value string
}

// Query describes a Find/Count. Empty OrderBy sorts by store creation time.
type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Where returns a copy of q with an extra equality filter
func (q Query) Where(field, value string) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

func (q Query) validate() error {
	for _, f := range q.Filters {
		if !fieldPattern.MatchString(f.Field) {
			return fmt.Errorf("%w: %q", ErrInvalidField, f.Field)
		}
	}
	if q.OrderBy != "" && !fieldPattern.MatchString(q.OrderBy) {
		return fmt.Errorf("%w: %q", ErrInvalidField, q.OrderBy)
	}
	return nil
}

// Store is implemented by every backend
type Store interface {
	// Create inserts a new document; ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, collection, id string, data []byte) error

	// Get returns one document; ErrNotFound if missing.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Find returns the documents matching q.
	Find(ctx context.Context, collection string, q Query) ([]Document, error)

	// Set creates or fully replaces a document.
	Set(ctx context.Context, collection, id string, data []byte) error

	// Merge overwrites the top-level fields present in patch; ErrNotFound if missing.
	Merge(ctx context.Context, collection, id string, patch []byte) error

	// Delete removes a document; ErrNotFound if missing.
	Delete(ctx context.Context, collection, id string) error

	// Count returns the number of documents matching q (OrderBy/Limit ignored).
	Count(ctx context.Context, collection string, q Query) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

// decodeObject parses a JSON object into its top-level fields
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, ErrInvalidData
	}
	return obj, nil
}

// mergeObjects overlays patch's top-level fields onto base (shallow merge)
func mergeObjects(base, patch []byte) ([]byte, error) {
	dst, err := decodeObject(base)
	if err != nil {
		return nil, err
	}
	src, err := decodeObject(patch)
	if err != nil {
		return nil, err
	}
	for k, v := range src {
		dst[k] = v
	}
	return json.Marshal(dst)
}

func validatePatch(patch []byte) (map[string]json.RawMessage, error) {
	obj, err := decodeObject(patch)
	if err != nil {
		return nil, err
	}
	for k := range obj {
		if !fieldPattern.MatchString(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, k)
		}
	}
	return obj, nil
}
