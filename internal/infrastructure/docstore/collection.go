package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Entity is implemented by models stored through Collection. The store owns
// the id and timestamps; models receive them on read.
type Entity interface {
	SetMeta(id string, createdAt, updatedAt time.Time)
}

// Meta is embedded by models to satisfy Entity
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) SetMeta(id string, createdAt, updatedAt time.Time) {
	m.ID = id
	m.CreatedAt = createdAt
	m.UpdatedAt = updatedAt
}

// metaFields are owned by the store and never persisted inside data
var metaFields = []string{"id", "createdAt", "updatedAt"}

// Collection is a typed view over one store collection
type Collection[T any, PT interface {
	*T
	Entity
}] struct {
	store Store
	name  string
}

func NewCollection[T any, PT interface {
	*T
	Entity
}](store Store, name string) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, name: name}
}

func (c *Collection[T, PT]) Name() string { return c.name }

func (c *Collection[T, PT]) Create(ctx context.Context, id string, v *T) error {
	data, err := c.encode(v)
	if err != nil {
		return err
	}
	return c.store.Create(ctx, c.name, id, data)
}

func (c *Collection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}
	return c.decode(doc)
}

func (c *Collection[T, PT]) Find(ctx context.Context, q Query) ([]*T, error) {
	docs, err := c.store.Find(ctx, c.name, q)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(docs))
	for i := range docs {
		v, err := c.decode(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Set replaces the whole document
func (c *Collection[T, PT]) Set(ctx context.Context, id string, v *T) error {
	data, err := c.encode(v)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.name, id, data)
}

// Replace ghi đè toàn bộ field của document đã tồn tại; ErrNotFound nếu đã bị xóa
func (c *Collection[T, PT]) Replace(ctx context.Context, id string, v *T) error {
	data, err := c.encode(v)
	if err != nil {
		return err
	}
	return c.store.Merge(ctx, c.name, id, data)
}

// Merge overwrites only the given top-level fields
func (c *Collection[T, PT]) Merge(ctx context.Context, id string, fields map[string]interface{}) error {
	for _, k := range metaFields {
		delete(fields, k)
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", c.name, err)
	}
	return c.store.Merge(ctx, c.name, id, data)
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

func (c *Collection[T, PT]) Count(ctx context.Context, q Query) (int64, error) {
	return c.store.Count(ctx, c.name, q)
}

func (c *Collection[T, PT]) encode(v *T) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	for _, k := range metaFields {
		delete(obj, k)
	}
	return json.Marshal(obj)
}

func (c *Collection[T, PT]) decode(doc *Document) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c.name, doc.ID, err)
	}
	PT(v).SetMeta(doc.ID, doc.CreatedAt, doc.UpdatedAt)
	return v, nil
}
