package docstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func decodeMap(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, TeamMembers, "m1", []byte(`{"name":"Asha","role":"Lead"}`)))

	doc, err := s.Get(ctx, TeamMembers, "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", doc.ID)
	assert.Equal(t, "Asha", decodeMap(t, doc.Data)["name"])
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
}

func TestSQLiteStore_CreateDuplicate(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, TeamMembers, "m1", []byte(`{"name":"A"}`)))
	err := s.Create(ctx, TeamMembers, "m1", []byte(`{"name":"B"}`))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// same id in another collection is fine
	assert.NoError(t, s.Create(ctx, Hackathons, "m1", []byte(`{"title":"X"}`)))
}

func TestSQLiteStore_RejectsNonObject(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Create(ctx, TeamMembers, "x", []byte(`[1,2]`)), ErrInvalidData)
	assert.ErrorIs(t, s.Create(ctx, TeamMembers, "x", []byte(`null`)), ErrInvalidData)
	assert.ErrorIs(t, s.Set(ctx, TeamMembers, "x", []byte(`not json`)), ErrInvalidData)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := setupSQLiteStore(t)
	_, err := s.Get(context.Background(), TeamMembers, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Merge(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, ContactMessages, "c1", []byte(`{"name":"Ravi","status":"unread"}`)))
	require.NoError(t, s.Merge(ctx, ContactMessages, "c1", []byte(`{"status":"read"}`)))

	doc, err := s.Get(ctx, ContactMessages, "c1")
	require.NoError(t, err)
	m := decodeMap(t, doc.Data)
	assert.Equal(t, "read", m["status"])
	assert.Equal(t, "Ravi", m["name"])
	assert.True(t, !doc.UpdatedAt.Before(doc.CreatedAt))

	assert.ErrorIs(t, s.Merge(ctx, ContactMessages, "missing", []byte(`{"status":"read"}`)), ErrNotFound)
	assert.ErrorIs(t, s.Merge(ctx, ContactMessages, "c1", []byte(`{"bad key":1}`)), ErrInvalidField)
}

func TestSQLiteStore_SetUpserts(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, Settings, "theme", []byte(`{"colors":{"primary":"#000"}}`)))
	require.NoError(t, s.Set(ctx, Settings, "theme", []byte(`{"fonts":{"primary":"Inter"}}`)))

	doc, err := s.Get(ctx, Settings, "theme")
	require.NoError(t, err)
	m := decodeMap(t, doc.Data)
	assert.NotContains(t, m, "colors")
	assert.Contains(t, m, "fonts")
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, BlogPosts, "p1", []byte(`{"title":"T"}`)))
	require.NoError(t, s.Delete(ctx, BlogPosts, "p1"))

	_, err := s.Get(ctx, BlogPosts, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, BlogPosts, "p1"), ErrNotFound)
}

func TestSQLiteStore_FindFilterOrderLimit(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	seed := map[string]string{
		"h1": `{"title":"A","date":"2024-03-01","status":"completed"}`,
		"h2": `{"title":"B","date":"2025-01-15","status":"upcoming"}`,
		"h3": `{"title":"C","date":"2024-11-20","status":"completed"}`,
	}
	for id, data := range seed {
		require.NoError(t, s.Create(ctx, Hackathons, id, []byte(data)))
	}

	docs, err := s.Find(ctx, Hackathons, Query{OrderBy: "date", Descending: true})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"h2", "h3", "h1"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})

	docs, err = s.Find(ctx, Hackathons, Query{OrderBy: "date"}.Where("status", "completed"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "h1", docs[0].ID)
	assert.Equal(t, "h3", docs[1].ID)

	docs, err = s.Find(ctx, Hackathons, Query{OrderBy: "date", Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "h1", docs[0].ID)

	n, err := s.Count(ctx, Hackathons, Query{}.Where("status", "completed"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Count(ctx, TeamMembers, Query{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStore_FindEmptyReturnsEmptySlice(t *testing.T) {
	s := setupSQLiteStore(t)
	docs, err := s.Find(context.Background(), TeamMembers, Query{})
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestSQLiteStore_InvalidField(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	_, err := s.Find(ctx, TeamMembers, Query{OrderBy: "name'); DROP TABLE documents; --"})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = s.Count(ctx, TeamMembers, Query{}.Where("a.b", "x"))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestQueryWhere_DoesNotAlias(t *testing.T) {
	base := Query{}.Where("status", "published")
	a := base.Where("category", "ai")
	b := base.Where("category", "iot")

	assert.Len(t, base.Filters, 1)
	assert.Equal(t, "ai", a.Filters[1].Value)
	assert.Equal(t, "iot", b.Filters[1].Value)
}

func TestMergeObjects(t *testing.T) {
	out, err := mergeObjects([]byte(`{"a":1,"b":{"x":1}}`), []byte(`{"b":{"y":2},"c":3}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":{"y":2},"c":3}`, string(out))
}
