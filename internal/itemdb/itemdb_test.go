package itemdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/combox/internal/items"
	"github.com/oakwood-commons/combox/pkg/store"
)

func openTestDB(t *testing.T, records ...items.Record) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Load(ctx, records))
	return db
}

func cities() []items.Record {
	return []items.Record{
		{ID: "berlin", Display: "Berlin", Fields: map[string]any{"country": "DE"}},
		{ID: "boston", Display: "Boston"},
		{ID: "barcelona", Display: "Barcelona", Fields: map[string]any{"country": "ES"}},
		{ID: "oslo", Display: "Oslo"},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	db := openTestDB(t, cities()...)
	ctx := context.Background()

	rec, ok, err := db.GetByID(ctx, "berlin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Berlin", rec.Display)
	assert.Equal(t, "DE", rec.Fields["country"], "fields survive the round trip")

	rec, ok, err = db.GetByID(ctx, "boston")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, rec.Fields)

	_, ok, err = db.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetIndexFollowsInsertionOrder(t *testing.T) {
	db := openTestDB(t, cities()...)
	ctx := context.Background()

	for i, rec := range cities() {
		idx, ok, err := db.GetIndex(ctx, rec.ID)
		require.NoError(t, err)
		require.True(t, ok, rec.ID)
		assert.Equal(t, i, idx, rec.ID)
	}

	_, ok, err := db.GetIndex(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchIsCaseSensitiveSubstring(t *testing.T) {
	db := openTestDB(t, cities()...)
	ctx := context.Background()

	res, err := db.Search(ctx, "B", store.Page{})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "berlin", res.Items[0].ID)
	assert.Equal(t, "boston", res.Items[1].ID)
	assert.Equal(t, "barcelona", res.Items[2].ID)

	// Lowercase "b" only matches inside "Barcelona"; LIKE would also match
	// the leading capitals.
	res, err = db.Search(ctx, "b", store.Page{})
	require.NoError(t, err)
	require.Len(t, res.Items, 0)
	assert.Equal(t, 0, res.Total)

	res, err = db.Search(ctx, "", store.Page{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
}

func TestSearchPagination(t *testing.T) {
	records := make([]items.Record, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("city-%02d", i)
		records = append(records, items.Record{ID: id, Display: id})
	}
	db := openTestDB(t, records...)
	ctx := context.Background()

	res, err := db.Search(ctx, "city", store.Page{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, "city-00", res.Items[0].ID)
	assert.Equal(t, 12, res.Total)
	assert.True(t, res.HasMore)

	res, err = db.Search(ctx, "city", store.Page{Number: 2, Size: 5})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, "city-10", res.Items[0].ID)
	assert.False(t, res.HasMore)
}

func TestLoadUpsertsByID(t *testing.T) {
	db := openTestDB(t, cities()...)
	ctx := context.Background()

	err := db.Load(ctx, []items.Record{
		{ID: "berlin", Display: "Berlin, DE", Fields: map[string]any{"country": "DE"}},
	})
	require.NoError(t, err)

	rec, ok, err := db.GetByID(ctx, "berlin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Berlin, DE", rec.Display)

	// The update keeps the original position.
	idx, ok, err := db.GetIndex(ctx, "berlin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}
