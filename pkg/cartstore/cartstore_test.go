package cartstore_test

import (
	"testing"

	"storefront/pkg/cartstore"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteStore_SaveLoadDelete(t *testing.T) {
	store, err := cartstore.NewSQLiteStore("file::memory:")
	assert.NoError(t, err)

	// Missing key
	_, found, err := store.Load("sess-1")
	assert.NoError(t, err)
	assert.False(t, found)

	// Save then load
	assert.NoError(t, store.Save("sess-1", []byte(`{"items":[]}`)))
	data, found, err := store.Load("sess-1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"items":[]}`), data)

	// Save replaces the prior snapshot
	assert.NoError(t, store.Save("sess-1", []byte(`{"items":[{"id":"A"}]}`)))
	data, found, err = store.Load("sess-1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, string(data), `"A"`)

	// Delete empties the slot; deleting again is a no-op
	assert.NoError(t, store.Delete("sess-1"))
	_, found, err = store.Load("sess-1")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, store.Delete("sess-1"))
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store, err := cartstore.NewSQLiteStore("file::memory:")
	assert.NoError(t, err)

	assert.NoError(t, store.Save("sess-1", []byte("one")))
	assert.NoError(t, store.Save("sess-2", []byte("two")))
	assert.NoError(t, store.Delete("sess-1"))

	data, found, err := store.Load("sess-2")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("two"), data)
}
