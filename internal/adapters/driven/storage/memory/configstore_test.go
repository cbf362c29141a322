package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("endpoint.url", "https://example.org/exec"))

	val, ok := store.Get("endpoint.url")
	assert.True(t, ok)
	assert.Equal(t, "https://example.org/exec", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Set("number", 7))

	assert.Equal(t, "value", store.GetString("key"))
	assert.Equal(t, "", store.GetString("number"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("int", 42))
	require.NoError(t, store.Set("int64", int64(43)))
	require.NoError(t, store.Set("float", 44.0))
	require.NoError(t, store.Set("string", "45"))

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 43, store.GetInt("int64"))
	assert.Equal(t, 44, store.GetInt("float"))
	assert.Equal(t, 0, store.GetInt("string"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_SaveAndLoadAreNoOps(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", "value"))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()

	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
