package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileStorage_RoundTrip(t *testing.T) {
	// given
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	// when
	require.NoError(t, fs.Save("products", []byte(`[{"id":"1"}]`)))
	loaded, err := fs.Load("products")

	// then
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), loaded)
}

func Test_FileStorage_MissingKey(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load("orders")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_FileStorage_SaveReplacesPreviousValue(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("settings", []byte(`{"domainName":"old"}`)))
	require.NoError(t, fs.Save("settings", []byte(`{"domainName":"new"}`)))

	loaded, err := fs.Load("settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"domainName":"new"}`), loaded)
}

func Test_FileStorage_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save("orders", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "orders.json", filepath.Base(entries[0].Name()))
}

func Test_FileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStorage(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func Test_Memory_RoundTrip(t *testing.T) {
	mem := NewMemory()

	_, err := mem.Load("products")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, mem.Save("products", []byte(`[]`)))
	loaded, err := mem.Load("products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), loaded)
}
