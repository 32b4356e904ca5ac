package storage

import (
	"bytes"
	"fitviz/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompression_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := []byte(`[{"date":"2024-03-01","amount":1.5}]`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_EmptyData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	compressed, err := c.Compress([]byte{})
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestZstdCompression_LargeData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := bytes.Repeat([]byte(`{"hoursSlept":7.5}`), 50_000)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	// Repetitive data should compress well
	assert.Less(t, len(compressed), len(original)/2)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_DecompressInvalidData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("not valid zstd data"))
	assert.ErrorIs(t, err, ErrCorruptDocument)

	// right magic, broken frame
	_, err = c.Decompress(append([]byte{0x28, 0xb5, 0x2f, 0xfd}, "garbage"...))
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestZstdCompression_ReadsPlainDocuments(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	for _, doc := range []string{`{"name":"Alex"}`, `[]`, "\n  [{\"date\":\"2024-03-01\"}]"} {
		val, err := c.Decompress([]byte(doc))
		require.NoError(t, err, doc)
		assert.Equal(t, doc, string(val))
	}
}

func TestNewCompressor(t *testing.T) {
	plain, err := NewCompressor(&structures.Config{})
	require.NoError(t, err)
	assert.IsType(t, PlainCompression{}, plain)

	zstd, err := NewCompressor(&structures.Config{Storage: structures.StorageConfig{Compress: true}})
	require.NoError(t, err)
	defer zstd.Close()
	assert.IsType(t, &ZstdCompression{}, zstd)
}
