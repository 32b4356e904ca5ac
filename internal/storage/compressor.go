package storage

import (
	"bytes"
	"errors"
	"fitviz/internal/storage/interfaces"
	"fitviz/internal/structures"
	"fmt"
	"github.com/klauspost/compress/zstd"
)

// ErrCorruptDocument marks a stored document that is neither a zstd frame
// nor plain JSON. It concerns that one key only.
var ErrCorruptDocument = errors.New("corrupt document")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdCompression compresses documents on write. On read it also accepts the
// plain JSON a store holds from before compression was switched on; those
// documents are rewritten compressed on their next save.
type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(document []byte) ([]byte, error) {
	return z.encoder.EncodeAll(document, make([]byte, 0, len(document)/2)), nil
}

func (z *ZstdCompression) Decompress(stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return stored, nil
	}
	if !bytes.HasPrefix(stored, zstdMagic) {
		if isPlainDocument(stored) {
			return stored, nil
		}
		return nil, ErrCorruptDocument
	}
	document, err := z.decoder.DecodeAll(stored, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptDocument, err)
	}
	return document, nil
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

// isPlainDocument reports whether stored starts like a JSON object or array,
// the only shapes fitviz persists.
func isPlainDocument(stored []byte) bool {
	trimmed := bytes.TrimLeft(stored, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// PlainCompression stores documents as-is.
type PlainCompression struct{}

func (PlainCompression) Compress(document []byte) ([]byte, error) { return document, nil }
func (PlainCompression) Decompress(stored []byte) ([]byte, error) { return stored, nil }
func (PlainCompression) Close()                                   {}

// NewCompressor picks the codec for storage.compress.
func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if !conf.Storage.Compress {
		return PlainCompression{}, nil
	}
	return NewZstdCompressor()
}
