package storage

import (
	"fitviz/internal/storage/interfaces"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".dat"

// FileStore keeps each key in its own file under dir. Writes go through a
// temporary file and a rename so a crash never leaves a torn document.
type FileStore struct {
	dir        string
	compressor interfaces.CompressorInterface
}

func NewFileStore(dir string, compressor interfaces.CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, compressor: compressor}, nil
}

func (f *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+fileExt), nil
}

func (f *FileStore) Get(key string) ([]byte, bool, error) {
	fileName, err := f.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, false, fmt.Errorf("decompress %s: %w", key, err)
	}
	return decompressed, true, nil
}

func (f *FileStore) Set(key string, value []byte) error {
	fileName, err := f.path(key)
	if err != nil {
		return err
	}

	data, err := f.compressor.Compress(value)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileStore) Close() error {
	return nil
}
