package vault

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/izm4457/password-manager/internal/filex"
)

// BlobStore reads and writes one opaque vault document. Read returns
// ErrNotInitialized when the document does not exist. Write must replace
// the document atomically.
type BlobStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Exists(ctx context.Context) (bool, error)
}

// FileBlobs keeps the vault document in a local file.
type FileBlobs struct {
	Path string
}

func NewFileBlobs(path string) *FileBlobs {
	return &FileBlobs{Path: path}
}

func (f *FileBlobs) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("read vault %s: %w", f.Path, err)
	}
	return data, nil
}

func (f *FileBlobs) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return filex.WriteFileAtomic(f.Path, data, 0o600)
}

func (f *FileBlobs) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return filex.Exists(f.Path)
}
