package vault

import (
	"context"

	"github.com/izm4457/password-manager/internal/client/models"
)

// SealedRepository stores the whole credential collection as one sealed
// document in a BlobStore. ReplaceAll is last-writer-wins: records another
// writer stored after our LoadAll are overwritten.
type SealedRepository struct {
	blobs   BlobStore
	session *Session
}

// Init creates an empty vault. It fails with ErrAlreadyInitialized when a
// document already exists.
func Init(ctx context.Context, blobs BlobStore, password []byte) (*SealedRepository, error) {
	ok, err := blobs.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ErrAlreadyInitialized
	}

	r := &SealedRepository{blobs: blobs, session: CreateSession(password)}
	if err := r.ReplaceAll(ctx, nil); err != nil {
		r.session.Close()
		return nil, err
	}
	return r, nil
}

// Open reads an existing vault and unlocks it with password.
func Open(ctx context.Context, blobs BlobStore, password []byte) (*SealedRepository, error) {
	data, err := blobs.Read(ctx)
	if err != nil {
		return nil, err
	}
	s, _, err := Unseal(data, password)
	if err != nil {
		return nil, err
	}
	return &SealedRepository{blobs: blobs, session: s}, nil
}

// LoadAll reads the current document, so writes made by another process
// since Open are visible.
func (r *SealedRepository) LoadAll(ctx context.Context) ([]models.Credential, error) {
	data, err := r.blobs.Read(ctx)
	if err != nil {
		return nil, err
	}
	return unsealWith(r.session, data)
}

func (r *SealedRepository) ReplaceAll(ctx context.Context, records []models.Credential) error {
	data, err := Seal(r.session, records)
	if err != nil {
		return err
	}
	return r.blobs.Write(ctx, data)
}

// Close wipes the session key.
func (r *SealedRepository) Close() error {
	r.session.Close()
	return nil
}
