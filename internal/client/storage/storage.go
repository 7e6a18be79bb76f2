// Package storage opens the credential store selected by the configuration
// and unlocks it with the master password.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/izm4457/password-manager/internal/client/config"
	"github.com/izm4457/password-manager/internal/client/migrations"
	"github.com/izm4457/password-manager/internal/client/repositories/credentials"
	"github.com/izm4457/password-manager/internal/client/repositories/metadata"
	"github.com/izm4457/password-manager/internal/client/vault"
	"github.com/izm4457/password-manager/internal/common"
	"github.com/izm4457/password-manager/internal/dbx"
	"github.com/izm4457/password-manager/internal/filex"
)

// Store is an unlocked credential store. Close wipes the session key and
// releases the backend.
type Store struct {
	Kind string
	Repo credentials.Repository

	closers []func() error
}

func (s *Store) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// newS3API is overridable in tests.
var newS3API = func(ctx context.Context, cfg config.S3Config) (vault.ObjectAPI, error) {
	return vault.NewS3Client(ctx, cfg)
}

// Open unlocks an existing store. It returns vault.ErrNotInitialized when
// the store was never created and vault.ErrWrongPassword when password does
// not match.
func Open(ctx context.Context, cfg *config.Config, password []byte) (*Store, error) {
	return open(ctx, cfg, password, false)
}

// Init creates an empty store and returns it unlocked. It returns
// vault.ErrAlreadyInitialized when the store already exists.
func Init(ctx context.Context, cfg *config.Config, password []byte) (*Store, error) {
	return open(ctx, cfg, password, true)
}

func open(ctx context.Context, cfg *config.Config, password []byte, create bool) (*Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return openSealed(ctx, cfg.Store, vault.NewFileBlobs(cfg.VaultPath), password, create)
	case config.StoreS3:
		api, err := newS3API(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return openSealed(ctx, cfg.Store, vault.NewS3Blobs(api, cfg.S3.Bucket, cfg.S3.Key), password, create)
	case config.StoreSQLite, config.StorePostgres:
		return openSQL(ctx, cfg, password, create)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownStore, cfg.Store)
	}
}

func openSealed(ctx context.Context, kind string, blobs vault.BlobStore, password []byte, create bool) (*Store, error) {
	var (
		repo *vault.SealedRepository
		err  error
	)
	if create {
		repo, err = vault.Init(ctx, blobs, password)
	} else {
		repo, err = vault.Open(ctx, blobs, password)
	}
	if err != nil {
		return nil, err
	}
	return &Store{Kind: kind, Repo: repo, closers: []func() error{repo.Close}}, nil
}

type sqlBackend struct {
	driver     string
	dialect    string
	metadata   func(dbx.DBTX) metadata.Repository
	repository func(*sql.DB, *vault.Session) *credentials.SQLRepository
}

var sqlBackends = map[string]sqlBackend{
	config.StoreSQLite: {
		driver:     "sqlite",
		dialect:    migrations.DialectSQLite,
		metadata:   func(db dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(db) },
		repository: credentials.NewSQLiteRepository,
	},
	config.StorePostgres: {
		driver:     "pgx",
		dialect:    migrations.DialectPostgres,
		metadata:   func(db dbx.DBTX) metadata.Repository { return metadata.NewPostgresRepository(db) },
		repository: credentials.NewPostgresRepository,
	},
}

func openSQL(ctx context.Context, cfg *config.Config, password []byte, create bool) (*Store, error) {
	b := sqlBackends[cfg.Store]

	dsn := cfg.DatabaseDSN
	if cfg.Store == config.StoreSQLite {
		dsn = cfg.SQLitePath
		if !create {
			ok, err := filex.Exists(dsn)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, vault.ErrNotInitialized
			}
		} else if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(b.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Store, err)
	}

	session, err := unlockSQL(ctx, db, b, password, create)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Kind: cfg.Store,
		Repo: b.repository(db, session),
		closers: []func() error{
			db.Close,
			func() error { session.Close(); return nil },
		},
	}, nil
}

func unlockSQL(ctx context.Context, db *sql.DB, b sqlBackend, password []byte, create bool) (*vault.Session, error) {
	if err := migrations.Up(ctx, db, b.dialect); err != nil {
		return nil, err
	}

	meta := b.metadata(db)
	salt, err := meta.Get(ctx, metadata.KeySalt)
	if err != nil {
		return nil, err
	}

	if create {
		if salt != nil {
			return nil, vault.ErrAlreadyInitialized
		}
		return createSQL(ctx, db, b, password)
	}

	if salt == nil {
		return nil, vault.ErrNotInitialized
	}
	verifier, err := meta.Get(ctx, metadata.KeyVerifier)
	if err != nil {
		return nil, err
	}

	session := vault.NewSession(password, salt)
	if err := session.Verify(verifier); err != nil {
		session.Close()
		return nil, err
	}
	return session, nil
}

func createSQL(ctx context.Context, db *sql.DB, b sqlBackend, password []byte) (*vault.Session, error) {
	session := vault.CreateSession(password)
	verifier, err := session.Verifier()
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := b.metadata(tx)
		if err := meta.Set(ctx, metadata.KeySalt, session.Salt()); err != nil {
			return err
		}
		return meta.Set(ctx, metadata.KeyVerifier, verifier)
	})
	if err != nil {
		session.Close()
		return nil, err
	}
	return session, nil
}
