package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/izm4457/password-manager/internal/client/models"
	"github.com/izm4457/password-manager/internal/client/vault"
	"github.com/izm4457/password-manager/internal/common"
	"github.com/izm4457/password-manager/internal/cryptox"
	"github.com/izm4457/password-manager/internal/dbx"
)

type queries struct {
	selectAll, deleteAll, insert string
}

var sqliteQueries = queries{
	selectAll: `SELECT id, position, details, nonce FROM credentials ORDER BY position`,
	deleteAll: `DELETE FROM credentials`,
	insert:    `INSERT INTO credentials (id, position, details, nonce) VALUES (?, ?, ?, ?)`,
}

var postgresQueries = queries{
	selectAll: `SELECT id, position, details, nonce FROM credentials ORDER BY position`,
	deleteAll: `DELETE FROM credentials`,
	insert:    `INSERT INTO credentials (id, position, details, nonce) VALUES ($1, $2, $3, $4)`,
}

// SQLRepository keeps one row per credential. Each row's details column is
// the credential JSON sealed with the session key; only the id and the
// position are stored in clear.
type SQLRepository struct {
	db      *sql.DB
	session *vault.Session
	q       queries
}

func NewSQLiteRepository(db *sql.DB, session *vault.Session) *SQLRepository {
	return &SQLRepository{db: db, session: session, q: sqliteQueries}
}

func NewPostgresRepository(db *sql.DB, session *vault.Session) *SQLRepository {
	return &SQLRepository{db: db, session: session, q: postgresQueries}
}

func (r *SQLRepository) LoadAll(ctx context.Context) ([]models.Credential, error) {
	key, err := r.session.Key()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	entries, err := r.selectEntries(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Credential, 0, len(entries))
	for _, e := range entries {
		var c models.Credential
		if err := cryptox.DecryptEntry(e.Details, e.NonceDetails, key, &c); err != nil {
			return nil, fmt.Errorf("failed to decrypt credential %s: %w", e.Id, err)
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *SQLRepository) selectEntries(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, r.q.selectAll)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Id, &e.Position, &e.Details, &e.NonceDetails); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credential rows: %w", err)
	}
	return entries, nil
}

// ReplaceAll seals every record before touching the database, then swaps the
// table contents inside one transaction.
func (r *SQLRepository) ReplaceAll(ctx context.Context, records []models.Credential) error {
	key, err := r.session.Key()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	entries := make([]models.Entry, 0, len(records))
	for i, c := range records {
		ct, nonce, err := cryptox.EncryptEntry(c, key)
		if err != nil {
			return fmt.Errorf("failed to encrypt credential %s: %w", c.Id, err)
		}
		entries = append(entries, models.Entry{Id: c.Id, Position: i, Details: ct, NonceDetails: nonce})
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, r.q.deleteAll); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		for _, e := range entries {
			if _, err := tx.ExecContext(ctx, r.q.insert, e.Id, e.Position, e.Details, e.NonceDetails); err != nil {
				return fmt.Errorf("failed to insert credential %s: %w", e.Id, err)
			}
		}
		return nil
	})
}
