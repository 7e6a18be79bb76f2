package credentials

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/izm4457/password-manager/internal/client/migrations"
	"github.com/izm4457/password-manager/internal/client/models"
	"github.com/izm4457/password-manager/internal/client/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var salt = []byte("0123456789abcdef")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, migrations.DialectSQLite))
	return db
}

func records() []models.Credential {
	return []models.Credential{
		{Id: "b", Service: "Zeta", Username: "z", Password: "1"},
		{Id: "a", Service: "Alpha", Username: "a", Password: "2", Notes: "n"},
		{Id: "c", Service: "Mid", Password: "3"},
	}
}

func TestSQLite_ReplaceAllThenLoadAllKeepsOrder(t *testing.T) {
	db := setupDB(t)
	s := vault.NewSession([]byte("pw"), salt)
	r := NewSQLiteRepository(db, s)
	ctx := context.Background()

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, r.ReplaceAll(ctx, records()))
	got, err = r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(records(), got))

	require.NoError(t, r.ReplaceAll(ctx, records()[:1]))
	got, err = r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(records()[:1], got))
}

func TestSQLite_RowsAreEncrypted(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, vault.NewSession([]byte("pw"), salt))
	require.NoError(t, r.ReplaceAll(context.Background(), records()))

	var details []byte
	require.NoError(t, db.QueryRow(`SELECT details FROM credentials WHERE id = 'a'`).Scan(&details))
	assert.NotContains(t, string(details), "Alpha")
}

func TestSQLite_ReplaceAllIsAtomic(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, vault.NewSession([]byte("pw"), salt))
	ctx := context.Background()
	require.NoError(t, r.ReplaceAll(ctx, records()))

	dup := []models.Credential{
		{Id: "x", Service: "S", Password: "p"},
		{Id: "x", Service: "S", Password: "p"},
	}
	require.Error(t, r.ReplaceAll(ctx, dup))

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(records(), got))
}

func TestSQLite_WrongKeyAndLockedSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteRepository(db, vault.NewSession([]byte("pw"), salt)).ReplaceAll(ctx, records()))

	_, err := NewSQLiteRepository(db, vault.NewSession([]byte("other"), salt)).LoadAll(ctx)
	require.Error(t, err)

	s := vault.NewSession([]byte("pw"), salt)
	s.Close()
	r := NewSQLiteRepository(db, s)
	_, err = r.LoadAll(ctx)
	require.ErrorIs(t, err, vault.ErrLocked)
	require.ErrorIs(t, r.ReplaceAll(ctx, nil), vault.ErrLocked)
}
