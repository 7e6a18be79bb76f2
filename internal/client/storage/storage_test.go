package storage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/go-cmp/cmp"
	"github.com/izm4457/password-manager/internal/client/config"
	"github.com/izm4457/password-manager/internal/client/models"
	"github.com/izm4457/password-manager/internal/client/vault"
	"github.com/izm4457/password-manager/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (m *memS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.objects[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (m *memS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[*in.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func testConfig(t *testing.T, kind string) *config.Config {
	t.Helper()
	var c config.Config
	c.LoadDefaults()
	dir := t.TempDir()
	c.Store = kind
	c.VaultPath = filepath.Join(dir, "vault.json")
	c.SQLitePath = filepath.Join(dir, "nested", "vault.db")
	return &c
}

func TestStore_Lifecycle(t *testing.T) {
	fake := &memS3{objects: map[string][]byte{}}
	orig := newS3API
	newS3API = func(context.Context, config.S3Config) (vault.ObjectAPI, error) { return fake, nil }
	t.Cleanup(func() { newS3API = orig })

	want := []models.Credential{{Id: "1", Service: "GitHub", Username: "u", Password: "p"}}

	for _, kind := range []string{config.StoreFile, config.StoreSQLite, config.StoreS3} {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, kind)

			_, err := Open(ctx, cfg, []byte("pw"))
			require.ErrorIs(t, err, vault.ErrNotInitialized)

			st, err := Init(ctx, cfg, []byte("pw"))
			require.NoError(t, err)
			assert.Equal(t, kind, st.Kind)
			require.NoError(t, st.Repo.ReplaceAll(ctx, want))
			require.NoError(t, st.Close())

			_, err = Init(ctx, cfg, []byte("pw"))
			require.ErrorIs(t, err, vault.ErrAlreadyInitialized)

			_, err = Open(ctx, cfg, []byte("wrong"))
			require.ErrorIs(t, err, vault.ErrWrongPassword)

			st, err = Open(ctx, cfg, []byte("pw"))
			require.NoError(t, err)
			defer st.Close()
			got, err := st.Repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, got))
		})
		fake.objects = map[string][]byte{}
	}
}

func TestOpen_UnknownStore(t *testing.T) {
	cfg := testConfig(t, "tape")
	_, err := Open(context.Background(), cfg, []byte("pw"))
	require.ErrorIs(t, err, common.ErrorUnknownStore)
}

func TestStore_CloseLocksSession(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StoreSQLite)

	st, err := Init(ctx, cfg, []byte("pw"))
	require.NoError(t, err)
	repo := st.Repo
	require.NoError(t, st.Close())

	_, err = repo.LoadAll(ctx)
	require.Error(t, err)
}
