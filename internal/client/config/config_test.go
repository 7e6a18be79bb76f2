package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, StoreFile, c.Store)
	assert.Equal(t, "vault.json", c.VaultPath)
	assert.Equal(t, 10*time.Second, c.StoreTimeout)
	assert.Equal(t, 5, c.PreviewRows)
	assert.Equal(t, "slog", c.LogBackend)
	require.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "json",
			file: "cfg.json",
			body: `{"store":"sqlite","sqlite_path":"/tmp/x.db","store_timeout":"3s","preview_rows":2}`,
		},
		{
			name: "yaml",
			file: "cfg.yaml",
			body: "store: sqlite\nsqlite_path: /tmp/x.db\nstore_timeout: 3s\npreview_rows: 2\n",
		},
		{
			name: "yml with nanoseconds",
			file: "cfg.yml",
			body: "store: sqlite\nsqlite_path: /tmp/x.db\nstore_timeout: 3000000000\npreview_rows: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			require.NoError(t, LoadFile(&c, writeFile(t, tt.file, tt.body)))

			want := defaults()
			want.Store = StoreSQLite
			want.SQLitePath = "/tmp/x.db"
			want.StoreTimeout = 3 * time.Second
			want.PreviewRows = 2
			assert.Empty(t, cmp.Diff(want, c))
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	c := defaults()
	require.Error(t, LoadFile(&c, filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, LoadFile(&c, writeFile(t, "bad.json", `{ not json`)))
	require.Error(t, LoadFile(&c, writeFile(t, "bad.yaml", "store_timeout: later\n")))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"store":"sqlite","sqlite_path":"file.db","preview_rows":7,"log_level":"warn"}`)

	fs := newFlagSet(t, "-c", path, "--sqlite-path", "flag.db", "--log-format", "json")
	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store, "file overrides default")
	assert.Equal(t, "flag.db", cfg.SQLitePath, "flag overrides file")
	assert.Equal(t, 7, cfg.PreviewRows, "unset flag does not clobber file value")
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_FlagsOnly(t *testing.T) {
	fs := newFlagSet(t, "--store", "s3", "--s3-bucket", "b", "--store-timeout", "1m", "--preview-rows", "0")
	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, StoreS3, cfg.Store)
	assert.Equal(t, "b", cfg.S3.Bucket)
	assert.Equal(t, "vault.json", cfg.S3.Key)
	assert.Equal(t, time.Minute, cfg.StoreTimeout)
	assert.Equal(t, 0, cfg.PreviewRows)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(newFlagSet(t, "--store", "floppy"))
	require.Error(t, err)

	_, err = Load(newFlagSet(t, "-c", filepath.Join(t.TempDir(), "nope.json")))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "unknown store", mutate: func(c *Config) { c.Store = "tape" }, wantErr: true},
		{name: "empty vault path", mutate: func(c *Config) { c.VaultPath = "" }, wantErr: true},
		{name: "empty sqlite path", mutate: func(c *Config) { c.Store = StoreSQLite; c.SQLitePath = "" }, wantErr: true},
		{name: "empty dsn", mutate: func(c *Config) { c.Store = StorePostgres; c.DatabaseDSN = "" }, wantErr: true},
		{name: "empty bucket", mutate: func(c *Config) { c.Store = StoreS3; c.S3.Bucket = "" }, wantErr: true},
		{name: "negative preview", mutate: func(c *Config) { c.PreviewRows = -1 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.StoreTimeout = 0 }, wantErr: true},
		{name: "postgres ok", mutate: func(c *Config) { c.Store = StorePostgres }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
