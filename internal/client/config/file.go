package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/izm4457/password-manager/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. It is pre-filled from the current Config
// so keys missing from the file keep their earlier value.
type fileConfig struct {
	Store       string `json:"store" yaml:"store"`
	VaultPath   string `json:"vault_path" yaml:"vault_path"`
	SQLitePath  string `json:"sqlite_path" yaml:"sqlite_path"`
	DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`

	S3Bucket    string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Key       string `json:"s3_key" yaml:"s3_key"`
	S3Region    string `json:"s3_region" yaml:"s3_region"`
	S3Endpoint  string `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey string `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key" yaml:"s3_secret_key"`

	StoreTimeout timex.Duration `json:"store_timeout" yaml:"store_timeout"`
	PreviewRows  int            `json:"preview_rows" yaml:"preview_rows"`

	LogLevel   string `json:"log_level" yaml:"log_level"`
	LogFormat  string `json:"log_format" yaml:"log_format"`
	LogBackend string `json:"log_backend" yaml:"log_backend"`
}

func newFileConfig(c *Config) fileConfig {
	return fileConfig{
		Store:        c.Store,
		VaultPath:    c.VaultPath,
		SQLitePath:   c.SQLitePath,
		DatabaseDSN:  c.DatabaseDSN,
		S3Bucket:     c.S3.Bucket,
		S3Key:        c.S3.Key,
		S3Region:     c.S3.Region,
		S3Endpoint:   c.S3.Endpoint,
		S3AccessKey:  c.S3.AccessKey,
		S3SecretKey:  c.S3.SecretKey,
		StoreTimeout: timex.Duration{Duration: c.StoreTimeout},
		PreviewRows:  c.PreviewRows,
		LogLevel:     c.LogLevel,
		LogFormat:    c.LogFormat,
		LogBackend:   c.LogBackend,
	}
}

func (f fileConfig) apply(c *Config) {
	c.Store = f.Store
	c.VaultPath = f.VaultPath
	c.SQLitePath = f.SQLitePath
	c.DatabaseDSN = f.DatabaseDSN
	c.S3 = S3Config{
		Bucket:    f.S3Bucket,
		Key:       f.S3Key,
		Region:    f.S3Region,
		Endpoint:  f.S3Endpoint,
		AccessKey: f.S3AccessKey,
		SecretKey: f.S3SecretKey,
	}
	c.StoreTimeout = f.StoreTimeout.Duration
	c.PreviewRows = f.PreviewRows
	c.LogLevel = f.LogLevel
	c.LogFormat = f.LogFormat
	c.LogBackend = f.LogBackend
}

// LoadFile overlays c with the values found in path.
func LoadFile(c *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := newFileConfig(c)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(c)
	return nil
}
