package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig       = "config"
	FlagStore        = "store"
	FlagVault        = "vault"
	FlagSQLitePath   = "sqlite-path"
	FlagDSN          = "dsn"
	FlagS3Bucket     = "s3-bucket"
	FlagS3Key        = "s3-key"
	FlagS3Region     = "s3-region"
	FlagS3Endpoint   = "s3-endpoint"
	FlagS3AccessKey  = "s3-access-key"
	FlagS3SecretKey  = "s3-secret-key"
	FlagStoreTimeout = "store-timeout"
	FlagPreviewRows  = "preview-rows"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
	FlagLogBackend   = "log-backend"
)

// RegisterFlags adds the configuration flags to fs. Flag defaults mirror
// LoadDefaults so --help shows real values.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.String(FlagStore, d.Store, "store kind: file, sqlite, postgres or s3")
	fs.String(FlagVault, d.VaultPath, "path of the encrypted vault file")
	fs.String(FlagSQLitePath, d.SQLitePath, "path of the SQLite database")
	fs.String(FlagDSN, d.DatabaseDSN, "PostgreSQL connection string")
	fs.String(FlagS3Bucket, d.S3.Bucket, "S3 bucket holding the vault object")
	fs.String(FlagS3Key, d.S3.Key, "S3 object key of the vault")
	fs.String(FlagS3Region, d.S3.Region, "S3 region")
	fs.String(FlagS3Endpoint, d.S3.Endpoint, "S3 endpoint URL")
	fs.String(FlagS3AccessKey, d.S3.AccessKey, "S3 access key")
	fs.String(FlagS3SecretKey, d.S3.SecretKey, "S3 secret key")
	fs.Duration(FlagStoreTimeout, d.StoreTimeout, "timeout for a single store operation")
	fs.Int(FlagPreviewRows, d.PreviewRows, "number of rows shown in the import preview")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.String(FlagLogFormat, d.LogFormat, "log format: text or json")
	fs.String(FlagLogBackend, d.LogBackend, "log backend: slog or zap")
}

// applyFlags copies every flag the user set into c.
func applyFlags(c *Config, fs *pflag.FlagSet) error {
	strs := map[string]*string{
		FlagStore:       &c.Store,
		FlagVault:       &c.VaultPath,
		FlagSQLitePath:  &c.SQLitePath,
		FlagDSN:         &c.DatabaseDSN,
		FlagS3Bucket:    &c.S3.Bucket,
		FlagS3Key:       &c.S3.Key,
		FlagS3Region:    &c.S3.Region,
		FlagS3Endpoint:  &c.S3.Endpoint,
		FlagS3AccessKey: &c.S3.AccessKey,
		FlagS3SecretKey: &c.S3.SecretKey,
		FlagLogLevel:    &c.LogLevel,
		FlagLogFormat:   &c.LogFormat,
		FlagLogBackend:  &c.LogBackend,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed(FlagStoreTimeout) {
		v, err := fs.GetDuration(FlagStoreTimeout)
		if err != nil {
			return err
		}
		c.StoreTimeout = v
	}
	if fs.Changed(FlagPreviewRows) {
		v, err := fs.GetInt(FlagPreviewRows)
		if err != nil {
			return err
		}
		c.PreviewRows = v
	}
	return nil
}
