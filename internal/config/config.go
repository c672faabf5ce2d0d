// Package config resolves echemfair settings from flags, the environment and
// the optional YAML config file, all held by viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Haghighatbin/echem-fairifier/internal/metadata"
)

// Keys shared by the CLI flag bindings and the config file.
const (
	KeyLogLevel           = "log.level"
	KeySchemaPath         = "validation.schema"
	KeyArchivePath        = "archive.path"
	KeyLicense            = "generator.license"
	KeyAccessProtocol     = "generator.access-protocol"
	KeyMetadataStandard   = "generator.metadata-standard"
	KeyMetadataVocabulary = "generator.metadata-vocabulary"
	KeySchemaVersion      = "generator.schema-version"
)

// Log levels.
const (
	LevelQuiet    = "quiet"
	LevelStandard = "standard"
	LevelDebug    = "debug"
)

// EnvPrefix prefixes environment overrides, e.g. ECHEMFAIR_ARCHIVE_PATH.
const EnvPrefix = "ECHEMFAIR"

// Config is the resolved configuration.
type Config struct {
	LogLevel    string
	SchemaPath  string
	ArchivePath string

	License            string
	AccessProtocol     string
	MetadataStandard   string
	MetadataVocabulary string
	SchemaVersion      string
}

// DefaultArchivePath is ~/.echemfair/archive.db, or a relative path when the
// home directory is unknown.
func DefaultArchivePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".echemfair", "archive.db")
	}
	return filepath.Join(home, ".echemfair", "archive.db")
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	d := metadata.DefaultOptions()
	v.SetDefault(KeyLogLevel, LevelStandard)
	v.SetDefault(KeyArchivePath, DefaultArchivePath())
	v.SetDefault(KeyAccessProtocol, d.AccessProtocol)
	v.SetDefault(KeyMetadataStandard, d.MetadataStandard)
	v.SetDefault(KeyMetadataVocabulary, d.MetadataVocabulary)
	v.SetDefault(KeySchemaVersion, d.SchemaVersion)
}

// BindEnv enables ECHEMFAIR_* overrides, replacing dots and dashes with
// underscores: archive.path -> ECHEMFAIR_ARCHIVE_PATH.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the global viper instance.
func Load() (Config, error) { return From(viper.GetViper()) }

// From reads v. Only the log level can be invalid.
func From(v *viper.Viper) (Config, error) {
	c := Config{
		LogLevel:           strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		SchemaPath:         strings.TrimSpace(v.GetString(KeySchemaPath)),
		ArchivePath:        strings.TrimSpace(v.GetString(KeyArchivePath)),
		License:            strings.TrimSpace(v.GetString(KeyLicense)),
		AccessProtocol:     strings.TrimSpace(v.GetString(KeyAccessProtocol)),
		MetadataStandard:   strings.TrimSpace(v.GetString(KeyMetadataStandard)),
		MetadataVocabulary: strings.TrimSpace(v.GetString(KeyMetadataVocabulary)),
		SchemaVersion:      strings.TrimSpace(v.GetString(KeySchemaVersion)),
	}
	if c.LogLevel == "" {
		c.LogLevel = LevelStandard
	}
	switch c.LogLevel {
	case LevelQuiet, LevelStandard, LevelDebug:
	default:
		return Config{}, fmt.Errorf("invalid --log-level %q (expected quiet|standard|debug)", c.LogLevel)
	}
	if c.ArchivePath == "" {
		c.ArchivePath = DefaultArchivePath()
	}
	return c, nil
}

// Quiet reports whether all non-essential output is suppressed.
func (c Config) Quiet() bool { return c.LogLevel == LevelQuiet }

// Debug reports whether package loggers should be wired.
func (c Config) Debug() bool { return c.LogLevel == LevelDebug }

// GeneratorOptions overlays the configured values on the generator defaults.
func (c Config) GeneratorOptions() metadata.Options {
	o := metadata.DefaultOptions()
	if c.License != "" {
		o.License = c.License
	}
	if c.AccessProtocol != "" {
		o.AccessProtocol = c.AccessProtocol
	}
	if c.MetadataStandard != "" {
		o.MetadataStandard = c.MetadataStandard
	}
	if c.MetadataVocabulary != "" {
		o.MetadataVocabulary = c.MetadataVocabulary
	}
	if c.SchemaVersion != "" {
		o.SchemaVersion = c.SchemaVersion
	}
	return o
}
