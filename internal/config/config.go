// Package config resolves the CLI settings from .env files, ~/.paladins/config.toml
// and PSTATS_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "PSTATS"
	configName = "config"
	configType = "toml"
	configDir  = ".paladins"
)

const (
	KeyAPIBaseURL           = "api.base_url"
	KeyAPIFormat            = "api.format"
	KeyAPITimeout           = "api.timeout"
	KeyAPIRetries           = "api.retries"
	KeyDevIDRef             = "credentials.dev_id_ref"
	KeyAuthKeyRef           = "credentials.auth_key_ref"
	KeySecretsDir           = "secrets.dir"
	KeySessionPath          = "session.path"
	KeyCallLogPath          = "calllog.path"
	KeyExportDir            = "export.dir"
	KeyLogLevel             = "log.level"
	KeyReportDefaultMatches = "report.default_matches"
	KeyReportMaxMatches     = "report.max_matches"
)

const (
	defaultBaseURL         = "https://api.paladins.com/paladinsapi.svc"
	defaultFormat          = "Json"
	defaultTimeout         = 15 * time.Second
	defaultRetries         = 1
	defaultMatches         = 50
	defaultDevIDRef        = "paladins/dev_id"
	defaultAuthKeyRef      = "paladins/auth_key"
	defaultLogLevel        = "warn"
	defaultExportDir       = "."
	defaultSecretsDirName  = "secrets"
	defaultSessionFileName = "session.toml"
	defaultCallLogFileName = "calls.db"
	defaultDotEnvFileName  = ".env"
)

type API struct {
	BaseURL string
	Format  string
	Timeout time.Duration
	Retries int
}

type Credentials struct {
	DevIDRef   string
	AuthKeyRef string
}

type Report struct {
	DefaultMatches int
	MaxMatches     int
}

type Config struct {
	API         API
	Credentials Credentials
	SecretsDir  string
	SessionPath string
	CallLogPath string
	ExportDir   string
	LogLevel    string
	Report      Report
}

// Load fills v with defaults, the config file and the environment, and returns
// the resolved settings. v stays usable by adapters that read their own keys.
func Load(v *viper.Viper) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	if err := loadDotEnv(defaultDotEnvFileName, filepath.Join(baseDir, defaultDotEnvFileName)); err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, defaultBaseURL)
	v.SetDefault(KeyAPIFormat, defaultFormat)
	v.SetDefault(KeyAPITimeout, defaultTimeout)
	v.SetDefault(KeyAPIRetries, defaultRetries)
	v.SetDefault(KeyDevIDRef, defaultDevIDRef)
	v.SetDefault(KeyAuthKeyRef, defaultAuthKeyRef)
	v.SetDefault(KeySecretsDir, filepath.Join(baseDir, defaultSecretsDirName))
	v.SetDefault(KeySessionPath, filepath.Join(baseDir, defaultSessionFileName))
	v.SetDefault(KeyCallLogPath, filepath.Join(baseDir, defaultCallLogFileName))
	v.SetDefault(KeyExportDir, defaultExportDir)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyReportDefaultMatches, defaultMatches)
	v.SetDefault(KeyReportMaxMatches, defaultMatches)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: API{
			BaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Format:  strings.TrimSpace(v.GetString(KeyAPIFormat)),
			Timeout: v.GetDuration(KeyAPITimeout),
			Retries: v.GetInt(KeyAPIRetries),
		},
		Credentials: Credentials{
			DevIDRef:   strings.TrimSpace(v.GetString(KeyDevIDRef)),
			AuthKeyRef: strings.TrimSpace(v.GetString(KeyAuthKeyRef)),
		},
		SecretsDir:  expandHome(v.GetString(KeySecretsDir), homeDir),
		SessionPath: expandHome(v.GetString(KeySessionPath), homeDir),
		CallLogPath: expandHome(v.GetString(KeyCallLogPath), homeDir),
		ExportDir:   expandHome(v.GetString(KeyExportDir), homeDir),
		LogLevel:    strings.TrimSpace(v.GetString(KeyLogLevel)),
		Report: Report{
			DefaultMatches: v.GetInt(KeyReportDefaultMatches),
			MaxMatches:     v.GetInt(KeyReportMaxMatches),
		},
	}

	// Adapters read these keys from v directly.
	v.Set(KeySessionPath, cfg.SessionPath)
	v.Set(KeyCallLogPath, cfg.CallLogPath)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyAPIBaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyAPITimeout))
	}
	if c.API.Retries < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyAPIRetries))
	}
	if c.Credentials.DevIDRef == "" || c.Credentials.AuthKeyRef == "" {
		errs = append(errs, errors.New("credential references must not be empty"))
	}
	if c.Report.MaxMatches <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyReportMaxMatches))
	}
	if c.Report.DefaultMatches <= 0 || c.Report.DefaultMatches > c.Report.MaxMatches {
		errs = append(errs, fmt.Errorf("%s must be between 1 and %s", KeyReportDefaultMatches, KeyReportMaxMatches))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

// loadDotEnv loads every existing file; variables already set in the process win.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
