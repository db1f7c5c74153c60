package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "XT"
	configDirName  = ".xthreads"
	configFileName = "config.toml"
)

// Keys read by the adapters. Values may come from config.toml, XT_* env vars
// or a .env file, in increasing order of precedence (env beats .env).
const (
	KeyAccountsPath     = "accounts.path"
	KeyHistoryPath      = "history.path"
	KeyHistoryLimit     = "history.limit"
	KeySecretsDir       = "secrets.dir"
	KeyVaultRoot        = "vault.root"
	KeySchedulerURL     = "scheduler.url"
	KeySchedulerToken   = "scheduler.token"
	KeyLogLevel         = "log.level"
	KeyMetricsTextfile  = "metrics.textfile"
	KeyUploadsPerMinute = "mastodon.uploads_per_minute"
	KeyStaleAfter       = "connection.stale_after"
)

var knownKeys = []string{
	KeyAccountsPath,
	KeyHistoryPath,
	KeyHistoryLimit,
	KeySecretsDir,
	KeyVaultRoot,
	KeySchedulerURL,
	KeySchedulerToken,
	KeyLogLevel,
	KeyMetricsTextfile,
	KeyUploadsPerMinute,
	KeyStaleAfter,
}

type Options struct {
	Fs   afero.Fs
	Home string
	// ConfigFile overrides ~/.xthreads/config.toml.
	ConfigFile string
	// EnvFile is read when present; a missing file is not an error.
	EnvFile string
}

func Load(opts Options) (*viper.Viper, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		opts.Home = home
	}

	v := viper.New()
	v.SetFs(opts.Fs)
	setDefaults(v, opts.Home)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(envPrefix + "_CONFIG")
	}
	if configFile == "" {
		configFile = filepath.Join(opts.Home, configDirName, configFileName)
	}

	exists, err := afero.Exists(opts.Fs, configFile)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if exists {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if opts.EnvFile != "" {
		if err := applyEnvFile(v, opts.Fs, opts.EnvFile); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault(KeyHistoryLimit, 200)
	v.SetDefault(KeySecretsDir, filepath.Join(home, configDirName, "secrets"))
	v.SetDefault(KeyVaultRoot, ".")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyUploadsPerMinute, 30)
	v.SetDefault(KeyStaleAfter, "24h")
}

// applyEnvFile reads XT_* assignments from a dotenv file without touching
// the process environment. Variables already set in the environment win.
func applyEnvFile(v *viper.Viper, fsys afero.Fs, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open env file: %w", err)
	}
	defer func() { _ = f.Close() }()

	values, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("parse env file %s: %w", path, err)
	}

	for _, key := range knownKeys {
		name := EnvName(key)
		value, ok := values[name]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(key, value)
	}

	return nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
