package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version       int             `toml:"version"`
	ActiveAccount string          `toml:"active_account,omitempty"`
	Accounts      []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID         string           `toml:"id"`
	Name       string           `toml:"name"`
	Metadata   metadataSchema   `toml:"metadata"`
	Auth       authSchema       `toml:"auth"`
	Connection connectionSchema `toml:"connection"`
	Settings   settingsSchema   `toml:"settings"`
}

type metadataSchema struct {
	Server    string `toml:"server"`
	Handle    string `toml:"handle,omitempty"`
	SecretRef string `toml:"secret_ref"`
}

type authSchema struct {
	Method    string `toml:"method"`
	SecretRef string `toml:"secret_ref"`
}

type connectionSchema struct {
	Status       string `toml:"status"`
	LastTestedAt string `toml:"last_tested_at,omitempty"`
	LastError    string `toml:"last_error,omitempty"`
}

// AutoSplit is a pointer so files written before the setting existed keep
// splitting enabled.
type settingsSchema struct {
	AutoSplit *bool  `toml:"auto_split"`
	PostTag   string `toml:"post_tag,omitempty"`
}
