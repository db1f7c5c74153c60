package toml

import "fmt"

const currentHistorySchemaVersion = 1

type historyFileSchema struct {
	Version int            `toml:"version"`
	Threads []threadSchema `toml:"threads"`
}

func (s *historyFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentHistorySchemaVersion
	}
}

func (s historyFileSchema) validateVersion() error {
	if s.Version > currentHistorySchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentHistorySchemaVersion)
	}

	return nil
}

type threadSchema struct {
	ID        string       `toml:"id"`
	AccountID string       `toml:"account_id"`
	PostedAt  string       `toml:"posted_at"`
	Posts     []postSchema `toml:"posts"`
}

type postSchema struct {
	ID       string   `toml:"id"`
	URL      string   `toml:"url,omitempty"`
	Text     string   `toml:"text"`
	MediaIDs []string `toml:"media_ids,omitempty"`
}
