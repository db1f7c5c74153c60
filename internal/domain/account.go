package domain

import "time"

type AccountID string

type Account struct {
	ID         AccountID
	Name       string
	Metadata   AccountMetadata
	Auth       Auth
	Connection ConnectionState
	Settings   PostingSettings
}

type AccountMetadata struct {
	Server    string
	Handle    string
	SecretRef string
}

type ConnectionStatus string

const (
	ConnectionUntested  ConnectionStatus = "untested"
	ConnectionConnected ConnectionStatus = "connected"
	ConnectionFailed    ConnectionStatus = "failed"
)

func (s ConnectionStatus) Valid() bool {
	switch s {
	case ConnectionUntested, ConnectionConnected, ConnectionFailed:
		return true
	default:
		return false
	}
}

// ConnectionState is written only by the connection manager.
type ConnectionState struct {
	Status       ConnectionStatus
	LastTestedAt time.Time
	LastError    string
}

func (s ConnectionState) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.LastTestedAt.IsZero() || maxAge <= 0 {
		return false
	}
	return now.Sub(s.LastTestedAt) > maxAge
}

type PostingSettings struct {
	// AutoSplit toggles segmentation at SegmentBudget; the budget itself is fixed.
	AutoSplit bool
	PostTag   string
}

func DefaultPostingSettings() PostingSettings {
	return PostingSettings{AutoSplit: true}
}

func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return string(a.ID)
}
