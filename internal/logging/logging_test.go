package logging

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log.Debug().Str("account", "acc-1").Msg("connecting")
	assert.Contains(t, buf.String(), "connecting")
	assert.Contains(t, buf.String(), "account=acc-1")
}

func TestNewFallsBackToWarn(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		assert.Equal(t, zerolog.WarnLevel, New(level, &bytes.Buffer{}).GetLevel(), level)
	}
}

func TestReporterWritesErrorAndHint(t *testing.T) {
	var logs, out bytes.Buffer
	reporter := NewReporter(New("debug", &logs))

	err := fmt.Errorf("connect account: %w", &domain.ConnectionError{AccountID: "acc-1", Reason: "401 Unauthorized"})
	reporter.Report(&out, "xt post", err)

	assert.Contains(t, out.String(), "Error: connect account: connect account acc-1: 401 Unauthorized")
	assert.Contains(t, out.String(), "Hint: run `xt account connect`")
	assert.Contains(t, logs.String(), "command failed")
	assert.Contains(t, logs.String(), "command=\"xt post\"")
}

func TestReporterIgnoresNil(t *testing.T) {
	var out bytes.Buffer
	NewReporter(zerolog.Nop()).Report(&out, "xt", nil)

	assert.Empty(t, out.String())
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "configuration", err: &domain.ConfigurationError{Reason: "no server"}, want: "config.toml"},
		{name: "account", err: fmt.Errorf("get: %w", domain.ErrAccountNotFound), want: "xt account list"},
		{name: "secret", err: domain.ErrSecretNotFound, want: "xt auth set"},
		{name: "rate limited", err: &domain.PostingError{Kind: domain.PostingRateLimited, Err: errors.New("429")}, want: "rate limiting"},
		{name: "too long", err: &domain.PostingError{Kind: domain.PostingTooLong, Err: errors.New("422")}, want: "auto-split"},
		{name: "empty", err: domain.ErrEmptyInput, want: "--text"},
		{name: "plain", err: errors.New("boom"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == "" {
				assert.Empty(t, Hint(tt.err))
				return
			}
			assert.Contains(t, Hint(tt.err), tt.want)
		})
	}
}
