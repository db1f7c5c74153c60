package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Unknown levels fall back to warn
// so a typo in config.toml does not silence failures.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Reporter is the single place where command failures reach the user.
type Reporter struct {
	log zerolog.Logger
}

func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{log: log.With().Str("component", "reporter").Logger()}
}

// Report logs err at debug level and writes a one-line message plus an optional hint to w.
func (r *Reporter) Report(w io.Writer, command string, err error) {
	if err == nil {
		return
	}

	r.log.Debug().Err(err).Str("command", command).Msg("command failed")

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if hint := Hint(err); hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

func Hint(err error) string {
	var postingErr *domain.PostingError

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "run `xt account list` to see configured accounts"
	case errors.Is(err, domain.ErrSecretNotFound):
		return "store a credential with `xt auth set --account <id> --secret-key <key> --secret-value <token>`"
	case errors.Is(err, domain.ErrConfiguration):
		return "check ~/.xthreads/config.toml and the XT_* environment variables"
	case errors.Is(err, domain.ErrConnection):
		return "run `xt account connect` to re-test the credentials"
	case errors.As(err, &postingErr):
		switch postingErr.Kind {
		case domain.PostingRateLimited:
			return "the server is rate limiting this account; try again later"
		case domain.PostingDuplicate:
			return "the server rejected a post as a duplicate"
		case domain.PostingTooLong:
			return "a post exceeded the server's character limit; enable auto-split with `xt account settings --auto-split=true`"
		}
		return ""
	case errors.Is(err, domain.ErrEmptyInput):
		return "pass text with --text, --file or on stdin"
	default:
		return ""
	}
}
