package mastodon

import (
	"fmt"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
)

// ChainError reports the segment a reply chain stopped at. Posts before
// Index were published and are left in place.
type ChainError struct {
	Index  int
	Total  int
	Posted []domain.PostResult
	Kind   domain.PostingErrorKind
	Err    error
}

var _ ports.ClassifiedError = (*ChainError)(nil)

func (e *ChainError) Error() string {
	return fmt.Sprintf("post segment %d of %d: %v", e.Index+1, e.Total, e.Err)
}

func (e *ChainError) Unwrap() error { return e.Err }

func (e *ChainError) PostingErrorKind() domain.PostingErrorKind { return e.Kind }

// classifyError maps a status-creation failure to a posting error kind.
// The client library only exposes the status line and the server's message.
func classifyError(err error) domain.PostingErrorKind {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "rate limit"):
		return domain.PostingRateLimited
	case strings.Contains(msg, "duplicate"),
		strings.Contains(msg, "already been taken"):
		return domain.PostingDuplicate
	case strings.Contains(msg, "character limit"),
		strings.Contains(msg, "too long"):
		return domain.PostingTooLong
	default:
		return domain.PostingRejected
	}
}
