package ports

import (
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type PostingMetrics interface {
	RecordConnection(accountID domain.AccountID, ok bool)
	RecordThread(accountID domain.AccountID, posts int, latency time.Duration)
	RecordPostingFailure(accountID domain.AccountID, kind domain.PostingErrorKind)
	RecordUpload(ok bool)
}

type NopMetrics struct{}

func (NopMetrics) RecordConnection(domain.AccountID, bool)                        {}
func (NopMetrics) RecordThread(domain.AccountID, int, time.Duration)              {}
func (NopMetrics) RecordPostingFailure(domain.AccountID, domain.PostingErrorKind) {}
func (NopMetrics) RecordUpload(bool)                                              {}
