package ports

import (
	"context"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type PostHistoryRepository interface {
	Append(ctx context.Context, record domain.PostRecord) error
	Last(ctx context.Context, accountID domain.AccountID) (domain.PostRecord, error)
	Remove(ctx context.Context, recordID string) error
}
