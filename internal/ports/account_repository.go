package ports

import (
	"context"

	"github.com/bnema/xthreads-cli/internal/domain"
)

// AccountRepository is the single owner of persisted account settings.
type AccountRepository interface {
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	GetActive(ctx context.Context) (domain.AccountID, error)
	SetActive(ctx context.Context, id domain.AccountID) error
}
