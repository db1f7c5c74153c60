package ports

import (
	"context"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type ScheduleRequest struct {
	AccountID domain.AccountID
	Segments  []string
	PostAt    time.Time
}

type Scheduler interface {
	Schedule(ctx context.Context, req ScheduleRequest) (string, error)
}
