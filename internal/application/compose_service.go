package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/xthreads-cli/internal/compose"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
)

var ErrScheduleInPast = errors.New("scheduled time is not in the future")

type ComposeService struct {
	connections *ConnectionManager
	poster      *ThreadPoster
	scheduler   ports.Scheduler
	clock       ports.Clock
}

func NewComposeService(connections *ConnectionManager, poster *ThreadPoster, scheduler ports.Scheduler, clock ports.Clock) *ComposeService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ComposeService{
		connections: connections,
		poster:      poster,
		scheduler:   scheduler,
		clock:       clock,
	}
}

// Compose splits text with the target account's settings. It never connects.
func (s *ComposeService) Compose(ctx context.Context, req ComposeRequest) (Draft, error) {
	account, err := s.connections.ResolveTarget(ctx, req.AccountID)
	if err != nil {
		return Draft{}, err
	}

	selection, err := compose.Select(req.Text, compose.NewConfig(account.Settings))
	if err != nil {
		return Draft{}, err
	}

	if req.PostAt == nil {
		return Draft{
			Composition: domain.Immediate{Segments: selection.Segments, AccountID: account.ID},
			Strategy:    selection.Strategy,
		}, nil
	}

	if !req.PostAt.After(s.clock.Now()) {
		return Draft{}, fmt.Errorf("%w: %s", ErrScheduleInPast, req.PostAt.Format("2006-01-02 15:04:05 MST"))
	}

	return Draft{
		Composition: domain.Scheduled{Segments: selection.Segments, AccountID: account.ID, PostAt: *req.PostAt},
		Strategy:    selection.Strategy,
	}, nil
}

func (s *ComposeService) Submit(ctx context.Context, composition domain.Composition) (SubmitResult, error) {
	switch c := composition.(type) {
	case domain.Immediate:
		outcome, err := s.poster.PostThread(ctx, c.Segments, c.AccountID)
		if err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{Posted: &outcome}, nil
	case domain.Scheduled:
		if s.scheduler == nil {
			return SubmitResult{}, &domain.ConfigurationError{Reason: "no scheduling server configured"}
		}
		id, err := s.scheduler.Schedule(ctx, ports.ScheduleRequest{
			AccountID: c.AccountID,
			Segments:  c.Segments,
			PostAt:    c.PostAt,
		})
		if err != nil {
			return SubmitResult{}, fmt.Errorf("schedule thread: %w", err)
		}
		return SubmitResult{ScheduleID: id}, nil
	default:
		return SubmitResult{}, fmt.Errorf("unsupported composition %T", composition)
	}
}
