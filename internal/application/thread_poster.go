package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ThreadPoster struct {
	connections *ConnectionManager
	resolver    *MediaResolver
	history     ports.PostHistoryRepository
	metrics     ports.PostingMetrics
	clock       ports.Clock
	log         zerolog.Logger
}

func NewThreadPoster(
	connections *ConnectionManager,
	resolver *MediaResolver,
	history ports.PostHistoryRepository,
	metrics ports.PostingMetrics,
	clock ports.Clock,
	log zerolog.Logger,
) *ThreadPoster {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &ThreadPoster{
		connections: connections,
		resolver:    resolver,
		history:     history,
		metrics:     metrics,
		clock:       clock,
		log:         log.With().Str("component", "poster").Logger(),
	}
}

// PostThread submits segments as one reply chain. Posts the service accepted
// before a failure are not rolled back.
func (p *ThreadPoster) PostThread(ctx context.Context, segments []string, accountID domain.AccountID) (PostOutcome, error) {
	if len(segments) == 0 {
		return PostOutcome{}, domain.ErrEmptyInput
	}

	account, err := p.connections.ResolveTarget(ctx, accountID)
	if err != nil {
		return PostOutcome{}, err
	}

	session, err := p.connections.Ensure(ctx, account)
	if err != nil {
		return PostOutcome{}, err
	}

	outcome := PostOutcome{AccountID: account.ID}
	segments = withPostTag(segments, account.Settings.PostTag)
	payloads := make([]domain.PostPayload, 0, len(segments))
	for _, segment := range segments {
		resolved, err := p.resolver.Resolve(ctx, session, segment)
		if err != nil {
			return PostOutcome{}, fmt.Errorf("resolve media: %w", err)
		}
		outcome.Warnings = append(outcome.Warnings, resolved.Warnings...)
		payloads = append(payloads, domain.PostPayload{Text: resolved.Text, MediaIDs: resolved.MediaIDs})
	}

	started := p.clock.Now()
	results, err := session.CreateReplyChain(ctx, payloads)
	if err != nil {
		kind := classifyPostingError(err)
		p.metrics.RecordPostingFailure(account.ID, kind)
		postErr := &domain.PostingError{AccountID: account.ID, Kind: kind, Err: err}
		if markErr := p.connections.MarkFailed(ctx, account.ID, err); markErr != nil {
			return PostOutcome{}, errors.Join(postErr, markErr)
		}
		return PostOutcome{}, postErr
	}

	postedAt := p.clock.Now()
	p.metrics.RecordThread(account.ID, len(results), postedAt.Sub(started))
	outcome.Posts = results

	if p.history != nil {
		record := domain.PostRecord{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			PostedAt:  postedAt,
			Posts:     results,
		}
		if err := p.history.Append(ctx, record); err != nil {
			p.log.Warn().Err(err).Str("account_id", string(account.ID)).Msg("Failed to record post history")
		} else {
			outcome.RecordID = record.ID
		}
	}

	p.log.Info().Str("account_id", string(account.ID)).Int("posts", len(results)).Msg("Thread posted")
	return outcome, nil
}

func (p *ThreadPoster) PostSingle(ctx context.Context, text string, accountID domain.AccountID) (domain.PostResult, error) {
	outcome, err := p.PostThread(ctx, []string{text}, accountID)
	if err != nil {
		return domain.PostResult{}, err
	}
	if len(outcome.Posts) == 0 {
		return domain.PostResult{}, fmt.Errorf("post to account %s: service returned no result", outcome.AccountID)
	}

	return outcome.Posts[0], nil
}

// DeleteMany deletes posts newest first and reports whether every delete
// succeeded. Individual failures are logged and do not stop the rest.
func (p *ThreadPoster) DeleteMany(ctx context.Context, posts []domain.PostResult, accountID domain.AccountID) (bool, error) {
	account, err := p.connections.ResolveTarget(ctx, accountID)
	if err != nil {
		return false, err
	}

	session, err := p.connections.Ensure(ctx, account)
	if err != nil {
		return false, err
	}

	allDeleted := true
	for i := len(posts) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if err := session.DeletePost(ctx, posts[i].ID); err != nil {
			allDeleted = false
			p.log.Warn().Err(err).Str("post_id", posts[i].ID).Msg("Failed to delete post")
		}
	}

	return allDeleted, nil
}

// DeleteLast deletes the most recent thread recorded for the account and
// drops it from history once every post is gone.
func (p *ThreadPoster) DeleteLast(ctx context.Context, accountID domain.AccountID) (domain.PostRecord, bool, error) {
	if p.history == nil {
		return domain.PostRecord{}, false, &domain.ConfigurationError{Reason: "post history is not configured"}
	}

	account, err := p.connections.ResolveTarget(ctx, accountID)
	if err != nil {
		return domain.PostRecord{}, false, err
	}

	record, err := p.history.Last(ctx, account.ID)
	if err != nil {
		return domain.PostRecord{}, false, fmt.Errorf("load last thread: %w", err)
	}

	ok, err := p.DeleteMany(ctx, record.Posts, account.ID)
	if err != nil || !ok {
		return record, ok, err
	}

	if err := p.history.Remove(ctx, record.ID); err != nil {
		return record, true, fmt.Errorf("remove thread from history: %w", err)
	}

	return record, true, nil
}

func withPostTag(segments []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return segments
	}

	tagged := make([]string, len(segments))
	copy(tagged, segments)
	last := len(tagged) - 1
	tagged[last] = strings.TrimRight(tagged[last], " \t\n") + " " + tag

	return tagged
}

func classifyPostingError(err error) domain.PostingErrorKind {
	var classified ports.ClassifiedError
	if errors.As(err, &classified) {
		return classified.PostingErrorKind()
	}
	return domain.PostingRejected
}
