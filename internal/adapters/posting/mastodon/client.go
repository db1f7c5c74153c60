package mastodon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	gomastodon "github.com/mattn/go-mastodon"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	defaultUploadsPerMinute = 30
	defaultTimeout          = 30 * time.Second
	userAgent               = "xthreads-cli"
)

type Config struct {
	HTTPClient       *http.Client
	UploadsPerMinute int
	Now              func() time.Time
}

// Client opens sessions against Mastodon-compatible servers.
type Client struct {
	httpClient       *http.Client
	uploadsPerMinute int
	now              func() time.Time
	log              zerolog.Logger
}

var _ ports.PostingClient = (*Client)(nil)

func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if cfg.UploadsPerMinute <= 0 {
		cfg.UploadsPerMinute = defaultUploadsPerMinute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Client{
		httpClient:       cfg.HTTPClient,
		uploadsPerMinute: cfg.UploadsPerMinute,
		now:              cfg.Now,
		log:              log.With().Str("component", "mastodon").Logger(),
	}
}

func (c *Client) NewSession(ctx context.Context, account domain.Account, credential string) (ports.PostingSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	server := strings.TrimRight(strings.TrimSpace(account.Metadata.Server), "/")
	if server == "" {
		return nil, errors.New("no server configured for account")
	}

	token, err := accessToken(account.Auth.Method, credential, c.now())
	if err != nil {
		return nil, err
	}

	api := gomastodon.NewClient(&gomastodon.Config{
		Server:      server,
		AccessToken: token,
	})
	api.Client = *c.httpClient
	api.UserAgent = userAgent

	return &Session{
		api:     api,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.uploadsPerMinute)), 1),
		log:     c.log.With().Str("account_id", string(account.ID)).Str("server", server).Logger(),
	}, nil
}

// Session is one authenticated connection to a server.
type Session struct {
	api     *gomastodon.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

var _ ports.PostingSession = (*Session)(nil)

func (s *Session) VerifyIdentity(ctx context.Context) (ports.Identity, error) {
	account, err := s.api.GetAccountCurrentUser(ctx)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("verify credentials: %w", err)
	}

	return ports.Identity{
		ID:       string(account.ID),
		Username: account.Acct,
		URL:      account.URL,
	}, nil
}

func (s *Session) UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for upload slot: %w", err)
	}

	s.log.Debug().Int("bytes", len(data)).Str("mime_type", mimeType).Msg("Uploading media")
	attachment, err := s.api.UploadMediaFromReader(ctx, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	if attachment == nil {
		return "", nil
	}

	return string(attachment.ID), nil
}

// CreateReplyChain posts each payload as a reply to the previous one. On
// failure the returned results hold the posts already published.
func (s *Session) CreateReplyChain(ctx context.Context, payloads []domain.PostPayload) ([]domain.PostResult, error) {
	results := make([]domain.PostResult, 0, len(payloads))
	var replyTo gomastodon.ID

	for i, payload := range payloads {
		toot := &gomastodon.Toot{
			Status:      payload.Text,
			InReplyToID: replyTo,
		}
		for _, id := range payload.MediaIDs {
			toot.MediaIDs = append(toot.MediaIDs, gomastodon.ID(id))
		}

		status, err := s.api.PostStatus(ctx, toot)
		if err != nil {
			return results, &ChainError{
				Index:  i,
				Total:  len(payloads),
				Posted: results,
				Kind:   classifyError(err),
				Err:    err,
			}
		}

		results = append(results, domain.PostResult{
			ID:       string(status.ID),
			URL:      status.URL,
			Text:     payload.Text,
			MediaIDs: payload.MediaIDs,
		})
		replyTo = status.ID
		s.log.Debug().Str("status_id", string(status.ID)).Int("index", i).Msg("Status posted")
	}

	return results, nil
}

func (s *Session) DeletePost(ctx context.Context, id string) error {
	if err := s.api.DeleteStatus(ctx, gomastodon.ID(id)); err != nil {
		return fmt.Errorf("delete status %s: %w", id, err)
	}

	return nil
}
