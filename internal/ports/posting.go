package ports

import (
	"context"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type Identity struct {
	ID       string
	Username string
	URL      string
}

type PostingClient interface {
	NewSession(ctx context.Context, account domain.Account, credential string) (PostingSession, error)
}

type PostingSession interface {
	VerifyIdentity(ctx context.Context) (Identity, error)
	// UploadMedia returns an empty id when the service accepted the request
	// without producing an attachment.
	UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error)
	// CreateReplyChain posts payloads in order, each replying to the previous one.
	CreateReplyChain(ctx context.Context, payloads []domain.PostPayload) ([]domain.PostResult, error)
	DeletePost(ctx context.Context, id string) error
}

// ClassifiedError is implemented by transport errors that know why the
// posting service rejected a request.
type ClassifiedError interface {
	error
	PostingErrorKind() domain.PostingErrorKind
}
