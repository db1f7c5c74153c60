package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/bnema/xthreads-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type kindError struct {
	kind domain.PostingErrorKind
}

func (e kindError) Error() string                             { return "service said no" }
func (e kindError) PostingErrorKind() domain.PostingErrorKind { return e.kind }

var _ ports.ClassifiedError = kindError{}

func TestThreadPosterPostThread(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	account.Settings.PostTag = "#golang"
	f.expectLookup(account)
	f.expectConnect(account)

	f.files.EXPECT().ResolveName(mockAnyContext(), "cat.png").Return("cat.png", nil)
	f.files.EXPECT().ReadBinary(mockAnyContext(), "cat.png").Return([]byte("png"), nil)
	f.session.EXPECT().UploadMedia(mockAnyContext(), []byte("png"), "image/png").Return("m1", nil)

	results := []domain.PostResult{
		{ID: "100", URL: "https://mastodon.example/@user/100", Text: "first"},
		{ID: "101", URL: "https://mastodon.example/@user/101", Text: "second #golang"},
	}
	f.session.EXPECT().CreateReplyChain(mockAnyContext(), []domain.PostPayload{
		{Text: "first", MediaIDs: []string{"m1"}},
		{Text: "second #golang"},
	}).Return(results, nil)
	f.history.EXPECT().Append(mockAnyContext(), mock.MatchedBy(func(record domain.PostRecord) bool {
		return record.ID != "" &&
			record.AccountID == "acc-1" &&
			record.PostedAt.Equal(fixedNow) &&
			len(record.Posts) == 2
	})).Return(nil)

	outcome, err := f.poster.PostThread(context.Background(), []string{"first ![[cat.png]]", "second"}, "acc-1")
	require.NoError(t, err)

	assert.Equal(t, domain.AccountID("acc-1"), outcome.AccountID)
	assert.Equal(t, results, outcome.Posts)
	assert.NotEmpty(t, outcome.RecordID)
	assert.Empty(t, outcome.Warnings)
}

func TestThreadPosterCollectsUploadWarnings(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	f.files.EXPECT().ResolveName(mockAnyContext(), "missing.png").Return("", domain.ErrFileNotFound)
	f.session.EXPECT().CreateReplyChain(mockAnyContext(), []domain.PostPayload{{Text: "text"}}).
		Return([]domain.PostResult{{ID: "1"}}, nil)
	f.history.EXPECT().Append(mockAnyContext(), mock.Anything).Return(nil)

	outcome, err := f.poster.PostThread(context.Background(), []string{"text ![[missing.png]]"}, "acc-1")
	require.NoError(t, err)
	require.Len(t, outcome.Warnings, 1)
	assert.Equal(t, "![[missing.png]]", outcome.Warnings[0].Reference)
}

func TestThreadPosterVerificationFailureStopsBeforePosting(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)

	f.secrets.EXPECT().Get(mockAnyContext(), account.Auth.SecretRef).Return("token", nil)
	f.client.EXPECT().NewSession(mockAnyContext(), account, "token").Return(f.session, nil)
	f.session.EXPECT().VerifyIdentity(mockAnyContext()).Return(ports.Identity{}, errors.New("401 Unauthorized"))
	f.repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)

	_, err := f.poster.PostThread(context.Background(), []string{"hello ![[cat.png]]"}, "acc-1")

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "401 Unauthorized", connErr.Reason)
	f.session.AssertNotCalled(t, "CreateReplyChain", mock.Anything, mock.Anything)
	f.session.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything, mock.Anything)
	f.files.AssertNotCalled(t, "ResolveName", mock.Anything, mock.Anything)
}

func TestThreadPosterChainFailureMarksAccountFailed(t *testing.T) {
	tests := []struct {
		name     string
		chainErr error
		wantKind domain.PostingErrorKind
	}{
		{name: "classified", chainErr: kindError{kind: domain.PostingRateLimited}, wantKind: domain.PostingRateLimited},
		{name: "unclassified", chainErr: errors.New("boom"), wantKind: domain.PostingRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostingFixture(t)
			account := testAccount("acc-1")
			f.expectLookup(account)
			f.expectConnect(account)

			f.session.EXPECT().CreateReplyChain(mockAnyContext(), mock.Anything).Return(nil, tt.chainErr)
			f.repo.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(saved domain.Account) bool {
				return saved.Connection.Status == domain.ConnectionFailed
			})).Return(nil)

			_, err := f.poster.PostThread(context.Background(), []string{"one", "two"}, "acc-1")
			require.ErrorIs(t, err, domain.ErrPosting)
			require.ErrorIs(t, err, tt.chainErr)

			var postErr *domain.PostingError
			require.ErrorAs(t, err, &postErr)
			assert.Equal(t, tt.wantKind, postErr.Kind)
			assert.Equal(t, domain.AccountID("acc-1"), postErr.AccountID)
			assert.False(t, f.connections.IsConnected("acc-1"))
			f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestThreadPosterEmptyInput(t *testing.T) {
	f := newPostingFixture(t)

	_, err := f.poster.PostThread(context.Background(), nil, "acc-1")
	require.ErrorIs(t, err, domain.ErrEmptyInput)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestThreadPosterHistoryFailureDoesNotFailPost(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	f.session.EXPECT().CreateReplyChain(mockAnyContext(), mock.Anything).Return([]domain.PostResult{{ID: "1"}}, nil)
	f.history.EXPECT().Append(mockAnyContext(), mock.Anything).Return(errors.New("disk full"))

	outcome, err := f.poster.PostThread(context.Background(), []string{"one"}, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, outcome.RecordID)
	assert.Len(t, outcome.Posts, 1)
}

func TestThreadPosterRecordsMetrics(t *testing.T) {
	f := newPostingFixture(t)
	metrics := mocks.NewMockPostingMetrics(t)
	poster := NewThreadPoster(f.connections, f.resolver, nil, metrics, f.clock, zerolog.Nop())

	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)
	f.session.EXPECT().CreateReplyChain(mockAnyContext(), mock.Anything).
		Return([]domain.PostResult{{ID: "1"}, {ID: "2"}}, nil)
	metrics.EXPECT().RecordThread(domain.AccountID("acc-1"), 2, time.Duration(0)).Once()

	_, err := poster.PostThread(context.Background(), []string{"one", "two"}, "acc-1")
	require.NoError(t, err)
}

func TestThreadPosterPostSingle(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	f.session.EXPECT().CreateReplyChain(mockAnyContext(), []domain.PostPayload{{Text: "just one"}}).
		Return([]domain.PostResult{{ID: "7", Text: "just one"}}, nil)
	f.history.EXPECT().Append(mockAnyContext(), mock.Anything).Return(nil)

	post, err := f.poster.PostSingle(context.Background(), "just one", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "7", post.ID)
}

func TestThreadPosterDeleteManyNewestFirst(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	var order []string
	f.session.EXPECT().DeletePost(mockAnyContext(), mock.Anything).
		Run(func(_ context.Context, id string) { order = append(order, id) }).
		Return(nil)

	posts := []domain.PostResult{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	ok, err := f.poster.DeleteMany(context.Background(), posts, "acc-1")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, []string{"3", "2", "1"}, order)
}

func TestThreadPosterDeleteManyContinuesAfterFailure(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	f.session.EXPECT().DeletePost(mockAnyContext(), "2").Return(errors.New("404 Not Found"))
	f.session.EXPECT().DeletePost(mockAnyContext(), "1").Return(nil)

	ok, err := f.poster.DeleteMany(context.Background(), []domain.PostResult{{ID: "1"}, {ID: "2"}}, "acc-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestThreadPosterDeleteLast(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	record := domain.PostRecord{ID: "rec-1", AccountID: "acc-1", Posts: []domain.PostResult{{ID: "1"}, {ID: "2"}}}
	f.history.EXPECT().Last(mockAnyContext(), domain.AccountID("acc-1")).Return(record, nil)
	f.session.EXPECT().DeletePost(mockAnyContext(), mock.Anything).Return(nil).Times(2)
	f.history.EXPECT().Remove(mockAnyContext(), "rec-1").Return(nil)

	deleted, ok, err := f.poster.DeleteLast(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rec-1", deleted.ID)
}

func TestThreadPosterDeleteLastKeepsHistoryOnPartialFailure(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.expectConnect(account)

	record := domain.PostRecord{ID: "rec-1", AccountID: "acc-1", Posts: []domain.PostResult{{ID: "1"}}}
	f.history.EXPECT().Last(mockAnyContext(), domain.AccountID("acc-1")).Return(record, nil)
	f.session.EXPECT().DeletePost(mockAnyContext(), "1").Return(errors.New("500"))

	_, ok, err := f.poster.DeleteLast(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.False(t, ok)
	f.history.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestThreadPosterDeleteLastWithoutHistory(t *testing.T) {
	f := newPostingFixture(t)
	account := testAccount("acc-1")
	f.expectLookup(account)
	f.history.EXPECT().Last(mockAnyContext(), domain.AccountID("acc-1")).Return(domain.PostRecord{}, domain.ErrHistoryNotFound)

	_, _, err := f.poster.DeleteLast(context.Background(), "acc-1")
	require.ErrorIs(t, err, domain.ErrHistoryNotFound)
	f.session.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}

func TestWithPostTag(t *testing.T) {
	segments := []string{"one", "two\n"}

	assert.Equal(t, []string{"one", "two #tag"}, withPostTag(segments, " #tag "))
	assert.Equal(t, []string{"one", "two\n"}, segments)
	assert.Equal(t, segments, withPostTag(segments, "   "))
}
