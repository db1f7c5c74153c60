package application

import (
	"testing"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/bnema/xthreads-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type postingFixture struct {
	repo        *mocks.MockAccountRepository
	secrets     *mocks.MockSecretStore
	client      *mocks.MockPostingClient
	session     *mocks.MockPostingSession
	files       *mocks.MockFileStore
	history     *mocks.MockPostHistoryRepository
	clock       *mocks.MockClock
	connections *ConnectionManager
	resolver    *MediaResolver
	poster      *ThreadPoster
}

func newPostingFixture(t *testing.T) *postingFixture {
	t.Helper()

	f := &postingFixture{
		repo:    mocks.NewMockAccountRepository(t),
		secrets: mocks.NewMockSecretStore(t),
		client:  mocks.NewMockPostingClient(t),
		session: mocks.NewMockPostingSession(t),
		files:   mocks.NewMockFileStore(t),
		history: mocks.NewMockPostHistoryRepository(t),
		clock:   mocks.NewMockClock(t),
	}
	f.clock.EXPECT().Now().Return(fixedNow).Maybe()

	log := zerolog.Nop()
	f.connections = NewConnectionManager(f.repo, f.secrets, f.client, nil, f.clock, log)
	f.resolver = NewMediaResolver(f.files, nil, log)
	f.poster = NewThreadPoster(f.connections, f.resolver, f.history, nil, f.clock, log)

	return f
}

// expectLookup makes account resolvable by id.
func (f *postingFixture) expectLookup(account domain.Account) {
	f.repo.EXPECT().GetByID(mockAnyContext(), account.ID).Return(account, nil)
}

// expectConnect wires one successful session verification for account.
func (f *postingFixture) expectConnect(account domain.Account) {
	f.secrets.EXPECT().Get(mockAnyContext(), account.Auth.SecretRef).Return("token", nil).Once()
	f.client.EXPECT().NewSession(mockAnyContext(), account, "token").Return(f.session, nil).Once()
	f.session.EXPECT().VerifyIdentity(mockAnyContext()).Return(identityFor(account), nil).Once()
	f.repo.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(saved domain.Account) bool {
		return saved.ID == account.ID && saved.Connection.Status == domain.ConnectionConnected
	})).Return(nil).Once()
}

func identityFor(account domain.Account) ports.Identity {
	return ports.Identity{ID: "109" + string(account.ID), Username: "user-" + string(account.ID)}
}

func testAccount(id domain.AccountID) domain.Account {
	ref := "xthreads/" + string(id) + "/access_token"
	return domain.Account{
		ID:       id,
		Name:     "Account " + string(id),
		Metadata: domain.AccountMetadata{Server: "https://mastodon.example", SecretRef: ref},
		Auth:     domain.Auth{Method: domain.AuthMethodAccessToken, SecretRef: ref},
		Settings: domain.DefaultPostingSettings(),
	}
}
