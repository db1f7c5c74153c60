package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type connection struct {
	account     domain.Account
	session     ports.PostingSession
	identity    ports.Identity
	isConnected bool
	handle      string
}

// ConnectionManager owns one connection record per account. It does no
// locking: callers sharing a manager across goroutines must serialize.
type ConnectionManager struct {
	repo        ports.AccountRepository
	secrets     ports.SecretStore
	client      ports.PostingClient
	metrics     ports.PostingMetrics
	clock       ports.Clock
	log         zerolog.Logger
	connections map[domain.AccountID]*connection
	active      domain.AccountID
}

func NewConnectionManager(
	repo ports.AccountRepository,
	secrets ports.SecretStore,
	client ports.PostingClient,
	metrics ports.PostingMetrics,
	clock ports.Clock,
	log zerolog.Logger,
) *ConnectionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &ConnectionManager{
		repo:        repo,
		secrets:     secrets,
		client:      client,
		metrics:     metrics,
		clock:       clock,
		log:         log.With().Str("component", "connections").Logger(),
		connections: map[domain.AccountID]*connection{},
	}
}

// Connect opens a session for account and verifies it. The account's
// connection state is persisted either way, and a *domain.ConnectionError
// is returned when the session could not be verified.
func (m *ConnectionManager) Connect(ctx context.Context, account domain.Account) error {
	conn := &connection{account: account, handle: uuid.NewString()}
	m.connections[account.ID] = conn

	log := m.log.With().Str("account_id", string(account.ID)).Str("handle", conn.handle).Logger()
	log.Debug().Msg("Verifying account session")

	session, err := m.openSession(ctx, account)
	if err == nil {
		conn.session = session
		conn.identity, err = session.VerifyIdentity(ctx)
	}
	if err != nil {
		return m.fail(ctx, conn, err)
	}

	conn.isConnected = true
	conn.account.Connection = domain.ConnectionState{
		Status:       domain.ConnectionConnected,
		LastTestedAt: m.clock.Now(),
	}
	if conn.identity.Username != "" {
		conn.account.Metadata.Handle = conn.identity.Username
	}
	m.metrics.RecordConnection(account.ID, true)

	if err := m.repo.Save(ctx, conn.account); err != nil {
		return fmt.Errorf("save connection status: %w", err)
	}

	log.Info().Str("username", conn.identity.Username).Msg("Account connected")
	return nil
}

func (m *ConnectionManager) ConnectByID(ctx context.Context, id domain.AccountID) error {
	account, err := m.lookup(ctx, id)
	if err != nil {
		return err
	}

	return m.Connect(ctx, account)
}

// ConnectAll verifies every configured account and reports each outcome.
func (m *ConnectionManager) ConnectAll(ctx context.Context) ([]ConnectionReport, error) {
	accounts, err := m.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, &domain.ConfigurationError{Reason: "no accounts configured"}
	}

	reports := make([]ConnectionReport, 0, len(accounts))
	for _, account := range accounts {
		err := m.Connect(ctx, account)
		report := ConnectionReport{AccountID: account.ID, Err: err}
		if conn, ok := m.connections[account.ID]; ok {
			report.Identity = conn.identity
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// SwitchActive changes the default account for unscoped calls without
// touching any connection.
func (m *ConnectionManager) SwitchActive(ctx context.Context, id domain.AccountID) error {
	if _, err := m.lookup(ctx, id); err != nil {
		return err
	}

	if err := m.repo.SetActive(ctx, id); err != nil {
		return fmt.Errorf("save active account: %w", err)
	}
	m.active = id

	return nil
}

// ResolveTarget picks the account for a call: the explicit id, else the
// active account, else the first configured one.
func (m *ConnectionManager) ResolveTarget(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if id != "" {
		return m.lookup(ctx, id)
	}

	active := m.active
	if active == "" {
		stored, err := m.repo.GetActive(ctx)
		if err != nil {
			return domain.Account{}, fmt.Errorf("get active account: %w", err)
		}
		active = stored
	}
	if active != "" {
		account, err := m.repo.GetByID(ctx, active)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, fmt.Errorf("get account by id: %w", err)
		}
		m.log.Warn().Str("account_id", string(active)).Msg("Active account no longer exists")
	}

	accounts, err := m.repo.List(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return domain.Account{}, &domain.ConfigurationError{Reason: "no accounts configured"}
	}

	return accounts[0], nil
}

// Ensure returns a verified session for account, connecting once when the
// cached record is missing or marked disconnected.
func (m *ConnectionManager) Ensure(ctx context.Context, account domain.Account) (ports.PostingSession, error) {
	if conn, ok := m.connections[account.ID]; ok && conn.isConnected {
		return conn.session, nil
	}

	if err := m.Connect(ctx, account); err != nil {
		return nil, err
	}

	return m.connections[account.ID].session, nil
}

func (m *ConnectionManager) Session(id domain.AccountID) (ports.PostingSession, bool) {
	conn, ok := m.connections[id]
	if !ok {
		return nil, false
	}
	return conn.session, conn.isConnected
}

func (m *ConnectionManager) IsConnected(id domain.AccountID) bool {
	_, connected := m.Session(id)
	return connected
}

// MarkFailed invalidates the cached connection after a network failure and
// persists the error on the account.
func (m *ConnectionManager) MarkFailed(ctx context.Context, id domain.AccountID, cause error) error {
	conn, ok := m.connections[id]
	if !ok {
		account, err := m.lookup(ctx, id)
		if err != nil {
			return err
		}
		conn = &connection{account: account, handle: uuid.NewString()}
		m.connections[id] = conn
	}

	conn.isConnected = false
	conn.account.Connection = domain.ConnectionState{
		Status:       domain.ConnectionFailed,
		LastTestedAt: m.clock.Now(),
		LastError:    humanError(cause),
	}

	if err := m.repo.Save(ctx, conn.account); err != nil {
		return fmt.Errorf("save connection status: %w", err)
	}

	return nil
}

func (m *ConnectionManager) LastError(id domain.AccountID) string {
	if conn, ok := m.connections[id]; ok {
		return conn.account.Connection.LastError
	}
	return ""
}

func (m *ConnectionManager) openSession(ctx context.Context, account domain.Account) (ports.PostingSession, error) {
	if account.Auth.SecretRef == "" {
		return nil, errors.New("no credentials configured")
	}

	credential, err := m.secrets.Get(ctx, account.Auth.SecretRef)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	session, err := m.client.NewSession(ctx, account, credential)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return session, nil
}

func (m *ConnectionManager) fail(ctx context.Context, conn *connection, cause error) error {
	reason := humanError(cause)

	conn.isConnected = false
	conn.account.Connection = domain.ConnectionState{
		Status:       domain.ConnectionFailed,
		LastTestedAt: m.clock.Now(),
		LastError:    reason,
	}
	m.metrics.RecordConnection(conn.account.ID, false)

	m.log.Warn().
		Err(cause).
		Str("account_id", string(conn.account.ID)).
		Str("handle", conn.handle).
		Msg("Account verification failed")

	connErr := &domain.ConnectionError{AccountID: conn.account.ID, Reason: reason}
	if err := m.repo.Save(ctx, conn.account); err != nil {
		return errors.Join(connErr, fmt.Errorf("save connection status: %w", err))
	}

	return connErr
}

func (m *ConnectionManager) lookup(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, &domain.ConfigurationError{Reason: fmt.Sprintf("account %s", id), Err: err}
		}
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

type errorBody struct {
	Detail           string          `json:"detail"`
	Error            json.RawMessage `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Message          string          `json:"message"`
	Errors           []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// humanError prefers a message carried in a JSON response body embedded in
// err, falling back to the error text.
func humanError(err error) string {
	if err == nil {
		return ""
	}

	text := err.Error()
	start := strings.Index(text, "{")
	if start < 0 {
		return text
	}

	var body errorBody
	if json.NewDecoder(strings.NewReader(text[start:])).Decode(&body) != nil {
		return text
	}

	var nested string
	if len(body.Error) > 0 {
		if json.Unmarshal(body.Error, &nested) != nil {
			var inner struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(body.Error, &inner) == nil {
				nested = inner.Message
			}
		}
	}

	for _, candidate := range []string{body.Detail, body.ErrorDescription, nested, body.Message} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	for _, e := range body.Errors {
		if strings.TrimSpace(e.Message) != "" {
			return e.Message
		}
	}

	return text
}
