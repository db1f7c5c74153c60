package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/xthreads-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/xthreads-cli/internal/adapters/secrets/pass"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store tries the primary backend and falls back to the secondary one on any
// error other than cancellation.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	log      zerolog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, log zerolog.Logger) *Store {
	store, err := NewStoreChecked(primary, fallback, log)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore, log zerolog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{
		primary:  primary,
		fallback: fallback,
		log:      log.With().Str("component", "secrets").Logger(),
	}, nil
}

func NewPassFirstWithFileFallback(fs afero.Fs, fileRoot string, log zerolog.Logger) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fs, fileRoot), log)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}
	s.logFallback("put", key, err)

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}
	s.logFallback("get", key, err)

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}
	s.logFallback("delete", key, err)

	fallbackErr := s.fallback.Delete(ctx, key)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
}

func (s *Store) logFallback(op string, key string, err error) {
	s.log.Debug().Err(err).Str("op", op).Str("key", key).Msg("Primary secret store failed, using fallback")
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
