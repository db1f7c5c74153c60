package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
)

var ErrEmptySettingsUpdate = errors.New("no settings to update")

// Service manages account records and their credentials. Connection state is
// left to ConnectionManager.
type Service struct {
	repo  ports.AccountRepository
	store ports.SecretStore
}

func NewService(repo ports.AccountRepository, store ports.SecretStore) *Service {
	return &Service{
		repo:  repo,
		store: store,
	}
}

func (s *Service) SetAuth(ctx context.Context, cmd SetAuthCommand) error {
	account, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("get account by id: %w", err)
		}
		account = domain.Account{
			ID:         cmd.ID,
			Name:       fmt.Sprintf("Account %s", cmd.ID),
			Connection: domain.ConnectionState{Status: domain.ConnectionUntested},
			Settings:   domain.DefaultPostingSettings(),
		}
	}
	originalAccount := account

	previousSecretRefs := uniqueSecretRefs(account.Metadata.SecretRef, account.Auth.SecretRef)

	if err := s.store.Put(ctx, cmd.SecretKey, cmd.SecretValue); err != nil {
		return fmt.Errorf("store auth secret: %w", err)
	}

	account.Auth = domain.Auth{
		Method:    cmd.Method,
		SecretRef: cmd.SecretKey,
	}
	account.Metadata.SecretRef = cmd.SecretKey
	if server := strings.TrimSpace(cmd.Server); server != "" {
		account.Metadata.Server = server
	}

	if err := s.repo.Save(ctx, account); err != nil {
		if rollbackErr := s.store.Delete(ctx, cmd.SecretKey); rollbackErr != nil {
			return fmt.Errorf("save account auth and rollback stored secret: %w", errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("save account auth: %w", err)
	}

	for _, previousSecretRef := range previousSecretRefs {
		if previousSecretRef == cmd.SecretKey {
			continue
		}
		if err := s.store.Delete(ctx, previousSecretRef); err != nil {
			remaining := remainingSecretRefs(previousSecretRefs, previousSecretRef)
			restoreAccount := originalAccount
			applySecretRefs(&restoreAccount, remaining)
			if len(remaining) == 0 {
				restoreAccount.Auth.Method = ""
			}

			var rollbackErr error
			if restoreErr := s.repo.Save(ctx, restoreAccount); restoreErr != nil {
				rollbackErr = errors.Join(rollbackErr, restoreErr)
			}
			if newSecretDeleteErr := s.store.Delete(ctx, cmd.SecretKey); newSecretDeleteErr != nil {
				rollbackErr = errors.Join(rollbackErr, newSecretDeleteErr)
			}
			if rollbackErr != nil {
				return fmt.Errorf("delete previous auth secret and rollback auth update: %w", errors.Join(err, rollbackErr))
			}
			return fmt.Errorf("delete previous auth secret: %w", err)
		}
	}

	return nil
}

func (s *Service) RemoveAuth(ctx context.Context, id domain.AccountID) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}
	originalAccount := account

	secretRefs := uniqueSecretRefs(account.Metadata.SecretRef, account.Auth.SecretRef)

	account.Auth = domain.Auth{}
	account.Metadata.SecretRef = ""

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account auth: %w", err)
	}

	for _, secretRef := range secretRefs {
		if err := s.store.Delete(ctx, secretRef); err != nil {
			remaining := remainingSecretRefs(secretRefs, secretRef)
			restoreAccount := account
			applySecretRefs(&restoreAccount, remaining)
			if len(remaining) > 0 {
				restoreAccount.Auth.Method = originalAccount.Auth.Method
			}
			if restoreErr := s.repo.Save(ctx, restoreAccount); restoreErr != nil {
				return fmt.Errorf("delete auth secret and restore remaining refs: %w", errors.Join(err, restoreErr))
			}
			return fmt.Errorf("delete auth secret: %w", err)
		}
	}

	return nil
}

func uniqueSecretRefs(secretRefs ...string) []string {
	result := make([]string, 0, len(secretRefs))
	seen := make(map[string]struct{}, len(secretRefs))

	for _, secretRef := range secretRefs {
		if secretRef == "" {
			continue
		}
		if _, ok := seen[secretRef]; ok {
			continue
		}

		seen[secretRef] = struct{}{}
		result = append(result, secretRef)
	}

	return result
}

func remainingSecretRefs(secretRefs []string, failed string) []string {
	for i, secretRef := range secretRefs {
		if secretRef == failed {
			return secretRefs[i:]
		}
	}
	return nil
}

func applySecretRefs(account *domain.Account, secretRefs []string) {
	account.Metadata.SecretRef = ""
	account.Auth.SecretRef = ""

	if len(secretRefs) > 0 {
		account.Metadata.SecretRef = secretRefs[0]
		account.Auth.SecretRef = secretRefs[0]
	}
	if len(secretRefs) > 1 {
		account.Auth.SecretRef = secretRefs[1]
	}
}

func (s *Service) SetAccountName(ctx context.Context, id domain.AccountID, name string) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.Name = name

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account name: %w", err)
	}

	return nil
}

func (s *Service) UpdateSettings(ctx context.Context, id domain.AccountID, update SettingsUpdate) (domain.PostingSettings, error) {
	if update.Empty() {
		return domain.PostingSettings{}, ErrEmptySettingsUpdate
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.PostingSettings{}, fmt.Errorf("get account by id: %w", err)
	}

	if update.AutoSplit != nil {
		account.Settings.AutoSplit = *update.AutoSplit
	}
	if update.PostTag != nil {
		account.Settings.PostTag = strings.TrimSpace(*update.PostTag)
	}

	if err := s.repo.Save(ctx, account); err != nil {
		return domain.PostingSettings{}, fmt.Errorf("save account settings: %w", err)
	}

	return account.Settings, nil
}

func (s *Service) GetStatus(ctx context.Context, id domain.AccountID) (Status, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Status{}, fmt.Errorf("get account by id: %w", err)
	}

	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("get active account: %w", err)
	}

	return Status{Account: account, Active: account.ID == active}, nil
}

func (s *Service) GetStatusAll(ctx context.Context) ([]Status, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active account: %w", err)
	}

	statuses := make([]Status, 0, len(accounts))
	for _, account := range accounts {
		statuses = append(statuses, Status{Account: account, Active: account.ID == active})
	}

	return statuses, nil
}
