package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	accountsPathKey    = "accounts.path"
	accountsConfigFile = "accounts.toml"
)

// Repository stores accounts and the active-account choice in one TOML file.
type Repository struct {
	accountsPath string
	mu           *sync.RWMutex
}

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	accountsPath, err := resolvePath(cfg.GetString(accountsPathKey), accountsConfigFile)
	if err != nil {
		return nil, err
	}

	return &Repository{accountsPath: accountsPath, mu: lockForPath(accountsPath)}, nil
}

func (r *Repository) Path() string {
	return r.accountsPath
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(account)
	updated := false
	for i := range file.Accounts {
		if file.Accounts[i].ID == encoded.ID {
			file.Accounts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Accounts = append(file.Accounts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeTOMLFile(r.accountsPath, file); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	for _, entry := range file.Accounts {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(entry))
	}

	return accounts, nil
}

// GetActive returns the persisted active account, or "" when none was chosen.
func (r *Repository) GetActive(ctx context.Context) (domain.AccountID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}

	return domain.AccountID(file.ActiveAccount), nil
}

func (r *Repository) SetActive(ctx context.Context, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	found := false
	for _, entry := range file.Accounts {
		if entry.ID == string(id) {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrAccountNotFound
	}

	file.ActiveAccount = string(id)
	if err := writeTOMLFile(r.accountsPath, file); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toSchema(account domain.Account) accountSchema {
	autoSplit := account.Settings.AutoSplit

	return accountSchema{
		ID:   string(account.ID),
		Name: account.Name,
		Metadata: metadataSchema{
			Server:    account.Metadata.Server,
			Handle:    account.Metadata.Handle,
			SecretRef: account.Metadata.SecretRef,
		},
		Auth: authSchema{
			Method:    string(account.Auth.Method),
			SecretRef: account.Auth.SecretRef,
		},
		Connection: connectionSchema{
			Status:       string(account.Connection.Status),
			LastTestedAt: formatTime(account.Connection.LastTestedAt),
			LastError:    account.Connection.LastError,
		},
		Settings: settingsSchema{
			AutoSplit: &autoSplit,
			PostTag:   account.Settings.PostTag,
		},
	}
}

func fromSchema(account accountSchema) domain.Account {
	metadataSecretRef := account.Metadata.SecretRef
	if metadataSecretRef == "" {
		metadataSecretRef = account.Auth.SecretRef
	}

	authSecretRef := account.Auth.SecretRef
	if authSecretRef == "" {
		authSecretRef = account.Metadata.SecretRef
	}

	status := domain.ConnectionStatus(account.Connection.Status)
	if !status.Valid() {
		status = domain.ConnectionUntested
	}

	settings := domain.DefaultPostingSettings()
	if account.Settings.AutoSplit != nil {
		settings.AutoSplit = *account.Settings.AutoSplit
	}
	settings.PostTag = account.Settings.PostTag

	return domain.Account{
		ID:   domain.AccountID(account.ID),
		Name: account.Name,
		Metadata: domain.AccountMetadata{
			Server:    account.Metadata.Server,
			Handle:    account.Metadata.Handle,
			SecretRef: metadataSecretRef,
		},
		Auth: domain.Auth{
			Method:    domain.AuthMethod(account.Auth.Method),
			SecretRef: authSecretRef,
		},
		Connection: domain.ConnectionState{
			Status:       status,
			LastTestedAt: parseTime(account.Connection.LastTestedAt),
			LastError:    account.Connection.LastError,
		},
		Settings: settings,
	}
}
