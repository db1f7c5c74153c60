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
	historyPathKey     = "history.path"
	historyConfigFile  = "posts.toml"
	historyLimitKey    = "history.limit"
	defaultHistorySize = 200
)

// HistoryRepository keeps the most recent posted threads so they can be
// deleted later. Older entries are dropped once the limit is reached.
type HistoryRepository struct {
	path  string
	limit int
	mu    *sync.RWMutex
}

var _ ports.PostHistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(cfg *viper.Viper) (*HistoryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := resolvePath(cfg.GetString(historyPathKey), historyConfigFile)
	if err != nil {
		return nil, err
	}

	limit := cfg.GetInt(historyLimitKey)
	if limit <= 0 {
		limit = defaultHistorySize
	}

	return &HistoryRepository{path: path, limit: limit, mu: lockForPath(path)}, nil
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.PostRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Threads = append(file.Threads, toThreadSchema(record))
	if overflow := len(file.Threads) - r.limit; overflow > 0 {
		file.Threads = file.Threads[overflow:]
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	return nil
}

// Last returns the most recently appended thread for accountID.
func (r *HistoryRepository) Last(ctx context.Context, accountID domain.AccountID) (domain.PostRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.PostRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.PostRecord{}, err
	}

	for i := len(file.Threads) - 1; i >= 0; i-- {
		if file.Threads[i].AccountID == string(accountID) {
			return fromThreadSchema(file.Threads[i]), nil
		}
	}

	return domain.PostRecord{}, domain.ErrHistoryNotFound
}

func (r *HistoryRepository) Remove(ctx context.Context, recordID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Threads[:0]
	removed := false
	for _, thread := range file.Threads {
		if thread.ID == recordID {
			removed = true
			continue
		}
		kept = append(kept, thread)
	}
	if !removed {
		return domain.ErrHistoryNotFound
	}
	file.Threads = kept

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	return nil
}

func (r *HistoryRepository) readSchema() (historyFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := historyFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return historyFileSchema{}, fmt.Errorf("read history file: %w", err)
	}

	var file historyFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return historyFileSchema{}, fmt.Errorf("decode history file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return historyFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toThreadSchema(record domain.PostRecord) threadSchema {
	posts := make([]postSchema, 0, len(record.Posts))
	for _, post := range record.Posts {
		posts = append(posts, postSchema{
			ID:       post.ID,
			URL:      post.URL,
			Text:     post.Text,
			MediaIDs: post.MediaIDs,
		})
	}

	return threadSchema{
		ID:        record.ID,
		AccountID: string(record.AccountID),
		PostedAt:  formatTime(record.PostedAt),
		Posts:     posts,
	}
}

func fromThreadSchema(schema threadSchema) domain.PostRecord {
	posts := make([]domain.PostResult, 0, len(schema.Posts))
	for _, post := range schema.Posts {
		posts = append(posts, domain.PostResult{
			ID:       post.ID,
			URL:      post.URL,
			Text:     post.Text,
			MediaIDs: post.MediaIDs,
		})
	}

	return domain.PostRecord{
		ID:        schema.ID,
		AccountID: domain.AccountID(schema.AccountID),
		PostedAt:  parseTime(schema.PostedAt),
		Posts:     posts,
	}
}
