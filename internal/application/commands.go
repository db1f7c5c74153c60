package application

import (
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
)

type SetAuthCommand struct {
	ID          domain.AccountID
	Method      domain.AuthMethod
	Server      string
	SecretKey   string
	SecretValue string
}

type SettingsUpdate struct {
	AutoSplit *bool
	PostTag   *string
}

func (u SettingsUpdate) Empty() bool {
	return u.AutoSplit == nil && u.PostTag == nil
}

type ComposeRequest struct {
	Text      string
	AccountID domain.AccountID
	PostAt    *time.Time
}
