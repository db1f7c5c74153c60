package application

import (
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
)

type Status struct {
	Account domain.Account
	Active  bool
}

type Draft struct {
	Composition domain.Composition
	Strategy    string
}

type ResolvedSegment struct {
	Text     string
	MediaIDs []string
	Warnings []domain.UploadWarning
}

type PostOutcome struct {
	AccountID domain.AccountID
	RecordID  string
	Posts     []domain.PostResult
	Warnings  []domain.UploadWarning
}

type SubmitResult struct {
	Posted     *PostOutcome
	ScheduleID string
}

type ConnectionReport struct {
	AccountID domain.AccountID
	Identity  ports.Identity
	Err       error
}
