package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
)

// resolveAccountID returns raw as an id, or the lowest free numeric id when
// raw is empty or "0". Ids end up in secret-store keys, so path separators
// and whitespace are rejected.
func resolveAccountID(ctx context.Context, app *app, raw string) (domain.AccountID, error) {
	requested := strings.TrimSpace(raw)
	if requested == "" || requested == "0" {
		return nextFreeAccountID(ctx, app)
	}

	if n, err := strconv.Atoi(requested); err == nil && n <= 0 {
		return "", fmt.Errorf("account must be a positive number, a name, or empty/0 for auto assignment")
	}
	if strings.ContainsAny(requested, "/\\ \t") {
		return "", fmt.Errorf("account id %q must not contain slashes or spaces", requested)
	}

	return domain.AccountID(requested), nil
}

func nextFreeAccountID(ctx context.Context, app *app) (domain.AccountID, error) {
	statuses, err := app.service.GetStatusAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list accounts for auto assignment: %w", err)
	}

	taken := make(map[int]bool, len(statuses))
	for _, status := range statuses {
		if n, err := strconv.Atoi(string(status.Account.ID)); err == nil && n > 0 {
			taken[n] = true
		}
	}

	next := 1
	for taken[next] {
		next++
	}

	return domain.AccountID(strconv.Itoa(next)), nil
}
