package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/xthreads-cli/internal/adapters/render/status"
	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var accountID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show connection status and settings for accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := loadStatuses(cmd, app.service, accountID)
			if err != nil {
				return err
			}

			return writeStatusesOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID (all accounts when empty)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print statuses as JSON")

	return cmd
}

func writeStatusesOutput(cmd *cobra.Command, app *app, statuses []application.Status, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{
		Now:        app.now(),
		StaleAfter: app.staleAfter,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func loadStatuses(cmd *cobra.Command, svc *application.Service, accountID string) ([]application.Status, error) {
	if accountID == "" {
		return svc.GetStatusAll(cmd.Context())
	}

	status, err := svc.GetStatus(cmd.Context(), domain.AccountID(accountID))
	if err != nil {
		return nil, err
	}

	return []application.Status{status}, nil
}
