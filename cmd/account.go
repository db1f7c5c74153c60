package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage posting accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountStatusCmd(app),
		newAccountConnectCmd(app),
		newAccountSwitchCmd(app),
		newAccountSettingsCmd(app),
		newAccountRenameCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.service.GetStatusAll(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, status := range statuses {
				marker := " "
				if status.Active {
					marker = "*"
				}
				_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\n", marker, status.Account.ID, status.Account.Name, connectionLabel(status.Account.Connection.Status))
			}

			return w.Flush()
		},
	}
}

func newAccountStatusCmd(app *app) *cobra.Command {
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

func newAccountConnectCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Verify account credentials against the server",
		Long:  "Connect opens a session for one account, or for every configured account when --account is empty, and records the outcome in the accounts file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if accountID != "" {
				id := domain.AccountID(accountID)
				if err := app.connections.ConnectByID(cmd.Context(), id); err != nil {
					return err
				}
				_, err := fmt.Fprintf(out, "%s\tconnected\n", id)
				return err
			}

			reports, err := app.connections.ConnectAll(cmd.Context())
			if err != nil {
				return err
			}

			return writeConnectionReports(cmd, reports)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID (all accounts when empty)")

	return cmd
}

func writeConnectionReports(cmd *cobra.Command, reports []application.ConnectionReport) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	var failures []error
	for _, report := range reports {
		if report.Err != nil {
			failures = append(failures, report.Err)
			_, _ = fmt.Fprintf(w, "%s\tfailed\t%v\n", report.AccountID, report.Err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\tconnected\t@%s\n", report.AccountID, report.Identity.Username)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d accounts failed to connect: %w", len(failures), len(reports), errors.Join(failures...))
	}

	return nil
}

func newAccountSwitchCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Set the default account for post and delete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := domain.AccountID(accountID)
			if err := app.connections.SwitchActive(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "active account: %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newAccountSettingsCmd(app *app) *cobra.Command {
	var accountID string
	var autoSplit bool
	var postTag string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Update posting settings for an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.connections.ResolveTarget(cmd.Context(), domain.AccountID(accountID))
			if err != nil {
				return err
			}

			var update application.SettingsUpdate
			if cmd.Flags().Changed("auto-split") {
				update.AutoSplit = &autoSplit
			}
			if cmd.Flags().Changed("post-tag") {
				update.PostTag = &postTag
			}

			settings, err := app.service.UpdateSettings(cmd.Context(), account.ID, update)
			if err != nil {
				return err
			}

			tag := settings.PostTag
			if tag == "" {
				tag = "none"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tauto-split=%t\tpost-tag=%s\n", account.ID, settings.AutoSplit, tag)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID (active account when empty)")
	cmd.Flags().BoolVar(&autoSplit, "auto-split", true, "Split long text into a thread")
	cmd.Flags().StringVar(&postTag, "post-tag", "", "Text appended to the last post of every thread (empty clears it)")

	return cmd
}

func newAccountRenameCmd(app *app) *cobra.Command {
	var accountID string
	var name string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change an account's display name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.service.SetAccountName(cmd.Context(), domain.AccountID(accountID), name)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func connectionLabel(status domain.ConnectionStatus) string {
	if status == "" {
		return string(domain.ConnectionUntested)
	}
	return string(status)
}
