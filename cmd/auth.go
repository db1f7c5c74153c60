package cmd

import (
	"fmt"

	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage account credentials",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var accountID string
	var server string
	var method string
	var secretKey string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a credential for an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			authMethod, err := parseAuthMethod(method)
			if err != nil {
				return err
			}
			resolvedAccountID, err := resolveAccountID(cmd.Context(), app, accountID)
			if err != nil {
				return err
			}

			key := secretKey
			if key == "" {
				key = defaultSecretKey(resolvedAccountID, authMethod)
			}

			if err := app.service.SetAuth(cmd.Context(), application.SetAuthCommand{
				ID:          resolvedAccountID,
				Method:      authMethod,
				Server:      server,
				SecretKey:   key,
				SecretValue: secretValue,
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcredential stored at %s\n", resolvedAccountID, key)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "0", "Account ID (0 or empty auto-assigns next: 1,2,...)")
	cmd.Flags().StringVar(&server, "server", "", "Server base URL, e.g. https://mastodon.social")
	cmd.Flags().StringVar(&method, "method", string(domain.AuthMethodAccessToken), "Auth method (access_token|oauth_tokens)")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (defaults to xthreads/<account>/<method>)")
	cmd.Flags().StringVar(&secretValue, "secret-value", "", "Secret value")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an account's stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.service.RemoveAuth(cmd.Context(), domain.AccountID(accountID))
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func parseAuthMethod(raw string) (domain.AuthMethod, error) {
	method := domain.AuthMethod(raw)
	switch method {
	case domain.AuthMethodAccessToken, domain.AuthMethodOAuthTokens:
		return method, nil
	default:
		return "", fmt.Errorf("unsupported auth method %q", raw)
	}
}

func defaultSecretKey(id domain.AccountID, method domain.AuthMethod) string {
	return fmt.Sprintf("xthreads/%s/%s", id, method)
}
