package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	statusadapter "github.com/bnema/xthreads-cli/internal/adapters/render/status"
	"github.com/bnema/xthreads-cli/internal/application"
	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errConflictingInput = errors.New("use only one of --text and --file")

func newPostCmd(app *app) *cobra.Command {
	var accountID string
	var text string
	var file string
	var at string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Compose text into a thread and post it",
		Long: "Post reads text from --text, a vault file (--file) or stdin, splits it into a thread " +
			"using the account's settings, uploads embedded ![[image]] references and posts the result " +
			"as a reply chain. With --at the thread is handed to the scheduling server instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readPostInput(cmd, app, text, file)
			if err != nil {
				return err
			}

			req := application.ComposeRequest{Text: input, AccountID: domain.AccountID(accountID)}
			if at != "" {
				postAt, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
				req.PostAt = &postAt
			}

			draft, err := app.composer.Compose(cmd.Context(), req)
			if err != nil {
				return err
			}

			if dryRun {
				rendered, err := app.draftRenderer(draft, statusadapter.RenderOptions{Now: app.now()})
				if err != nil {
					return fmt.Errorf("render draft: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}

			var result application.SubmitResult
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), submitLabel(draft), func(ctx context.Context) error {
				var submitErr error
				result, submitErr = app.composer.Submit(ctx, draft.Composition)
				return submitErr
			})
			if err != nil {
				return err
			}

			return writeSubmitResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID (active account when empty)")
	cmd.Flags().StringVar(&text, "text", "", "Text to post")
	cmd.Flags().StringVar(&file, "file", "", "Vault file to post (path or note name)")
	cmd.Flags().StringVar(&at, "at", "", "Schedule for this RFC3339 time instead of posting now")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the composed thread without connecting")

	return cmd
}

func readPostInput(cmd *cobra.Command, app *app, text, file string) (string, error) {
	switch {
	case text != "" && file != "":
		return "", errConflictingInput
	case text != "":
		return text, nil
	case file != "":
		ref := file
		if !strings.ContainsAny(file, `/\`) {
			resolved, err := app.files.ResolveName(cmd.Context(), file)
			if err != nil {
				return "", fmt.Errorf("find %s in vault: %w", file, err)
			}
			ref = resolved
		}
		content, err := app.files.ReadText(cmd.Context(), ref)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return content, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func submitLabel(draft application.Draft) string {
	count := len(draft.Composition.Parts())
	if _, ok := draft.Composition.(domain.Scheduled); ok {
		return fmt.Sprintf("Scheduling %d posts...", count)
	}
	return fmt.Sprintf("Posting %d posts...", count)
}

func writeSubmitResult(cmd *cobra.Command, result application.SubmitResult) error {
	out := cmd.OutOrStdout()

	if result.Posted == nil {
		_, err := fmt.Fprintf(out, "scheduled: %s\n", result.ScheduleID)
		return err
	}

	for _, warning := range result.Posted.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
	}

	for i, post := range result.Posted.Posts {
		link := post.URL
		if link == "" {
			link = post.ID
		}
		if _, err := fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(result.Posted.Posts), link); err != nil {
			return err
		}
	}

	return nil
}
