package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/cobra"
)

var (
	errDeleteTarget   = errors.New("use exactly one of --last and --id")
	errPartialDeletes = errors.New("some posts could not be deleted")
)

func newDeleteCmd(app *app) *cobra.Command {
	var accountID string
	var last bool
	var ids []string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete posts by id or the last posted thread",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if last == (len(ids) > 0) {
				return errDeleteTarget
			}

			id := domain.AccountID(accountID)
			out := cmd.OutOrStdout()

			if last {
				record, ok, err := app.poster.DeleteLast(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("delete thread %s: %w", record.ID, errPartialDeletes)
				}
				_, err = fmt.Fprintf(out, "deleted %d posts from %s\n", len(record.Posts), record.PostedAt.Format("2006-01-02 15:04"))
				return err
			}

			posts := make([]domain.PostResult, 0, len(ids))
			for _, postID := range ids {
				posts = append(posts, domain.PostResult{ID: postID})
			}

			ok, err := app.poster.DeleteMany(cmd.Context(), posts, id)
			if err != nil {
				return err
			}
			if !ok {
				return errPartialDeletes
			}

			_, err = fmt.Fprintf(out, "deleted %d posts\n", len(posts))
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID (active account when empty)")
	cmd.Flags().BoolVar(&last, "last", false, "Delete the most recent thread posted from this account")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "Post id to delete (repeatable)")

	return cmd
}
