package cmd

import (
	"os"

	"github.com/bnema/xthreads-cli/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	root, app := buildRootCmd()

	executed, err := root.ExecuteC()
	if app != nil {
		app.flushMetrics()
	}
	if err != nil {
		reporter := logging.NewReporter(logging.New("", os.Stderr))
		if app != nil {
			reporter = app.reporter
		}
		command := root.Name()
		if executed != nil {
			command = executed.CommandPath()
		}
		reporter.Report(root.ErrOrStderr(), command, err)
	}

	return err
}

func newRootCmd() *cobra.Command {
	root, _ := buildRootCmd()
	return root
}

func buildRootCmd() (*cobra.Command, *app) {
	rootCmd := &cobra.Command{
		Use:           "xt",
		Short:         "xthreads (xt): compose threads and post them from any of your accounts",
		Long:          "xt splits long text into threads, uploads embedded images, and posts the result as a reply chain to Mastodon-compatible accounts. It also keeps per-account settings, a post history, and can hand compositions to a scheduling server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newAuthCmd(app),
		newStatusCmd(app),
		newPostCmd(app),
		newDeleteCmd(app),
	)

	return rootCmd, app
}
