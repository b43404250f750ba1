package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/notekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/spf13/cobra"
)

// RootCmd builds the command tree bound to a.
func (a *App) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notekeeper",
		Short: "Local store for credentials and notes",
		Long: `notekeeper keeps credentials and free-form notes in groups, stored as a
single JSON file with rotating backups next to it.

Run "notekeeper initial-password" once to see the generated password, then
change it with "notekeeper passwd".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.reader = bufio.NewReader(cmd.InOrStdin())
			a.out = cmd.OutOrStdout()
			a.errOut = cmd.ErrOrStderr()
		},
	}

	config.BindFlags(root.PersistentFlags(), a.config)
	root.PersistentFlags().StringVarP(&a.password, "password", "p", "",
		"login password (default: $NOTEKEEPER_PASSWORD, then a prompt)")

	root.AddCommand(
		a.statusCmd(),
		a.initialPasswordCmd(),
		a.passwdCmd(),
		a.groupCmd(),
		a.itemCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.backupCmd(),
		a.shellCmd(),
		a.callCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// Execute runs the command tree for args and releases the store afterwards.
func Execute(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out, errOut io.Writer) error {
	a := NewApp(cfg)
	defer a.Close()

	root := a.RootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}
