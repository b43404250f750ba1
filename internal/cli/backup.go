package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *App) backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backup",
		Aliases: []string{"backups"},
		Short:   "Create, list and restore backups",
	}
	cmd.AddCommand(
		a.backupCreateCmd(),
		a.backupListCmd(),
		a.backupRestoreCmd(),
		a.backupConfigCmd(),
		a.backupDirCmd(),
	)
	return cmd
}

func (a *App) backupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Take a manual backup; manual backups are never pruned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			path := a.dm.ManualBackup(ctx)
			if path == "" {
				return failed("backup")
			}
			printOK(a.out, "Backup written to %s", path)
			return nil
		},
	}
}

func (a *App) backupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List backups, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			names := a.dm.ListBackups(ctx)
			if len(names) == 0 {
				fmt.Fprintln(a.out, "No backups.")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(a.out, n)
			}
			return nil
		},
	}
}

func (a *App) backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file-name>",
		Short: "Replace the current data with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			name := filepath.Base(args[0])
			if !a.dm.RestoreBackup(ctx, name) {
				return failed("restore")
			}
			printOK(a.out, "Restored %s", name)
			return nil
		},
	}
}

func (a *App) backupConfigCmd() *cobra.Command {
	var enabled bool
	var maxBackups int
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change automatic backup settings",
		Long: `Show automatic backup settings, or change them with flags.

Examples:
  notekeeper backup config
  notekeeper backup config --max 20
  notekeeper backup config --enabled=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}

			cfg := a.dm.GetBackupConfig(ctx)
			flags := cmd.Flags()
			if flags.Changed("enabled") || flags.Changed("max") || flags.Changed("path") {
				if flags.Changed("enabled") {
					cfg.Enabled = enabled
				}
				if flags.Changed("max") {
					cfg.MaxBackups = maxBackups
				}
				if flags.Changed("path") {
					cfg.BackupPath = path
				}
				if !a.dm.SetBackupConfig(ctx, cfg) {
					return failed("save backup settings")
				}
				printOK(a.out, "Backup settings saved")
			}

			fmt.Fprintf(a.out, "Enabled:     %t\n", cfg.Enabled)
			fmt.Fprintf(a.out, "Max backups: %d\n", cfg.MaxBackups)
			fmt.Fprintf(a.out, "Directory:   %s\n", a.dm.GetBackupDir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&enabled, "enabled", true, "take a backup after every save")
	cmd.Flags().IntVar(&maxBackups, "max", 0, "automatic backups to keep")
	cmd.Flags().StringVar(&path, "path", "", `backup directory ("" for the default)`)
	return cmd
}

func (a *App) backupDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Print the backup directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureLogin(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.dm.GetBackupDir())
			return nil
		},
	}
}
