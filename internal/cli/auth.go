package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/spf13/cobra"
)

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where data lives and whether the store is set up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			ctx := cmd.Context()

			fmt.Fprintf(a.out, "Data file:        %s\n", a.dm.DataPath())
			fmt.Fprintf(a.out, "Backup directory: %s\n", a.dm.GetBackupDir())
			fmt.Fprintf(a.out, "First run:        %t\n", a.dm.IsFirstRun())
			fmt.Fprintf(a.out, "Default password: %t\n", a.dm.IsUsingDefaultPassword(ctx))
			return nil
		},
	}
}

func (a *App) initialPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initial-password",
		Short: "Print the generated password, creating the store on first run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			pw, ok := a.dm.GetInitialPassword(cmd.Context())
			if !ok {
				return errors.New("the generated password has already been changed")
			}
			fmt.Fprintln(a.out, pw)
			return nil
		},
	}
}

func (a *App) passwdCmd() *cobra.Command {
	var newPassword string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the login password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			ctx := cmd.Context()

			old, err := a.readCredential("Current password: ")
			if err != nil {
				return err
			}
			if !a.dm.Login(ctx, a.config.Username, old) {
				return errLogin
			}

			if newPassword == "" {
				if newPassword, err = a.promptNewPassword(); err != nil {
					return err
				}
			}
			if newPassword == "" {
				return errors.New("new password must not be empty")
			}

			if !a.dm.ChangePassword(ctx, old, newPassword) {
				return failed("change password")
			}
			printOK(a.out, "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&newPassword, "new", "", "new password (default: prompt)")
	return cmd
}

func (a *App) promptNewPassword() (string, error) {
	first, err := GetPassword(a.out, "New password: ")
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(first)

	second, err := GetPassword(a.out, "Repeat new password: ")
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(second)

	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
