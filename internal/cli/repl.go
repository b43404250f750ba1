package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/spf13/cobra"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, groupID string) error
	AddGroup(ctx context.Context) error
	AddItem(ctx context.Context, groupID string) error
	DeleteGroup(ctx context.Context, groupID string) error
	DeleteItem(ctx context.Context, groupID, itemID string) error
	Backup(ctx context.Context) error
}

var errUsage = errors.New("wrong number of arguments, see help")

// runREPL starts a simple read–eval–print loop over one session.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors are reported on w and the loop goes
// on. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                      show available commands
//	  - login                     authenticate
//	  - exit | quit               leave the shell
//
//	Logged in:
//	  - (l)ist                    list groups
//	  - show <group-id>           list the notes of a group
//	  - addgroup                  create a group (interactive)
//	  - additem <group-id>        add a note (interactive)
//	  - delgroup <group-id>       delete a group
//	  - delitem <group-id> <id>   delete a note
//	  - backup                    take a manual backup
//	  - logout                    close the session
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "nk%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, show, addgroup, additem, delgroup, delitem, backup, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = withArgs(args, 1, func() error { return a.Show(ctx, args[0]) })

		case "addgroup":
			cmdErr = a.AddGroup(ctx)

		case "additem":
			cmdErr = withArgs(args, 1, func() error { return a.AddItem(ctx, args[0]) })

		case "delgroup":
			cmdErr = withArgs(args, 1, func() error { return a.DeleteGroup(ctx, args[0]) })

		case "delitem":
			cmdErr = withArgs(args, 2, func() error { return a.DeleteItem(ctx, args[0], args[1]) })

		case "backup":
			cmdErr = a.Backup(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			PrintError(w, cmdErr)
		}
		if err != nil {
			return
		}
	}
}

func withArgs(args []string, n int, fn func() error) error {
	if len(args) != n {
		return errUsage
	}
	return fn()
}

func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "notekeeper shell (type 'help' for commands)")
			runREPL(cmd.Context(), a, a.status, a.reader, a.out)
			return nil
		},
	}
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return fmt.Sprintf(" (%s)", a.config.Username)
	}
	return ""
}

// requireSession is the shell's guard; unlike one-shot commands the shell
// never logs in implicitly.
func (a *App) requireSession() error {
	if !a.isLoggedIn() {
		return errors.New("not logged in, type 'login'")
	}
	return nil
}

// Login asks for the user name (keeping the configured one on an empty
// answer) and the password.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, fmt.Sprintf("Username [%s]", a.config.Username), a.out)
	if err != nil {
		return err
	}
	if username != "" {
		a.config.Username = username
	}
	if err := a.login(ctx, a.config.Username); err != nil {
		return err
	}
	printOK(a.out, "Logged in as %s", a.config.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.dm.Logout(ctx)
	printOK(a.out, "Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	printGroups(a.out, a.dm.Groups(ctx))
	return nil
}

func (a *App) Show(ctx context.Context, groupID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	g, ok := a.dm.Group(ctx, groupID)
	if !ok {
		return failed("find group")
	}
	printItems(a.out, g)
	return nil
}

func (a *App) AddGroup(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Group name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("name must not be empty")
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	colorValue, err := GetSimpleText(a.reader, "Color (optional, e.g. #ff8800)", a.out)
	if err != nil {
		return err
	}

	if !a.dm.AddNoteGroup(ctx, models.NoteGroupInput{Name: name, Description: description, Color: colorValue}) {
		return failed("add group")
	}
	printOK(a.out, "Added group %q", name)
	return nil
}

func (a *App) AddItem(ctx context.Context, groupID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	if !a.dm.AddNoteItem(ctx, groupID, models.NoteItemInput{Title: title, Content: content}) {
		return failed("add item")
	}
	printOK(a.out, "Added %q", title)
	return nil
}

func (a *App) DeleteGroup(ctx context.Context, groupID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.dm.DeleteNoteGroup(ctx, groupID) {
		return failed("delete group")
	}
	printOK(a.out, "Deleted group %s", groupID)
	return nil
}

func (a *App) DeleteItem(ctx context.Context, groupID, itemID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.dm.DeleteNoteItem(ctx, groupID, itemID) {
		return failed("delete item")
	}
	printOK(a.out, "Deleted item %s", itemID)
	return nil
}

func (a *App) Backup(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	path := a.dm.ManualBackup(ctx)
	if path == "" {
		return failed("backup")
	}
	printOK(a.out, "Backup written to %s", path)
	return nil
}
