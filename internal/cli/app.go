package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/services"
)

var errLogin = errors.New("login failed: wrong username or password")

// failed turns a false boundary result into a command error.
func failed(op string) error {
	return fmt.Errorf("%s failed (see log for details)", op)
}

// App carries the state shared by all commands of one invocation.
type App struct {
	config *config.Config

	dm      *services.Manager
	logger  logging.Logger
	logFile io.Closer

	password string

	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp returns an App for cfg. Nothing is opened until a command runs.
func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// open prepares logging and the data store. It is idempotent.
func (a *App) open() error {
	if a.dm != nil {
		return nil
	}

	logger, closer, err := openLogger(a.config)
	if err != nil {
		return err
	}
	dm, err := services.NewManager(a.config.DataDir, services.WithLogger(logger))
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return err
	}

	a.logger, a.logFile, a.dm = logger, closer, dm
	return nil
}

// Close releases the log file.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func openLogger(cfg *config.Config) (logging.Logger, io.Closer, error) {
	path := cfg.LogPath()
	if path == "" {
		l, err := logging.New(logging.Options{Format: cfg.LogFormat, Level: cfg.LogLevel, Output: os.Stderr})
		return l, nil, err
	}

	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := logging.New(logging.Options{Format: cfg.LogFormat, Level: cfg.LogLevel, Output: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

func (a *App) isLoggedIn() bool {
	return a.dm != nil && a.dm.IsAuthenticated()
}

// readCredential resolves the password from the flag, the environment or
// an interactive prompt, in that order.
func (a *App) readCredential(prompt string) (string, error) {
	if a.password != "" {
		return a.password, nil
	}
	if v := os.Getenv(common.PasswordEnvName); v != "" {
		return v, nil
	}
	pw, err := GetPassword(a.out, prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// ensureLogin opens a session for the configured user unless one is open.
func (a *App) ensureLogin(ctx context.Context) error {
	if err := a.open(); err != nil {
		return err
	}
	if a.dm.IsAuthenticated() {
		return nil
	}
	return a.login(ctx, a.config.Username)
}

func (a *App) login(ctx context.Context, username string) error {
	pw, err := a.readCredential(fmt.Sprintf("Password for %s: ", username))
	if err != nil {
		return err
	}
	if !a.dm.Login(ctx, username, pw) {
		a.logger.Warn(ctx, "cli login failed", "username", username)
		return errLogin
	}
	if a.dm.IsUsingDefaultPassword(ctx) {
		printWarn(a.errOut, "still using the generated password, change it with `notekeeper passwd`")
	}
	return nil
}
