package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(ctx context.Context, groupID string) error {
	f.calls = append(f.calls, "show")
	f.args = append(f.args, groupID)
	return nil
}
func (f *fakeExec) AddGroup(ctx context.Context) error {
	f.calls = append(f.calls, "addgroup")
	return nil
}
func (f *fakeExec) AddItem(ctx context.Context, groupID string) error {
	f.calls = append(f.calls, "additem")
	f.args = append(f.args, groupID)
	return nil
}
func (f *fakeExec) DeleteGroup(ctx context.Context, groupID string) error {
	f.calls = append(f.calls, "delgroup")
	return errors.New("no such group")
}
func (f *fakeExec) DeleteItem(ctx context.Context, groupID, itemID string) error {
	f.calls = append(f.calls, "delitem")
	f.args = append(f.args, groupID+"/"+itemID)
	return nil
}
func (f *fakeExec) Backup(ctx context.Context) error {
	f.calls = append(f.calls, "backup")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"l",
		"show g1",
		"show",
		"addgroup",
		"additem g1",
		"delgroup g9",
		"delitem g1 i1",
		"backup",
		"foobar",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return " (status)" }, rdr(input), &out)

	assert.Equal(t,
		[]string{"login", "list", "show", "addgroup", "additem", "delgroup", "delitem", "backup", "logout"},
		exec.calls, "commands after exit must not run")
	assert.Equal(t, []string{"g1", "g1", "g1/i1"}, exec.args)

	s := out.String()
	assert.Contains(t, s, "nk (status)> ")
	assert.Contains(t, s, "Available commands: login, exit")
	assert.Contains(t, s, "Available commands: (l)ist")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, errUsage.Error())
	assert.Contains(t, s, "no such group")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\nlist"), &out)

	assert.Equal(t, []string{"login", "list"}, exec.calls)
}
