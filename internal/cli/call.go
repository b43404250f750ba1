package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/bridge"
	"github.com/spf13/cobra"
)

func (a *App) callCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "call <channel> [json-payload|-]",
		Short: "Invoke a boundary operation by channel name",
		Long: `Invoke one of the named operations ("note:addGroup", "backup:list", ...)
with a JSON payload and print its JSON result. A payload of "-" is read from
stdin. Channels other than the auth:login/check/first-run family log in first.

  notekeeper call note:addGroup '{"name":"Work"}'
  notekeeper call --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(); err != nil {
				return err
			}
			b := bridge.New(a.dm, a.logger)

			if list {
				fmt.Fprintln(a.out, strings.Join(b.Channels(), "\n"))
				return nil
			}

			channel := args[0]
			var payload json.RawMessage
			if len(args) == 2 {
				p, err := a.readPayload(args[1])
				if err != nil {
					return err
				}
				payload = p
			}

			if !bridge.Open(channel) {
				if err := a.ensureLogin(ctx); err != nil {
					return err
				}
			}

			res, err := b.Dispatch(ctx, channel, payload)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			_, err = fmt.Fprintf(a.out, "%s\n", out)
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the channel names")
	return cmd
}

func (a *App) readPayload(arg string) (json.RawMessage, error) {
	if arg != "-" {
		return json.RawMessage(arg), nil
	}
	b, err := io.ReadAll(a.reader)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return json.RawMessage(strings.TrimSpace(string(b))), nil
}
