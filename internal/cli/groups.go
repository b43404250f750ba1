package cli

import (
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage note groups",
	}
	cmd.AddCommand(
		a.groupListCmd(),
		a.groupAddCmd(),
		a.groupUpdateCmd(),
		a.groupDeleteCmd(),
		a.groupReorderCmd(),
	)
	return cmd
}

func (a *App) groupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List groups in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureLogin(cmd.Context()); err != nil {
				return err
			}
			printGroups(a.out, a.dm.Groups(cmd.Context()))
			return nil
		},
	}
}

func (a *App) groupAddCmd() *cobra.Command {
	var in models.NoteGroupInput
	var order int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group",
		Long: `Create a group. Without --order the group goes after the existing ones.

Examples:
  notekeeper group add Work --description "office accounts" --color "#5f87ff"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			in.Name = args[0]
			if cmd.Flags().Changed("order") {
				in.Order = &order
			}
			if !a.dm.AddNoteGroup(ctx, in) {
				return failed("add group")
			}
			printOK(a.out, "Added group %q", in.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Description, "description", "", "group description")
	cmd.Flags().StringVar(&in.Color, "color", "", "display color, e.g. #ff8800 or 212")
	cmd.Flags().IntVar(&order, "order", 0, "display position")
	return cmd
}

func (a *App) groupUpdateCmd() *cobra.Command {
	var name, description, colorValue string
	var order int

	cmd := &cobra.Command{
		Use:   "update <group-id>",
		Short: "Change fields of a group; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}

			var patch models.NoteGroupPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("color") {
				patch.Color = &colorValue
			}
			if flags.Changed("order") {
				patch.Order = &order
			}

			if !a.dm.UpdateNoteGroup(ctx, args[0], patch) {
				return failed("update group")
			}
			printOK(a.out, "Updated group %s", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&colorValue, "color", "", "new display color")
	cmd.Flags().IntVar(&order, "order", 0, "new display position")
	return cmd
}

func (a *App) groupDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <group-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a group and all of its items",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			if !a.dm.DeleteNoteGroup(ctx, args[0]) {
				return failed("delete group")
			}
			printOK(a.out, "Deleted group %s", args[0])
			return nil
		},
	}
}

func (a *App) groupReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <group-id>...",
		Short: "Set the display order of groups",
		Long: `Set the display order of groups to the sequence of ids given.

Groups whose ids are not listed are removed from the store, so pass every id.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			if missing := len(a.dm.Groups(ctx)) - len(args); missing > 0 {
				printWarn(a.errOut, "%d group(s) not listed will be removed", missing)
			}
			if !a.dm.ReorderNoteGroups(ctx, args) {
				return failed("reorder groups")
			}
			printOK(a.out, "Reordered %s", pluralize(len(args), "group"))
			return nil
		},
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
