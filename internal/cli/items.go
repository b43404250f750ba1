package cli

import (
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) itemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage the notes inside a group",
	}
	cmd.AddCommand(
		a.itemListCmd(),
		a.itemAddCmd(),
		a.itemUpdateCmd(),
		a.itemDeleteCmd(),
		a.itemReorderCmd(),
	)
	return cmd
}

func (a *App) itemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <group-id>",
		Aliases: []string{"ls"},
		Short:   "Show the items of a group in display order",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			g, ok := a.dm.Group(ctx, args[0])
			if !ok {
				return failed("find group")
			}
			printItems(a.out, g)
			return nil
		},
	}
}

func (a *App) itemAddCmd() *cobra.Command {
	var in models.NoteItemInput
	var order int

	cmd := &cobra.Command{
		Use:   "add <group-id> <title>",
		Short: "Add a note to a group",
		Long: `Add a note to a group. Without --content the body is read from the
terminal until an empty line.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			in.Title = args[1]
			if !cmd.Flags().Changed("content") {
				content, err := GetMultiline(a.reader, "Content", a.out)
				if err != nil {
					return err
				}
				in.Content = content
			}
			if cmd.Flags().Changed("order") {
				in.Order = &order
			}

			if !a.dm.AddNoteItem(ctx, args[0], in) {
				return failed("add item")
			}
			printOK(a.out, "Added %q", in.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Content, "content", "", "note body")
	cmd.Flags().IntVar(&order, "order", 0, "display position")
	return cmd
}

func (a *App) itemUpdateCmd() *cobra.Command {
	var title, content string
	var order int

	cmd := &cobra.Command{
		Use:   "update <group-id> <item-id>",
		Short: "Change fields of a note; only the flags given are applied",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}

			var patch models.NoteItemPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("content") {
				patch.Content = &content
			}
			if flags.Changed("order") {
				patch.Order = &order
			}

			if !a.dm.UpdateNoteItem(ctx, args[0], args[1], patch) {
				return failed("update item")
			}
			printOK(a.out, "Updated item %s", args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new body")
	cmd.Flags().IntVar(&order, "order", 0, "new display position")
	return cmd
}

func (a *App) itemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <group-id> <item-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			if !a.dm.DeleteNoteItem(ctx, args[0], args[1]) {
				return failed("delete item")
			}
			printOK(a.out, "Deleted item %s", args[1])
			return nil
		},
	}
}

func (a *App) itemReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <group-id> <item-id>...",
		Short: "Set the display order of a group's notes",
		Long: `Set the display order of a group's notes to the sequence of ids given.

Notes whose ids are not listed are removed from the group, so pass every id.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			groupID, ids := args[0], args[1:]
			if g, ok := a.dm.Group(ctx, groupID); ok && len(g.Items) > len(ids) {
				printWarn(a.errOut, "%d item(s) not listed will be removed", len(g.Items)-len(ids))
			}
			if !a.dm.ReorderNoteItems(ctx, groupID, ids) {
				return failed("reorder items")
			}
			printOK(a.out, "Reordered %s", pluralize(len(ids), "item"))
			return nil
		},
	}
}
