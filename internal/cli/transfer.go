package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/spf13/cobra"
)

func (a *App) exportCmd() *cobra.Command {
	var outPath string
	var render bool

	cmd := &cobra.Command{
		Use:   "export simple|markdown|full",
		Short: "Export notes",
		Long: `Export notes in one of three formats:

  simple    group name -> list of {title, content}, as JSON
  markdown  one heading per group and per note
  full      every field, suitable for "notekeeper import"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"simple", "markdown", "full"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureLogin(ctx); err != nil {
				return err
			}

			var body []byte
			switch args[0] {
			case "simple":
				b, err := json.MarshalIndent(a.dm.ExportSimple(ctx), "", "  ")
				if err != nil {
					return err
				}
				body = append(b, '\n')
			case "full":
				b, err := json.MarshalIndent(a.dm.ExportFull(ctx), "", "  ")
				if err != nil {
					return err
				}
				body = append(b, '\n')
			case "markdown":
				md := a.dm.ExportMarkdown(ctx)
				if render && outPath == "" {
					out, err := renderMarkdown(md, a.config.RenderStyle)
					if err != nil {
						return err
					}
					md = out
				}
				body = []byte(md)
			default:
				return fmt.Errorf("unknown export format %q", args[0])
			}

			if outPath == "" {
				_, err := a.out.Write(body)
				return err
			}
			if err := filex.WriteFileAtomic(outPath, body, 0o600); err != nil {
				return err
			}
			printOK(a.out, "Exported %s to %s", args[0], outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&render, "render", false, "pretty-print markdown for the terminal")
	return cmd
}

func (a *App) importCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a full export",
		Long: `Import a file written by "notekeeper export full".

  --mode merge    add to the store; groups with the same name are combined
  --mode replace  discard every existing group first`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := models.ParseImportMode(mode)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var export models.FullExport
			if err := json.Unmarshal(data, &export); err != nil {
				return fmt.Errorf("parse import file: %w", err)
			}

			if err := a.ensureLogin(ctx); err != nil {
				return err
			}
			if !a.dm.ImportFull(ctx, &export, m) {
				return failed("import")
			}
			printOK(a.out, "Imported %s (%s)", pluralize(len(export.NoteGroups), "group"), m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(models.ImportMerge), "merge or replace")
	return cmd
}
