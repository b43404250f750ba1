package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/fatih/color"
)

const markdownWidth = 80

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.YellowString("!")+" "+fmt.Sprintf(format, args...))
}

// PrintError writes err as a red failure line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString("✗")+" "+err.Error())
}

// swatch renders a small block in the group's color, or a blank of the same
// width when the group has none.
func swatch(c string) string {
	if c == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■")
}

func printGroups(w io.Writer, groups []models.NoteGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No groups yet.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s %d. %s  %s  (%d items)\n",
			swatch(g.Color), g.Order, color.New(color.Bold).Sprint(g.Name), color.HiBlackString(g.ID), len(g.Items))
		if g.Description != "" {
			fmt.Fprintf(w, "     %s\n", g.Description)
		}
	}
}

func printItems(w io.Writer, g models.NoteGroup) {
	fmt.Fprintf(w, "%s %s\n", swatch(g.Color), color.New(color.Bold).Sprint(g.Name))
	if len(g.Items) == 0 {
		fmt.Fprintln(w, "  No items.")
		return
	}
	for _, it := range g.Items {
		fmt.Fprintf(w, "  %d. %s  %s\n", it.Order, it.Title, color.HiBlackString(it.ID))
		for _, line := range strings.Split(it.Content, "\n") {
			if line != "" {
				fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
}

// renderMarkdown pretty-prints md for the terminal with the named glamour
// style; "auto" or "" picks one from the terminal background.
func renderMarkdown(md, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(markdownWidth)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
