package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// ExportSimple maps each group name to its items' titles and contents in
// display order. Groups sharing a name collapse to the one ordered last.
func (m *Manager) ExportSimple(ctx context.Context) models.SimpleExport {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := models.SimpleExport{}
	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "export:simple", err)
		return out
	}

	for _, g := range models.SortGroups(doc.NoteGroups) {
		items := make([]models.SimpleItem, 0, len(g.Items))
		for _, it := range g.SortedItems() {
			items = append(items, models.SimpleItem{Title: it.Title, Content: it.Content})
		}
		out[g.Name] = items
	}
	return out
}

// ExportMarkdown renders every group as a level-one heading and every item
// as a level-two heading followed by its content.
func (m *Manager) ExportMarkdown(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "export:markdown", err)
		return ""
	}

	var sb strings.Builder
	for _, g := range models.SortGroups(doc.NoteGroups) {
		fmt.Fprintf(&sb, "# %s\n\n", g.Name)
		if g.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", g.Description)
		}
		for _, it := range g.SortedItems() {
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n", it.Title, it.Content)
		}
	}
	return sb.String()
}

// ExportFull returns the interchange form of the stored groups.
func (m *Manager) ExportFull(ctx context.Context) models.FullExport {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := models.FullExport{
		Version:    common.ExportVersion,
		ExportedAt: m.timestamp(),
		NoteGroups: []models.NoteGroup{},
	}
	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "export:full", err)
		return out
	}
	for _, g := range doc.NoteGroups {
		out.NoteGroups = append(out.NoteGroups, g.Clone())
	}
	return out
}

// ImportFull applies an export produced by ExportFull.
//
// In replace mode the stored groups are discarded and the incoming ones are
// stored with fresh ids and orders 0..n-1. In merge mode incoming groups are
// matched to stored groups by name: a match receives the incoming items after
// its highest item order, anything else is appended after the highest group
// order.
func (m *Manager) ImportFull(ctx context.Context, data *models.FullExport, mode models.ImportMode) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "import:full", m.importFull(ctx, data, mode))
}

func (m *Manager) importFull(ctx context.Context, data *models.FullExport, mode models.ImportMode) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}
	if data == nil || len(data.NoteGroups) == 0 {
		return common.ErrInvalidImport
	}

	now := m.timestamp()
	switch mode {
	case models.ImportReplace:
		groups := make([]models.NoteGroup, 0, len(data.NoteGroups))
		for i, in := range data.NoteGroups {
			groups = append(groups, m.freshGroup(in, i, now))
		}
		doc.NoteGroups = groups
	case models.ImportMerge:
		m.mergeGroups(doc, data.NoteGroups, now)
	default:
		return fmt.Errorf("%q: %w", mode, common.ErrInvalidImportMode)
	}

	m.logger.Info(ctx, "imported note groups", "mode", string(mode), "groups", len(data.NoteGroups))
	return m.saveDataToFile(ctx, doc)
}

func (m *Manager) mergeGroups(doc *models.DataStore, incoming []models.NoteGroup, now string) {
	maxOrder := 0
	for _, g := range doc.NoteGroups {
		maxOrder = max(maxOrder, g.Order)
	}

	for _, in := range incoming {
		if i := doc.FindGroupByName(in.Name); i >= 0 {
			g := &doc.NoteGroups[i]
			maxItem := 0
			for _, it := range g.Items {
				maxItem = max(maxItem, it.Order)
			}
			for _, it := range in.Items {
				maxItem++
				g.Items = append(g.Items, m.freshItem(it, maxItem, now))
			}
			g.UpdatedAt = now
			continue
		}

		maxOrder++
		doc.NoteGroups = append(doc.NoteGroups, m.freshGroup(in, maxOrder, now))
	}
}

// freshGroup copies in under a new id with the given order. Its items get
// new ids and orders by position.
func (m *Manager) freshGroup(in models.NoteGroup, order int, now string) models.NoteGroup {
	g := in
	g.ID = m.newID()
	g.Order = order
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Items = make([]models.NoteItem, 0, len(in.Items))
	for i, it := range in.Items {
		g.Items = append(g.Items, m.freshItem(it, i, now))
	}
	return g
}

func (m *Manager) freshItem(in models.NoteItem, order int, now string) models.NoteItem {
	in.ID = m.newID()
	in.Order = order
	in.CreatedAt = now
	in.UpdatedAt = now
	return in
}
