package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// Groups returns a copy of the groups sorted by order, each with its items
// sorted by order. It returns nil without a session.
func (m *Manager) Groups(ctx context.Context) []models.NoteGroup {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "note:groups", err)
		return nil
	}
	groups := models.SortGroups(doc.NoteGroups)
	for i := range groups {
		groups[i].Items = groups[i].SortedItems()
		if groups[i].Items == nil {
			groups[i].Items = []models.NoteItem{}
		}
	}
	return groups
}

// Group returns a copy of the group with id, items sorted by order.
func (m *Manager) Group(ctx context.Context, id string) (models.NoteGroup, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.group(id)
	if err != nil {
		return models.NoteGroup{}, m.report(ctx, "note:group", err)
	}
	out := g.Clone()
	out.Items = g.SortedItems()
	return out, true
}

func (m *Manager) group(id string) (*models.NoteGroup, error) {
	doc, err := m.requireDoc()
	if err != nil {
		return nil, err
	}
	i := doc.FindGroup(id)
	if i < 0 {
		return nil, fmt.Errorf("group %q: %w", id, common.ErrorNotFound)
	}
	return &doc.NoteGroups[i], nil
}

// AddNoteGroup appends a new, empty group. Without an explicit order the
// group gets the current number of groups.
func (m *Manager) AddNoteGroup(ctx context.Context, in models.NoteGroupInput) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:addGroup", m.addNoteGroup(ctx, in))
}

func (m *Manager) addNoteGroup(ctx context.Context, in models.NoteGroupInput) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}

	order := len(doc.NoteGroups)
	if in.Order != nil {
		order = *in.Order
	}
	now := m.timestamp()
	doc.NoteGroups = append(doc.NoteGroups, models.NoteGroup{
		ID:          m.newID(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Items:       []models.NoteItem{},
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return m.saveDataToFile(ctx, doc)
}

// UpdateNoteGroup merges patch into the group with id.
func (m *Manager) UpdateNoteGroup(ctx context.Context, id string, patch models.NoteGroupPatch) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:updateGroup", m.updateNoteGroup(ctx, id, patch))
}

func (m *Manager) updateNoteGroup(ctx context.Context, id string, patch models.NoteGroupPatch) error {
	g, err := m.group(id)
	if err != nil {
		return err
	}
	patch.Apply(g)
	g.UpdatedAt = m.timestamp()
	return m.saveDataToFile(ctx, m.session.doc)
}

// DeleteNoteGroup removes the group with id and all of its items.
func (m *Manager) DeleteNoteGroup(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:deleteGroup", m.deleteNoteGroup(ctx, id))
}

func (m *Manager) deleteNoteGroup(ctx context.Context, id string) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}
	i := doc.FindGroup(id)
	if i < 0 {
		return fmt.Errorf("group %q: %w", id, common.ErrorNotFound)
	}
	doc.NoteGroups = slices.Delete(doc.NoteGroups, i, i+1)
	return m.saveDataToFile(ctx, doc)
}

// ReorderNoteGroups keeps only the groups named in ids, in that sequence.
// Each kept group's order becomes its position in ids. Unknown ids are
// skipped, as are repeats of an id already placed. Groups not named in ids
// are dropped from the document.
func (m *Manager) ReorderNoteGroups(ctx context.Context, ids []string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:reorderGroups", m.reorderNoteGroups(ctx, ids))
}

func (m *Manager) reorderNoteGroups(ctx context.Context, ids []string) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}

	byID := make(map[string]models.NoteGroup, len(doc.NoteGroups))
	for _, g := range doc.NoteGroups {
		if _, dup := byID[g.ID]; !dup {
			byID[g.ID] = g
		}
	}

	now := m.timestamp()
	placed := make(map[string]struct{}, len(ids))
	out := make([]models.NoteGroup, 0, len(ids))
	for pos, id := range ids {
		g, ok := byID[id]
		if !ok {
			continue
		}
		if _, seen := placed[id]; seen {
			continue
		}
		placed[id] = struct{}{}
		g.Order = pos
		g.UpdatedAt = now
		out = append(out, g)
	}
	if dropped := len(doc.NoteGroups) - len(out); dropped > 0 {
		m.logger.Warn(ctx, "reorder dropped groups", "dropped", dropped)
	}

	doc.NoteGroups = out
	return m.saveDataToFile(ctx, doc)
}

// AddNoteItem appends a new item to the group with groupID and touches the
// group's updatedAt.
func (m *Manager) AddNoteItem(ctx context.Context, groupID string, in models.NoteItemInput) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:addItem", m.addNoteItem(ctx, groupID, in))
}

func (m *Manager) addNoteItem(ctx context.Context, groupID string, in models.NoteItemInput) error {
	g, err := m.group(groupID)
	if err != nil {
		return err
	}

	order := len(g.Items)
	if in.Order != nil {
		order = *in.Order
	}
	now := m.timestamp()
	g.Items = append(g.Items, models.NoteItem{
		ID:        m.newID(),
		Title:     in.Title,
		Content:   in.Content,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	})
	g.UpdatedAt = now
	return m.saveDataToFile(ctx, m.session.doc)
}

// UpdateNoteItem merges patch into the item and touches both timestamps.
func (m *Manager) UpdateNoteItem(ctx context.Context, groupID, itemID string, patch models.NoteItemPatch) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:updateItem", m.updateNoteItem(ctx, groupID, itemID, patch))
}

func (m *Manager) updateNoteItem(ctx context.Context, groupID, itemID string, patch models.NoteItemPatch) error {
	g, err := m.group(groupID)
	if err != nil {
		return err
	}
	i := g.FindItem(itemID)
	if i < 0 {
		return fmt.Errorf("item %q in group %q: %w", itemID, groupID, common.ErrorNotFound)
	}

	now := m.timestamp()
	patch.Apply(&g.Items[i])
	g.Items[i].UpdatedAt = now
	g.UpdatedAt = now
	return m.saveDataToFile(ctx, m.session.doc)
}

// DeleteNoteItem removes one item from a group.
func (m *Manager) DeleteNoteItem(ctx context.Context, groupID, itemID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:deleteItem", m.deleteNoteItem(ctx, groupID, itemID))
}

func (m *Manager) deleteNoteItem(ctx context.Context, groupID, itemID string) error {
	g, err := m.group(groupID)
	if err != nil {
		return err
	}
	i := g.FindItem(itemID)
	if i < 0 {
		return fmt.Errorf("item %q in group %q: %w", itemID, groupID, common.ErrorNotFound)
	}
	g.Items = slices.Delete(g.Items, i, i+1)
	g.UpdatedAt = m.timestamp()
	return m.saveDataToFile(ctx, m.session.doc)
}

// ReorderNoteItems is ReorderNoteGroups for the items of one group.
func (m *Manager) ReorderNoteItems(ctx context.Context, groupID string, ids []string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "note:reorderItems", m.reorderNoteItems(ctx, groupID, ids))
}

func (m *Manager) reorderNoteItems(ctx context.Context, groupID string, ids []string) error {
	g, err := m.group(groupID)
	if err != nil {
		return err
	}

	byID := make(map[string]models.NoteItem, len(g.Items))
	for _, it := range g.Items {
		if _, dup := byID[it.ID]; !dup {
			byID[it.ID] = it
		}
	}

	now := m.timestamp()
	placed := make(map[string]struct{}, len(ids))
	out := make([]models.NoteItem, 0, len(ids))
	for pos, id := range ids {
		it, ok := byID[id]
		if !ok {
			continue
		}
		if _, seen := placed[id]; seen {
			continue
		}
		placed[id] = struct{}{}
		it.Order = pos
		it.UpdatedAt = now
		out = append(out, it)
	}
	if dropped := len(g.Items) - len(out); dropped > 0 {
		m.logger.Warn(ctx, "reorder dropped items", "group", groupID, "dropped", dropped)
	}

	g.Items = out
	g.UpdatedAt = now
	return m.saveDataToFile(ctx, m.session.doc)
}
