package models

import (
	"cmp"
	"slices"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision. All entity
// timestamps share this fixed width, so string order is time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NoteItem is a single note inside a group.
type NoteItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Order     int    `json:"order"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NoteGroup is a named, ordered collection of notes.
type NoteGroup struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color,omitempty"`
	Items       []NoteItem `json:"items"`
	Order       int        `json:"order"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// FindItem returns the index of the item with id, or -1.
func (g *NoteGroup) FindItem(id string) int {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy with its own item slice.
func (g NoteGroup) Clone() NoteGroup {
	g.Items = slices.Clone(g.Items)
	if g.Items == nil {
		g.Items = []NoteItem{}
	}
	return g
}

// SortedItems returns the items in display order. Ties keep stored order.
func (g NoteGroup) SortedItems() []NoteItem {
	items := slices.Clone(g.Items)
	slices.SortStableFunc(items, func(a, b NoteItem) int { return cmp.Compare(a.Order, b.Order) })
	return items
}

// SortGroups returns groups in display order. Ties keep stored order.
func SortGroups(groups []NoteGroup) []NoteGroup {
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b NoteGroup) int { return cmp.Compare(a.Order, b.Order) })
	return out
}

// NoteGroupInput carries caller-supplied fields of a new group. A nil Order
// appends the group after the existing ones.
type NoteGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Order       *int   `json:"order,omitempty"`
}

// NoteGroupPatch is a merge patch for a group; nil fields are left as is.
type NoteGroupPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// Apply merges p into g.
func (p NoteGroupPatch) Apply(g *NoteGroup) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	if p.Order != nil {
		g.Order = *p.Order
	}
}

// NoteItemInput carries caller-supplied fields of a new item.
type NoteItemInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   *int   `json:"order,omitempty"`
}

// NoteItemPatch is a merge patch for an item.
type NoteItemPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Order   *int    `json:"order,omitempty"`
}

// Apply merges p into it.
func (p NoteItemPatch) Apply(it *NoteItem) {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Content != nil {
		it.Content = *p.Content
	}
	if p.Order != nil {
		it.Order = *p.Order
	}
}
