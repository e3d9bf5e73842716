// Package view defines what the drawing tool needs from a display: a preview
// group of uncommitted shapes and the cursor controls.
package view

import "pcbdraw/core"

// View shows preview groups. Calls are push-only.
type View interface {
	Add(g *Group)
	Update(g *Group)
	Remove(g *Group)
}

// Controls configure the pointer while a gesture runs.
type Controls interface {
	ShowCursor(show bool)
	SetSnapping(on bool)
	SetAutoPan(on bool)
	CaptureCursor(on bool)
}

// Group is a set of shapes shown but not stored in the board. A shape is
// either owned by the gesture that added it or borrowed from the board for
// display.
type Group struct {
	items    []*core.Shape
	borrowed map[*core.Shape]bool
}

// NewGroup creates an empty preview group.
func NewGroup() *Group {
	return &Group{borrowed: make(map[*core.Shape]bool)}
}

// Add puts an owned shape into the group. Adding a member again is a no-op.
func (g *Group) Add(s *core.Shape) {
	if g.Contains(s) {
		return
	}
	g.items = append(g.items, s)
}

// AddBorrowed shows a board item that the group must never modify.
func (g *Group) AddBorrowed(s *core.Shape) {
	g.Add(s)
	g.borrowed[s] = true
}

// Remove takes a shape out of the group.
func (g *Group) Remove(s *core.Shape) {
	for i, item := range g.items {
		if item == s {
			g.items = append(g.items[:i], g.items[i+1:]...)
			delete(g.borrowed, s)
			return
		}
	}
}

// Clear empties the group.
func (g *Group) Clear() {
	g.items = nil
	g.borrowed = make(map[*core.Shape]bool)
}

// Contains reports whether s is shown.
func (g *Group) Contains(s *core.Shape) bool {
	for _, item := range g.items {
		if item == s {
			return true
		}
	}
	return false
}

// Borrowed reports whether s is a board item shown for reference.
func (g *Group) Borrowed(s *core.Shape) bool {
	return g.borrowed[s]
}

// Items returns the shapes in insertion order.
func (g *Group) Items() []*core.Shape {
	return append([]*core.Shape(nil), g.items...)
}

// Len returns the number of shapes.
func (g *Group) Len() int {
	return len(g.items)
}
