// Package board holds the persistent board document: its items, nets, design
// settings and undo history. Items only change through a pushed Commit.
package board

import (
	"errors"
	"sort"

	"pcbdraw/core"
	"pcbdraw/geometry"
)

var (
	ErrUnknownItem   = errors.New("unknown board item")
	ErrAlreadyPushed = errors.New("commit already pushed")
	ErrEmptyCommit   = errors.New("commit has no changes")
	ErrInvalidItem   = errors.New("invalid board item")
)

// MaxHistory is the number of undo states a board keeps.
const MaxHistory = 500

// EventType identifies board events.
type EventType int

const (
	EventCommitted EventType = iota
	EventZoneModified
	EventUndo
	EventRedo
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// CommitInfo is the payload of EventCommitted.
type CommitInfo struct {
	Label string
	Items []core.ItemID
}

// Op is the kind of change a commit applies to an item.
type Op int

const (
	OpAdd Op = iota
	OpModify
)

func (o Op) String() string {
	if o == OpModify {
		return "modify"
	}
	return "add"
}

// JournalEntry records one applied change.
type JournalEntry struct {
	Label string
	Op    Op
	ID    core.ItemID
	Kind  core.ShapeKind
}

// Board is the document drawings are committed to. Items live in an arena
// indexed by their ItemID.
type Board struct {
	items  []*core.Shape // items[id-1]
	nextID core.ItemID

	nets         *netTable
	settings     DesignSettings
	highlightNet int

	history   *History
	journal   []JournalEntry
	listeners map[EventType][]EventListener
}

// New creates an empty board.
func New(settings DesignSettings) *Board {
	b := &Board{
		nextID:    1,
		nets:      newNetTable(),
		settings:  settings,
		history:   NewHistory(MaxHistory),
		listeners: make(map[EventType][]EventListener),
	}
	b.history.saveState(nil, "")
	return b
}

// Settings returns the design settings. Changes through the pointer affect
// later drawings.
func (b *Board) Settings() *DesignSettings {
	return &b.settings
}

// HighlightNet returns the code of the highlighted net.
func (b *Board) HighlightNet() int {
	return b.highlightNet
}

// SetHighlightNet highlights a net.
func (b *Board) SetHighlightNet(code int) {
	b.highlightNet = code
}

// On registers an event listener for the specified event type.
func (b *Board) On(event EventType, listener EventListener) {
	b.listeners[event] = append(b.listeners[event], listener)
}

func (b *Board) emit(event EventType, data interface{}) {
	for _, listener := range b.listeners[event] {
		listener(data)
	}
}

// Item returns the item with the given handle. The returned shape belongs to
// the board and must only be changed through Commit.Modify.
func (b *Board) Item(id core.ItemID) (*core.Shape, bool) {
	if !id.Valid() || int(id) > len(b.items) {
		return nil, false
	}
	s := b.items[id-1]
	return s, s != nil
}

// Items returns every item ordered by handle.
func (b *Board) Items() []*core.Shape {
	out := make([]*core.Shape, 0, len(b.items))
	for _, s := range b.items {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of items.
func (b *Board) Len() int {
	n := 0
	for _, s := range b.items {
		if s != nil {
			n++
		}
	}
	return n
}

// Snapshot returns deep copies of every item, for comparing board states.
func (b *Board) Snapshot() []*core.Shape {
	items := b.Items()
	for i, s := range items {
		items[i] = s.Clone()
	}
	return items
}

// Zones returns every zone item.
func (b *Board) Zones() []*core.Shape {
	return b.filter(func(s *core.Shape) bool { return s.Kind == core.KindZone })
}

// Footprints returns every footprint item.
func (b *Board) Footprints() []*core.Shape {
	return b.filter(func(s *core.Shape) bool { return s.Kind == core.KindFootprint })
}

// Children returns the items owned by a footprint.
func (b *Board) Children(parent core.ItemID) []*core.Shape {
	return b.filter(func(s *core.Shape) bool { return s.Parent == parent })
}

func (b *Board) filter(keep func(*core.Shape) bool) []*core.Shape {
	var out []*core.Shape
	for _, s := range b.items {
		if s != nil && keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// OnAreaPolygonModified refreshes a zone after its outline changed: the
// hatch is rebuilt and the fill is marked stale. The zone is usually a
// staged copy, so listeners hear about it only once the commit is pushed.
func (b *Board) OnAreaPolygonModified(zone *core.Shape) {
	if zone.Zone == nil {
		return
	}
	zone.Zone.HatchLines = geometry.Hatch(zone.Zone.Outline, zone.Zone.Settings.HatchStyle, zone.Zone.Settings.HatchPitch)
	zone.Zone.NeedsRefill = true
}

// owns reports whether s is the stored item rather than a staged copy.
func (b *Board) owns(s *core.Shape) bool {
	cur, ok := b.Item(s.ID)
	return ok && cur == s
}

// Journal returns every change applied by pushed commits, oldest first.
func (b *Board) Journal() []JournalEntry {
	return append([]JournalEntry(nil), b.journal...)
}

// History exposes the undo history.
func (b *Board) History() *History {
	return b.history
}

// Undo reverts the last pushed commit.
func (b *Board) Undo() bool {
	if !b.history.CanUndo() {
		return false
	}
	label := b.history.UndoLabel()
	b.items = b.history.undo()
	b.emit(EventUndo, label)
	return true
}

// Redo reapplies the last undone commit.
func (b *Board) Redo() bool {
	if !b.history.CanRedo() {
		return false
	}
	label := b.history.RedoLabel()
	b.items = b.history.redo()
	b.emit(EventRedo, label)
	return true
}

func (b *Board) store(s *core.Shape) {
	for int(s.ID) > len(b.items) {
		b.items = append(b.items, nil)
	}
	b.items[s.ID-1] = s
}

// sortedIDs is used by tests and commits to report handles in order.
func sortedIDs(ids []core.ItemID) []core.ItemID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
