package board

import (
	"fmt"

	"pcbdraw/core"
	"pcbdraw/validation"
)

type stagedChange struct {
	op    Op
	shape *core.Shape
}

// Commit collects changes to a board and applies them as one undoable step
// on Push. A commit that is never pushed leaves the board untouched.
type Commit struct {
	board   *Board
	changes []stagedChange
	pushed  bool
}

// NewCommit starts a change set against the board.
func (b *Board) NewCommit() *Commit {
	return &Commit{board: b}
}

// Add stages a new item. The board takes ownership of the shape on Push.
func (c *Commit) Add(s *core.Shape) {
	c.changes = append(c.changes, stagedChange{op: OpAdd, shape: s})
}

// Modify stages a change to an existing item and returns the copy to edit.
// Asking for the same item twice returns the same copy.
func (c *Commit) Modify(id core.ItemID) (*core.Shape, error) {
	for _, ch := range c.changes {
		if ch.op == OpModify && ch.shape.ID == id {
			return ch.shape, nil
		}
	}
	item, ok := c.board.Item(id)
	if !ok {
		return nil, fmt.Errorf("modify item %d: %w", id, ErrUnknownItem)
	}
	clone := item.Clone()
	c.changes = append(c.changes, stagedChange{op: OpModify, shape: clone})
	return clone, nil
}

// Empty reports whether nothing is staged.
func (c *Commit) Empty() bool {
	return len(c.changes) == 0
}

// Staged returns the staged shapes in staging order.
func (c *Commit) Staged() []*core.Shape {
	out := make([]*core.Shape, len(c.changes))
	for i, ch := range c.changes {
		out[i] = ch.shape
	}
	return out
}

// Push validates and applies the staged changes as one undo step. On error
// the board is left unchanged.
func (c *Commit) Push(label string) error {
	if c.pushed {
		return ErrAlreadyPushed
	}
	if c.Empty() {
		return ErrEmptyCommit
	}

	v := validation.NewShapeValidator()
	v.SetStrictMode(true)
	if errs := v.Validate(c.Staged()...); len(errs) > 0 {
		return fmt.Errorf("%s: %w: %w", label, ErrInvalidItem, errs[0])
	}
	for _, ch := range c.changes {
		switch ch.op {
		case OpAdd:
			if ch.shape.InBoard() {
				return fmt.Errorf("%s: add item %d twice: %w", label, ch.shape.ID, ErrInvalidItem)
			}
		case OpModify:
			if _, ok := c.board.Item(ch.shape.ID); !ok {
				return fmt.Errorf("%s: modify item %d: %w", label, ch.shape.ID, ErrUnknownItem)
			}
		}
	}

	b := c.board
	ids := make([]core.ItemID, 0, len(c.changes))
	for _, ch := range c.changes {
		if ch.op == OpAdd {
			ch.shape.ID = b.nextID
			b.nextID++
		}
		b.store(ch.shape)
		ids = append(ids, ch.shape.ID)
		b.journal = append(b.journal, JournalEntry{
			Label: label,
			Op:    ch.op,
			ID:    ch.shape.ID,
			Kind:  ch.shape.Kind,
		})
	}
	c.pushed = true
	b.history.saveState(b.items, label)
	for _, ch := range c.changes {
		if ch.op == OpModify && ch.shape.Kind == core.KindZone {
			b.emit(EventZoneModified, ch.shape)
		}
	}
	b.emit(EventCommitted, CommitInfo{Label: label, Items: sortedIDs(ids)})
	return nil
}
