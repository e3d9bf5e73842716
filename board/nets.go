package board

import (
	"fmt"
	"sort"
	"strings"

	"pcbdraw/core"
)

const (
	// UnconnectedNet is the code of the net every board has for items
	// connected to nothing.
	UnconnectedNet = 0
	// OrphanedNet marks an item that has no board to look nets up in.
	OrphanedNet = -1

	DefaultNetClass = "Default"
)

// NetClass groups nets sharing design rules.
type NetClass struct {
	Name       string
	Clearance  int
	TrackWidth int
}

// NetInfo describes one net of a board.
type NetInfo struct {
	Code  int
	Name  string
	Class string
}

// ShortName returns the net name without its hierarchical path.
func (n *NetInfo) ShortName() string {
	if i := strings.LastIndex(n.Name, "/"); i >= 0 {
		return n.Name[i+1:]
	}
	return n.Name
}

type netTable struct {
	nets    map[int]*NetInfo
	classes map[string]*NetClass
}

func newNetTable() *netTable {
	return &netTable{
		nets: map[int]*NetInfo{
			UnconnectedNet: {Code: UnconnectedNet, Class: DefaultNetClass},
		},
		classes: map[string]*NetClass{
			DefaultNetClass: {Name: DefaultNetClass, Clearance: 200000, TrackWidth: 250000},
		},
	}
}

// AddNetClass registers or replaces a net class.
func (b *Board) AddNetClass(nc NetClass) {
	b.nets.classes[nc.Name] = &nc
}

// AddNet creates a net and returns its code. Adding a name twice returns the
// existing code.
func (b *Board) AddNet(name, class string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("add net: empty name")
	}
	for _, n := range b.nets.nets {
		if n.Name == name {
			return n.Code, nil
		}
	}
	if class == "" {
		class = DefaultNetClass
	}
	code := len(b.nets.nets)
	for b.nets.nets[code] != nil {
		code++
	}
	b.nets.nets[code] = &NetInfo{Code: code, Name: name, Class: class}
	return code, nil
}

// FindNet looks a net up by code.
func (b *Board) FindNet(code int) (*NetInfo, bool) {
	n, ok := b.nets.nets[code]
	return n, ok
}

// FindNetByName looks a net up by name.
func (b *Board) FindNetByName(name string) (*NetInfo, bool) {
	for _, n := range b.nets.nets {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// Nets returns every net ordered by code.
func (b *Board) Nets() []*NetInfo {
	out := make([]*NetInfo, 0, len(b.nets.nets))
	for _, n := range b.nets.nets {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// SetNet assigns a net to a shape. A code the board does not know maps to
// the unconnected net; without a board the shape is orphaned.
func (b *Board) SetNet(s *core.Shape, code int) {
	if b == nil {
		s.NetCode = OrphanedNet
		return
	}
	if _, ok := b.nets.nets[code]; !ok {
		code = UnconnectedNet
	}
	s.NetCode = code
}

// NetName returns the full name of the shape's net.
func (b *Board) NetName(s *core.Shape) string {
	if n, ok := b.FindNet(s.NetCode); ok {
		return n.Name
	}
	return ""
}

// ShortNetName returns the net name without its hierarchical path.
func (b *Board) ShortNetName(s *core.Shape) string {
	if n, ok := b.FindNet(s.NetCode); ok {
		return n.ShortName()
	}
	return ""
}

// NetClassOf returns the class of the shape's net, falling back to the
// default class.
func (b *Board) NetClassOf(s *core.Shape) *NetClass {
	if n, ok := b.FindNet(s.NetCode); ok {
		if nc, ok := b.nets.classes[n.Class]; ok {
			return nc
		}
	}
	return b.nets.classes[DefaultNetClass]
}

// Clearance returns the clearance required around s. With another item
// the larger of the two class clearances applies.
func (b *Board) Clearance(s, other *core.Shape) int {
	mine := b.NetClassOf(s).Clearance
	if other == nil {
		return mine
	}
	return max(mine, b.NetClassOf(other).Clearance)
}
