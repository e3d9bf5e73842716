package board

import (
	"testing"

	"pcbdraw/core"
)

func TestSetNet(t *testing.T) {
	b := New(DefaultDesignSettings())
	gnd, err := b.AddNet("/power/GND", "")
	if err != nil {
		t.Fatal(err)
	}

	s := core.NewZoneShape(core.ZoneSettings{Layer: core.FCu})
	b.SetNet(s, gnd)
	if s.NetCode != gnd {
		t.Errorf("Expected net %d, got %d", gnd, s.NetCode)
	}

	b.SetNet(s, 77)
	if s.NetCode != UnconnectedNet {
		t.Errorf("Expected unknown net to map to unconnected, got %d", s.NetCode)
	}

	var none *Board
	none.SetNet(s, gnd)
	if s.NetCode != OrphanedNet {
		t.Errorf("Expected orphaned net without a board, got %d", s.NetCode)
	}
}

func TestAddNetTwice(t *testing.T) {
	b := New(DefaultDesignSettings())
	a, _ := b.AddNet("VCC", "")
	again, _ := b.AddNet("VCC", "Power")
	if a != again {
		t.Errorf("Expected the same code for a repeated name, got %d and %d", a, again)
	}
	if _, err := b.AddNet("", ""); err == nil {
		t.Error("Expected an error for an empty net name")
	}
	if len(b.Nets()) != 2 {
		t.Errorf("Expected unconnected plus VCC, got %d nets", len(b.Nets()))
	}
}

func TestNetNames(t *testing.T) {
	b := New(DefaultDesignSettings())
	code, _ := b.AddNet("/sheet/CLK", "")
	s := core.NewZoneShape(core.ZoneSettings{})
	b.SetNet(s, code)

	if b.NetName(s) != "/sheet/CLK" {
		t.Errorf("Expected full name, got %q", b.NetName(s))
	}
	if b.ShortNetName(s) != "CLK" {
		t.Errorf("Expected short name CLK, got %q", b.ShortNetName(s))
	}
	if n, ok := b.FindNetByName("/sheet/CLK"); !ok || n.Code != code {
		t.Errorf("Expected to find net by name, got %v", n)
	}
}

func TestClearance(t *testing.T) {
	b := New(DefaultDesignSettings())
	b.AddNetClass(NetClass{Name: "HV", Clearance: 800000, TrackWidth: 500000})
	hv, _ := b.AddNet("HV+", "HV")
	sig, _ := b.AddNet("SIG", "")
	lost, _ := b.AddNet("LOST", "Missing")

	a := core.NewZoneShape(core.ZoneSettings{})
	c := core.NewZoneShape(core.ZoneSettings{})
	b.SetNet(a, sig)
	b.SetNet(c, hv)

	if got := b.Clearance(a, nil); got != 200000 {
		t.Errorf("Expected default class clearance 200000, got %d", got)
	}
	if got := b.Clearance(a, c); got != 800000 {
		t.Errorf("Expected the larger clearance 800000, got %d", got)
	}

	b.SetNet(a, lost)
	if nc := b.NetClassOf(a); nc.Name != DefaultNetClass {
		t.Errorf("Expected fallback to the default class, got %s", nc.Name)
	}
}
