package cmmn_test

import (
	"testing"

	. "github.com/andrew-torda/sample2pdb/pdb/cmmn"
)

func TestXyzOk(t *testing.T) {
	var xyz Xyz
	xyz = BrokenXyz
	if xyz.Ok() {
		t.Error("cannot even check if a value is OK")
	}
	xyz = Xyz{1, 1, 1}
	if !xyz.Ok() {
		t.Error("OK should be true")
	}
}

func TestScale(t *testing.T) {
	x := Xyz{0.1, -0.2, 0}.Scale(10)
	if x.X != 1 || x.Y != -2 || x.Z != 0 {
		t.Errorf("scale gave %v", x)
	}
}

// TestChainFill checks that atoms seen late get place holders in
// earlier residues and the other way round.
func TestChainFill(t *testing.T) {
	var c Chain
	i := c.AddRes(1, ' ', "A")
	c.SetAtom(i, "P", Xyz{1, 2, 3})
	i = c.AddRes(2, ' ', "A")
	c.SetAtom(i, "N9", Xyz{4, 5, 6})

	if c.NRes() != 2 {
		t.Fatal("wanted 2 residues, got", c.NRes())
	}
	for name, xyzSl := range c.CoordSet {
		if len(xyzSl) != 2 {
			t.Errorf("atom %s has %d entries, wanted 2", name, len(xyzSl))
		}
	}
	if _, ok := c.Atom(0, "N9"); ok {
		t.Error("residue 1 should not have N9")
	}
	if _, ok := c.Atom(1, "P"); ok {
		t.Error("residue 2 should not have P")
	}
	if x, ok := c.Atom(1, "N9"); !ok || x != (Xyz{4, 5, 6}) {
		t.Error("lost N9 in residue 2", x)
	}
	if _, ok := c.Atom(0, "C1'"); ok {
		t.Error("found atom that was never set")
	}
}

func TestChainNames(t *testing.T) {
	chns := ChnSl{{ChainID: "A"}, {ChainID: "B"}}
	names := chns.ChainNames()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Error("chain names", names)
	}
}
