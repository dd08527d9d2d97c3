// Package pdb/cmmn has common definitions for coordinates, atoms and
// chains. The writers and the pdb reader both work with these.
package cmmn

import (
	"math"
)

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz               // xyz's are coordinates
type CoordSet map[string]XyzSl // keyed by atom name, one entry per residue

var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

var BrokenResNum int = -9999

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// Scale returns the coordinates multiplied by f
func (xyz Xyz) Scale(f float32) Xyz {
	return Xyz{X: xyz.X * f, Y: xyz.Y * f, Z: xyz.Z * f}
}

// Atom is one decoded atom. Label is the atom type, like "C" or "P".
type Atom struct {
	Label string
	Xyz
}

// A simple structure for one model, one chain and a set of xyz coordinates.
// The slices NumLbl, InsCode and ResName all have one entry per residue.
// Every XyzSl in CoordSet has the same length. If a residue does not have
// some atom, its place holds BrokenXyz.
type Chain struct {
	ChainID  string   // Name, like "A" or "B"
	MdlNum   int16    // Model number
	NumLbl   []int    // residue numbers from file. Not real indices
	InsCode  []byte   // Insertion code
	ResName  []string // residue names, like "A" or "GLY"
	CoordSet CoordSet
}

// NRes returns the number of residues in the chain
func (c *Chain) NRes() int { return len(c.NumLbl) }

// AddRes appends a residue with no atoms. Every atom type already known
// gets a BrokenXyz place holder. It returns the index of the new residue.
func (c *Chain) AddRes(num int, insCode byte, resName string) int {
	if c.CoordSet == nil {
		c.CoordSet = make(CoordSet)
	}
	c.NumLbl = append(c.NumLbl, num)
	c.InsCode = append(c.InsCode, insCode)
	c.ResName = append(c.ResName, resName)
	for k, v := range c.CoordSet {
		c.CoordSet[k] = append(v, BrokenXyz)
	}
	return len(c.NumLbl) - 1
}

// SetAtom stores coordinates for atom name in residue ires.
// An atom name we have not seen before gets a new column, filled
// with BrokenXyz for earlier residues.
func (c *Chain) SetAtom(ires int, name string, xyz Xyz) {
	if c.CoordSet == nil {
		c.CoordSet = make(CoordSet)
	}
	xyzSl, ok := c.CoordSet[name]
	if !ok {
		xyzSl = make(XyzSl, c.NRes())
		for i := range xyzSl {
			xyzSl[i] = BrokenXyz
		}
	}
	xyzSl[ires] = xyz
	c.CoordSet[name] = xyzSl
}

// Atom returns the coordinates of atom name in residue ires. The
// bool is false if the residue has no such atom.
func (c *Chain) Atom(ires int, name string) (Xyz, bool) {
	xyzSl, ok := c.CoordSet[name]
	if !ok || ires >= len(xyzSl) {
		return BrokenXyz, false
	}
	xyz := xyzSl[ires]
	return xyz, xyz.Ok()
}

// This is obviously just a slice of chains, but we have to define a type
// if we want to define a method on it
type ChnSl []Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, len(chns))
	for i, k := range chns {
		ret[i] = k.ChainID
	}
	return
}
