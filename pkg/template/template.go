// 14 Mar 2024
// Package template pulls reference geometry for ribose and base out of
// a real structure. For every residue with the right name we take the
// C1', P and N9 atoms and write them as a small xyz file.

package template

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andrew-torda/sample2pdb/pdb"
	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
	"github.com/andrew-torda/sample2pdb/pkg/molwrite"
)

const (
	DfltResName = "A"
	Suffix      = "_extracted"
)

// Atoms we take from each residue, in the order they are written
var Atoms = []string{"C1'", "P", "N9"}

var ErrMissingAtom = errors.New("residue is missing a template atom")

// baseName strips directories and the usual extensions from a pdb file name
func baseName(fname string) string {
	s := filepath.Base(fname)
	s = strings.TrimSuffix(s, ".gz")
	for _, ext := range []string{".pdb", ".ent"} {
		s = strings.TrimSuffix(s, ext)
	}
	return s
}

// resLabel is the residue number with any insertion code, like "12" or "12A"
func resLabel(c *cmmn.Chain, ires int) string {
	s := strconv.Itoa(c.NumLbl[ires])
	if ins := c.InsCode[ires]; ins != ' ' {
		s += string(ins)
	}
	return s
}

// fromChain collects the template atoms of residue ires
func fromChain(c *cmmn.Chain, ires int) ([]cmmn.Atom, error) {
	ret := make([]cmmn.Atom, 0, len(Atoms))
	for _, name := range Atoms {
		xyz, ok := c.Atom(ires, name)
		if !ok {
			return nil, fmt.Errorf("%w: chain %s residue %s %s has no %s", ErrMissingAtom,
				c.ChainID, c.ResName[ires], resLabel(c, ires), name)
		}
		ret = append(ret, cmmn.Atom{Label: molwrite.Element(name), Xyz: xyz})
	}
	return ret, nil
}

// Extract reads fname and writes one xyz file into outDir for every
// residue called resName. Files are called <base>_<resnum>_extracted.xyz
// and chains other than the first get the chain name in there too.
// Coordinates are not scaled. If any matching residue lacks one of
// the atoms, we stop and return the error.
func Extract(fname, outDir, resName string) ([]string, error) {
	chains, err := pdb.ReadCoord(fname, "")
	if err != nil {
		return nil, err
	}
	base := baseName(fname)
	var written []string
	for ic := range chains {
		c := &chains[ic]
		for ires := 0; ires < c.NRes(); ires++ {
			if c.ResName[ires] != resName {
				continue
			}
			atoms, err := fromChain(c, ires)
			if err != nil {
				return written, fmt.Errorf("%s: %w", fname, err)
			}
			name := base + "_"
			if ic > 0 {
				name += strings.TrimSpace(c.ChainID) + "_"
			}
			name += resLabel(c, ires)
			outPath, err := molwrite.SaveXyz(outDir, name, Suffix, atoms, molwrite.DfltPrec)
			if err != nil {
				return written, err
			}
			written = append(written, outPath)
		}
	}
	return written, nil
}
