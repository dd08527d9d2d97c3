package molwrite

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
)

const (
	pdbChain   = 'A'
	pdbResName = "A"
	atomFmt    = "ATOM  %5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n"
	terFmt     = "TER   %5d      %3s %c%4d\n"
)

// PdbName adds ".pdb" unless it is there already
func PdbName(name string) string {
	if !strings.HasSuffix(name, ".pdb") {
		name += ".pdb"
	}
	return name
}

// Element guesses the element from an atom name, like "C" from "C4'".
func Element(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

// pdbAtomName pads names the usual way. One letter elements with short
// names start in column 14.
func pdbAtomName(label string) (string, error) {
	if len(label) > 4 || label == "" {
		return "", fmt.Errorf("%w: %q", ErrLabel, label)
	}
	if len(label) < 4 {
		return " " + label, nil
	}
	return label, nil
}

// WritePdb writes one chain with one residue per atom. Residues and
// atoms are numbered from 1. Occupancy and B factors are zero.
func WritePdb(w io.Writer, atoms []cmmn.Atom) error {
	bw := bufio.NewWriter(w)
	for i, a := range atoms {
		name, err := pdbAtomName(a.Label)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, atomFmt, i+1, name, pdbResName, pdbChain, i+1,
			a.X, a.Y, a.Z, 0.0, 0.0, Element(a.Label))
	}
	if n := len(atoms); n > 0 {
		fmt.Fprintf(bw, terFmt, n+1, pdbResName, pdbChain, n)
	}
	bw.WriteString("END\n")
	return bw.Flush()
}

// SavePdb writes atoms to a pdb file in dir and returns the path.
func SavePdb(dir, name string, atoms []cmmn.Atom) (string, error) {
	var b strings.Builder
	if err := WritePdb(&b, atoms); err != nil {
		return "", err
	}
	return saveFile(dir, PdbName(name), []byte(b.String()))
}
