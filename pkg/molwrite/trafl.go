package molwrite

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
)

const traflHeader = "1 1 0 0 0"

// saveOrder is the order SimRNA wants: P, C4', N1/N9, C2, C4/C6
var saveOrder = [NRole]int{RoleP, RoleC4p, RoleN19, RoleC2, RoleC46}

var roleNames = [NRole]string{"P", "C4'", "C2", "C4/C6", "N1/N9"}

// TraflName strips any ".pdb", adds the suffix and makes sure the name
// ends in ".trafl"
func TraflName(name, suffix string) string {
	return extName(name, suffix, ".trafl")
}

// traflOrder takes the roles of the five atoms of one nucleotide and
// returns atom indices in the order they should be written.
// Every role must belong to exactly one atom.
func traflOrder(roles []int) ([NRole]int, error) {
	var order [NRole]int
	for k, want := range saveOrder {
		n := 0
		for j, r := range roles {
			if r == want {
				order[k] = j
				n++
			}
		}
		if n != 1 {
			return order, fmt.Errorf("%w: %d atoms have role %s", ErrMalformedResidue, n, roleNames[want])
		}
	}
	return order, nil
}

// WriteTrafl writes the header and then all coordinates on one line,
// nucleotide by nucleotide. roles has one entry per atom.
func WriteTrafl(w io.Writer, atoms []cmmn.Atom, roles []int) error {
	if len(atoms)%NRole != 0 {
		return fmt.Errorf("%w: %d atoms is not a multiple of %d, maybe a missing P atom", ErrShape, len(atoms), NRole)
	}
	if len(roles) != len(atoms) {
		return fmt.Errorf("%w: %d atoms but %d roles", ErrShape, len(atoms), len(roles))
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(traflHeader + "\n")
	for ires := 0; ires < len(atoms)/NRole; ires++ {
		start := ires * NRole
		order, err := traflOrder(roles[start : start+NRole])
		if err != nil {
			return fmt.Errorf("nucleotide %d: %w", ires+1, err)
		}
		for _, j := range order {
			a := atoms[start+j]
			fmt.Fprintf(bw, " %.3f %.3f %.3f", a.X, a.Y, a.Z)
		}
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// SaveTrafl writes a trafl file in dir and returns the path. Nothing is
// created if the atoms do not make whole nucleotides.
func SaveTrafl(dir, name, suffix string, atoms []cmmn.Atom, roles []int) (string, error) {
	var b strings.Builder
	if err := WriteTrafl(&b, atoms, roles); err != nil {
		return "", err
	}
	return saveFile(dir, TraflName(name, suffix), []byte(b.String()))
}
