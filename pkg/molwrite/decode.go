package molwrite

import (
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
	"github.com/andrew-torda/sample2pdb/pkg/atomtype"
)

const (
	nmToAngstrom = 10
	typeCol      = 3 // first atom type column
	NRole        = 5 // atoms per nucleotide in trafl
)

// Role column order in the feature rows
const (
	RoleP = iota
	RoleC4p
	RoleC2
	RoleC46
	RoleN19
)

// Layout says where the role columns live. Negative values count
// from the end of the row, so -1 is the last column.
type Layout struct {
	RoleCols [NRole]int
}

// DfltLayout is what the model writes: P role in the ninth last column,
// then C4', C2, C4/C6, N1/N9 in the last four.
var DfltLayout = Layout{RoleCols: [NRole]int{-9, -4, -3, -2, -1}}

// Decoder turns feature rows into atoms
type Decoder struct {
	Vocab atomtype.Vocab
}

// Decode returns the scaled position and label of every row, in order.
func (d *Decoder) Decode(rows *matrix.FMatrix2d) []cmmn.Atom {
	atoms := make([]cmmn.Atom, len(rows.Mat))
	for i, row := range rows.Mat {
		xyz := cmmn.Xyz{X: row[0], Y: row[1], Z: row[2]}
		atoms[i] = cmmn.Atom{
			Label: d.Vocab.Label(row[typeCol : typeCol+atomtype.NType]),
			Xyz:   xyz.Scale(nmToAngstrom),
		}
	}
	return atoms
}

// cols turns the layout into real column numbers for rows of width ncol
func (l *Layout) cols(ncol int) ([NRole]int, error) {
	var ret [NRole]int
	for i, c := range l.RoleCols {
		if c < 0 {
			c += ncol
		}
		if c < typeCol+atomtype.NType || c >= ncol {
			return ret, fmt.Errorf("%w: role column %d does not fit rows of width %d", ErrShape, l.RoleCols[i], ncol)
		}
		ret[i] = c
	}
	return ret, nil
}

// Roles picks the role of each row by argmax over the role columns.
// Ties go to the lowest role index.
func (l *Layout) Roles(rows *matrix.FMatrix2d) ([]int, error) {
	_, ncol := rows.Size()
	cols, err := l.cols(ncol)
	if err != nil {
		return nil, err
	}
	roles := make([]int, len(rows.Mat))
	var onehot [NRole]float32
	for i, row := range rows.Mat {
		for j, c := range cols {
			onehot[j] = row[c]
		}
		roles[i] = atomtype.Argmax(onehot[:])
	}
	return roles, nil
}
