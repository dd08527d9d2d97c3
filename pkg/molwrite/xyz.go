package molwrite

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
)

const DfltPrec = 4 // decimals in xyz files

// fmtCoord rounds to prec decimals and prints the shortest form,
// always with a decimal point, so 0 is "0.0" and 1.23456 is "1.2346".
func fmtCoord(v float32, prec int) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	p := math.Pow(10, float64(prec))
	f = math.RoundToEven(f*p) / p
	s := strconv.FormatFloat(float64(float32(f)), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// XyzName strips any ".pdb", adds the suffix and makes sure the name
// ends in ".xyz"
func XyzName(name, suffix string) string {
	return extName(name, suffix, ".xyz")
}

func extName(name, suffix, ext string) string {
	name = strings.ReplaceAll(name, ".pdb", "") + suffix
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

// WriteXyz writes the atom count, the name and then one line per atom.
func WriteXyz(w io.Writer, name string, atoms []cmmn.Atom, prec int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(atoms)) + "\n")
	bw.WriteString(name + "\n")
	for _, a := range atoms {
		bw.WriteString(a.Label)
		for _, v := range []float32{a.X, a.Y, a.Z} {
			bw.WriteByte(' ')
			bw.WriteString(fmtCoord(v, prec))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SaveXyz writes atoms to an xyz file in dir and returns the path.
func SaveXyz(dir, name, suffix string, atoms []cmmn.Atom, prec int) (string, error) {
	fname := XyzName(name, suffix)
	var b strings.Builder
	if err := WriteXyz(&b, fname, atoms, prec); err != nil {
		return "", err
	}
	return saveFile(dir, fname, []byte(b.String()))
}
