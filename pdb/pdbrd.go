// Read old style, fixed column pdb files.
// Uncompressed files are memory mapped. Gzipped files go through zwrap
// and are slurped.

package pdb

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
	"github.com/andrew-torda/sample2pdb/pdb/zwrap"
)

const minAtomLen = 54 // an ATOM line must reach the end of the z coordinate

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

func (e readError) Error() string {
	return fmt.Sprintf("Line: %d %s\nLine starting with\n%.70s", e.n, e.desc, e.inline)
}

// readOld gets the bytes of a file and hands them to parseOld.
func readOld(fname string) ([]cmmn.Chain, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	defer zr.Close()
	if zr.Compressed() {
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fname, err)
		}
		return parseOld(b)
	}

	if fi, err := fp.Stat(); err != nil {
		return nil, err
	} else if fi.Size() == 0 {
		return nil, fmt.Errorf("%s: empty file", fname)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return parseOld(mm)
}

// chainBuilder remembers which residue we are adding atoms to.
type chainBuilder struct {
	chain   cmmn.Chain
	lastNum int
	lastIns byte
	lastNm  string
	cur     int // index of current residue, -1 before the first
}

// field returns the bytes from start to end, or what is there if the
// line is short.
func field(line []byte, start, end int) []byte {
	if start >= len(line) {
		return nil
	}
	if end > len(line) {
		end = len(line)
	}
	return bytes.TrimSpace(line[start:end])
}

func byteAt(line []byte, i int) byte {
	if i >= len(line) {
		return ' '
	}
	return line[i]
}

// parseCoord reads the x, y, z fields of an atom line
func parseCoord(line []byte) (cmmn.Xyz, error) {
	var xyz cmmn.Xyz
	p := []*float32{&xyz.X, &xyz.Y, &xyz.Z}
	for i, start := range []int{30, 38, 46} {
		f, err := strconv.ParseFloat(string(field(line, start, start+8)), 32)
		if err != nil {
			return cmmn.BrokenXyz, err
		}
		*p[i] = float32(f)
	}
	return xyz, nil
}

// parseOld walks over the lines of a pdb file and collects atoms.
// Only the first model is read. Alternate locations other than the
// first are dropped.
func parseOld(data []byte) ([]cmmn.Chain, error) {
	var order []byte
	builders := make(map[byte]*chainBuilder)
	for n := 1; len(data) > 0; n++ {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i == -1 {
			line, data = data, nil
		} else {
			line, data = data[:i], data[i+1:]
		}
		line = bytes.TrimRight(line, "\r")
		switch {
		case bytes.HasPrefix(line, []byte("ENDMDL")):
			data = nil // first model only
			continue
		case bytes.HasPrefix(line, []byte("ATOM  ")), bytes.HasPrefix(line, []byte("HETATM")):
		default:
			continue
		}
		if len(line) < minAtomLen {
			return nil, readError{n, string(line), "atom record too short"}
		}
		if alt := byteAt(line, 16); alt != ' ' && alt != 'A' && alt != '1' {
			continue
		}
		xyz, err := parseCoord(line)
		if err != nil {
			return nil, readError{n, string(line), "broken coordinate: " + err.Error()}
		}
		num, err := strconv.Atoi(string(field(line, 22, 26)))
		if err != nil {
			return nil, readError{n, string(line), "broken residue number"}
		}
		chainID := byteAt(line, 21)
		cb, ok := builders[chainID]
		if !ok {
			cb = &chainBuilder{cur: -1}
			cb.chain.ChainID = string(chainID)
			cb.chain.MdlNum = 1
			builders[chainID] = cb
			order = append(order, chainID)
		}
		resNm := string(field(line, 17, 20))
		ins := byteAt(line, 26)
		if cb.cur == -1 || num != cb.lastNum || ins != cb.lastIns || resNm != cb.lastNm {
			cb.cur = cb.chain.AddRes(num, ins, resNm)
			cb.lastNum, cb.lastIns, cb.lastNm = num, ins, resNm
		}
		cb.chain.SetAtom(cb.cur, string(field(line, 12, 16)), xyz)
	}
	chains := make([]cmmn.Chain, len(order))
	for i, id := range order {
		chains[i] = builders[id].chain
	}
	return chains, nil
}
