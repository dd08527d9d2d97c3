// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Old format files are read by pdbrd.go.

package pdb

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/sample2pdb/pdb/cmmn"
	"github.com/andrew-torda/sample2pdb/pdb/zwrap"
	"github.com/andrew-torda/sample2pdb/pkg/common"
)

const (
	Old_fmt byte = iota
	Mmcif_fmt
	Unk_fmt
)

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return Unk_fmt, err
	}
	rdr, e2 := zwrap.WrapMaybe(fp)
	if e2 != nil {
		fp.Close()
		return Unk_fmt, errors.New("reading " + fname + " " + e2.Error())
	}
	defer rdr.Close()

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return Mmcif_fmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return Old_fmt, nil
			}
		}
	}
	return Unk_fmt, errors.New(fname + ": cannot recognise format")
}

// OldOrMmcif decides what format we will use.
// Maybe is uses the file name or maybe it peaks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func OldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return Old_fmt, nil
		} else if strings.Contains(s, "mmcif") || strings.Contains(s, "cif") {
			return Mmcif_fmt, nil
		}
	}
	return lookInFile(fname)
}

// ReadCoord takes a filename and reads the ATOM and HETATM records from
// the first model. There is one cmmn.Chain per chain identifier, in the
// order the chains appear in the file.
// Some information about what was read goes to a log called outinfo.
// if outinfo is "", it will be trashed. If outinfo is "stdout", we
// write to standard output.
func ReadCoord(fname string, outinfo string) ([]cmmn.Chain, error) {
	outlog, err := common.LogWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}
	var typ byte
	if typ, err = OldOrMmcif(fname); err != nil {
		return nil, err
	} else if typ == Mmcif_fmt {
		return nil, errors.New(fname + ": mmcif reading not written yet")
	}

	chains, err := readOld(fname)
	if err != nil {
		return nil, err
	}
	if len(chains) == 0 {
		return nil, errors.New(fname + ": no ATOM records")
	}
	outlog.Println(fname, "chains", cmmn.ChnSl(chains).ChainNames(), "atoms", NatomsTot(chains))
	return chains, nil
}

// NatomsTot returns the total number of atoms in a set of chains,
// not counting the place holders.
func NatomsTot(chns []cmmn.Chain) int {
	var n int
	for _, c := range chns {
		for _, xyzS := range c.CoordSet {
			for _, x := range xyzS {
				if x.Ok() {
					n++
				}
			}
		}
	}
	return n
}
