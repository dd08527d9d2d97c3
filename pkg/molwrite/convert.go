package molwrite

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/sample2pdb/pkg/atomtype"
	"github.com/andrew-torda/sample2pdb/pkg/sample"
)

// Formats we can write
const (
	FmtPdb   = "pdb"
	FmtXyz   = "xyz"
	FmtTrafl = "trafl"
)

// Converter writes each molecule of a sample to its own file.
type Converter struct {
	Decoder
	Layout Layout
	Prec   int         // decimals for xyz
	Log    *log.Logger // skipped molecules are reported here
}

// NewConverter gives a converter with the default atom types, role
// columns and xyz precision, logging to standard error.
func NewConverter() *Converter {
	return &Converter{
		Decoder: Decoder{Vocab: atomtype.Dflt},
		Layout:  DfltLayout,
		Prec:    DfltPrec,
		Log:     log.New(os.Stderr, "", log.Lshortfile),
	}
}

// Skip records a molecule that was not written
type Skip struct {
	Batch int
	Err   error
}

// Report says what happened to each molecule of a batch
type Report struct {
	Written []string
	Skipped []Skip
}

// saveFile makes the directory if needed and writes b to dir/fname.
func saveFile(dir, fname string, b []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, fname)
	if err := os.WriteFile(outPath, b, 0644); err != nil {
		return "", err
	}
	return outPath, nil
}

// molName finds the base file name for molecule b
func molName(names []string, b int) (string, error) {
	if b >= len(names) || names[b] == "" {
		return "", fmt.Errorf("%w: batch index %d", ErrNoName, b)
	}
	return names[b], nil
}

// write sends one molecule to the writer for format.
func (c *Converter) write(format string, rows *matrix.FMatrix2d, dir, name, suffix string) (string, error) {
	atoms := c.Decode(rows)
	switch format {
	case FmtPdb:
		return SavePdb(dir, name, atoms)
	case FmtXyz:
		return SaveXyz(dir, name, suffix, atoms, c.Prec)
	case FmtTrafl:
		roles, err := c.Layout.Roles(rows)
		if err != nil {
			return "", err
		}
		return SaveTrafl(dir, name, "", atoms, roles)
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, format)
}

// To writes every molecule in s to dir in the given format. names[b]
// is the base file name for batch index b. suffix only goes on xyz files.
// Molecules are done in order of batch index. A molecule with bad data
// is logged, noted in the report and skipped. Other errors stop us.
func (c *Converter) To(format string, s *sample.Sample, dir string, names []string, suffix string) (*Report, error) {
	switch format {
	case FmtPdb, FmtXyz, FmtTrafl:
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	rpt := new(Report)
	for _, b := range s.Batches() {
		name, err := molName(names, b)
		var outPath string
		if err == nil {
			outPath, err = c.write(format, s.Rows(b), dir, name, suffix)
		}
		switch {
		case err == nil:
			rpt.Written = append(rpt.Written, outPath)
		case perMolecule(err):
			if c.Log != nil {
				c.Log.Printf("cannot save molecule %d as %s: %v", b, format, err)
			}
			rpt.Skipped = append(rpt.Skipped, Skip{Batch: b, Err: err})
		default:
			return rpt, fmt.Errorf("molecule %d: %w", b, err)
		}
	}
	return rpt, nil
}
