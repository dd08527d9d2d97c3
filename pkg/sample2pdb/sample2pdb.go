// 14 Mar 2024

package sample2pdb

import (
	"fmt"

	"github.com/andrew-torda/sample2pdb/pkg/atomtype"
	"github.com/andrew-torda/sample2pdb/pkg/common"
	"github.com/andrew-torda/sample2pdb/pkg/molwrite"
	"github.com/andrew-torda/sample2pdb/pkg/sample"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Format    string // pdb, xyz or trafl
	Suffix    string // added to xyz file names
	Prec      int    // decimals in xyz files
	TypesFile string // yaml atom type table, "" for the default
	LogFile   string // where to report skipped molecules
}

// DfltFlags has what you get if you do not say anything
var DfltFlags = CmdFlag{
	Format:  molwrite.FmtPdb,
	Prec:    molwrite.DfltPrec,
	LogFile: "stderr",
}

// Mymain reads a sample and writes one file per molecule into outDir.
// names[b] is the file name for batch index b.
func Mymain(flags *CmdFlag, sampleFile, outDir string, names []string) (*molwrite.Report, error) {
	vocab, err := atomtype.ReadVocabFile(flags.TypesFile)
	if err != nil {
		return nil, err
	}
	outlog, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return nil, fmt.Errorf("%w creating log file", err)
	}
	s, err := sample.ReadFile(sampleFile)
	if err != nil {
		return nil, err
	}
	cnvrtr := molwrite.NewConverter()
	cnvrtr.Vocab = vocab
	cnvrtr.Prec = flags.Prec
	cnvrtr.Log = outlog
	rpt, err := cnvrtr.To(flags.Format, s, outDir, names, flags.Suffix)
	if err != nil {
		return rpt, err
	}
	outlog.Printf("%s: wrote %d, skipped %d", sampleFile, len(rpt.Written), len(rpt.Skipped))
	return rpt, nil
}
