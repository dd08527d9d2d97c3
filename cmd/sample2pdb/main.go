// 14 Mar 2024

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/sample2pdb/pkg/common"
	"github.com/andrew-torda/sample2pdb/pkg/sample2pdb"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] sample.txt outdir name0 [name1 ...]")
	flag.PrintDefaults()
}

func main() {
	flags := sample2pdb.DfltFlags
	flag.StringVar(&flags.Format, "f", flags.Format, "output format: pdb, xyz or trafl")
	flag.StringVar(&flags.Suffix, "s", flags.Suffix, "suffix added to xyz file names")
	flag.IntVar(&flags.Prec, "p", flags.Prec, "decimal places in xyz files")
	flag.StringVar(&flags.TypesFile, "t", flags.TypesFile, "yaml file with atom type labels")
	flag.StringVar(&flags.LogFile, "l", flags.LogFile, "log file, \"stdout\", \"stderr\" or \"\"")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 3 {
		usage()
		os.Exit(common.ExitUsageError)
	}
	rpt, err := sample2pdb.Mymain(&flags, flag.Arg(0), flag.Arg(1), flag.Args()[2:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	for _, s := range rpt.Written {
		fmt.Println(s)
	}
	os.Exit(common.ExitSuccess)
}
