// 14 Mar 2024

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/sample2pdb/pkg/common"
	"github.com/andrew-torda/sample2pdb/pkg/template"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[-r resname] file.pdb outdir")
	flag.PrintDefaults()
}

func main() {
	resName := flag.String("r", template.DfltResName, "residue name to take templates from")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(common.ExitUsageError)
	}
	written, err := template.Extract(flag.Arg(0), flag.Arg(1), *resName)
	for _, s := range written {
		fmt.Println(s)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
