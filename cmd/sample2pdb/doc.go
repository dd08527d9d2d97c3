// 14 Mar 2024
/*

sample2pdb takes atoms from a generative model and writes each molecule
to its own pdb, xyz or trafl file.

Usage:
 sample2pdb [options] sample.txt outdir name0 [name1 ...]

The sample file has one line per atom. The first number is the batch
index, saying which molecule the atom belongs to. The rest are the
features: x y z in nm, four one-hot atom type columns, then whatever the
model writes. For trafl output, the P role is in the ninth last column
and the C4', C2, C4/C6, N1/N9 roles in the last four. Lines starting
with # are ignored. The file may be gzipped. Use "-" for standard input.

Molecule b is written to outdir/name_b with the right extension. Names
that end in .pdb have it stripped for xyz and trafl output.

Flags:
  -f fmt
    	pdb, xyz or trafl. Default pdb.
  -s suffix
    	Added to xyz file names, before the extension.
  -p N
    	Round xyz coordinates to N decimals. Default 4.
  -t file.yaml
    	Atom type labels, like
    	    types: [C, O, N, P]
    	which is also the default.
  -l logfile
    	Where to report molecules that could not be written. "stderr" by
    	default, "stdout", or "" to throw the messages away.

A molecule whose atoms do not make whole nucleotides cannot be written
as trafl. It is reported and the rest of the batch is still written.
The names of the files written go to standard output.

*/
package main
