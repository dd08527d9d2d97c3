// 14 Mar 2024

/*
Package molwrite turns a batch of molecules from a generative model into
coordinate files. A batch is a feature matrix with one row per atom and
a batch index per row saying which molecule the atom belongs to.

Each row starts with x, y, z (in nm, we multiply by 10 on output) and
four one-hot atom type columns. The trafl writer also needs five one-hot
role columns which say which of P, C4', C2, C4/C6, N1/N9 the atom is.
By default these are the ninth from last and the last four columns.

Three formats are written:

	pdb    one ATOM record per atom, chain A, every atom its own residue
	xyz    count, name, then "label x y z"
	trafl  the SimRNA trajectory format, five atoms per nucleotide

Molecules with bad data (wrong number of atoms for trafl, roles that
do not make a nucleotide) are logged and skipped. The rest of the batch
is still written.
*/
package molwrite
