// 14 Mar 2024
/*

xtracttmpl reads a pdb file and, for every residue with the given name,
writes the C1', P and N9 coordinates to
 outdir/<base>_<resnum>_extracted.xyz

Usage:
 xtracttmpl [-r resname] file.pdb outdir

The residue name defaults to A. Only the first model is read. If a
residue with the right name is missing one of the atoms, we stop with
an error. Files written before that are left in place.

*/
package main
