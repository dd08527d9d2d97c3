package molwrite

import "errors"

var (
	ErrFormat           = errors.New("invalid format, accepted formats are pdb, xyz, trafl")
	ErrShape            = errors.New("bad molecule shape")
	ErrMalformedResidue = errors.New("malformed residue")
	ErrNoName           = errors.New("no file name for molecule")
	ErrLabel            = errors.New("atom label does not fit pdb columns")
)

// perMolecule says if an error only spoils one molecule, so we can
// log it and carry on with the batch.
func perMolecule(err error) bool {
	return errors.Is(err, ErrShape) ||
		errors.Is(err, ErrMalformedResidue) ||
		errors.Is(err, ErrNoName)
}
