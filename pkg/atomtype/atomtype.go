// 14 Mar 2024
// Package atomtype maps one-hot atom type columns to atom labels.
// The table is a value handed to whoever decodes atoms, not a global.

package atomtype

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// NType is the number of one-hot atom type columns in a feature row
const NType = 4

// Vocab gives the label for each one-hot position
type Vocab [NType]string

// Dflt is the table used unless somebody loads another one
var Dflt = Vocab{"C", "O", "N", "P"}

var ErrVocab = errors.New("bad atom type table")

// Argmax returns the index of the largest value. Ties go to the lowest
// index. An empty slice gives -1.
func Argmax(v []float32) int {
	if len(v) == 0 {
		return -1
	}
	imax := 0
	for i, x := range v {
		if x > v[imax] {
			imax = i
		}
	}
	return imax
}

// Label returns the label for a one-hot row of length NType
func (voc *Vocab) Label(onehot []float32) string {
	return voc[Argmax(onehot[:NType])]
}

// vocabFile is what we expect in a yaml file. Something like
//   types: [C, O, N, P]
type vocabFile struct {
	Types []string `yaml:"types"`
}

// ReadVocab reads a table from yaml.
func ReadVocab(rdr io.Reader) (Vocab, error) {
	var vf vocabFile
	var voc Vocab
	if err := yaml.NewDecoder(rdr).Decode(&vf); err != nil {
		return voc, fmt.Errorf("%w: %w", ErrVocab, err)
	}
	if len(vf.Types) != NType {
		return voc, fmt.Errorf("%w: wanted %d types, got %d", ErrVocab, NType, len(vf.Types))
	}
	for i, s := range vf.Types {
		if s == "" {
			return voc, fmt.Errorf("%w: empty label at position %d", ErrVocab, i)
		}
		voc[i] = s
	}
	return voc, nil
}

// ReadVocabFile opens fname and calls ReadVocab. An empty name gives
// back the default table.
func ReadVocabFile(fname string) (Vocab, error) {
	if fname == "" {
		return Dflt, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return Vocab{}, err
	}
	defer fp.Close()
	voc, err := ReadVocab(fp)
	if err != nil {
		return voc, fmt.Errorf("%s: %w", fname, err)
	}
	return voc, nil
}
