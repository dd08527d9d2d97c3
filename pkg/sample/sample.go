// 14 Mar 2024
// Package sample holds a batch of molecules as one feature matrix plus
// a batch index for every row. This is what a generative model hands us.

package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/sample2pdb/pdb/zwrap"
)

// MinFeat is the narrowest row we can decode: 3 coordinates
// and the atom type columns.
const MinFeat = 7

var ErrSample = errors.New("broken sample")

// Sample is a batch of molecules. Row i of X belongs to molecule Batch[i].
type Sample struct {
	X     *matrix.FMatrix2d
	Batch []int
}

// New checks that x and batch fit together
func New(x *matrix.FMatrix2d, batch []int) (*Sample, error) {
	nrow, ncol := x.Size()
	if nrow != len(batch) {
		return nil, fmt.Errorf("%w: %d rows but %d batch indices", ErrSample, nrow, len(batch))
	}
	if nrow > 0 && ncol < MinFeat {
		return nil, fmt.Errorf("%w: %d columns, need at least %d", ErrSample, ncol, MinFeat)
	}
	for i, b := range batch {
		if b < 0 {
			return nil, fmt.Errorf("%w: negative batch index %d at row %d", ErrSample, b, i)
		}
	}
	return &Sample{X: x, Batch: batch}, nil
}

// Batches returns the distinct batch indices, smallest first.
func (s *Sample) Batches() []int {
	seen := make(map[int]bool)
	var ret []int
	for _, b := range s.Batch {
		if !seen[b] {
			seen[b] = true
			ret = append(ret, b)
		}
	}
	sort.Ints(ret)
	return ret
}

// Rows copies the rows of molecule b into a new matrix, keeping
// their order.
func (s *Sample) Rows(b int) *matrix.FMatrix2d {
	var n int
	for _, bb := range s.Batch {
		if bb == b {
			n++
		}
	}
	_, ncol := s.X.Size()
	ret := matrix.NewFMatrix2d(n, ncol)
	j := 0
	for i, bb := range s.Batch {
		if bb == b {
			copy(ret.Mat[j], s.X.Mat[i])
			j++
		}
	}
	return ret
}

// Read takes whitespace separated text. Each line is a batch index
// followed by the features of one atom. Blank lines and lines starting
// with # are skipped.
func Read(rdr io.Reader) (*Sample, error) {
	var batch []int
	var rows [][]float32
	scnnr := bufio.NewScanner(rdr)
	ncol := -1
	for n := 1; scnnr.Scan(); n++ {
		s := strings.TrimSpace(scnnr.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		words := strings.Fields(s)
		if ncol == -1 {
			ncol = len(words) - 1
		}
		if len(words)-1 != ncol {
			return nil, fmt.Errorf("%w: line %d has %d features, expected %d", ErrSample, n, len(words)-1, ncol)
		}
		b, err := strconv.Atoi(words[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d batch index: %w", ErrSample, n, err)
		}
		row := make([]float32, ncol)
		for i, w := range words[1:] {
			f, err := strconv.ParseFloat(w, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %w", ErrSample, n, i+2, err)
			}
			row[i] = float32(f)
		}
		batch = append(batch, b)
		rows = append(rows, row)
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no atoms", ErrSample)
	}
	x := matrix.NewFMatrix2d(len(rows), ncol)
	for i, r := range rows {
		copy(x.Mat[i], r)
	}
	return New(x, batch)
}

// ReadFile opens fname, which may be gzipped, and calls Read.
// "-" means standard input.
func ReadFile(fname string) (*Sample, error) {
	var fp io.ReadCloser = os.Stdin
	if fname != "-" {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	}
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	defer zr.Close()
	s, err := Read(zr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}
