package atomtype_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/sample2pdb/pkg/atomtype"
	"github.com/andrew-torda/sample2pdb/pkg/common"
)

var argmaxTests = []struct {
	v   []float32
	res int
}{
	{[]float32{0, 0, 1, 0}, 2},
	{[]float32{0.9, 0.1, 0, 0}, 0},
	{[]float32{0, 0.5, 0, 0.5}, 1}, // tie, lowest wins
	{[]float32{0, 0, 0, 0}, 0},
	{[]float32{-3, -2, -1}, 2},
	{nil, -1},
}

func TestArgmax(t *testing.T) {
	for _, tst := range argmaxTests {
		if r := Argmax(tst.v); r != tst.res {
			t.Errorf("argmax %v gave %d, wanted %d", tst.v, r, tst.res)
		}
	}
}

func TestLabel(t *testing.T) {
	voc := Dflt
	if s := voc.Label([]float32{0, 0, 0, 1, 7, 7}); s != "P" {
		t.Error("wanted P, got", s) // columns after NType are ignored
	}
}

func TestReadVocab(t *testing.T) {
	voc, err := ReadVocab(strings.NewReader("types: [P, C, N, O]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if voc != (Vocab{"P", "C", "N", "O"}) {
		t.Error("got", voc)
	}
	broken := []string{
		"types: [P, C]\n",
		"types: [P, C, N, '']\n",
		"types: {a: b}\n",
	}
	for _, s := range broken {
		if _, err := ReadVocab(strings.NewReader(s)); !errors.Is(err, ErrVocab) {
			t.Errorf("%q gave %v, wanted ErrVocab", s, err)
		}
	}
}

func TestReadVocabFile(t *testing.T) {
	if voc, err := ReadVocabFile(""); err != nil || voc != Dflt {
		t.Error("empty name should give default table")
	}
	fname, err := common.WrtTemp("types:\n  - C\n  - N\n  - O\n  - P\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	voc, err := ReadVocabFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if voc[1] != "N" {
		t.Error("got", voc)
	}
	if _, err := ReadVocabFile("/does/not/exist"); err == nil {
		t.Error("no error on missing file")
	}
}
