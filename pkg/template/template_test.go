package template_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/sample2pdb/pkg/template"
)

func atomLine(serial int, name, resNm string, resNum int, x, y, z float32) string {
	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("ATOM  %5d %-4s %3s A%4d    %8.3f%8.3f%8.3f  1.00  0.00\n",
		serial, name, resNm, resNum, x, y, z)
}

func wrtPdb(t *testing.T, s string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "rna.pdb")
	if err := os.WriteFile(fname, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestExtract(t *testing.T) {
	s := atomLine(1, "P", "A", 1, 1, 2, 3) +
		atomLine(2, "C1'", "A", 1, 4.5, 5, 6) +
		atomLine(3, "N9", "A", 1, 7, 8, 9) +
		atomLine(4, "P", "U", 2, 0, 0, 0) +
		atomLine(5, "P", "A", 3, 1, 1, 1) +
		atomLine(6, "N9", "A", 3, 3, 3, 3) +
		atomLine(7, "C1'", "A", 3, 2, 2, 2)
	fname := wrtPdb(t, s)
	outDir := t.TempDir()
	written, err := Extract(fname, outDir, DfltResName)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatal("wanted 2 files, got", written)
	}
	if filepath.Base(written[0]) != "rna_1_extracted.xyz" {
		t.Error("file name", written[0])
	}
	b, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	want := "3\nrna_1_extracted.xyz\nC 4.5 5.0 6.0\nP 1.0 2.0 3.0\nN 7.0 8.0 9.0\n"
	if string(b) != want {
		t.Errorf("got\n%s\nwanted\n%s", b, want)
	}
}

func TestMissingAtom(t *testing.T) {
	s := atomLine(1, "P", "A", 1, 1, 2, 3) +
		atomLine(2, "C1'", "A", 1, 4, 5, 6)
	_, err := Extract(wrtPdb(t, s), t.TempDir(), DfltResName)
	if !errors.Is(err, ErrMissingAtom) {
		t.Fatal("wanted ErrMissingAtom, got", err)
	}
	if !strings.Contains(err.Error(), "N9") {
		t.Error("error does not say which atom", err)
	}
}

func TestOtherResName(t *testing.T) {
	s := atomLine(1, "P", "G", 7, 1, 2, 3) +
		atomLine(2, "C1'", "G", 7, 4, 5, 6) +
		atomLine(3, "N9", "G", 7, 7, 8, 9) +
		atomLine(4, "P", "A", 8, 0, 0, 0) // would be broken, but not asked for
	written, err := Extract(wrtPdb(t, s), t.TempDir(), "G")
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "rna_7_extracted.xyz" {
		t.Error("got", written)
	}
}

func TestNoFile(t *testing.T) {
	if _, err := Extract("/does/not/exist.pdb", t.TempDir(), DfltResName); err == nil {
		t.Error("no error on missing file")
	}
}
