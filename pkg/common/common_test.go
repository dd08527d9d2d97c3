package common_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/sample2pdb/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	const s = "1 1 0 0 0\n"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Errorf("wanted %q got %q", s, b)
	}
}

func TestLogWhere(t *testing.T) {
	if lg, err := LogWhere(""); err != nil || lg == nil {
		t.Fatal("discard logger broke", err)
	}
	fname := filepath.Join(t.TempDir(), "log.txt")
	lg, err := LogWhere(fname)
	if err != nil {
		t.Fatal(err)
	}
	lg.Println("skipping molecule")
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "skipping molecule") {
		t.Errorf("log file has %q", b)
	}
	if _, err := LogWhere("/does/not/exist/log"); err == nil {
		t.Error("expected error on impossible log file")
	}
}
