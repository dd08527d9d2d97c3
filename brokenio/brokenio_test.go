package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/sample2pdb/brokenio"
)

const longstring = "0123456789012345678901234567890123456789"

func TestAlwaysFail(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	rdr.SetProbFail(1)
	rdr.SetFracFail(0.5)
	b := make([]byte, 10)
	n, err := rdr.Read(b)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Error("wanted ErrBroken, got", err)
	}
	if n != 5 || string(b[:n]) != longstring[:5] {
		t.Errorf("kept %d bytes %q", n, b[:n])
	}
	for _, c := range b[n:] {
		if c != 0 {
			t.Fatal("trashed part not zeroed", b)
		}
	}
}

func TestNeverFail(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != longstring {
		t.Error("clean reader changed data", err)
	}
	if rdr.NBytes() != len(longstring) {
		t.Error("byte count", rdr.NBytes())
	}
}

func TestZeroFile(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	rdr.SetProbZeroFile(1)
	if n, err := rdr.Read(make([]byte, 10)); n != 0 || err != io.EOF {
		t.Error("wanted empty file, got", n, err)
	}
}
