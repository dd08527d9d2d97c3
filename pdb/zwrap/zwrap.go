// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Sample files and pdb files both come through here, sometimes from
// a pipe, so we look at the first two bytes rather than seeking back.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

type ZRdr struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // buffered view of fp
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (zr *ZRdr) Close() error {
	if zr.zrdr == nil {
		return zr.fp.Close()
	}
	var errs []error
	if e := zr.zrdr.Close(); e != nil { // Close decompressor
		errs = append(errs, e)
	}
	if e := zr.fp.Close(); e != nil { // and backing file
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (zr *ZRdr) Read(p []byte) (int, error) {
	if zr.zrdr != nil {
		return zr.zrdr.Read(p)
	}
	return zr.rdr.Read(p)
}

// Compressed says if we are decompressing
func (zr *ZRdr) Compressed() bool { return zr.zrdr != nil }

// Wrap takes a source which must be gzipped and wraps it so the
// correct Close and Read will be called.
func Wrap(fp io.ReadCloser) (*ZRdr, error) {
	zr := ZRdr{fp: fp, rdr: fp}
	var err error
	zr.zrdr, err = gzip.NewReader(fp)
	return &zr, err
}

// WrapMaybe looks at the first bytes of the stream and only puts a
// decompressor in front if it sees the gzip magic number. Anything
// shorter than the magic number is passed through as is.
func WrapMaybe(fp io.ReadCloser) (*ZRdr, error) {
	brdr := bufio.NewReader(fp)
	zr := ZRdr{fp: fp, rdr: brdr}
	head, err := brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) < len(gzMagic) || head[0] != gzMagic[0] || head[1] != gzMagic[1] {
		return &zr, nil
	}
	if zr.zrdr, err = gzip.NewReader(brdr); err != nil {
		return nil, err
	}
	return &zr, nil
}
