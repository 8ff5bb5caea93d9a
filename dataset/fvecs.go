package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// fvecs record layout: [dim int32 LE][dim x float32 LE], repeated.
// This is the file format used by common ANN benchmark datasets.

// Load reads a Flat dataset from an fvecs file. Files ending in ".zst" or
// ".lz4" are decompressed transparently.
func Load(path string) (*Flat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)

	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	case ".lz4":
		r = lz4.NewReader(r)
	}

	return Read(r)
}

// Read reads fvecs records from r until EOF.
func Read(r io.Reader) (*Flat, error) {
	var (
		data []float32
		dim  int
		hdr  [4]byte
	)

	for rec := 0; ; rec++ {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("record %d header: %w", rec, err)
		}

		d := int(int32(binary.LittleEndian.Uint32(hdr[:])))
		if d <= 0 {
			return nil, fmt.Errorf("record %d: invalid dimension %d", rec, d)
		}
		if rec == 0 {
			dim = d
		} else if d != dim {
			return nil, fmt.Errorf("record %d has dimension %d, expected %d", rec, d, dim)
		}

		buf := make([]byte, 4*d)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("record %d payload: %w", rec, err)
		}
		for i := 0; i < d; i++ {
			data = append(data, math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:])))
		}
	}

	return NewFlat(data, dim)
}

// Save writes ds to an fvecs file. Files ending in ".zst" or ".lz4" are
// compressed transparently.
func Save(path string, ds Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	var w io.Writer = bw

	var closer io.Closer

	switch filepath.Ext(path) {
	case ".zst":
		enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		w, closer = enc, enc
	case ".lz4":
		enc := lz4.NewWriter(bw)
		w, closer = enc, enc
	}

	if err := Write(w, ds); err != nil {
		return err
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close compressor: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	return f.Close()
}

// Write writes ds as fvecs records to w.
func Write(w io.Writer, ds Dataset) error {
	dim := ds.Dim()
	buf := make([]byte, 4+4*dim)
	binary.LittleEndian.PutUint32(buf[:4], uint32(dim))

	for i := 0; i < ds.Len(); i++ {
		vec := ds.Vector(i)
		for j, v := range vec {
			binary.LittleEndian.PutUint32(buf[4+4*j:], math.Float32bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}
