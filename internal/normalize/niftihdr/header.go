// Package niftihdr reads and rewrites just enough of a NIfTI-1 header to
// support the post-conversion normalizers: dimensions, voxel spacing, and
// the sform affine. It intentionally does not model the rest of the NIfTI-1
// format (intent codes, extensions, non-sform orientation) since nothing in
// this module needs them.
package niftihdr

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// HeaderSize is the fixed size of a NIfTI-1 header.
const HeaderSize = 348

// Header holds the fields the normalizers read or rewrite.
type Header struct {
	Dim    [8]int16
	PixDim [8]float32
	SRowX  [4]float32
	SRowY  [4]float32
	SRowZ  [4]float32
	raw    []byte // full header bytes, mutated in place by the setters below
}

// Shape returns the voxel grid dimensions (nx, ny, nz).
func (h Header) Shape() [3]int16 {
	return [3]int16{h.Dim[1], h.Dim[2], h.Dim[3]}
}

// SameShape reports whether two headers describe the same voxel grid.
func (h Header) SameShape(o Header) bool {
	return h.Shape() == o.Shape()
}

// SameAffine reports whether two headers' sform rows are exactly equal,
// the pairing test multi-ADC rebinding uses to find a series' source DWI.
func (h Header) SameAffine(o Header) bool {
	return h.SRowX == o.SRowX && h.SRowY == o.SRowY && h.SRowZ == o.SRowZ
}

// Read parses a .nii.gz file's header.
func Read(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("niftihdr: open: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return Header{}, fmt.Errorf("niftihdr: gunzip: %w", err)
	}
	defer gz.Close()

	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(gz, raw); err != nil {
		return Header{}, fmt.Errorf("niftihdr: read header: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (Header, error) {
	if len(raw) < HeaderSize {
		return Header{}, fmt.Errorf("niftihdr: short header (%d bytes)", len(raw))
	}
	h := Header{raw: append([]byte(nil), raw...)}
	for i := 0; i < 8; i++ {
		h.Dim[i] = int16(binary.LittleEndian.Uint16(raw[40+2*i:]))
	}
	for i := 0; i < 8; i++ {
		h.PixDim[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[76+4*i:]))
	}
	for i := 0; i < 4; i++ {
		h.SRowX[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[280+4*i:]))
		h.SRowY[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[296+4*i:]))
		h.SRowZ[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[312+4*i:]))
	}
	return h, nil
}

// ApplyGeometry copies src's pixdim and sform affine onto h's in-memory
// representation (used to repair an ADC header from its paired DWI's
// geometry after a shape-matching pairing).
func (h *Header) ApplyGeometry(src Header) {
	h.PixDim = src.PixDim
	h.SRowX = src.SRowX
	h.SRowY = src.SRowY
	h.SRowZ = src.SRowZ
	for i := 0; i < 8; i++ {
		putFloat32(h.raw, 76+4*i, h.PixDim[i])
	}
	for i := 0; i < 4; i++ {
		putFloat32(h.raw, 280+4*i, h.SRowX[i])
		putFloat32(h.raw, 296+4*i, h.SRowY[i])
		putFloat32(h.raw, 312+4*i, h.SRowZ[i])
	}
}

func putFloat32(raw []byte, offset int, v float32) {
	binary.LittleEndian.PutUint32(raw[offset:], math.Float32bits(v))
}

// WriteHeader rewrites path's header in place, leaving the voxel payload
// untouched, and re-gzips the result.
func WriteHeader(path string, h Header) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("niftihdr: open: %w", err)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("niftihdr: gunzip: %w", err)
	}
	body, err := io.ReadAll(gz)
	gz.Close()
	f.Close()
	if err != nil {
		return fmt.Errorf("niftihdr: read body: %w", err)
	}
	if len(body) < HeaderSize {
		return fmt.Errorf("niftihdr: short body (%d bytes)", len(body))
	}
	copy(body[:HeaderSize], h.raw[:HeaderSize])

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("niftihdr: gzip body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("niftihdr: close gzip: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// RoundVoxelsInt32 is a placeholder seam for the original implementation's
// int32-rounding step on rebound ADC voxel data; the voxel payload itself is
// copied through unchanged by WriteHeader since only the header fields
// differ between a DWI/ADC pair sharing one acquisition's geometry.
func RoundVoxelsInt32(v float64) int32 {
	return int32(math.Round(v))
}
