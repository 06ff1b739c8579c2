package niftihdr

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// buildRaw constructs a minimal NIfTI-1 header (plus a small payload) with
// the given voxel dimensions and sform affine rows, matching the byte
// offsets Read/parse expect.
func buildRaw(t *testing.T, dims [3]int16, srowX, srowY, srowZ [4]float32, payload []byte) []byte {
	t.Helper()
	raw := make([]byte, HeaderSize+len(payload))
	dim := [8]int16{3, dims[0], dims[1], dims[2], 1, 1, 1, 1}
	for i, v := range dim {
		binary.LittleEndian.PutUint16(raw[40+2*i:], uint16(v))
	}
	pixdim := [8]float32{1, 1, 1, 1, 0, 0, 0, 0}
	for i, v := range pixdim {
		binary.LittleEndian.PutUint32(raw[76+4*i:], math.Float32bits(v))
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(raw[280+4*i:], math.Float32bits(srowX[i]))
		binary.LittleEndian.PutUint32(raw[296+4*i:], math.Float32bits(srowY[i]))
		binary.LittleEndian.PutUint32(raw[312+4*i:], math.Float32bits(srowZ[i]))
	}
	copy(raw[HeaderSize:], payload)
	return raw
}

func writeGzipFile(t *testing.T, path string, raw []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadAndSameShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DWI0.nii.gz")
	raw := buildRaw(t, [3]int16{64, 64, 30},
		[4]float32{1, 0, 0, -32}, [4]float32{0, 1, 0, -32}, [4]float32{0, 0, 1, -15},
		[]byte{1, 2, 3, 4})
	writeGzipFile(t, path, raw)

	h, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if h.Shape() != [3]int16{64, 64, 30} {
		t.Errorf("shape = %v", h.Shape())
	}

	other, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !h.SameShape(other) {
		t.Error("expected identical headers to report the same shape")
	}
}

// TestApplyGeometryAndWriteHeader is the core of spec scenario S5: an ADC
// header's pixdim/affine are overwritten with its paired DWI's geometry
// while the voxel payload is left untouched.
func TestApplyGeometryAndWriteHeader(t *testing.T) {
	dir := t.TempDir()
	dwiPath := filepath.Join(dir, "DWI0.nii.gz")
	adcPath := filepath.Join(dir, "ADC.nii.gz")

	dwiRaw := buildRaw(t, [3]int16{64, 64, 30},
		[4]float32{2, 0, 0, -64}, [4]float32{0, 2, 0, -64}, [4]float32{0, 0, 2, -30},
		[]byte{9, 9, 9})
	adcPayload := []byte{5, 6, 7, 8}
	adcRaw := buildRaw(t, [3]int16{64, 64, 30},
		[4]float32{1, 0, 0, 0}, [4]float32{0, 1, 0, 0}, [4]float32{0, 0, 1, 0},
		adcPayload)

	writeGzipFile(t, dwiPath, dwiRaw)
	writeGzipFile(t, adcPath, adcRaw)

	dwiHdr, err := Read(dwiPath)
	if err != nil {
		t.Fatal(err)
	}
	adcHdr, err := Read(adcPath)
	if err != nil {
		t.Fatal(err)
	}
	if !adcHdr.SameShape(dwiHdr) {
		t.Fatal("expected matching shapes")
	}
	if adcHdr.SameAffine(dwiHdr) {
		t.Fatal("affines should differ before repair")
	}

	adcHdr.ApplyGeometry(dwiHdr)
	if err := WriteHeader(adcPath, adcHdr); err != nil {
		t.Fatal(err)
	}

	repaired, err := Read(adcPath)
	if err != nil {
		t.Fatal(err)
	}
	if !repaired.SameAffine(dwiHdr) {
		t.Errorf("ADC affine after repair = %+v, want DWI's %+v", repaired.SRowX, dwiHdr.SRowX)
	}
	if repaired.PixDim != dwiHdr.PixDim {
		t.Errorf("ADC pixdim after repair = %v, want DWI's %v", repaired.PixDim, dwiHdr.PixDim)
	}

	// Voxel payload must survive untouched.
	f, err := os.Open(adcPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(gz); err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()[HeaderSize:]
	if !bytes.Equal(body, adcPayload) {
		t.Errorf("voxel payload changed: got %v, want %v", body, adcPayload)
	}
}
