package normalize

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qaz1996001/dicom2nii/internal/config"
)

func buildNifti(t *testing.T, path string, srow [4]float32) {
	t.Helper()
	const headerSize = 348
	raw := make([]byte, headerSize+4)
	dim := [8]int16{3, 64, 64, 30, 1, 1, 1, 1}
	for i, v := range dim {
		binary.LittleEndian.PutUint16(raw[40+2*i:], uint16(v))
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(raw[280+4*i:], math.Float32bits(srow[i]))
		binary.LittleEndian.PutUint32(raw[296+4*i:], math.Float32bits(srow[i]))
		binary.LittleEndian.PutUint32(raw[312+4*i:], math.Float32bits(srow[i]))
	}
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

func readBody(t *testing.T, path string) []byte {
	t.Helper()
	f, err := os.Open(path)
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
	return buf.Bytes()
}

// TestS5ADCDWIRebinding is spec scenario S5: two DWI0/ADC pairs distinguished
// by affine; after ADC normalization each ADC file is renamed to match its
// paired DWI0 file's stem and carries that DWI's geometry.
func TestS5ADCDWIRebinding(t *testing.T) {
	dir := t.TempDir()
	a1 := [4]float32{1, 0, 0, -32}
	a2 := [4]float32{1, 0, 0, -40}

	buildNifti(t, filepath.Join(dir, "DWI0.nii.gz"), a1)
	buildNifti(t, filepath.Join(dir, "DWI0a.nii.gz"), a2)
	buildNifti(t, filepath.Join(dir, "ADC.nii.gz"), a1)
	buildNifti(t, filepath.Join(dir, "ADCa.nii.gz"), a2)

	// Zero out the size thresholds: this test exercises rebinding, not the
	// small-file deletion step, and these synthetic files are tiny.
	cfg := config.Default()
	cfg.FileSizeLimits.Small = 0
	cfg.FileSizeLimits.Medium = 0
	cfg.FileSizeLimits.Large = 0

	// Run DWI normalization first, as the fixed orchestration order
	// requires, so DWI0a becomes DWI0_2 before ADC pairing runs.
	if err := NewDWINormalizer().Process(dir, cfg); err != nil {
		t.Fatal(err)
	}
	if err := NewADCNormalizer().Process(dir, cfg); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"DWI0.nii.gz", "DWI0_2.nii.gz", "ADC.nii.gz", "ADC_2.nii.gz"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected %s to exist: %v", want, err)
		}
	}

	adcBody := readBody(t, filepath.Join(dir, "ADC.nii.gz"))
	srowX := math.Float32frombits(binary.LittleEndian.Uint32(adcBody[292:])) // srowX[3]
	if srowX != a1[3] {
		t.Errorf("ADC.nii.gz affine not repaired from its DWI0 pair: got %v, want %v", srowX, a1[3])
	}
	adc2Body := readBody(t, filepath.Join(dir, "ADC_2.nii.gz"))
	srowX2 := math.Float32frombits(binary.LittleEndian.Uint32(adc2Body[292:])) // srowX[3]
	if srowX2 != a2[3] {
		t.Errorf("ADC_2.nii.gz affine not repaired from its DWI0_2 pair: got %v, want %v", srowX2, a2[3])
	}
}
