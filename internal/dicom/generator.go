// Package dicom writes the synthetic DICOM instances the classification
// pipeline is exercised against: one minimal, tag-accurate file per
// internal/dicom/modalities.Preset, written with github.com/suyashkumar/dicom
// the same way the classification pipeline reads instances back with
// internal/dicomdata. Pixel data is a flat, minimum-valid frame; this package
// never interprets or renders pixel content, only carries it.
package dicom

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/qaz1996001/dicom2nii/internal/dicom/modalities"
	"github.com/qaz1996001/dicom2nii/internal/pool"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// GeneratorOptions configures a fixture-writing run.
type GeneratorOptions struct {
	// OutputDir is the directory each fixture file is written into.
	OutputDir string
	// Seed makes the run's element choices (patient name, UIDs) reproducible.
	Seed uint64
	// Workers bounds how many fixture files are written in parallel; 0
	// defaults to 1.
	Workers int
}

// GeneratedFile is one fixture instance written to disk.
type GeneratedFile struct {
	Path   string
	Preset modalities.Preset
}

const fixtureDim = 16

// GenerateFixtures writes one DICOM instance per preset in
// modalities.AllPresets() into opts.OutputDir, named "<preset>.dcm".
func GenerateFixtures(opts GeneratorOptions) ([]GeneratedFile, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	presets := modalities.AllPresets()
	files := make([]GeneratedFile, len(presets))
	for i, p := range presets {
		files[i] = GeneratedFile{
			Path:   filepath.Join(opts.OutputDir, string(p)+".dcm"),
			Preset: p,
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	err := pool.Run(len(presets), workers, func(i int) error {
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
		elements := presets[i].Elements(rng)
		elements = append(elements, pixelDataElement())
		return writeDatasetToFile(files[i].Path, dicom.Dataset{Elements: elements})
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// pixelDataElement returns a minimal uncompressed frame of fixtureDim x
// fixtureDim mid-gray pixels: just enough for the instance to be a valid
// MR image, never meant to be displayed or analyzed.
func pixelDataElement() *dicom.Element {
	nativeFrame := frame.NewNativeFrame[uint16](16, fixtureDim, fixtureDim, fixtureDim*fixtureDim, 1)
	for i := range nativeFrame.RawData {
		nativeFrame.RawData[i] = 2048
	}
	info := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{Encapsulated: false, NativeData: nativeFrame},
		},
	}
	elem, err := dicom.NewElement(tag.PixelData, info)
	if err != nil {
		panic(fmt.Sprintf("failed to create pixel data element: %v", err))
	}
	return elem
}

func writeDatasetToFile(filename string, ds dicom.Dataset) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return dicom.Write(f, ds)
}
