// Package normalize implements the post-conversion NIfTI file-naming and
// header-repair normalizers: one per series family (DWI, ADC, SWAN, T1, T2),
// run in a fixed order over each converted study directory.
package normalize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qaz1996001/dicom2nii/internal/config"
	"github.com/qaz1996001/dicom2nii/internal/pool"
)

// Normalizer renames and repairs the NIfTI files belonging to its family
// within one study directory.
type Normalizer interface {
	Name() string
	Process(studyDir string, cfg config.Config) error
}

// Manager runs every registered Normalizer, in order, over one study
// directory at a time. Unlike its original counterpart's mutable
// add/remove-strategy API, the family list here is fixed at construction.
type Manager struct {
	normalizers []Normalizer
}

// NewManager builds a Manager from normalizers in the given run order.
func NewManager(normalizers ...Normalizer) *Manager {
	return &Manager{normalizers: normalizers}
}

// Default returns the manager wired with every family in spec order: DWI,
// ADC, SWAN, T1, T2.
func Default() *Manager {
	return NewManager(
		NewDWINormalizer(),
		NewADCNormalizer(),
		NewSWANNormalizer(),
		NewT1Normalizer(),
		NewT2Normalizer(),
	)
}

// ProcessStudy deletes every .json sidecar in studyDir, then runs each
// normalizer over it in sequence. A study is never normalized concurrently
// with itself: later normalizers see the renamed output of earlier ones.
func (m *Manager) ProcessStudy(studyDir string, cfg config.Config) error {
	if err := deleteJSONSidecars(studyDir); err != nil {
		return err
	}
	for _, n := range m.normalizers {
		if err := n.Process(studyDir, cfg); err != nil {
			return fmt.Errorf("normalize %s: %w", n.Name(), err)
		}
	}
	return nil
}

// Run normalizes every study directory under root concurrently, bounded by
// workers; no two normalizers run concurrently within the same study.
func (m *Manager) Run(studyDirs []string, workers int, cfg config.Config) error {
	return pool.Run(len(studyDirs), workers, func(i int) error {
		return m.ProcessStudy(studyDirs[i], cfg)
	})
}

func deleteJSONSidecars(studyDir string) error {
	entries, err := os.ReadDir(studyDir)
	if err != nil {
		return fmt.Errorf("read study dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(studyDir, e.Name())); err != nil {
			return fmt.Errorf("delete sidecar %s: %w", e.Name(), err)
		}
	}
	return nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func listNifti(studyDir string) ([]string, error) {
	entries, err := os.ReadDir(studyDir)
	if err != nil {
		return nil, fmt.Errorf("read study dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if len(e.Name()) > 7 && e.Name()[len(e.Name())-7:] == ".nii.gz" {
			files = append(files, filepath.Join(studyDir, e.Name()))
		}
	}
	return files, nil
}
