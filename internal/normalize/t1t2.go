package normalize

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/config"
)

// orientationSuffixPattern captures a T1/T2 stem, its orientation token
// (plain or reformatted), and an optional single disambiguating letter. The
// numeric suffix is inserted immediately after the orientation token, not at
// the end of the file name: "T1CUBEAXIb.nii.gz" -> "T1CUBEAXI_3.nii.gz", not
// "T1CUBEAXI.nii.gz_3".
var orientationSuffixPattern = regexp.MustCompile(`^(.+?)(AXIr?|SAGr?|CORr?)([a-z]?)\.nii\.gz$`)

type t1Normalizer struct{}

// NewT1Normalizer builds the T1 family normalizer.
func NewT1Normalizer() Normalizer { return &t1Normalizer{} }

func (n *t1Normalizer) Name() string { return "T1" }

func (n *t1Normalizer) Process(studyDir string, cfg config.Config) error {
	return normalizeOrientationSuffixed(studyDir, "T1", cfg.FileSizeLimits.Large)
}

type t2Normalizer struct{}

// NewT2Normalizer builds the T2 family normalizer. T2 shares T1's
// orientation-aware suffix scheme exactly; only the stem prefix differs.
func NewT2Normalizer() Normalizer { return &t2Normalizer{} }

func (n *t2Normalizer) Name() string { return "T2" }

func (n *t2Normalizer) Process(studyDir string, cfg config.Config) error {
	return normalizeOrientationSuffixed(studyDir, "T2", cfg.FileSizeLimits.Large)
}

func normalizeOrientationSuffixed(studyDir, prefix string, limit int64) error {
	paths, err := globPrefix(studyDir, prefix)
	if err != nil {
		return err
	}

	var survivors []string
	for _, p := range paths {
		size, err := fileSize(p)
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}
		if size <= limit {
			if err := removeWithSidecars(p); err != nil {
				return err
			}
			continue
		}
		survivors = append(survivors, p)
	}

	// Group survivors by their weighting+orientation stem (e.g. "T1CUBEAXI"),
	// since the disambiguating letter only distinguishes files that share
	// that stem; a lone file within its stem group gets its letter stripped
	// rather than numbered, matching the family-wide rule in family.go.
	type match struct {
		path   string
		stem   string // m[1] + m[2]
		letter string
	}
	byStem := make(map[string][]match)
	for _, p := range survivors {
		name := filepath.Base(p)
		m := orientationSuffixPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		stem := m[1] + m[2]
		byStem[stem] = append(byStem[stem], match{path: p, stem: stem, letter: m[3]})
	}

	for stem, group := range byStem {
		if len(group) == 1 {
			if group[0].letter != "" {
				if err := renameOrientationFile(group[0].path, stem); err != nil {
					return err
				}
			}
			continue
		}
		for _, f := range group {
			if f.letter == "" {
				continue
			}
			ordinal := suffixOrdinal(f.letter[0])
			newStem := fmt.Sprintf("%s_%d", stem, ordinal)
			if err := renameOrientationFile(f.path, newStem); err != nil {
				return err
			}
		}
	}
	return nil
}

func renameOrientationFile(oldPath, newStem string) error {
	dir := filepath.Dir(oldPath)
	oldStem := strings.TrimSuffix(filepath.Base(oldPath), ".nii.gz")
	for _, ext := range []string{".nii.gz", ".json"} {
		old := filepath.Join(dir, oldStem+ext)
		if _, err := os.Stat(old); err != nil {
			continue
		}
		if err := os.Rename(old, filepath.Join(dir, newStem+ext)); err != nil {
			return fmt.Errorf("rename %s: %w", old, err)
		}
	}
	return nil
}
