package normalize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// familyFile is one matched file belonging to a normalizer's family: the
// family-specific stem prefix (e.g. "DWI0", "ADC", "SWAN") plus whatever
// lowercase disambiguating letters the converter appended.
type familyFile struct {
	path   string
	prefix string
	letter string
}

// scanFamily finds every .nii.gz file in studyDir matching prefix, optively
// excluding files that also start with excludePrefix (SWAN vs eSWAN share a
// "SWAN" substring but must never be renumbered together), and requiring
// the trailing disambiguator to be 0..maxSuffixLen lowercase ASCII letters.
func scanFamily(studyDir, prefix, excludePrefix string, maxSuffixLen int) ([]familyFile, error) {
	entries, err := os.ReadDir(studyDir)
	if err != nil {
		return nil, fmt.Errorf("read study dir: %w", err)
	}
	var out []familyFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if excludePrefix != "" && strings.HasPrefix(name, excludePrefix) {
			continue
		}
		if !strings.HasSuffix(name, ".nii.gz") {
			continue
		}
		stem := strings.TrimSuffix(name, ".nii.gz")
		if !strings.HasPrefix(stem, prefix) {
			continue
		}
		tail := stem[len(prefix):]
		if len(tail) > maxSuffixLen || !isLowerASCII(tail) {
			continue
		}
		out = append(out, familyFile{path: filepath.Join(studyDir, name), prefix: prefix, letter: tail})
	}
	return out, nil
}

func isLowerASCII(s string) bool {
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// deleteUndersized removes every file at or below limit bytes, along with
// any sibling sidecar sharing its stem (.json, .bval, .bvec), and returns
// the survivors.
func deleteUndersized(files []familyFile, limit int64) ([]familyFile, error) {
	var survivors []familyFile
	for _, f := range files {
		size, err := fileSize(f.path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", f.path, err)
		}
		if size <= limit {
			if err := removeWithSidecars(f.path); err != nil {
				return nil, err
			}
			continue
		}
		survivors = append(survivors, f)
	}
	return survivors, nil
}

func removeWithSidecars(niftiPath string) error {
	stem := strings.TrimSuffix(niftiPath, ".nii.gz")
	for _, ext := range []string{".nii.gz", ".json", ".bval", ".bvec"} {
		p := stem + ext
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete %s: %w", p, err)
		}
	}
	return nil
}

// renumberSuffixes sorts files within one prefix group (unsuffixed first,
// then by letter) and renames every suffixed duplicate to
// "<prefix>_<ordinal>.nii.gz", carrying its sidecars along. The unsuffixed
// file, if present, is left unrenamed: it is implicitly ordinal 1. When a
// group contains exactly one file, any trailing letter is stripped instead
// of numbered: a lone "FOOa.nii.gz" becomes "FOO.nii.gz", not "FOO_2.nii.gz".
func renumberSuffixes(files []familyFile) error {
	byPrefix := make(map[string][]familyFile)
	for _, f := range files {
		byPrefix[f.prefix] = append(byPrefix[f.prefix], f)
	}
	for _, group := range byPrefix {
		if len(group) == 1 {
			f := group[0]
			if f.letter != "" {
				if err := renameWithSidecars(f.path, f.prefix); err != nil {
					return err
				}
			}
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].letter < group[j].letter })
		for _, f := range group {
			if f.letter == "" {
				continue
			}
			n := suffixOrdinal(f.letter[0])
			newStem := fmt.Sprintf("%s_%d", f.prefix, n)
			if err := renameWithSidecars(f.path, newStem); err != nil {
				return err
			}
		}
	}
	return nil
}

func renameWithSidecars(oldNiftiPath, newStem string) error {
	dir := filepath.Dir(oldNiftiPath)
	oldStem := strings.TrimSuffix(oldNiftiPath, ".nii.gz")
	for _, ext := range []string{".nii.gz", ".json", ".bval", ".bvec"} {
		oldPath := oldStem + ext
		if _, err := os.Stat(oldPath); err != nil {
			continue
		}
		newPath := filepath.Join(dir, newStem+ext)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("rename %s: %w", oldPath, err)
		}
	}
	return nil
}
