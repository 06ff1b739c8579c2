package normalize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/config"
	"github.com/qaz1996001/dicom2nii/internal/normalize/niftihdr"
)

type adcNormalizer struct{}

// NewADCNormalizer builds the ADC family normalizer, grounded on the
// original nifti/strategies.py ADC strategy (the version actually wired into
// the post-process manager; processing/nifti/structure/ADC.py is a verbatim,
// unreferenced duplicate of the same logic and is not used as a source).
func NewADCNormalizer() Normalizer { return &adcNormalizer{} }

func (n *adcNormalizer) Name() string { return "ADC" }

func (n *adcNormalizer) Process(studyDir string, cfg config.Config) error {
	matches, err := scanFamily(studyDir, "ADC", "", 1)
	if err != nil {
		return err
	}
	survivors, err := deleteUndersized(matches, cfg.FileSizeLimits.Small)
	if err != nil {
		return err
	}
	if err := renumberSuffixes(survivors); err != nil {
		return err
	}
	return repairADCHeaders(studyDir)
}

// pathHeader pairs a file path with its parsed header, kept in a slice
// rather than a map so pairing below is deterministic: os.ReadDir (via
// globPrefix) already returns entries sorted by name, and a map would
// discard that order.
type pathHeader struct {
	path string
	hdr  niftihdr.Header
}

// repairADCHeaders copies a DWI0 file's pixdim and sform affine onto every
// surviving ADC file of the same voxel shape (ADC reconstructions commonly
// carry a degenerate affine), and, when more than one ADC file exists in the
// study, renames each ADC file to mirror the disambiguating suffix of its
// paired DWI0 file so the two stay associated after renumbering. That
// pairing identifies the DWI0 file by the ADC file's own pre-repair affine,
// which a scanner's ADC reconstruction already inherits from its source DWI
// series; it is looked up before the header repair overwrites that affine.
// The paired DWI0 file supplies the copied geometry when it shares the ADC
// file's shape; otherwise, and whenever there is a single ADC file, the
// geometry comes from the first DWI0 file in directory order with that shape.
func repairADCHeaders(studyDir string) error {
	adcPaths, err := globPrefix(studyDir, "ADC")
	if err != nil {
		return err
	}
	dwiPaths, err := globPrefix(studyDir, "DWI0")
	if err != nil {
		return err
	}
	if len(adcPaths) == 0 || len(dwiPaths) == 0 {
		return nil
	}

	dwiHeaders := make([]pathHeader, 0, len(dwiPaths))
	for _, p := range dwiPaths {
		h, err := niftihdr.Read(p)
		if err != nil {
			return err
		}
		dwiHeaders = append(dwiHeaders, pathHeader{path: p, hdr: h})
	}

	for _, adcPath := range adcPaths {
		adcHdr, err := niftihdr.Read(adcPath)
		if err != nil {
			return err
		}
		originalAffine := adcHdr

		var rebindTarget pathHeader
		rebind := false
		if len(adcPaths) > 1 {
			rebindTarget, rebind = findAffineMatch(dwiHeaders, originalAffine)
		}

		geometrySource, ok := findShapeMatch(dwiHeaders, adcHdr)
		if rebind && rebindTarget.hdr.SameShape(adcHdr) {
			geometrySource, ok = rebindTarget, true
		}
		if ok {
			adcHdr.ApplyGeometry(geometrySource.hdr)
			if err := niftihdr.WriteHeader(adcPath, adcHdr); err != nil {
				return err
			}
		}

		if rebind {
			if err := rebindToDWISuffix(adcPath, rebindTarget.path); err != nil {
				return err
			}
		}
	}
	return nil
}

func findShapeMatch(candidates []pathHeader, target niftihdr.Header) (pathHeader, bool) {
	for _, c := range candidates {
		if c.hdr.SameShape(target) {
			return c, true
		}
	}
	return pathHeader{}, false
}

func findAffineMatch(candidates []pathHeader, target niftihdr.Header) (pathHeader, bool) {
	for _, c := range candidates {
		if c.hdr.SameAffine(target) {
			return c, true
		}
	}
	return pathHeader{}, false
}

// rebindToDWISuffix renames an ADC file to carry the same disambiguating
// suffix as its paired DWI0 file, e.g. "DWI0_2.nii.gz" pairs with
// "ADC_2.nii.gz"; the ADC file's own .json/.bval/.bvec sidecars are renamed
// along with it.
func rebindToDWISuffix(adcPath, dwiPath string) error {
	dwiBase := filepath.Base(strings.TrimSuffix(dwiPath, ".nii.gz"))
	newStem := strings.Replace(dwiBase, "DWI0", "ADC", 1)
	if newStem == dwiBase {
		return nil
	}
	return renameWithSidecars(adcPath, newStem)
}

func globPrefix(studyDir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(studyDir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) && strings.HasSuffix(e.Name(), ".nii.gz") {
			out = append(out, filepath.Join(studyDir, e.Name()))
		}
	}
	return out, nil
}
