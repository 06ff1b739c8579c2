package normalize

import "github.com/qaz1996001/dicom2nii/internal/config"

type swanNormalizer struct{}

// NewSWANNormalizer builds the SWAN family normalizer. It excludes anything
// prefixed "eSWAN" so it never touches that sibling family's output, and
// allows up to two lowercase disambiguating letters (the original pattern's
// "[a-z]{0,2}"), unlike DWI/ADC's single-letter suffix.
func NewSWANNormalizer() Normalizer { return &swanNormalizer{} }

func (n *swanNormalizer) Name() string { return "SWAN" }

func (n *swanNormalizer) Process(studyDir string, cfg config.Config) error {
	matches, err := scanFamily(studyDir, "SWAN", "eSWAN", 2)
	if err != nil {
		return err
	}
	survivors, err := deleteUndersized(matches, cfg.FileSizeLimits.Large)
	if err != nil {
		return err
	}
	return renumberSuffixes(survivors)
}
