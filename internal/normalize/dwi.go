package normalize

import "github.com/qaz1996001/dicom2nii/internal/config"

type dwiNormalizer struct{}

// NewDWINormalizer builds the DWI family normalizer: b=0 and b=1000 series
// are each renumbered independently, since a study can carry duplicates of
// either.
func NewDWINormalizer() Normalizer { return &dwiNormalizer{} }

func (n *dwiNormalizer) Name() string { return "DWI" }

func (n *dwiNormalizer) Process(studyDir string, cfg config.Config) error {
	for _, prefix := range []string{"DWI0", "DWI1000"} {
		matches, err := scanFamily(studyDir, prefix, "", 1)
		if err != nil {
			return err
		}
		survivors, err := deleteUndersized(matches, cfg.FileSizeLimits.Medium)
		if err != nil {
			return err
		}
		if err := renumberSuffixes(survivors); err != nil {
			return err
		}
	}
	return nil
}
