package renameplan

import (
	"fmt"
	"path/filepath"

	"github.com/qaz1996001/dicom2nii/internal/series"
)

// Plan is one classified instance's destination: it moves from Source into
// a directory named after its canonical series.Verdict, as
// "<Verdict>_NNNN.dcm" numbered by InstanceNum; the original file name is
// not kept.
type Plan struct {
	Source      string
	StudyRoot   string
	Verdict     series.Verdict
	Family      string
	InstanceNum int
}

// DestDir is the verdict-named directory this instance's converter input
// lives under: "<StudyRoot>/<Verdict>".
func (p Plan) DestDir() string {
	return filepath.Join(p.StudyRoot, string(p.Verdict))
}

// DestPath is the full destination path for the instance, numbered by its
// position within the series so a multi-frame series round-trips losslessly.
func (p Plan) DestPath() string {
	return filepath.Join(p.DestDir(), fmt.Sprintf("%s_%04d.dcm", p.Verdict, p.InstanceNum))
}

// NiftiBase is the stem a DICOM-to-NIfTI converter should give the output
// file for this plan's series, before any post-conversion normalizer runs:
// "<Verdict>.nii.gz".
func (p Plan) NiftiBase() string {
	return string(p.Verdict) + ".nii.gz"
}
