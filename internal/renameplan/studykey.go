// Package renameplan builds the on-disk destination path for a classified
// instance or a normalized NIfTI file, and parses the study-folder naming
// convention the pipeline reads its input from.
package renameplan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/dicomerr"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// StudyKey is the decomposition of one input study directory's name:
// "<StudyDate>_<AccessionNumber>_<Modality>_<PatientID>".
//
// The original implementation names its fourth capture group "description",
// but every call site actually treats it as the patient identifier; this
// type uses the name that matches its actual use.
type StudyKey struct {
	StudyDate       string
	AccessionNumber string
	Modality        string
	PatientID       string
}

var studyFolderPattern = regexp.MustCompile(`^(\d{8})_(\d{8})_(MR|CT)_(.*)$`)

// ParseStudyKey parses a study directory's base name.
func ParseStudyKey(name string) (StudyKey, error) {
	m := studyFolderPattern.FindStringSubmatch(name)
	if m == nil {
		return StudyKey{}, fmt.Errorf("%w: %q", dicomerr.ErrStudyFolderName, name)
	}
	return StudyKey{
		StudyDate:       m[1],
		AccessionNumber: m[2],
		Modality:        m[3],
		PatientID:       m[4],
	}, nil
}

// FormatStudyKey renders a StudyKey back to its directory-name form.
func FormatStudyKey(k StudyKey) string {
	return fmt.Sprintf("%s_%s_%s_%s", k.StudyDate, k.AccessionNumber, k.Modality, k.PatientID)
}

// Identifier is the top-level output folder name for one study, built
// straight from DICOM tags rather than parsed from an existing directory:
// "<PatientID>_<StudyDate>_<Modality>_<AccessionNumber>".
func Identifier(patientID, studyDate, modality, accessionNumber string) string {
	return fmt.Sprintf("%s_%s_%s_%s", patientID, studyDate, modality, accessionNumber)
}

// BuildIdentifier reads PatientID (0010,0020), StudyDate (0008,0020),
// Modality (0008,0060), and AccessionNumber (0008,0050) from d and returns
// the study's output folder name. ok is false when any of the four tags is
// absent or blank, in which case the whole study is skipped: a fatal
// condition for that study but not for the run.
func BuildIdentifier(d dicomdata.Dataset) (name string, ok bool) {
	patientID, ok1 := lookupTrimmed(d, tag.PatientID)
	studyDate, ok2 := lookupTrimmed(d, tag.StudyDate)
	modality, ok3 := lookupTrimmed(d, tag.Modality)
	accession, ok4 := lookupTrimmed(d, tag.AccessionNumber)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return "", false
	}
	return Identifier(patientID, studyDate, modality, accession), true
}

func lookupTrimmed(d dicomdata.Dataset, t tag.Tag) (string, bool) {
	v, present := d.Lookup(t)
	s := strings.TrimSpace(v.First())
	if !present || s == "" {
		return "", false
	}
	return s, true
}
