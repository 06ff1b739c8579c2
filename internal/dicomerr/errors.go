// Package dicomerr defines the sentinel error classes shared across the
// classification and normalization pipelines.
package dicomerr

import "errors"

var (
	// ErrUnclassified means no strategy's rename rules matched the instance's
	// extracted attribute bag.
	ErrUnclassified = errors.New("dicom2nii: instance did not match any series verdict")

	// ErrMissingRequiredTag means a DICOM element required to proceed was absent.
	ErrMissingRequiredTag = errors.New("dicom2nii: required dicom tag missing")

	// ErrUnsupportedModality means the dataset's modality has no registered strategy table.
	ErrUnsupportedModality = errors.New("dicom2nii: unsupported modality")

	// ErrNiftiHeaderMismatch means a DWI/ADC header or affine comparison failed.
	ErrNiftiHeaderMismatch = errors.New("dicom2nii: nifti header mismatch")

	// ErrStudyFolderName means a study directory name did not match the expected layout.
	ErrStudyFolderName = errors.New("dicom2nii: malformed study folder name")

	// ErrWorkerCount means a requested worker count fell outside the configured bounds.
	ErrWorkerCount = errors.New("dicom2nii: invalid worker count")
)
