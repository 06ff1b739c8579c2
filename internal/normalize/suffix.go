package normalize

import "github.com/qaz1996001/dicom2nii/internal/config"

// suffixOrdinal converts a disambiguating trailing letter ('a', 'b', ...) to
// its numeric ordinal. An unsuffixed file is implicitly "1", so the first
// suffixed duplicate becomes "2", matching the original numbering.
func suffixOrdinal(letter byte) int {
	return int(letter) - config.CharOffset
}
