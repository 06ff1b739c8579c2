package strategy

import (
	"regexp"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

var dwiPattern = regexp.MustCompile(`(?i).*(DWI|AUTODIFF).*`)
var adcPattern = regexp.MustCompile(`(?i).*(ADC).*`)
var eadcPattern = regexp.MustCompile(`(?i).*(eADC).*`)

func seedOrientationAndBValue(d dicomdata.Dataset, b attrs.Bag) {
	b.Add(attrs.ExtractOrientation(d))
	b.Add(attrs.ExtractBValue(d))
}

// DWIStrategy accepts 2D MR diffusion-weighted series, split by b-value.
func DWIStrategy() Strategy {
	return &Table{
		Name_:    "DWI",
		Modality: attrs.MR,
		AcqTypes: acqSet(attrs.Type2D),
		Pattern:  dwiPattern,
		Seed:     seedOrientationAndBValue,
		Rules: []Rule{
			{Verdict: series.DWI0, Required: bag(attrs.B0, attrs.AXI)},
			{Verdict: series.DWI1000, Required: bag(attrs.B1000, attrs.AXI)},
		},
	}
}

// ADCStrategy accepts 2D MR apparent-diffusion-coefficient maps, plus
// datasets that carry no MRAcquisitionType tag at all (common for derived
// ADC maps re-exported without the original acquisition's 2D/3D flag).
func ADCStrategy() Strategy {
	return &Table{
		Name_:    "ADC",
		Modality: attrs.MR,
		AcqTypes: acqSet(attrs.Type2D, attrs.AcquisitionTypeNull),
		Pattern:  adcPattern,
		Seed: func(d dicomdata.Dataset, b attrs.Bag) {
			b.Add(attrs.ExtractOrientation(d))
		},
		Rules: []Rule{
			{Verdict: series.ADC, Required: bag(attrs.AXI)},
		},
	}
}

// EADCStrategy accepts 3D (or acquisition-type-absent) exponential-ADC
// series; a description match alone is sufficient.
func EADCStrategy() Strategy {
	return &Table{
		Name_:        "eADC",
		Modality:     attrs.MR,
		AcqTypes:     acqSet(attrs.Type3D, attrs.AcquisitionTypeNull),
		Pattern:      eadcPattern,
		FixedVerdict: series.EADC,
	}
}
