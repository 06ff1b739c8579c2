package strategy

import (
	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

type dscStrategy struct{}

// DSCStrategy accepts dynamic-susceptibility-contrast perfusion series. Which
// description patterns are even tested depends on acquisition type: a 2D
// acquisition can only resolve to the bare DSC verdict; an acquisition with
// no MRAcquisitionType tag at all can only resolve to one of the derived
// perfusion maps (rCBF/rCBV/MTT). Neither subset is reachable from the
// other's acquisition-type branch.
func DSCStrategy() Strategy { return &dscStrategy{} }

func (s *dscStrategy) Name() string { return "DSC" }

func (s *dscStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	switch attrs.ExtractAcquisitionType(d) {
	case attrs.Type2D:
		if containsFold(desc, "AUTOPWI") || containsFold(desc, "Perfusion") {
			return series.DSC, true
		}
		return "", false
	case attrs.AcquisitionTypeNull:
		switch {
		case containsFold(desc, "CBF"):
			return series.RCBF, true
		case containsFold(desc, "CBV"):
			return series.RCBV, true
		case containsFold(desc, "MTT"):
			return series.MTT, true
		default:
			return "", false
		}
	default:
		return "", false
	}
}
