package strategy

import (
	"regexp"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// swanPattern matches both SWAN and eSWAN descriptions; the two families are
// told apart by acquisition type (SWAN: 2D or 3D, eSWAN: 3D only) and by the
// pulse-sequence-name marker where present.
var swanPattern = regexp.MustCompile(`(?i).*(SWAN).*`)

type swanStrategy struct{}

// SWANStrategy accepts 2D or 3D susceptibility-weighted angiography series.
// It defers to ESWANStrategy whenever the pulse-sequence name identifies the
// instance as eSWAN, since both families share the same description pattern.
func SWANStrategy() Strategy { return &swanStrategy{} }

func (s *swanStrategy) Name() string { return "SWAN" }

func (s *swanStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR {
		return "", false
	}
	acq := attrs.ExtractAcquisitionType(d)
	if acq != attrs.Type2D && acq != attrs.Type3D {
		return "", false
	}
	if !swanPattern.MatchString(attrs.SeriesDescription(d)) {
		return "", false
	}
	if attrs.DetectSwanKind(d) == attrs.ESWAN {
		return "", false
	}

	b := attrs.NewBag()
	b.Add(attrs.ExtractOrientation(d))
	b.Add(attrs.DetectOriginal(d))
	b.Add(attrs.DetectMip(d))
	b.Add(attrs.DetectSwanPhase(d))

	if acq == attrs.Type2D {
		return bestRule(b, []Rule{
			{Verdict: series.SWAN, Required: bag(attrs.AXI, attrs.ORIGINAL)},
			{Verdict: series.SWANmIP, Required: bag(attrs.AXI, attrs.MIP)},
			{Verdict: series.SWANPHASE, Required: bag(attrs.AXI, attrs.PHASE)},
		})
	}
	return bestRule(b, []Rule{
		{Verdict: series.SWAN, Required: bag(attrs.AXI, attrs.ORIGINAL)},
		{Verdict: series.SWANmIP, Required: bag(attrs.AXI, attrs.MIP)},
	})
}

type eswanStrategy struct{}

// ESWANStrategy accepts 3D-only enhanced-SWAN series.
func ESWANStrategy() Strategy { return &eswanStrategy{} }

func (s *eswanStrategy) Name() string { return "eSWAN" }

func (s *eswanStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	if !swanPattern.MatchString(attrs.SeriesDescription(d)) {
		return "", false
	}

	b := attrs.NewBag()
	b.Add(attrs.DetectOriginal(d))
	b.Add(attrs.DetectMip(d))

	return bestRule(b, []Rule{
		{Verdict: series.ESWAN, Required: bag(attrs.ORIGINAL)},
		{Verdict: series.ESWANmIP, Required: bag(attrs.MIP)},
	})
}
