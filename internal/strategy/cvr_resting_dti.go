package strategy

import (
	"regexp"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

var cvrPattern = regexp.MustCompile(`(?i).*(CVR).*`)

// CVRStrategy accepts 2D cerebrovascular-reactivity series, refined by
// repetition time and body part. This is the only family whose original
// source explicitly sorted its rename table by descending specificity; the
// generic bestRule tie-break reproduces that sort for every family uniformly.
func CVRStrategy() Strategy {
	return &Table{
		Name_:    "CVR",
		Modality: attrs.MR,
		AcqTypes: acqSet(attrs.Type2D),
		Pattern:  cvrPattern,
		Seed: func(d dicomdata.Dataset, b attrs.Bag) {
			b.Add(attrs.ExtractRepetition(d))
			b.Add(attrs.ExtractBodyPart(d))
		},
		Rules: []Rule{
			{Verdict: series.CVRBare, Required: bag()},
			{Verdict: series.CVR1000, Required: bag(attrs.TR1000)},
			{Verdict: series.CVR2000, Required: bag(attrs.TR2000)},
			{Verdict: series.CVR2000EYE, Required: bag(attrs.TR2000, attrs.EYE)},
			{Verdict: series.CVR2000EAR, Required: bag(attrs.TR2000, attrs.EAR)},
		},
	}
}

var restingPattern = regexp.MustCompile(`(?i).*(Resting|REST).*`)

// RestingStrategy accepts 2D resting-state fMRI series, refined by
// repetition time.
func RestingStrategy() Strategy {
	return &Table{
		Name_:    "Resting",
		Modality: attrs.MR,
		AcqTypes: acqSet(attrs.Type2D),
		Pattern:  restingPattern,
		Seed: func(d dicomdata.Dataset, b attrs.Bag) {
			b.Add(attrs.ExtractRepetition(d))
		},
		Rules: []Rule{
			{Verdict: series.RestingBare, Required: bag()},
			{Verdict: series.Resting2000, Required: bag(attrs.TR2000)},
		},
	}
}

var dtiPattern = regexp.MustCompile(`(?i).*(DTI).*`)

type dtiStrategy struct{}

// DTIStrategy accepts 2D or 3D diffusion-tensor-imaging series, split by
// direction count. Direction count comes from the vendor direction-count tag
// first; the original implementation's description-text heuristic ("32"/"64"
// substring) is kept only as a fallback when that tag is absent, and a
// dataset matching neither defaults to the 32-direction protocol, same as
// the original.
func DTIStrategy() Strategy { return &dtiStrategy{} }

func (s *dtiStrategy) Name() string { return "DTI" }

func (s *dtiStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR {
		return "", false
	}
	acq := attrs.ExtractAcquisitionType(d)
	if acq != attrs.Type2D && acq != attrs.Type3D {
		return "", false
	}
	if !dtiPattern.MatchString(attrs.SeriesDescription(d)) {
		return "", false
	}
	switch attrs.ExtractDtiDirections(d) {
	case attrs.DTI64D:
		return series.DTI64D, true
	default:
		return series.DTI32D, true
	}
}
