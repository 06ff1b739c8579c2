package strategy

import (
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// aslRule pairs a verdict with a description-text predicate; aslRules is
// ordered most-specific-first (COLOR/ATT/CBF/PW variants before the bare
// sequence name), since an ATT-COLOR description also contains "ATT".
type aslRule struct {
	verdict series.Verdict
	match   func(desc string) bool
}

var aslRules = []aslRule{
	{series.ASLSeqATTColor, func(d string) bool { return containsFold(d, "ATT") && containsFold(d, "COLOR") }},
	{series.ASLSeqATT, func(d string) bool { return containsFold(d, "ATT") }},
	{series.ASLSeqCBFColor, func(d string) bool { return containsFold(d, "CBF") && containsFold(d, "COLOR") }},
	{series.ASLSeqCBF, func(d string) bool { return containsFold(d, "CBF") }},
	{series.ASLSeqPW, func(d string) bool { return containsFold(d, "PW") }},
	{series.ASLProd, func(d string) bool { return containsFold(d, "PROD") }},
	{series.ASLSeq, func(d string) bool { return containsFold(d, "SEQ") || containsFold(d, "ASL") }},
}

type aslStrategy struct{}

// ASLStrategy accepts 3D arterial-spin-labeling perfusion series. In
// addition to the description-text dispatch, it honors the vendor ASL
// technique tag (0043,10A4) as an acceptance signal: the original
// implementation reads this tag but never actually wires it into dispatch,
// leaving it dead code; this strategy puts it to use.
func ASLStrategy() Strategy { return &aslStrategy{} }

func (s *aslStrategy) Name() string { return "ASL" }

func (s *aslStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if !containsFold(desc, "ASL") && !strings.Contains(strings.ToLower(attrs.ExtractAslInfo(d)), "asl") {
		return "", false
	}
	for _, r := range aslRules {
		if r.match(desc) {
			return r.verdict, true
		}
	}
	return series.ASLSeq, true
}
