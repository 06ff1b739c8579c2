package strategy

import (
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// MR angiography dispatch relies on negative-lookahead regexes in its
// original form ("contains TOF but nothing after it mentions Neck"), which
// Go's RE2-based regexp cannot express. Each strategy below reproduces the
// same accept/reject boundary with plain substring checks instead.

func containsFold(desc, needle string) bool {
	return strings.Contains(strings.ToLower(desc), strings.ToLower(needle))
}

type mraBrainStrategy struct{}

// MRABrainStrategy accepts 3D time-of-flight brain angiography: "TOF"
// present, "Neck" absent, ImageType exactly ORIGINAL.
func MRABrainStrategy() Strategy { return &mraBrainStrategy{} }

func (s *mraBrainStrategy) Name() string { return "MRA-Brain" }

func (s *mraBrainStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	if attrs.DetectOriginal(d) != attrs.ORIGINAL {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if containsFold(desc, "TOF") && !containsFold(desc, "Neck") {
		return series.MRABrain, true
	}
	return "", false
}

type mraNeckStrategy struct{}

// MRANeckStrategy accepts 3D time-of-flight neck angiography: both "TOF"
// and "Neck" present, ImageType exactly ORIGINAL.
func MRANeckStrategy() Strategy { return &mraNeckStrategy{} }

func (s *mraNeckStrategy) Name() string { return "MRA-Neck" }

func (s *mraNeckStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	if attrs.DetectOriginal(d) != attrs.ORIGINAL {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if containsFold(desc, "TOF") && containsFold(desc, "Neck") {
		return series.MRANeck, true
	}
	return "", false
}

type mraVRBrainStrategy struct{}

// MRAVRBrainStrategy accepts 3D volume-rendered brain angiography: "MRA"
// present, neither "TOF" nor "Neck" present.
func MRAVRBrainStrategy() Strategy { return &mraVRBrainStrategy{} }

func (s *mraVRBrainStrategy) Name() string { return "MRA-VR-Brain" }

func (s *mraVRBrainStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if containsFold(desc, "MRA") && !containsFold(desc, "TOF") && !containsFold(desc, "Neck") {
		return series.MRAVRBrain, true
	}
	return "", false
}

type mraVRNeckStrategy struct{}

// MRAVRNeckStrategy accepts 3D volume-rendered neck angiography: both "MRA"
// and "Neck" present, "TOF" absent.
func MRAVRNeckStrategy() Strategy { return &mraVRNeckStrategy{} }

func (s *mraVRNeckStrategy) Name() string { return "MRA-VR-Neck" }

func (s *mraVRNeckStrategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR || attrs.ExtractAcquisitionType(d) != attrs.Type3D {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if containsFold(desc, "MRA") && containsFold(desc, "Neck") && !containsFold(desc, "TOF") {
		return series.MRAVRNeck, true
	}
	return "", false
}
