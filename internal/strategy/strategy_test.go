package strategy_test

import (
	"testing"

	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
	"github.com/qaz1996001/dicom2nii/internal/strategy"
	"github.com/suyashkumar/dicom/pkg/tag"
)

type fakeDataset map[tag.Tag]dicomdata.Value

func (f fakeDataset) Lookup(t tag.Tag) (dicomdata.Value, bool) {
	v, ok := f[t]
	return v, ok
}

func strs(ss ...string) dicomdata.Value { return dicomdata.Value{Strings: ss} }
func ints(ns ...int) dicomdata.Value    { return dicomdata.Value{Ints: ns} }

var tagBValues = dicomdata.Tag(0x0043, 0x1039)

// TestS1DWI0 is spec scenario S1: Ax DWI, 2D, b=0, axial cosines -> DWI0.
func TestS1DWI0(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:                strs("MR"),
		tag.MRAcquisitionType:       strs("2D"),
		tag.SeriesDescription:       strs("Ax DWI"),
		tagBValues:                  ints(0, 0, 0),
		tag.ImageOrientationPatient: strs("1", "0", "0", "0", "1", "0"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || verdict != series.DWI0 || family != "DWI" {
		t.Fatalf("got verdict=%q family=%q ok=%v, want DWI0/DWI/true", verdict, family, ok)
	}
}

// TestS2T1CubeContrastReformattedSagittal is spec scenario S2.
func TestS2T1CubeContrastReformattedSagittal(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:                strs("MR"),
		tag.MRAcquisitionType:       strs("3D"),
		tag.SeriesDescription:       strs("Sag T1 CUBE +C"),
		tag.ImageType:               strs("DERIVED", "SECONDARY", "REFORMATTED"),
		dicomdata.Tag(0x0019, 0x109C): strs("cube"),
		tag.ContrastBolusAgent:      strs("Gadovist 1.0"),
		tag.ImageOrientationPatient: strs("0", "1", "0", "0", "0", "1"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || verdict != series.T1CubeCESAGr || family != "T1" {
		t.Fatalf("got verdict=%q family=%q ok=%v, want T1CUBECE_SAGr/T1/true", verdict, family, ok)
	}
}

// TestS6CVRWithEar is spec scenario S6.
func TestS6CVRWithEar(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:          strs("MR"),
		tag.MRAcquisitionType: strs("2D"),
		tag.SeriesDescription: strs("CVR 2000 EAR"),
		tag.RepetitionTime:    strs("2000"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || verdict != series.CVR2000EAR || family != "CVR" {
		t.Fatalf("got verdict=%q family=%q ok=%v, want CVR2000_EAR/CVR/true", verdict, family, ok)
	}
}

// TestTieBreakSwanBeforeT1 is spec invariant #9 / §4.2's worked example: an
// eSWAN series description also matches T1's ".*(T1|AX|COR|SAG).*" pattern,
// so SWAN/eSWAN must win by running earlier in registration order.
func TestTieBreakSwanBeforeT1(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:                 strs("MR"),
		tag.MRAcquisitionType:        strs("3D"),
		tag.SeriesDescription:        strs("Ax eSWAN"),
		dicomdata.Tag(0x0019, 0x109C): strs("eswan"),
		tag.ImageType:                strs("ORIGINAL", "PRIMARY"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || family != "eSWAN" {
		t.Fatalf("got verdict=%q family=%q ok=%v, want family eSWAN", verdict, family, ok)
	}
	if verdict != series.ESWAN {
		t.Errorf("got verdict=%q, want eSWAN (ORIGINAL required per the stricter open-question reading)", verdict)
	}
}

// TestESwanWithoutOriginalFallsBackToMip verifies open question #2's
// resolution: a non-ORIGINAL eSWAN instance cannot fire the bare eSWAN rule
// and falls back to its mIP rule instead.
func TestESwanWithoutOriginalFallsBackToMip(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:                 strs("MR"),
		tag.MRAcquisitionType:        strs("3D"),
		tag.SeriesDescription:        strs("Ax eSWAN mip"),
		dicomdata.Tag(0x0019, 0x109C): strs("eswan"),
		tag.ImageType:                strs("DERIVED", "SECONDARY", "REFORMATTED"),
		tag.InstanceCreationTime:     strs("120000"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || family != "eSWAN" || verdict != series.ESWANmIP {
		t.Fatalf("got verdict=%q family=%q ok=%v, want eSWANmIP/eSWAN/true", verdict, family, ok)
	}
}

// TestADCAcceptsMissingAcquisitionType is spec invariant #10: ADC is one of
// the families that explicitly accepts a dataset with no MRAcquisitionType
// tag at all.
func TestADCAcceptsMissingAcquisitionType(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:                strs("MR"),
		tag.SeriesDescription:       strs("Ax ADC"),
		tag.ImageOrientationPatient: strs("1", "0", "0", "0", "1", "0"),
	}
	disp := strategy.Default()
	verdict, family, ok := disp.Classify(ds)
	if !ok || verdict != series.ADC || family != "ADC" {
		t.Fatalf("got verdict=%q family=%q ok=%v, want ADC/ADC/true", verdict, family, ok)
	}
}

// TestUnclassifiedCTFallsThrough covers design note #4: CT has no
// registered strategies, so every CT dataset is unclassifiable.
func TestUnclassifiedCTFallsThrough(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:          strs("CT"),
		tag.SeriesDescription: strs("Axial Brain"),
	}
	disp := strategy.Default()
	_, _, ok := disp.Classify(ds)
	if ok {
		t.Fatalf("CT dataset should be unclassifiable, got a match")
	}
}

// TestUnclassifiedWhenNoStrategyMatches covers §4.2 step 7.
func TestUnclassifiedWhenNoStrategyMatches(t *testing.T) {
	ds := fakeDataset{
		tag.Modality:          strs("MR"),
		tag.MRAcquisitionType: strs("2D"),
		tag.SeriesDescription: strs("Localizer"),
	}
	disp := strategy.Default()
	_, _, ok := disp.Classify(ds)
	if ok {
		t.Fatalf("localizer series should be unclassifiable, got a match")
	}
}
