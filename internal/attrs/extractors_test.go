package attrs_test

import (
	"testing"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/suyashkumar/dicom/pkg/tag"
)

var (
	tagPulseSequenceName = dicomdata.Tag(0x0019, 0x109C)
	tagBValues           = dicomdata.Tag(0x0043, 0x1039)
	tagSwanPhaseFlag     = dicomdata.Tag(0x0043, 0x102F)
)

func TestExtractModality(t *testing.T) {
	cases := []struct {
		name string
		ds   fakeDataset
		want attrs.Modality
	}{
		{"mr", fakeDataset{tag.Modality: strs("MR")}, attrs.MR},
		{"ct lowercase", fakeDataset{tag.Modality: strs("ct")}, attrs.CT},
		{"unknown", fakeDataset{tag.Modality: strs("US")}, attrs.ModalityNull},
		{"absent", fakeDataset{}, attrs.ModalityNull},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := attrs.ExtractModality(c.ds); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestExtractOrientation(t *testing.T) {
	axi := strs("1", "0", "0", "0", "1", "0")
	sag := strs("0", "1", "0", "0", "0", "1")
	cor := strs("1", "0", "0", "0", "0", "1")

	cases := []struct {
		name string
		ds   fakeDataset
		want attrs.Orientation
	}{
		{"axial", fakeDataset{tag.ImageOrientationPatient: axi}, attrs.AXI},
		{"sagittal", fakeDataset{tag.ImageOrientationPatient: sag}, attrs.SAG},
		{"coronal", fakeDataset{tag.ImageOrientationPatient: cor}, attrs.COR},
		{"absent", fakeDataset{}, attrs.OrientationNull},
		{
			"axial reformatted",
			fakeDataset{
				tag.ImageOrientationPatient: axi,
				tag.ImageType:               strs("DERIVED", "SECONDARY", "REFORMATTED"),
			},
			attrs.AXIr,
		},
		{
			"sagittal not reformatted when ImageType[2] differs",
			fakeDataset{
				tag.ImageOrientationPatient: sag,
				tag.ImageType:               strs("ORIGINAL", "PRIMARY", "OTHER"),
			},
			attrs.SAG,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := attrs.ExtractOrientation(c.ds); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestExtractContrast(t *testing.T) {
	cases := []struct {
		name     string
		ds       fakeDataset
		modality attrs.Modality
		want     attrs.Contrast
	}{
		{"mr agent present", fakeDataset{tag.ContrastBolusAgent: strs("Gadovist 1.0")}, attrs.MR, attrs.CE},
		{"mr description +C", fakeDataset{tag.SeriesDescription: strs("Sag T1 CUBE +C")}, attrs.MR, attrs.CE},
		{"mr description C+", fakeDataset{tag.SeriesDescription: strs("Ax T1 C+")}, attrs.MR, attrs.CE},
		{"mr neither", fakeDataset{tag.SeriesDescription: strs("Ax T1")}, attrs.MR, attrs.NE},
		{"ct agent present", fakeDataset{tag.ContrastBolusAgent: strs("Omnipaque")}, attrs.CT, attrs.CE},
		{"ct agent absent", fakeDataset{}, attrs.CT, attrs.NE},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := attrs.ExtractContrast(c.ds, c.modality); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestExtractBValue(t *testing.T) {
	cases := []struct {
		name string
		ds   fakeDataset
		want attrs.BValue
	}{
		{"zero", fakeDataset{tagBValues: ints(0, 0, 0)}, attrs.B0},
		{"thousand", fakeDataset{tagBValues: ints(1000)}, attrs.B1000},
		{"other value", fakeDataset{tagBValues: ints(500)}, attrs.BValueNull},
		{"absent", fakeDataset{}, attrs.BValueNull},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := attrs.ExtractBValue(c.ds); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestExtractRepetition(t *testing.T) {
	cases := []struct {
		name string
		ds   fakeDataset
		want attrs.Repetition
	}{
		{"1000", fakeDataset{tag.RepetitionTime: strs("1000")}, attrs.TR1000},
		{"2000", fakeDataset{tag.RepetitionTime: strs("2000.0")}, attrs.TR2000},
		{"other", fakeDataset{tag.RepetitionTime: strs("1500")}, attrs.RepetitionNull},
		{"absent", fakeDataset{}, attrs.RepetitionNull},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := attrs.ExtractRepetition(c.ds); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestDetectFlair(t *testing.T) {
	t.Run("T2 flair when TE>=80 and TI present", func(t *testing.T) {
		ds := fakeDataset{
			tag.EchoTime:      strs("120"),
			tag.InversionTime: strs("2400"),
		}
		if got := attrs.DetectFlair(ds, attrs.FlairFamilyT2); got != attrs.FLAIR {
			t.Errorf("got %v, want FLAIR", got)
		}
	})
	t.Run("T2 not flair when TI absent", func(t *testing.T) {
		ds := fakeDataset{tag.EchoTime: strs("120")}
		if got := attrs.DetectFlair(ds, attrs.FlairFamilyT2); got != attrs.SeriesMarkerNull {
			t.Errorf("got %v, want Null", got)
		}
	})
	t.Run("T1 flair within TR/TE band", func(t *testing.T) {
		ds := fakeDataset{
			tag.RepetitionTime: strs("2000"),
			tag.EchoTime:       strs("20"),
		}
		if got := attrs.DetectFlair(ds, attrs.FlairFamilyT1); got != attrs.FLAIR {
			t.Errorf("got %v, want FLAIR", got)
		}
	})
	t.Run("T1 not flair when TE too high", func(t *testing.T) {
		ds := fakeDataset{
			tag.RepetitionTime: strs("2000"),
			tag.EchoTime:       strs("80"),
		}
		if got := attrs.DetectFlair(ds, attrs.FlairFamilyT1); got != attrs.SeriesMarkerNull {
			t.Errorf("got %v, want Null", got)
		}
	})
}

func TestDetectCubeAndBravo(t *testing.T) {
	if got := attrs.DetectCube(fakeDataset{tagPulseSequenceName: strs("CUBE")}); got != attrs.CUBE {
		t.Errorf("cube: got %v", got)
	}
	if got := attrs.DetectBravo(fakeDataset{tagPulseSequenceName: strs("BRAVO")}); got != attrs.BRAVO {
		t.Errorf("bravo literal: got %v", got)
	}
	if got := attrs.DetectBravo(fakeDataset{tagPulseSequenceName: strs("efgre3d")}); got != attrs.BRAVO {
		t.Errorf("bravo efgre3d: got %v", got)
	}
	if got := attrs.DetectBravo(fakeDataset{tagPulseSequenceName: strs("cube")}); got != attrs.SeriesMarkerNull {
		t.Errorf("cube name should not match bravo: got %v", got)
	}
}

func TestDetectSwanKindAndPhase(t *testing.T) {
	if got := attrs.DetectSwanKind(fakeDataset{tagPulseSequenceName: strs("SWAN")}); got != attrs.SWAN {
		t.Errorf("swan: got %v", got)
	}
	if got := attrs.DetectSwanKind(fakeDataset{tagPulseSequenceName: strs("eSWAN")}); got != attrs.ESWAN {
		t.Errorf("eswan: got %v", got)
	}
	if got := attrs.DetectSwanPhase(fakeDataset{tagSwanPhaseFlag: ints(1)}); got != attrs.PHASE {
		t.Errorf("phase: got %v", got)
	}
	if got := attrs.DetectSwanPhase(fakeDataset{tagSwanPhaseFlag: ints(0)}); got != attrs.SeriesMarkerNull {
		t.Errorf("no phase: got %v", got)
	}
}

func TestDetectMipAndOriginal(t *testing.T) {
	withCreation := fakeDataset{
		tag.ImageType:             strs("DERIVED", "SECONDARY", "MIN IP"),
		tag.InstanceCreationTime:  strs("120000"),
	}
	if got := attrs.DetectMip(withCreation); got != attrs.MIP {
		t.Errorf("mip: got %v", got)
	}
	noCreation := fakeDataset{tag.ImageType: strs("DERIVED", "SECONDARY", "MIN IP")}
	if got := attrs.DetectMip(noCreation); got != attrs.SeriesMarkerNull {
		t.Errorf("mip without creation time should be Null: got %v", got)
	}
	original := fakeDataset{tag.ImageType: strs("ORIGINAL", "PRIMARY")}
	if got := attrs.DetectOriginal(original); got != attrs.ORIGINAL {
		t.Errorf("original: got %v", got)
	}
}

func TestExtractBodyPart(t *testing.T) {
	if got := attrs.ExtractBodyPart(fakeDataset{tag.SeriesDescription: strs("CVR 2000 EAR")}); got != attrs.EAR {
		t.Errorf("ear: got %v", got)
	}
	if got := attrs.ExtractBodyPart(fakeDataset{tag.SeriesDescription: strs("Orbit eye screen")}); got != attrs.EYE {
		t.Errorf("eye: got %v", got)
	}
	if got := attrs.ExtractBodyPart(fakeDataset{tag.SeriesDescription: strs("Ax T1")}); got != attrs.BodyPartNull {
		t.Errorf("neither: got %v", got)
	}
}
