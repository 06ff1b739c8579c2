package modalities

import (
	"fmt"
	"math/rand/v2"

	"github.com/qaz1996001/dicom2nii/internal/util"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Preset names one canonical classification fixture: the exact tag
// combination internal/strategy resolves to a single, specific series
// verdict. Each preset is grounded on the strategy file that reads its
// tags (internal/strategy/dwi_adc.go, t1.go, swan.go,
// cvr_resting_dti.go), not on any particular clinical realism beyond what
// those strategies inspect.
type Preset string

// Diffusion and ADC/eADC presets (internal/strategy/dwi_adc.go).
const (
	PresetDWI0    Preset = "DWI0"
	PresetDWI1000 Preset = "DWI1000"
	PresetADC     Preset = "ADC"
	PresetEADC    Preset = "eADC"
)

// SWAN / eSWAN presets (internal/strategy/swan.go).
const (
	PresetSWAN  Preset = "SWAN"
	PresetESWAN Preset = "eSWAN"
)

// T1 presets (internal/strategy/t1.go).
const (
	PresetT1AxiNE      Preset = "T1_AXI"
	PresetT1CubeCESAGr Preset = "T1CUBECE_SAGr"
)

// T2 presets (internal/strategy/t2.go): T2 follows the same 2D NE/CE/FLAIR
// shape as T1, so a plain axial and a FLAIR axial cover both rule tables.
const (
	PresetT2AxiNE   Preset = "T2_AXI"
	PresetT2FlairAx Preset = "T2FLAIR_AXI"
)

// CVR / Resting / DTI presets (internal/strategy/cvr_resting_dti.go).
const (
	PresetCVR2000Ear  Preset = "CVR2000_EAR"
	PresetResting2000 Preset = "RESTING2000"
	PresetDTI64D      Preset = "DTI64D"
)

// AllPresets lists every preset GenerateFixtures can build, in the order a
// fixture suite would classify them.
func AllPresets() []Preset {
	return []Preset{
		PresetDWI0, PresetDWI1000,
		PresetADC, PresetEADC,
		PresetSWAN, PresetESWAN,
		PresetT1AxiNE, PresetT1CubeCESAGr,
		PresetT2AxiNE, PresetT2FlairAx,
		PresetCVR2000Ear, PresetResting2000, PresetDTI64D,
	}
}

var (
	tagPulseSequenceName = tag.Tag{Group: 0x0019, Element: 0x109C}
	tagDtiDirectionCount = tag.Tag{Group: 0x0019, Element: 0x10E0}
	tagBValues           = tag.Tag{Group: 0x0043, Element: 0x1039}
)

// orientationElements returns the (0020,0037) direction cosines for a plain
// axial/sagittal/coronal orientation, optionally promoted to its
// reformatted variant by setting ImageType[2] to "REFORMATTED" (the
// promotion internal/attrs.ExtractOrientation applies).
func orientationElements(plane string, reformatted bool) []*dicom.Element {
	var cosines []string
	switch plane {
	case "SAG":
		cosines = []string{"0", "1", "0", "0", "0", "1"}
	case "COR":
		cosines = []string{"1", "0", "0", "0", "0", "1"}
	default: // AXI
		cosines = []string{"1", "0", "0", "0", "1", "0"}
	}
	imageType := []string{"ORIGINAL", "PRIMARY", "OTHER"}
	if reformatted {
		imageType = []string{"DERIVED", "SECONDARY", "REFORMATTED"}
	}
	return []*dicom.Element{
		mustNewElement(tag.ImageOrientationPatient, cosines),
		mustNewElement(tag.ImageType, imageType),
	}
}

// identityElements returns the patient/study/series/instance identifying
// tags every fixture instance needs regardless of which preset it carries,
// built from rng so a fixture suite's instances don't collide.
func identityElements(rng *rand.Rand, modality Modality, sopClassUID string) []*dicom.Element {
	sex := "F"
	if rng.IntN(2) == 0 {
		sex = "M"
	}
	uidSuffix := func() string {
		return fmt.Sprintf("%d", rng.Int64N(900000000)+100000000)
	}
	return []*dicom.Element{
		mustNewElement(tag.PatientName, []string{util.GeneratePatientName(sex, rng)}),
		mustNewElement(tag.PatientID, []string{"FIX" + uidSuffix()}),
		mustNewElement(tag.PatientBirthDate, []string{"19700101"}),
		mustNewElement(tag.PatientSex, []string{sex}),
		mustNewElement(tag.StudyInstanceUID, []string{"1.2.826.0.1.3680043.dicom2nii.study." + uidSuffix()}),
		mustNewElement(tag.SeriesInstanceUID, []string{"1.2.826.0.1.3680043.dicom2nii.series." + uidSuffix()}),
		mustNewElement(tag.SOPInstanceUID, []string{"1.2.826.0.1.3680043.dicom2nii.instance." + uidSuffix()}),
		mustNewElement(tag.SOPClassUID, []string{sopClassUID}),
		mustNewElement(tag.StudyDate, []string{"20260730"}),
		mustNewElement(tag.AccessionNumber, []string{uidSuffix()}),
		mustNewElement(tag.Modality, []string{string(modality)}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
	}
}

// Elements builds the full element list for one instance of this preset:
// identifying tags, a randomized MR scanner's own realistic parameters
// (via MRGenerator), and on top of those the exact classification-bearing
// tags the matching internal/strategy file requires.
func (p Preset) Elements(rng *rand.Rand) []*dicom.Element {
	mr := &MRGenerator{}
	scanners := mr.Scanners()
	scanner := scanners[rng.IntN(len(scanners))]
	params := mr.GenerateSeriesParams(scanner, rng)
	// EchoTime and RepetitionTime are classification-bearing for some
	// presets (FLAIR detection, CVR/Resting TR buckets): zeroing the
	// randomized values here means AppendModalityElements omits them, so
	// the switch below can append the exact value each preset needs
	// without leaving a stale duplicate tag earlier in the element list.
	params.EchoTime = 0
	params.RepetitionTime = 0

	elements := identityElements(rng, MR, mr.SOPClassUID())
	ds := &dicom.Dataset{}
	_ = mr.AppendModalityElements(ds, params)
	elements = append(elements, ds.Elements...)
	elements = append(elements, mustNewElement(tag.MRAcquisitionType, []string{acquisitionTypeFor(p)}))

	switch p {
	case PresetDWI0, PresetDWI1000:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX DWI"}))
		elements = append(elements, orientationElements("AXI", false)...)
		bval := "0"
		if p == PresetDWI1000 {
			bval = "1000"
		}
		elements = append(elements, mustNewPrivateElement(tagBValues, "IS", []string{bval}))

	case PresetADC:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX ADC"}))
		elements = append(elements, orientationElements("AXI", false)...)

	case PresetEADC:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX eADC"}))

	case PresetSWAN:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX SWAN"}))
		elements = append(elements, orientationElements("AXI", false)...)
		elements = append(elements, mustNewPrivateElement(tagPulseSequenceName, "LO", []string{"swan"}))

	case PresetESWAN:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX eSWAN"}))
		elements = append(elements, orientationElements("AXI", false)...)
		elements = append(elements, mustNewPrivateElement(tagPulseSequenceName, "LO", []string{"eswan"}))

	case PresetT1AxiNE:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX T1"}))
		elements = append(elements, orientationElements("AXI", false)...)

	case PresetT1CubeCESAGr:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"SAG T1 CUBE +C"}))
		elements = append(elements, orientationElements("SAG", true)...)
		elements = append(elements, mustNewElement(tag.ContrastBolusAgent, []string{"Gadavist"}))

	case PresetT2AxiNE:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX T2"}))
		elements = append(elements, orientationElements("AXI", false)...)

	case PresetT2FlairAx:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"AX T2"}))
		elements = append(elements, orientationElements("AXI", false)...)
		elements = append(elements, mustNewElement(tag.EchoTime, []string{"100"}))
		elements = append(elements, mustNewElement(tag.InversionTime, []string{"2500"}))

	case PresetCVR2000Ear:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"CVR EAR STIM"}))
		elements = append(elements, mustNewElement(tag.RepetitionTime, []string{"2000"}))

	case PresetResting2000:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"Resting State BOLD"}))
		elements = append(elements, mustNewElement(tag.RepetitionTime, []string{"2000"}))

	case PresetDTI64D:
		elements = append(elements, mustNewElement(tag.SeriesDescription, []string{"DTI 64 Directions"}))
		elements = append(elements, mustNewPrivateElement(tagDtiDirectionCount, "IS", []string{"64"}))
	}

	return elements
}

// acquisitionTypeFor returns the (0018,0023) value each preset's strategy
// expects: eADC/T1-CUBE/eSWAN require 3D, everything else here is 2D.
func acquisitionTypeFor(p Preset) string {
	switch p {
	case PresetEADC, PresetT1CubeCESAGr, PresetESWAN:
		return "3D"
	default:
		return "2D"
	}
}
