package attrs

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/suyashkumar/dicom/pkg/tag"
)

var contrastPattern = regexp.MustCompile(`(?i)\+C|C\+`)

// tagPulseSequenceName, tagDtiDirectionCount,
// tagBValues, tagSwanPhaseFlag, tagAslFunctionalName and tagAslTechnique have
// no named constants in pkg/tag (vendor/private elements); they are built
// directly from their (group, element) pairs.
var (
	tagPulseSequenceName = dicomdata.Tag(0x0019, 0x109C)
	tagDtiDirectionCount = dicomdata.Tag(0x0019, 0x10E0)
	tagBValues           = dicomdata.Tag(0x0043, 0x1039)
	tagSwanPhaseFlag     = dicomdata.Tag(0x0043, 0x102F)
	tagAslFunctionalName = dicomdata.Tag(0x0051, 0x1002)
	tagAslTechnique      = dicomdata.Tag(0x0043, 0x10A4)
)

// ExtractModality reads (0008,0060).
func ExtractModality(d dicomdata.Dataset) Modality {
	v, ok := d.Lookup(tag.Modality)
	if !ok {
		return ModalityNull
	}
	switch strings.ToUpper(v.First()) {
	case "MR":
		return MR
	case "CT":
		return CT
	default:
		return ModalityNull
	}
}

// ExtractAcquisitionType reads (0018,0023).
func ExtractAcquisitionType(d dicomdata.Dataset) AcquisitionType {
	v, ok := d.Lookup(tag.MRAcquisitionType)
	if !ok {
		return AcquisitionTypeNull
	}
	switch strings.ToUpper(v.First()) {
	case "2D":
		return Type2D
	case "3D":
		return Type3D
	default:
		return AcquisitionTypeNull
	}
}

// ExtractOrientation reads (0020,0037), rounds the six direction cosines,
// and classifies by the two dominant axes, then promotes to the reformatted
// variant when ImageType[2] == "REFORMATTED".
func ExtractOrientation(d dicomdata.Dataset) Orientation {
	base := extractPlainOrientation(d)
	if base == OrientationNull {
		return OrientationNull
	}
	if isReformatted(d) {
		return base.Reformatted()
	}
	return base
}

func extractPlainOrientation(d dicomdata.Dataset) Orientation {
	v, ok := d.Lookup(tag.ImageOrientationPatient)
	if !ok || len(v.Strings) < 6 {
		return OrientationNull
	}
	cosines := make([]int, 6)
	for i := 0; i < 6; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Strings[i]), 64)
		if err != nil {
			return OrientationNull
		}
		cosines[i] = int(math.Abs(math.Round(f)))
	}
	rowIdx, colIdx := -1, -1
	for i := 0; i < 3; i++ {
		if cosines[i] == 1 {
			rowIdx = i
		}
	}
	for i := 3; i < 6; i++ {
		if cosines[i] == 1 {
			colIdx = i
		}
	}
	switch {
	case rowIdx == 0 && colIdx == 4:
		return AXI
	case rowIdx == 0 && colIdx == 5:
		return COR
	case rowIdx == 1 && colIdx == 5:
		return SAG
	default:
		return OrientationNull
	}
}

func isReformatted(d dicomdata.Dataset) bool {
	v, ok := d.Lookup(tag.ImageType)
	if !ok || len(v.Strings) < 3 {
		return false
	}
	return strings.EqualFold(v.Strings[2], "REFORMATTED")
}

// ExtractContrast reads (0018,0010) and (0008,103E). MR: CE if the agent is
// non-empty or the description matches +C/C+. CT: CE iff the agent is
// non-empty.
func ExtractContrast(d dicomdata.Dataset, modality Modality) Contrast {
	agent, hasAgent := d.Lookup(tag.ContrastBolusAgent)
	agentNonEmpty := hasAgent && strings.TrimSpace(agent.First()) != ""

	if modality == CT {
		if agentNonEmpty {
			return CE
		}
		return NE
	}

	desc, _ := d.Lookup(tag.SeriesDescription)
	if agentNonEmpty || contrastPattern.MatchString(desc.First()) {
		return CE
	}
	return NE
}

// ExtractBValue reads the vendor b-value element (0043,1039), first entry.
func ExtractBValue(d dicomdata.Dataset) BValue {
	v, ok := d.Lookup(tagBValues)
	if !ok {
		return BValueNull
	}
	n, ok := firstIntFromValue(v)
	if !ok {
		return BValueNull
	}
	switch n {
	case 0:
		return B0
	case 1000:
		return B1000
	default:
		return BValueNull
	}
}

func firstIntFromValue(v dicomdata.Value) (int, bool) {
	if n, ok := v.FirstInt(); ok {
		return n, true
	}
	if len(v.Strings) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(v.Strings[0])); err == nil {
			return n, true
		}
	}
	return 0, false
}

// ExtractRepetition reads (0018,0080), converts to integer milliseconds.
func ExtractRepetition(d dicomdata.Dataset) Repetition {
	ms, ok := extractMillis(d, tag.RepetitionTime)
	if !ok {
		return RepetitionNull
	}
	switch ms {
	case 1000:
		return TR1000
	case 2000:
		return TR2000
	default:
		return RepetitionNull
	}
}

func extractMillis(d dicomdata.Dataset, t tag.Tag) (int, bool) {
	v, ok := d.Lookup(t)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.First()), 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f)), true
}

// ExtractBodyPart reads (0008,103E) and searches case-insensitively for
// "eye" or "ear".
func ExtractBodyPart(d dicomdata.Dataset) BodyPart {
	v, _ := d.Lookup(tag.SeriesDescription)
	desc := strings.ToLower(v.First())
	switch {
	case strings.Contains(desc, "eye"):
		return EYE
	case strings.Contains(desc, "ear"):
		return EAR
	default:
		return BodyPartNull
	}
}

// FlairFamily indicates which family's FLAIR rule applies: the TR/TE
// thresholds differ between T1 and T2.
type FlairFamily int

const (
	FlairFamilyT1 FlairFamily = iota
	FlairFamilyT2
)

// DetectFlair reads (0018,0081) and (0018,0082) (T2) or (0018,0080) and
// (0018,0081) (T1).
func DetectFlair(d dicomdata.Dataset, family FlairFamily) SeriesMarker {
	te, hasTE := extractMillis(d, tag.EchoTime)
	switch family {
	case FlairFamilyT2:
		_, hasTI := d.Lookup(tag.InversionTime)
		if hasTE && te >= 80 && hasTI {
			return FLAIR
		}
	case FlairFamilyT1:
		tr, hasTR := extractMillis(d, tag.RepetitionTime)
		if hasTR && hasTE && tr >= 800 && tr <= 3000 && te <= 30 {
			return FLAIR
		}
	}
	return SeriesMarkerNull
}

// DetectCube reads (0019,109C); CUBE iff the string contains "cube".
func DetectCube(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tagPulseSequenceName)
	if ok && strings.Contains(strings.ToLower(v.First()), "cube") {
		return CUBE
	}
	return SeriesMarkerNull
}

// DetectBravo reads (0019,109C); BRAVO iff equal to "bravo" or "efgre3d".
func DetectBravo(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tagPulseSequenceName)
	if !ok {
		return SeriesMarkerNull
	}
	name := strings.ToLower(strings.TrimSpace(v.First()))
	if name == "bravo" || name == "efgre3d" {
		return BRAVO
	}
	return SeriesMarkerNull
}

// DetectSwanKind reads (0019,109C) for the SWAN/eSWAN pulse-sequence marker.
func DetectSwanKind(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tagPulseSequenceName)
	if !ok {
		return SeriesMarkerNull
	}
	name := strings.ToLower(v.First())
	switch {
	case strings.Contains(name, "eswan"):
		return ESWAN
	case strings.Contains(name, "swan"):
		return SWAN
	default:
		return SeriesMarkerNull
	}
}

// DetectSwanPhase reads (0043,102F), the vendor phase-vs-magnitude sub-flag.
func DetectSwanPhase(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tagSwanPhaseFlag)
	if !ok {
		return SeriesMarkerNull
	}
	if n, ok := firstIntFromValue(v); ok && n == 1 {
		return PHASE
	}
	return SeriesMarkerNull
}

// DetectMip reads (0008,0008); mIP iff the last element is "MIN IP" or
// "REFORMATTED" and (0008,0013) InstanceCreationTime is present.
func DetectMip(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tag.ImageType)
	if !ok || len(v.Strings) == 0 {
		return SeriesMarkerNull
	}
	last := strings.ToUpper(v.Strings[len(v.Strings)-1])
	if last != "MIN IP" && last != "REFORMATTED" {
		return SeriesMarkerNull
	}
	if _, ok := d.Lookup(tag.InstanceCreationTime); !ok {
		return SeriesMarkerNull
	}
	return MIP
}

// DetectOriginal reads (0008,0008); ORIGINAL iff the first element equals
// "ORIGINAL".
func DetectOriginal(d dicomdata.Dataset) SeriesMarker {
	v, ok := d.Lookup(tag.ImageType)
	if !ok || len(v.Strings) == 0 {
		return SeriesMarkerNull
	}
	if strings.EqualFold(v.Strings[0], "ORIGINAL") {
		return ORIGINAL
	}
	return SeriesMarkerNull
}

var dtiDirectionDescriptionPattern = regexp.MustCompile(`\b(32|64)\b`)

// ExtractDtiDirections reads (0019,10E0). When the vendor tag is absent,
// falls back to scanning the series description for a bare "32"/"64"
// substring, a heuristic carried over from the original implementation; the
// fallback never overrides a present vendor tag.
func ExtractDtiDirections(d dicomdata.Dataset) DtiDirections {
	if v, ok := d.Lookup(tagDtiDirectionCount); ok {
		if n, ok := firstIntFromValue(v); ok {
			switch n {
			case 32:
				return DTI32D
			case 64:
				return DTI64D
			}
		}
	}
	desc, _ := d.Lookup(tag.SeriesDescription)
	switch dtiDirectionDescriptionPattern.FindString(desc.First()) {
	case "32":
		return DTI32D
	case "64":
		return DTI64D
	default:
		return DtiDirectionsNull
	}
}

// ExtractAslInfo reads the ASL functional-processing name (0051,1002) and
// the supplemental ASL technique tag (0043,10A4), returning their
// concatenation for regex matching by ASL strategies.
func ExtractAslInfo(d dicomdata.Dataset) string {
	var parts []string
	if v, ok := d.Lookup(tagAslFunctionalName); ok && v.First() != "" {
		parts = append(parts, v.First())
	}
	if v, ok := d.Lookup(tagAslTechnique); ok && v.First() != "" {
		parts = append(parts, v.First())
	}
	return strings.Join(parts, " ")
}

// SeriesDescription reads (0008,103E), returning "" when absent.
func SeriesDescription(d dicomdata.Dataset) string {
	v, _ := d.Lookup(tag.SeriesDescription)
	return v.First()
}
