// Package attrs defines the closed attribute enumerations the classification
// engine extracts from a DICOM dataset, and the pure extractor functions that
// produce them. Every enum carries a distinguished Null case; extractors
// never return an error, only Null on absent or malformed input.
package attrs

// Attribute is any extracted value that can be folded into an attribute bag.
// Token returns the bag's canonical membership key, or "" for the Null case
// (Null values are never added to a bag).
type Attribute interface {
	Token() string
}

// Modality is the imaging modality of a study.
type Modality int

const (
	ModalityNull Modality = iota
	MR
	CT
)

func (m Modality) Token() string {
	switch m {
	case MR:
		return "MOD:MR"
	case CT:
		return "MOD:CT"
	default:
		return ""
	}
}

func (m Modality) String() string {
	switch m {
	case MR:
		return "MR"
	case CT:
		return "CT"
	default:
		return "Null"
	}
}

// AcquisitionType is 2D or 3D MR acquisition.
type AcquisitionType int

const (
	AcquisitionTypeNull AcquisitionType = iota
	Type2D
	Type3D
)

func (a AcquisitionType) Token() string {
	switch a {
	case Type2D:
		return "ACQ:2D"
	case Type3D:
		return "ACQ:3D"
	default:
		return ""
	}
}

func (a AcquisitionType) String() string {
	switch a {
	case Type2D:
		return "2D"
	case Type3D:
		return "3D"
	default:
		return "Null"
	}
}

// Orientation is the anatomical slice plane, plain or reformatted.
type Orientation int

const (
	OrientationNull Orientation = iota
	AXI
	SAG
	COR
	AXIr
	SAGr
	CORr
)

func (o Orientation) Token() string {
	switch o {
	case AXI:
		return "ORIENT:AXI"
	case SAG:
		return "ORIENT:SAG"
	case COR:
		return "ORIENT:COR"
	case AXIr:
		return "ORIENT:AXIr"
	case SAGr:
		return "ORIENT:SAGr"
	case CORr:
		return "ORIENT:CORr"
	default:
		return ""
	}
}

func (o Orientation) String() string {
	switch o {
	case AXI:
		return "AXI"
	case SAG:
		return "SAG"
	case COR:
		return "COR"
	case AXIr:
		return "AXIr"
	case SAGr:
		return "SAGr"
	case CORr:
		return "CORr"
	default:
		return "Null"
	}
}

// Reformatted maps a plain orientation to its "r" variant; it returns the
// input unchanged if it has no reformatted counterpart (including Null).
func (o Orientation) Reformatted() Orientation {
	switch o {
	case AXI:
		return AXIr
	case SAG:
		return SAGr
	case COR:
		return CORr
	default:
		return o
	}
}

// Contrast is whether a series was acquired with a contrast agent.
type Contrast int

const (
	ContrastNull Contrast = iota
	CE
	NE
)

func (c Contrast) Token() string {
	switch c {
	case CE:
		return "CONTRAST:CE"
	case NE:
		return "CONTRAST:NE"
	default:
		return ""
	}
}

func (c Contrast) String() string {
	switch c {
	case CE:
		return "CE"
	case NE:
		return "NE"
	default:
		return "Null"
	}
}

// BValue is the DWI diffusion b-value.
type BValue int

const (
	BValueNull BValue = iota
	B0
	B1000
)

func (b BValue) Token() string {
	switch b {
	case B0:
		return "BVAL:0"
	case B1000:
		return "BVAL:1000"
	default:
		return ""
	}
}

func (b BValue) String() string {
	switch b {
	case B0:
		return "B0"
	case B1000:
		return "B1000"
	default:
		return "Null"
	}
}

// Repetition is the repetition time (TR), bucketed to the two values the
// strategy tables care about.
type Repetition int

const (
	RepetitionNull Repetition = iota
	TR1000
	TR2000
)

func (r Repetition) Token() string {
	switch r {
	case TR1000:
		return "TR:1000"
	case TR2000:
		return "TR:2000"
	default:
		return ""
	}
}

func (r Repetition) String() string {
	switch r {
	case TR1000:
		return "TR1000"
	case TR2000:
		return "TR2000"
	default:
		return "Null"
	}
}

// BodyPart is a body part mentioned in the series description.
type BodyPart int

const (
	BodyPartNull BodyPart = iota
	EYE
	EAR
)

func (b BodyPart) Token() string {
	switch b {
	case EYE:
		return "BODY:EYE"
	case EAR:
		return "BODY:EAR"
	default:
		return ""
	}
}

func (b BodyPart) String() string {
	switch b {
	case EYE:
		return "EYE"
	case EAR:
		return "EAR"
	default:
		return "Null"
	}
}

// SeriesMarker is a vendor pulse-sequence or image-type marker.
type SeriesMarker int

const (
	SeriesMarkerNull SeriesMarker = iota
	FLAIR
	CUBE
	BRAVO
	SWAN
	ESWAN
	MIP
	ORIGINAL
	PHASE
)

func (s SeriesMarker) Token() string {
	switch s {
	case FLAIR:
		return "MARK:FLAIR"
	case CUBE:
		return "MARK:CUBE"
	case BRAVO:
		return "MARK:BRAVO"
	case SWAN:
		return "MARK:SWAN"
	case ESWAN:
		return "MARK:eSWAN"
	case MIP:
		return "MARK:mIP"
	case ORIGINAL:
		return "MARK:ORIGINAL"
	case PHASE:
		return "MARK:PHASE"
	default:
		return ""
	}
}

func (s SeriesMarker) String() string {
	switch s {
	case FLAIR:
		return "FLAIR"
	case CUBE:
		return "CUBE"
	case BRAVO:
		return "BRAVO"
	case SWAN:
		return "SWAN"
	case ESWAN:
		return "eSWAN"
	case MIP:
		return "mIP"
	case ORIGINAL:
		return "ORIGINAL"
	case PHASE:
		return "PHASE"
	default:
		return "Null"
	}
}

// DtiDirections is the DTI diffusion-direction count.
type DtiDirections int

const (
	DtiDirectionsNull DtiDirections = iota
	DTI32D
	DTI64D
)

func (d DtiDirections) Token() string {
	switch d {
	case DTI32D:
		return "DTI:32"
	case DTI64D:
		return "DTI:64"
	default:
		return ""
	}
}

func (d DtiDirections) String() string {
	switch d {
	case DTI32D:
		return "DTI32D"
	case DTI64D:
		return "DTI64D"
	default:
		return "Null"
	}
}

// Bag is the attribute set built during dispatch: no duplicates, no Null
// entries (spec.md §8 invariant 3).
type Bag map[string]struct{}

// NewBag returns an empty attribute bag.
func NewBag() Bag {
	return make(Bag)
}

// Add folds an Attribute into the bag; Null attributes (empty Token) are
// silently dropped.
func (b Bag) Add(a Attribute) {
	if tok := a.Token(); tok != "" {
		b[tok] = struct{}{}
	}
}

// AddFamily folds a bare verdict-family token (e.g. a strategy name) into
// the bag, bypassing the Attribute interface.
func (b Bag) AddFamily(family string) {
	if family != "" {
		b["FAMILY:"+family] = struct{}{}
	}
}

// Has reports whether the bag contains the given attribute's token.
func (b Bag) Has(a Attribute) bool {
	tok := a.Token()
	if tok == "" {
		return false
	}
	_, ok := b[tok]
	return ok
}

// HasFamily reports whether the bag contains the given family token.
func (b Bag) HasFamily(family string) bool {
	_, ok := b["FAMILY:"+family]
	return ok
}

// Superset reports whether b contains every token in required.
func (b Bag) Superset(required Bag) bool {
	for tok := range required {
		if _, ok := b[tok]; !ok {
			return false
		}
	}
	return true
}
