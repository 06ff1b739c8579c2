// Package series defines Verdict, the closed set of canonical series
// identifiers classification produces. Study-folder naming and parsing live
// in internal/renameplan.
package series

// Verdict is a canonical series identifier: the output of classification and
// the name of the folder/file a RenamePlan writes into.
type Verdict string

// FamilyToken returns the "FAMILY:<family>" token form for a family name;
// no strategy in internal/strategy seeds this token into its attribute bag.
func FamilyToken(family string) string {
	return "FAMILY:" + family
}

// The full set of canonical series identifiers this module can produce,
// grounded on the strategy rename tables in internal/strategy. Diffusion.
const (
	DWI0    Verdict = "DWI0"
	DWI1000 Verdict = "DWI1000"
)

// ADC / eADC.
const (
	ADC  Verdict = "ADC"
	EADC Verdict = "eADC"
)

// SWAN / eSWAN.
const (
	SWAN      Verdict = "SWAN"
	SWANmIP   Verdict = "SWANmIP"
	SWANPHASE Verdict = "SWANPHASE"
	ESWAN     Verdict = "eSWAN"
	ESWANmIP  Verdict = "eSWANmIP"
)

// MR angiography.
const (
	MRABrain   Verdict = "MRA_BRAIN"
	MRANeck    Verdict = "MRA_NECK"
	MRAVRBrain Verdict = "MRAVR_BRAIN"
	MRAVRNeck  Verdict = "MRAVR_NECK"
)

// T1, 2D.
const (
	T1AXI         Verdict = "T1_AXI"
	T1SAG         Verdict = "T1_SAG"
	T1COR         Verdict = "T1_COR"
	T1CEAXI       Verdict = "T1CE_AXI"
	T1CESAG       Verdict = "T1CE_SAG"
	T1CECOR       Verdict = "T1CE_COR"
	T1FLAIRAXI    Verdict = "T1FLAIR_AXI"
	T1FLAIRSAG    Verdict = "T1FLAIR_SAG"
	T1FLAIRCOR    Verdict = "T1FLAIR_COR"
	T1FLAIRCEAXI  Verdict = "T1FLAIRCE_AXI"
	T1FLAIRCESAG  Verdict = "T1FLAIRCE_SAG"
	T1FLAIRCECOR  Verdict = "T1FLAIRCE_COR"
)

// T1, 3D (CUBE / CUBE+CE / FLAIR CUBE / BRAVO / BRAVO+CE, plain + reformatted).
const (
	T1CubeAXI    Verdict = "T1CUBE_AXI"
	T1CubeSAG    Verdict = "T1CUBE_SAG"
	T1CubeCOR    Verdict = "T1CUBE_COR"
	T1CubeAXIr   Verdict = "T1CUBE_AXIr"
	T1CubeSAGr   Verdict = "T1CUBE_SAGr"
	T1CubeCORr   Verdict = "T1CUBE_CORr"
	T1CubeCEAXI  Verdict = "T1CUBECE_AXI"
	T1CubeCESAG  Verdict = "T1CUBECE_SAG"
	T1CubeCECOR  Verdict = "T1CUBECE_COR"
	T1CubeCEAXIr Verdict = "T1CUBECE_AXIr"
	T1CubeCESAGr Verdict = "T1CUBECE_SAGr"
	T1CubeCECORr Verdict = "T1CUBECE_CORr"

	T1FlairCubeAXI  Verdict = "T1FLAIRCUBE_AXI"
	T1FlairCubeSAG  Verdict = "T1FLAIRCUBE_SAG"
	T1FlairCubeCOR  Verdict = "T1FLAIRCUBE_COR"
	T1FlairCubeAXIr Verdict = "T1FLAIRCUBE_AXIr"
	T1FlairCubeSAGr Verdict = "T1FLAIRCUBE_SAGr"
	T1FlairCubeCORr Verdict = "T1FLAIRCUBE_CORr"

	T1BravoAXI    Verdict = "T1BRAVO_AXI"
	T1BravoSAG    Verdict = "T1BRAVO_SAG"
	T1BravoCOR    Verdict = "T1BRAVO_COR"
	T1BravoAXIr   Verdict = "T1BRAVO_AXIr"
	T1BravoSAGr   Verdict = "T1BRAVO_SAGr"
	T1BravoCORr   Verdict = "T1BRAVO_CORr"
	T1BravoCEAXIr Verdict = "T1BRAVOCE_AXIr"
	T1BravoCESAGr Verdict = "T1BRAVOCE_SAGr"
	T1BravoCECORr Verdict = "T1BRAVOCE_CORr"
)

// T2, 2D.
const (
	T2AXI      Verdict = "T2_AXI"
	T2SAG      Verdict = "T2_SAG"
	T2COR      Verdict = "T2_COR"
	T2CEAXI    Verdict = "T2CE_AXI"
	T2CESAG    Verdict = "T2CE_SAG"
	T2CECOR    Verdict = "T2CE_COR"
	T2FLAIRAXI Verdict = "T2FLAIR_AXI"
	T2FLAIRSAG Verdict = "T2FLAIR_SAG"
	T2FLAIRCOR Verdict = "T2FLAIR_COR"
)

// T2, 3D (CUBE / CUBE+CE / FLAIR CUBE, plain + reformatted; FLAIR CUBE + CE
// only in its reformatted form, matching the source's asymmetric table).
const (
	T2CubeAXI    Verdict = "T2CUBE_AXI"
	T2CubeSAG    Verdict = "T2CUBE_SAG"
	T2CubeCOR    Verdict = "T2CUBE_COR"
	T2CubeAXIr   Verdict = "T2CUBE_AXIr"
	T2CubeSAGr   Verdict = "T2CUBE_SAGr"
	T2CubeCORr   Verdict = "T2CUBE_CORr"
	T2CubeCEAXI  Verdict = "T2CUBECE_AXI"
	T2CubeCESAG  Verdict = "T2CUBECE_SAG"
	T2CubeCECOR  Verdict = "T2CUBECE_COR"
	T2CubeCEAXIr Verdict = "T2CUBECE_AXIr"
	T2CubeCESAGr Verdict = "T2CUBECE_SAGr"
	T2CubeCECORr Verdict = "T2CUBECE_CORr"

	T2FlairCubeAXI    Verdict = "T2FLAIRCUBE_AXI"
	T2FlairCubeSAG    Verdict = "T2FLAIRCUBE_SAG"
	T2FlairCubeCOR    Verdict = "T2FLAIRCUBE_COR"
	T2FlairCubeAXIr   Verdict = "T2FLAIRCUBE_AXIr"
	T2FlairCubeSAGr   Verdict = "T2FLAIRCUBE_SAGr"
	T2FlairCubeCORr   Verdict = "T2FLAIRCUBE_CORr"
	T2FlairCubeCEAXIr Verdict = "T2FLAIRCUBECE_AXIr"
	T2FlairCubeCESAGr Verdict = "T2FLAIRCUBECE_SAGr"
	T2FlairCubeCECORr Verdict = "T2FLAIRCUBECE_CORr"
)

// ASL (arterial spin labeling), 3D only.
const (
	ASLSeq         Verdict = "ASLSEQ"
	ASLProd        Verdict = "ASLPROD"
	ASLSeqATT      Verdict = "ASLSEQATT"
	ASLSeqATTColor Verdict = "ASLSEQATT_COLOR"
	ASLSeqCBF      Verdict = "ASLSEQCBF"
	ASLSeqCBFColor Verdict = "ASLSEQCBF_COLOR"
	ASLSeqPW       Verdict = "ASLSEQPW"
)

// DSC (dynamic susceptibility contrast perfusion).
const (
	DSC  Verdict = "DSC"
	RCBF Verdict = "rCBF"
	RCBV Verdict = "rCBV"
	MTT  Verdict = "MTT"
)

// CVR (cerebrovascular reactivity).
const (
	CVR2000EAR Verdict = "CVR2000_EAR"
	CVR2000EYE Verdict = "CVR2000_EYE"
	CVR2000    Verdict = "CVR2000"
	CVR1000    Verdict = "CVR1000"
	CVRBare    Verdict = "CVR"
)

// Resting-state fMRI.
const (
	Resting2000 Verdict = "RESTING2000"
	RestingBare Verdict = "RESTING"
)

// DTI (diffusion tensor imaging).
const (
	DTI32D Verdict = "DTI32D"
	DTI64D Verdict = "DTI64D"
)
