package strategy

import (
	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// t2Markers mirrors t1Markers but has no BRAVO family: T2 never pairs with
// a BRAVO/FSPGR pulse sequence in the rename table.
func t2Markers(d dicomdata.Dataset, desc string) []attrs.SeriesMarker {
	var markers []attrs.SeriesMarker
	if containsFold(desc, "FLAIR") || attrs.DetectFlair(d, attrs.FlairFamilyT2) == attrs.FLAIR {
		markers = append(markers, attrs.FLAIR)
	}
	if containsFold(desc, "CUBE") || attrs.DetectCube(d) == attrs.CUBE {
		markers = append(markers, attrs.CUBE)
	}
	return markers
}

var t2Rules2D = []Rule{
	{Verdict: series.T2AXI, Required: bag(attrs.NE, attrs.AXI)},
	{Verdict: series.T2SAG, Required: bag(attrs.NE, attrs.SAG)},
	{Verdict: series.T2COR, Required: bag(attrs.NE, attrs.COR)},
	{Verdict: series.T2CEAXI, Required: bag(attrs.CE, attrs.AXI)},
	{Verdict: series.T2CESAG, Required: bag(attrs.CE, attrs.SAG)},
	{Verdict: series.T2CECOR, Required: bag(attrs.CE, attrs.COR)},
	{Verdict: series.T2FLAIRAXI, Required: bag(attrs.FLAIR, attrs.NE, attrs.AXI)},
	{Verdict: series.T2FLAIRSAG, Required: bag(attrs.FLAIR, attrs.NE, attrs.SAG)},
	{Verdict: series.T2FLAIRCOR, Required: bag(attrs.FLAIR, attrs.NE, attrs.COR)},
}

var t2Rules3D = []Rule{
	{Verdict: series.T2CubeAXI, Required: bag(attrs.CUBE, attrs.NE, attrs.AXI)},
	{Verdict: series.T2CubeSAG, Required: bag(attrs.CUBE, attrs.NE, attrs.SAG)},
	{Verdict: series.T2CubeCOR, Required: bag(attrs.CUBE, attrs.NE, attrs.COR)},
	{Verdict: series.T2CubeAXIr, Required: bag(attrs.CUBE, attrs.NE, attrs.AXIr)},
	{Verdict: series.T2CubeSAGr, Required: bag(attrs.CUBE, attrs.NE, attrs.SAGr)},
	{Verdict: series.T2CubeCORr, Required: bag(attrs.CUBE, attrs.NE, attrs.CORr)},

	{Verdict: series.T2CubeCEAXI, Required: bag(attrs.CUBE, attrs.CE, attrs.AXI)},
	{Verdict: series.T2CubeCESAG, Required: bag(attrs.CUBE, attrs.CE, attrs.SAG)},
	{Verdict: series.T2CubeCECOR, Required: bag(attrs.CUBE, attrs.CE, attrs.COR)},
	{Verdict: series.T2CubeCEAXIr, Required: bag(attrs.CUBE, attrs.CE, attrs.AXIr)},
	{Verdict: series.T2CubeCESAGr, Required: bag(attrs.CUBE, attrs.CE, attrs.SAGr)},
	{Verdict: series.T2CubeCECORr, Required: bag(attrs.CUBE, attrs.CE, attrs.CORr)},

	{Verdict: series.T2FlairCubeAXI, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.AXI)},
	{Verdict: series.T2FlairCubeSAG, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.SAG)},
	{Verdict: series.T2FlairCubeCOR, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.COR)},
	{Verdict: series.T2FlairCubeAXIr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.AXIr)},
	{Verdict: series.T2FlairCubeSAGr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.SAGr)},
	{Verdict: series.T2FlairCubeCORr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.CORr)},

	{Verdict: series.T2FlairCubeCEAXIr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.CE, attrs.AXIr)},
	{Verdict: series.T2FlairCubeCESAGr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.CE, attrs.SAGr)},
	{Verdict: series.T2FlairCubeCECORr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.CE, attrs.CORr)},
}

type t2Strategy struct{}

// T2Strategy accepts 2D and 3D T2-weighted series (plain, FLAIR, CUBE, and
// their contrast-enhanced and reformatted variants). T2 has no BRAVO family.
func T2Strategy() Strategy { return &t2Strategy{} }

func (s *t2Strategy) Name() string { return "T2" }

func (s *t2Strategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	if !containsFold(desc, "T2") && !containsFold(desc, "FLAIR") && !containsFold(desc, "CUBE") {
		return "", false
	}

	var rules []Rule
	switch attrs.ExtractAcquisitionType(d) {
	case attrs.Type2D:
		rules = t2Rules2D
	case attrs.Type3D:
		rules = t2Rules3D
	default:
		return "", false
	}

	b := attrs.NewBag()
	for _, m := range t2Markers(d, desc) {
		b.Add(m)
	}
	b.Add(attrs.ExtractContrast(d, attrs.MR))
	b.Add(attrs.ExtractOrientation(d))
	return bestRule(b, rules)
}
