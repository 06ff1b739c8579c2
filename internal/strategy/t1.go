package strategy

import (
	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// t1Markers seeds FLAIR/CUBE/BRAVO as independent, non-exclusive markers:
// the rename table has compound entries (T1FLAIRCUBE) that an exclusive
// if/elif chain over the description text could never produce, so each
// marker is detected on its own and the rule table's required-subset match
// recombines them.
func t1Markers(d dicomdata.Dataset, desc string, threeD bool) []attrs.SeriesMarker {
	var markers []attrs.SeriesMarker
	if containsFold(desc, "FLAIR") || attrs.DetectFlair(d, attrs.FlairFamilyT1) == attrs.FLAIR {
		markers = append(markers, attrs.FLAIR)
	}
	if threeD {
		if containsFold(desc, "CUBE") || attrs.DetectCube(d) == attrs.CUBE {
			markers = append(markers, attrs.CUBE)
		}
		if containsFold(desc, "BRAVO") || containsFold(desc, "FSPGR") || attrs.DetectBravo(d) == attrs.BRAVO {
			markers = append(markers, attrs.BRAVO)
		}
	}
	return markers
}

var t1Rules2D = []Rule{
	{Verdict: series.T1AXI, Required: bag(attrs.NE, attrs.AXI)},
	{Verdict: series.T1SAG, Required: bag(attrs.NE, attrs.SAG)},
	{Verdict: series.T1COR, Required: bag(attrs.NE, attrs.COR)},
	{Verdict: series.T1CEAXI, Required: bag(attrs.CE, attrs.AXI)},
	{Verdict: series.T1CESAG, Required: bag(attrs.CE, attrs.SAG)},
	{Verdict: series.T1CECOR, Required: bag(attrs.CE, attrs.COR)},
	{Verdict: series.T1FLAIRAXI, Required: bag(attrs.FLAIR, attrs.NE, attrs.AXI)},
	{Verdict: series.T1FLAIRSAG, Required: bag(attrs.FLAIR, attrs.NE, attrs.SAG)},
	{Verdict: series.T1FLAIRCOR, Required: bag(attrs.FLAIR, attrs.NE, attrs.COR)},
	{Verdict: series.T1FLAIRCEAXI, Required: bag(attrs.FLAIR, attrs.CE, attrs.AXI)},
	{Verdict: series.T1FLAIRCESAG, Required: bag(attrs.FLAIR, attrs.CE, attrs.SAG)},
	{Verdict: series.T1FLAIRCECOR, Required: bag(attrs.FLAIR, attrs.CE, attrs.COR)},
}

var t1Rules3D = []Rule{
	{Verdict: series.T1CubeAXI, Required: bag(attrs.CUBE, attrs.NE, attrs.AXI)},
	{Verdict: series.T1CubeSAG, Required: bag(attrs.CUBE, attrs.NE, attrs.SAG)},
	{Verdict: series.T1CubeCOR, Required: bag(attrs.CUBE, attrs.NE, attrs.COR)},
	{Verdict: series.T1CubeAXIr, Required: bag(attrs.CUBE, attrs.NE, attrs.AXIr)},
	{Verdict: series.T1CubeSAGr, Required: bag(attrs.CUBE, attrs.NE, attrs.SAGr)},
	{Verdict: series.T1CubeCORr, Required: bag(attrs.CUBE, attrs.NE, attrs.CORr)},

	{Verdict: series.T1CubeCEAXI, Required: bag(attrs.CUBE, attrs.CE, attrs.AXI)},
	{Verdict: series.T1CubeCESAG, Required: bag(attrs.CUBE, attrs.CE, attrs.SAG)},
	{Verdict: series.T1CubeCECOR, Required: bag(attrs.CUBE, attrs.CE, attrs.COR)},
	{Verdict: series.T1CubeCEAXIr, Required: bag(attrs.CUBE, attrs.CE, attrs.AXIr)},
	{Verdict: series.T1CubeCESAGr, Required: bag(attrs.CUBE, attrs.CE, attrs.SAGr)},
	{Verdict: series.T1CubeCECORr, Required: bag(attrs.CUBE, attrs.CE, attrs.CORr)},

	{Verdict: series.T1FlairCubeAXI, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.AXI)},
	{Verdict: series.T1FlairCubeSAG, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.SAG)},
	{Verdict: series.T1FlairCubeCOR, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.COR)},
	{Verdict: series.T1FlairCubeAXIr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.AXIr)},
	{Verdict: series.T1FlairCubeSAGr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.SAGr)},
	{Verdict: series.T1FlairCubeCORr, Required: bag(attrs.FLAIR, attrs.CUBE, attrs.NE, attrs.CORr)},

	{Verdict: series.T1BravoAXI, Required: bag(attrs.BRAVO, attrs.NE, attrs.AXI)},
	{Verdict: series.T1BravoSAG, Required: bag(attrs.BRAVO, attrs.NE, attrs.SAG)},
	{Verdict: series.T1BravoCOR, Required: bag(attrs.BRAVO, attrs.NE, attrs.COR)},
	{Verdict: series.T1BravoAXIr, Required: bag(attrs.BRAVO, attrs.NE, attrs.AXIr)},
	{Verdict: series.T1BravoSAGr, Required: bag(attrs.BRAVO, attrs.NE, attrs.SAGr)},
	{Verdict: series.T1BravoCORr, Required: bag(attrs.BRAVO, attrs.NE, attrs.CORr)},

	{Verdict: series.T1BravoCEAXIr, Required: bag(attrs.BRAVO, attrs.CE, attrs.AXIr)},
	{Verdict: series.T1BravoCESAGr, Required: bag(attrs.BRAVO, attrs.CE, attrs.SAGr)},
	{Verdict: series.T1BravoCECORr, Required: bag(attrs.BRAVO, attrs.CE, attrs.CORr)},
}

type t1Strategy struct{}

// T1Strategy accepts 2D and 3D T1-weighted series (plain, FLAIR, CUBE,
// BRAVO/FSPGR, and their contrast-enhanced and reformatted variants).
func T1Strategy() Strategy { return &t1Strategy{} }

func (s *t1Strategy) Name() string { return "T1" }

func (s *t1Strategy) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != attrs.MR {
		return "", false
	}
	desc := attrs.SeriesDescription(d)
	acq := attrs.ExtractAcquisitionType(d)

	var rules []Rule
	switch acq {
	case attrs.Type2D:
		if !containsFold(desc, "T1") && !containsFold(desc, "FLAIR") {
			return "", false
		}
		rules = t1Rules2D
	case attrs.Type3D:
		if !containsFold(desc, "T1") && !containsFold(desc, "AX") && !containsFold(desc, "COR") &&
			!containsFold(desc, "SAG") && !containsFold(desc, "FLAIR") && !containsFold(desc, "CUBE") &&
			!containsFold(desc, "BRAVO") && !containsFold(desc, "FSPGR") {
			return "", false
		}
		rules = t1Rules3D
	default:
		return "", false
	}

	b := attrs.NewBag()
	for _, m := range t1Markers(d, desc, acq == attrs.Type3D) {
		b.Add(m)
	}
	b.Add(attrs.ExtractContrast(d, attrs.MR))
	b.Add(attrs.ExtractOrientation(d))
	return bestRule(b, rules)
}
