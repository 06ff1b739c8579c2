// Package strategy implements the per-series-family classification rules:
// which DICOM instances a family accepts, and which canonical series.Verdict
// their extracted attributes resolve to.
package strategy

import (
	"regexp"
	"sort"

	"github.com/qaz1996001/dicom2nii/internal/attrs"
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/qaz1996001/dicom2nii/internal/series"
)

// Strategy accepts or rejects an instance and, on acceptance, resolves a
// canonical series.Verdict.
type Strategy interface {
	// Name identifies the family; Dispatcher.Classify returns it alongside
	// the verdict for logging.
	Name() string
	// Match returns the resolved verdict and true when this instance belongs
	// to the family; false rejects without inspecting any further strategy
	// fields.
	Match(d dicomdata.Dataset) (series.Verdict, bool)
}

// Rule maps one canonical verdict to the attribute bag a matching instance
// must contain. Rules within a Table are declared most-general-first; ties in
// required-set size fall back to this declaration order, matching the
// original cerebrovascular-reactivity strategy's explicit specificity sort.
type Rule struct {
	Verdict  series.Verdict
	Required attrs.Bag
}

// Seed populates bag with whatever family-specific markers a Table's rules
// key off (FLAIR/CUBE/BRAVO, contrast, orientation, body part, and so on).
type Seed func(d dicomdata.Dataset, bag attrs.Bag)

// Table is the generic, data-driven strategy shape shared by every family
// whose dispatch reduces to "does the required attribute subset fit in the
// bag extracted from this instance". Families with a richer dispatch
// procedure (SWAN, eSWAN, the four MRA families, T1, T2, ASL, DSC, DTI)
// implement Strategy directly instead.
type Table struct {
	Name_       string
	Modality    attrs.Modality
	AcqTypes    map[attrs.AcquisitionType]bool // empty set accepts any acquisition type, including Null
	Pattern     *regexp.Regexp
	RequireOriginal bool
	Seed        Seed
	Rules       []Rule        // nil/empty: Pattern match alone resolves to FixedVerdict
	FixedVerdict series.Verdict
}

func (t *Table) Name() string { return t.Name_ }

func (t *Table) Match(d dicomdata.Dataset) (series.Verdict, bool) {
	if attrs.ExtractModality(d) != t.Modality {
		return "", false
	}
	if len(t.AcqTypes) > 0 && !t.AcqTypes[attrs.ExtractAcquisitionType(d)] {
		return "", false
	}
	if t.Pattern != nil && !t.Pattern.MatchString(attrs.SeriesDescription(d)) {
		return "", false
	}
	if t.RequireOriginal && attrs.DetectOriginal(d) != attrs.ORIGINAL {
		return "", false
	}
	if len(t.Rules) == 0 {
		return t.FixedVerdict, true
	}
	bag := attrs.NewBag()
	if t.Seed != nil {
		t.Seed(d, bag)
	}
	return bestRule(bag, t.Rules)
}

// bestRule returns the most specific rule whose required set fits in bag.
// Candidates are collected in declaration order, then stable-sorted by
// descending required-set size, so ties resolve to the earlier declaration.
func bestRule(bag attrs.Bag, rules []Rule) (series.Verdict, bool) {
	var candidates []Rule
	for _, r := range rules {
		if bag.Superset(r.Required) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Required) > len(candidates[j].Required)
	})
	return candidates[0].Verdict, true
}

// acqSet is a small constructor for Table.AcqTypes.
func acqSet(types ...attrs.AcquisitionType) map[attrs.AcquisitionType]bool {
	m := make(map[attrs.AcquisitionType]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

// bag is a small constructor for a Rule's Required set.
func bag(tokens ...attrs.Attribute) attrs.Bag {
	b := attrs.NewBag()
	for _, tok := range tokens {
		b.Add(tok)
	}
	return b
}

// Dispatcher holds the registered strategies in canonical precedence order
// and resolves one instance at a time.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher builds a Dispatcher from strategies in the given precedence
// order; earlier strategies get first refusal on every instance.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{strategies: strategies}
}

// Classify runs every registered strategy in order and returns the first
// accepted verdict. ok is false when no strategy accepted the instance.
func (disp *Dispatcher) Classify(d dicomdata.Dataset) (verdict series.Verdict, family string, ok bool) {
	for _, s := range disp.strategies {
		if v, matched := s.Match(d); matched {
			return v, s.Name(), true
		}
	}
	return "", "", false
}

// Default returns the dispatcher wired with every family in spec order:
// DWI, ADC, eADC, SWAN, eSWAN, MRA-Brain, MRA-Neck, MRA-VR-Brain,
// MRA-VR-Neck, T1, T2, ASL, DSC, Resting, CVR, DTI.
func Default() *Dispatcher {
	return NewDispatcher(
		DWIStrategy(),
		ADCStrategy(),
		EADCStrategy(),
		SWANStrategy(),
		ESWANStrategy(),
		MRABrainStrategy(),
		MRANeckStrategy(),
		MRAVRBrainStrategy(),
		MRAVRNeckStrategy(),
		T1Strategy(),
		T2Strategy(),
		ASLStrategy(),
		DSCStrategy(),
		RestingStrategy(),
		CVRStrategy(),
		DTIStrategy(),
	)
}
