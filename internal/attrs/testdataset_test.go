package attrs_test

import (
	"github.com/qaz1996001/dicom2nii/internal/dicomdata"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// fakeDataset is a minimal in-memory dicomdata.Dataset for extractor tests:
// no DICOM parsing involved, just the tag -> value map the extractors read.
type fakeDataset map[tag.Tag]dicomdata.Value

func (f fakeDataset) Lookup(t tag.Tag) (dicomdata.Value, bool) {
	v, ok := f[t]
	return v, ok
}

func strs(ss ...string) dicomdata.Value { return dicomdata.Value{Strings: ss} }
func ints(ns ...int) dicomdata.Value    { return dicomdata.Value{Ints: ns} }
