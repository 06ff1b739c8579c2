// Package dicomdata wraps github.com/suyashkumar/dicom datasets behind a
// small lookup interface, so the classification engine never touches the
// underlying parser's element/value types directly.
package dicomdata

import (
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Dataset is the read-only view of one DICOM instance the extractors and
// strategies operate against.
type Dataset interface {
	// Lookup returns the element's value for tag, and whether it was present.
	Lookup(t tag.Tag) (Value, bool)
}

// Value is the decoded payload of a DICOM element. Strings holds VR-decoded
// string values (the common case for the tags this module reads); Ints holds
// decoded numeric sequences (used for b-values and DTI direction counts).
type Value struct {
	Strings []string
	Ints    []int
}

// First returns the first string value, or "" if the value has none.
func (v Value) First() string {
	if len(v.Strings) == 0 {
		return ""
	}
	return v.Strings[0]
}

// FirstInt returns the first int value and true, or (0, false) if empty.
func (v Value) FirstInt() (int, bool) {
	if len(v.Ints) == 0 {
		return 0, false
	}
	return v.Ints[0], true
}

// suyashDataset adapts *dicom.Dataset to Dataset.
type suyashDataset struct {
	ds *dicom.Dataset
}

// Wrap adapts a parsed suyashkumar/dicom dataset to Dataset.
func Wrap(ds *dicom.Dataset) Dataset {
	return &suyashDataset{ds: ds}
}

// Load parses a DICOM instance from disk.
func Load(path string) (Dataset, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, err
	}
	return Wrap(&ds), nil
}

func (d *suyashDataset) Lookup(t tag.Tag) (Value, bool) {
	elem, err := d.ds.FindElementByTag(t)
	if err != nil || elem == nil || elem.Value == nil {
		return Value{}, false
	}
	raw := elem.Value.GetValue()
	return decodeValue(raw), true
}

func decodeValue(raw interface{}) Value {
	switch v := raw.(type) {
	case []string:
		return Value{Strings: v}
	case []int:
		return Value{Ints: v}
	case []int16:
		out := make([]int, len(v))
		for i, n := range v {
			out[i] = int(n)
		}
		return Value{Ints: out}
	case []uint16:
		out := make([]int, len(v))
		for i, n := range v {
			out[i] = int(n)
		}
		return Value{Ints: out}
	case []int32:
		out := make([]int, len(v))
		for i, n := range v {
			out[i] = int(n)
		}
		return Value{Ints: out}
	case string:
		return Value{Strings: []string{v}}
	default:
		return Value{}
	}
}

// Tag builds a tag.Tag for private/vendor elements that have no named
// constant in pkg/tag.
func Tag(group, element uint16) tag.Tag {
	return tag.Tag{Group: group, Element: element}
}
