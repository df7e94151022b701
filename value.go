package dicomlite

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// placeholderThreshold is the largest value length shown verbatim in a tag map.
const placeholderThreshold = 256

// SequencePlaceholder stands in for the value of every SQ element in a tag map.
const SequencePlaceholder = "[Sequence]"

// ValueKind identifies which field of a `TagValue` carries its value.
type ValueKind int

// Value kinds
const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindStrings
	KindNumbers
	KindPlaceholder
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindStrings:
		return "strings"
	case KindNumbers:
		return "numbers"
	case KindPlaceholder:
		return "placeholder"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// TagValue is one decoded entry of a dataset's tag map.
// Exactly one of `Str`, `Num`, `Strs`, `Nums` is meaningful, as given by `Kind`;
// placeholders are carried in `Str`.
type TagValue struct {
	Tag  dictionary.Tag
	VR   string
	Name string
	Kind ValueKind
	Str  string
	Num  float64
	Strs []string
	Nums []float64
}

// String formats the value for display. Absent values are empty.
func (v TagValue) String() string {
	switch v.Kind {
	case KindString, KindPlaceholder:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindStrings:
		return strings.Join(v.Strs, `\`)
	case KindNumbers:
		parts := make([]string, len(v.Nums))
		for i, n := range v.Nums {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return strings.Join(parts, `\`)
	}
	return ""
}

func binaryPlaceholder(n int) string {
	return fmt.Sprintf("[Binary data: %d bytes]", n)
}

// NewTagValue converts a parsed element to its tag map representation.
func NewTagValue(e Element) TagValue {
	tv := TagValue{Tag: e.Tag, VR: e.VR, Name: e.Name}
	if tv.Name == "" {
		tv.Name = dictionary.Name(e.Tag)
	}
	if e.IsSequence() {
		tv.Kind, tv.Str = KindPlaceholder, SequencePlaceholder
		return tv
	}
	if len(e.value) == 0 {
		return tv
	}
	if len(e.value) > placeholderThreshold || IsBinaryVR(e.VR) {
		tv.Kind, tv.Str = KindPlaceholder, binaryPlaceholder(len(e.value))
		return tv
	}
	switch v := e.Value().(type) {
	case string:
		tv.Kind, tv.Str = KindString, v
	case []string:
		tv.Kind, tv.Strs = KindStrings, v
	case uint16:
		tv.Kind, tv.Num = KindNumber, float64(v)
	case int16:
		tv.Kind, tv.Num = KindNumber, float64(v)
	case uint32:
		tv.Kind, tv.Num = KindNumber, float64(v)
	case int32:
		tv.Kind, tv.Num = KindNumber, float64(v)
	case float32:
		tv.setNumber(float64(v))
	case float64:
		tv.setNumber(v)
	case []uint16:
		tv.Kind, tv.Nums = KindNumbers, make([]float64, len(v))
		for i, n := range v {
			tv.Nums[i] = float64(n)
		}
	case []int16:
		tv.Kind, tv.Nums = KindNumbers, make([]float64, len(v))
		for i, n := range v {
			tv.Nums[i] = float64(n)
		}
	case []uint32:
		tv.Kind, tv.Nums = KindNumbers, make([]float64, len(v))
		for i, n := range v {
			tv.Nums[i] = float64(n)
		}
	case []int32:
		tv.Kind, tv.Nums = KindNumbers, make([]float64, len(v))
		for i, n := range v {
			tv.Nums[i] = float64(n)
		}
	case []float32:
		tv.Kind, tv.Nums = KindNumbers, make([]float64, len(v))
		for i, n := range v {
			tv.Nums[i] = float64(n)
		}
	case []float64:
		tv.Kind, tv.Nums = KindNumbers, v
	default:
		// unrecognised VR, or a value that could not be decoded
		tv.Kind, tv.Str = KindPlaceholder, binaryPlaceholder(len(e.value))
	}
	return tv
}

func (tv *TagValue) setNumber(n float64) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return
	}
	tv.Kind, tv.Num = KindNumber, n
}

// TagMap builds the tag map of every top-level element except Pixel Data.
func (df Dicom) TagMap() map[dictionary.Tag]TagValue {
	tags := make(map[dictionary.Tag]TagValue, len(df.Elements))
	for tag, e := range df.Elements {
		if tag == dictionary.PixelData {
			continue
		}
		tags[tag] = NewTagValue(e)
	}
	return tags
}

/*
===============================================================================
    Field Extraction
===============================================================================
*/

// GetString returns the text value of `tag`. Multi-valued text is rejoined with "\".
// `found` is false when the element is missing, empty, or not textual.
func (df Dicom) GetString(tag dictionary.Tag) (val string, found bool) {
	e, ok := df.GetElement(tag)
	if !ok {
		return "", false
	}
	switch v := e.Value().(type) {
	case string:
		return v, v != ""
	case []string:
		val = strings.Join(v, `\`)
		return val, val != ""
	}
	return "", false
}

// GetFloats returns every numeric value of `tag`, parsed from text (DS / IS) or binary VRs.
// Any unparsable or non-finite component makes the whole field absent.
func (df Dicom) GetFloats(tag dictionary.Tag) ([]float64, bool) {
	e, ok := df.GetElement(tag)
	if !ok {
		return nil, false
	}
	var out []float64
	switch v := e.Value().(type) {
	case string:
		out = make([]float64, 0, 1)
		for _, s := range strings.Split(v, `\`) {
			f, ok := parseDecimal(s)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
	case []string:
		out = make([]float64, 0, len(v))
		for _, s := range v {
			f, ok := parseDecimal(s)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
	default:
		tv := NewTagValue(e)
		switch tv.Kind {
		case KindNumber:
			out = []float64{tv.Num}
		case KindNumbers:
			out = tv.Nums
		default:
			return nil, false
		}
	}
	for _, f := range out {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
	}
	return out, len(out) > 0
}

// GetFloat returns the first numeric value of `tag`.
func (df Dicom) GetFloat(tag dictionary.Tag) (float64, bool) {
	vals, ok := df.GetFloats(tag)
	if !ok {
		return 0, false
	}
	return vals[0], true
}

// GetInt returns the first value of `tag` as an integer. Decimal text holding a
// whole number (i.e. "12.0") is accepted; fractions are not.
func (df Dicom) GetInt(tag dictionary.Tag) (int, bool) {
	f, ok := df.GetFloat(tag)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Trim(s, "\x00"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
