package dicomlite

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// Element represents a data element (see: NEMA 7.1 Data Elements)
type Element struct {
	Tag             dictionary.Tag
	VR              string
	Name            string
	VM              string
	ValueLength     uint32
	ByteLengthTotal int64
	FileOffsetStart int64
	value           []byte
	Items           []Item

	// encoding state of the stream at the time the element was read
	littleEndian bool
	charset      *CharacterSet
}

// Item represents a nested Item within a Sequence (see: NEMA 7.5 Nesting of Data Sets)
type Item struct {
	Elements map[dictionary.Tag]Element
	Unparsed []byte
}

// ByTag implements a sort interface
type ByTag []Element

func (a ByTag) Len() int           { return len(a) }
func (a ByTag) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByTag) Less(i, j int) bool { return a[i].Tag < a[j].Tag }

// GetElement returns an Element inside the Item according to `tag`.
// If the tag is not found, param `bool` will be false.
func (i Item) GetElement(tag dictionary.Tag) (Element, bool) {
	e, ok := i.Elements[tag]
	return e, ok
}

// sortedElements returns the values of `elements` ordered by tag
func sortedElements(elements map[dictionary.Tag]Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		out = append(out, e)
	}
	sort.Sort(ByTag(out))
	return out
}

// IsCharacterStringVR returns whether the VR is of character string type
func IsCharacterStringVR(vr string) bool {
	switch vr {
	case "AE", "AS", "CS", "DA", "DS", "DT", "IS", "LO", "LT", "PN", "SH", "ST", "TM", "UC", "UI", "UR", "UT":
		return true
	default:
		return false
	}
}

// IsBinaryVR returns whether the VR holds opaque binary data
func IsBinaryVR(vr string) bool {
	switch vr {
	case "OB", "OD", "OF", "OL", "OV", "OW", "UN":
		return true
	default:
		return false
	}
}

// splitCharacterStringVM splits `buffer` using "\" as delimiter.
func splitCharacterStringVM(buffer []byte) [][]byte {
	return bytes.Split(buffer, []byte(`\`))
}

// splitBinaryVM splits `buffer` at `nBytesEach`.
func splitBinaryVM(buffer []byte, nBytesEach int) (splitted [][]byte) {
	pos := 0
	for len(buffer) >= pos+nBytesEach {
		splitted = append(splitted, buffer[pos:(pos+nBytesEach)])
		pos += nBytesEach
	}
	return
}

// trimPadding removes value padding: trailing NUL / space always, and leading
// spaces except for the free-text VRs where they are significant.
func trimPadding(s string, vr string) string {
	s = strings.TrimRight(s, "\x00 ")
	switch vr {
	case "LT", "ST", "UT":
		return s
	}
	return strings.TrimLeft(s, " ")
}

// SupportsMultiVM returns whether the Element can contain multiple values
func (e Element) SupportsMultiVM() bool {
	switch e.VR {
	case "LT", "ST", "UT", "UR":
		return false
	}
	return e.VM != "" && e.VM != "1" && e.VM != "1-1" && e.VM != "0"
}

// IsSequence reports whether the element nests items (an SQ, or any element of undefined length)
func (e Element) IsSequence() bool {
	return e.VR == "SQ" || (e.ValueLength == undefinedLength && e.Tag != dictionary.PixelData)
}

// ValueBytes returns the raw value bytes, as read from the stream.
func (e Element) ValueBytes() []byte {
	return e.value
}

func (e Element) byteOrder() binary.ByteOrder {
	if e.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func decodeContents(buffer []byte, e *Element) interface{} {
	order := e.byteOrder()
	switch e.VR { // string
	case "SH", "LO", "ST", "PN", "LT", "UT", "UC":
		decoded, err := decodeBytes(buffer, e.charset)
		if err != nil {
			Debugf("error decoding %s with CharacterSet %s: %v", e.Tag, e.charset.Name, err)
			return nil
		}
		return trimPadding(decoded, e.VR)
	case "IS", "DS", "TM", "DA", "DT", "UI", "CS", "AS", "AE", "UR":
		return trimPadding(string(buffer), e.VR)
	case "AT":
		if len(buffer) < 4 {
			return nil
		}
		return dictionary.Tag(uint32(order.Uint16(buffer[0:2]))<<16 | uint32(order.Uint16(buffer[2:4]))).String()
	case "FL": // float
		if len(buffer) < 4 {
			return nil
		}
		return math.Float32frombits(order.Uint32(buffer))
	case "FD": // double
		if len(buffer) < 8 {
			return nil
		}
		return math.Float64frombits(order.Uint64(buffer))
	case "SS": // short
		if len(buffer) < 2 {
			return nil
		}
		return int16(order.Uint16(buffer))
	case "SL": // long
		if len(buffer) < 4 {
			return nil
		}
		return int32(order.Uint32(buffer))
	case "US": // ushort
		if len(buffer) < 2 {
			return nil
		}
		return order.Uint16(buffer)
	case "UL": // ulong
		if len(buffer) < 4 {
			return nil
		}
		return order.Uint32(buffer)
	default:
		return buffer
	}
}

// binaryWidth returns the number of bytes taken by one value of a binary numeric VR, or 0.
func binaryWidth(vr string) int {
	switch vr {
	case "SS", "US":
		return 2
	case "FL", "SL", "UL", "AT":
		return 4
	case "FD":
		return 8
	}
	return 0
}

// Value returns an abstraction layer to the underlying bytestream according to VR.
// Sequences yield `[]Item`; an empty value yields nil.
func (e Element) Value() interface{} {
	if e.IsSequence() || len(e.Items) > 0 {
		return e.Items
	}
	if len(e.value) == 0 {
		return nil
	}
	if IsCharacterStringVR(e.VR) {
		if !e.SupportsMultiVM() {
			return decodeContents(e.value, &e)
		}
		var outBuf []string
		for _, v := range splitCharacterStringVM(e.value) {
			s, ok := decodeContents(v, &e).(string)
			if !ok {
				return nil
			}
			outBuf = append(outBuf, s)
		}
		if len(outBuf) == 1 {
			return outBuf[0]
		}
		return outBuf
	}
	width := binaryWidth(e.VR)
	if width == 0 || len(e.value) <= width {
		return decodeContents(e.value, &e)
	}
	parts := splitBinaryVM(e.value, width)
	switch e.VR {
	case "FL":
		outBuf := make([]float32, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(float32))
		}
		return outBuf
	case "FD":
		outBuf := make([]float64, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(float64))
		}
		return outBuf
	case "SS":
		outBuf := make([]int16, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(int16))
		}
		return outBuf
	case "SL":
		outBuf := make([]int32, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(int32))
		}
		return outBuf
	case "US":
		outBuf := make([]uint16, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(uint16))
		}
		return outBuf
	case "UL":
		outBuf := make([]uint32, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(uint32))
		}
		return outBuf
	case "AT":
		outBuf := make([]string, 0, len(parts))
		for _, v := range parts {
			outBuf = append(outBuf, decodeContents(v, &e).(string))
		}
		return outBuf
	}
	return e.value
}

// Describe returns a string array of human-readable element description
func (e Element) Describe(indentLevel int) []string {
	var description []string
	indentStr := strings.Repeat(" ", indentLevel)
	switch {
	case len(e.Items) > 0:
		description = append(description, fmt.Sprintf("%s[%s] %s %s:", indentStr, e.VR, e.Tag, e.Name))
		for _, item := range e.Items {
			if len(item.Unparsed) > 0 { // the element contains an unparsed buffer.
				description = append(description, fmt.Sprintf("%s    (%d bytes)", indentStr, len(item.Unparsed)))
				continue
			}
			for _, sub := range sortedElements(item.Elements) {
				description = append(description, sub.Describe(indentLevel+4)...)
			}
		}
	case e.ValueLength > 0 && e.ValueLength != undefinedLength:
		if e.ValueLength <= placeholderThreshold && !IsBinaryVR(e.VR) {
			description = append(description, fmt.Sprintf("%s[%s] %s %s: %v", indentStr, e.VR, e.Tag, e.Name, e.Value()))
		} else {
			description = append(description, fmt.Sprintf("%s[%s] %s %s: (%d bytes)", indentStr, e.VR, e.Tag, e.Name, e.ValueLength))
		}
	default: // no value, nor items
		description = append(description, fmt.Sprintf("%s[%s] %s %s: (empty)", indentStr, e.VR, e.Tag, e.Name))
	}
	return description
}
