package dicomlite

import (
	"fmt"
	"strings"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Transfer syntax UIDs referenced by the decoder.
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndian            = "1.2.840.10008.1.2.2"
)

/*
===============================================================================
    `TransferSyntax`: Support For Multiple Transfer Syntaxes
===============================================================================
*/

// TransferSyntax provides a link between dictionary `UIDEntry` and encoding (byteorder, implicit/explicit VR)
type TransferSyntax struct {
	UIDEntry *dictionary.UIDEntry
	Encoding *Encoding
}

// Encoding represents the expected encoding of dicom attributes. See transferSyntaxToEncodingMap.
type Encoding struct {
	ImplicitVR   bool
	LittleEndian bool
}

func (e Encoding) String() string {
	var implicitness = "ImplicitVR"
	var endian = "LittleEndian"
	if !e.ImplicitVR {
		implicitness = "ExplicitVR"
	}
	if !e.LittleEndian {
		endian = "BigEndian"
	}
	return fmt.Sprintf("%s + %s", implicitness, endian)
}

// transferSyntaxToEncodingMap provides a mapping between transfer syntax UID and encoding.
// Encapsulated (compressed) syntaxes are all Explicit VR Little Endian and fall through
// to the default in `GetEncodingForTransferSyntax`.
var transferSyntaxToEncodingMap = map[string]*Encoding{
	ImplicitVRLittleEndian:         {ImplicitVR: true, LittleEndian: true},
	ExplicitVRLittleEndian:         {ImplicitVR: false, LittleEndian: true},
	DeflatedExplicitVRLittleEndian: {ImplicitVR: false, LittleEndian: true},
	ExplicitVRBigEndian:            {ImplicitVR: false, LittleEndian: false},
}

// SetFromUID sets the `TransferSyntax` UIDEntry and Encoding from the static dictionary.
// An unregistered UID is an error, and leaves `ts` unchanged.
func (ts *TransferSyntax) SetFromUID(uidstr string) error {
	uidptr, found := dictionary.LookupUID(uidstr)
	if !found || uidptr.Type != "Transfer Syntax" {
		return fmt.Errorf(`could not find transfer syntax "%s" in records`, uidstr)
	}
	ts.UIDEntry = uidptr
	ts.Encoding = GetEncodingForTransferSyntax(*ts)
	return nil
}

// GetEncodingForTransferSyntax returns the encoding for a given TransferSyntax, or defaults.
func GetEncodingForTransferSyntax(ts TransferSyntax) *Encoding {
	if ts.UIDEntry != nil {
		if encoding, found := transferSyntaxToEncodingMap[ts.UIDEntry.UID]; found {
			return encoding
		}
	}
	return transferSyntaxToEncodingMap[ExplicitVRLittleEndian] // fallback (default)
}

// IsNativeTransferSyntax reports whether pixel data under `tsuid` is stored uncompressed.
// An empty UID is treated as the default (Implicit VR Little Endian).
func IsNativeTransferSyntax(tsuid string) bool {
	switch tsuid {
	case "", ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian:
		return true
	}
	return false
}

// checkTransferSyntaxSupport returns an error when the dataset following the meta
// group cannot be read under `tsuid`.
func checkTransferSyntaxSupport(tsuid string) error {
	if tsuid == DeflatedExplicitVRLittleEndian {
		return UnsupportedDicomError("transfer syntax %s (Deflated Explicit VR Little Endian) is unsupported", tsuid)
	}
	return nil
}

/*
===============================================================================
    `CharacterSet`: Accurate Text Representation
===============================================================================
*/

// CharacterSet provides a link between character encoding, description, and decode function.
type CharacterSet struct {
	Name        string
	Description string
	Encoding    encoding.Encoding
}

// CharacterSetMap provides a mapping between character set name, and character set characteristics.
var CharacterSetMap = map[string]*CharacterSet{
	"Default":         {Name: "Default", Description: "Default Character Repertoire", Encoding: unicode.UTF8},
	"ISO_IR 6":        {Name: "ISO_IR 6", Description: "Default Character Repertoire", Encoding: unicode.UTF8},
	"ISO_IR 13":       {Name: "ISO_IR 13", Description: "Japanese", Encoding: japanese.ShiftJIS},
	"ISO_IR 100":      {Name: "ISO_IR 100", Description: "Latin alphabet No. 1", Encoding: charmap.ISO8859_1},
	"ISO_IR 101":      {Name: "ISO_IR 101", Description: "Latin alphabet No. 2", Encoding: charmap.ISO8859_2},
	"ISO_IR 109":      {Name: "ISO_IR 109", Description: "Latin alphabet No. 3", Encoding: charmap.ISO8859_3},
	"ISO_IR 110":      {Name: "ISO_IR 110", Description: "Latin alphabet No. 4", Encoding: charmap.ISO8859_4},
	"ISO_IR 126":      {Name: "ISO_IR 126", Description: "Greek", Encoding: charmap.ISO8859_7},
	"ISO_IR 127":      {Name: "ISO_IR 127", Description: "Arabic", Encoding: charmap.ISO8859_6},
	"ISO_IR 138":      {Name: "ISO_IR 138", Description: "Hebrew", Encoding: charmap.ISO8859_8},
	"ISO_IR 144":      {Name: "ISO_IR 144", Description: "Cyrillic", Encoding: charmap.ISO8859_5},
	"ISO_IR 148":      {Name: "ISO_IR 148", Description: "Latin alphabet No. 5", Encoding: charmap.ISO8859_9},
	"ISO_IR 166":      {Name: "ISO_IR 166", Description: "Thai", Encoding: charmap.Windows874},
	"ISO_IR 192":      {Name: "ISO_IR 192", Description: "Unicode (UTF-8)", Encoding: unicode.UTF8},
	"ISO 2022 IR 6":   {Name: "ISO 2022 IR 6", Description: "ASCII", Encoding: unicode.UTF8},
	"ISO 2022 IR 13":  {Name: "ISO 2022 IR 13", Description: "Japanese (Shift JIS)", Encoding: japanese.ShiftJIS},
	"ISO 2022 IR 87":  {Name: "ISO 2022 IR 87", Description: "Japanese (Kanji)", Encoding: japanese.ISO2022JP},
	"ISO 2022 IR 100": {Name: "ISO 2022 IR 100", Description: "Latin alphabet No. 1", Encoding: charmap.ISO8859_1},
	"ISO 2022 IR 101": {Name: "ISO 2022 IR 101", Description: "Latin alphabet No. 2", Encoding: charmap.ISO8859_2},
	"ISO 2022 IR 109": {Name: "ISO 2022 IR 109", Description: "Latin alphabet No. 3", Encoding: charmap.ISO8859_3},
	"ISO 2022 IR 110": {Name: "ISO 2022 IR 110", Description: "Latin alphabet No. 4", Encoding: charmap.ISO8859_4},
	"ISO 2022 IR 126": {Name: "ISO 2022 IR 126", Description: "Greek", Encoding: charmap.ISO8859_7},
	"ISO 2022 IR 127": {Name: "ISO 2022 IR 127", Description: "Arabic", Encoding: charmap.ISO8859_6},
	"ISO 2022 IR 138": {Name: "ISO 2022 IR 138", Description: "Hebrew", Encoding: charmap.ISO8859_8},
	"ISO 2022 IR 144": {Name: "ISO 2022 IR 144", Description: "Cyrillic", Encoding: charmap.ISO8859_5},
	"ISO 2022 IR 148": {Name: "ISO 2022 IR 148", Description: "Latin alphabet No. 5", Encoding: charmap.ISO8859_9},
	"ISO 2022 IR 149": {Name: "ISO 2022 IR 149", Description: "Korean", Encoding: korean.EUCKR},
	"ISO 2022 IR 159": {Name: "ISO 2022 IR 159", Description: "Japanese (Supplementary Kanji)", Encoding: japanese.ISO2022JP},
	"ISO 2022 IR 166": {Name: "ISO 2022 IR 166", Description: "Thai", Encoding: charmap.Windows874},
	"GB18030":         {Name: "GB18030", Description: "Chinese (Simplified)", Encoding: simplifiedchinese.GB18030},
	"GBK":             {Name: "GBK", Description: "Chinese (Simplified)", Encoding: simplifiedchinese.GBK},
}

// LookupCharacterSet resolves the value(s) of Specific Character Set (0008,0005).
// With code extensions, the first non-empty term that maps to a known set wins.
// Unknown or empty values yield the default repertoire and `found` is false.
func LookupCharacterSet(terms []string) (cs *CharacterSet, found bool) {
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if cs, found = CharacterSetMap[term]; found {
			return
		}
	}
	return CharacterSetMap["Default"], false
}

// decodeBytes attempts to decode `src` using `charset` (i.e. UTF-8 or ShiftJIS).
// A new decoder is created for each call, as `encoding.Decoder` holds state.
// If there arises an issue decoding `src`, `error` will be non-nil.
func decodeBytes(src []byte, charset *CharacterSet) (string, error) {
	if charset == nil || charset.Encoding == nil {
		return string(src), nil
	}
	decoded, err := charset.Encoding.NewDecoder().Bytes(src)
	return string(decoded), err
}
