package dicomlite

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// Dicom provides a link between components that make up a parsed DICOM file
type Dicom struct {
	FilePath       string
	reader         *bufio.Reader
	elementStream  ElementStream
	Preamble       [128]byte
	HasPreamble    bool
	TotalMetaBytes int64
	Elements       map[dictionary.Tag]Element
}

// preambleMagic is the signature following the 128 byte preamble
var preambleMagic = []byte("DICM")

// GetElement returns an Element inside the Dicom according to `tag`.
// If the tag is not found, param `bool` will be false.
func (df Dicom) GetElement(tag dictionary.Tag) (Element, bool) {
	e, ok := df.Elements[tag]
	return e, ok
}

// SortedElements returns all top-level elements ordered by tag
func (df Dicom) SortedElements() []Element {
	return sortedElements(df.Elements)
}

// TransferSyntax returns the transfer syntax the dataset was read with
func (df Dicom) TransferSyntax() TransferSyntax {
	return df.elementStream.TransferSyntax
}

// HasSignature reports whether `buf` begins with a 128 byte preamble followed by "DICM".
func HasSignature(buf []byte) bool {
	return len(buf) >= 132 && bytes.Equal(buf[128:132], preambleMagic)
}

// getPreamble retrieves the 128 byte preamble at the start of each dicom file
// if the preamble does not exist, or the magic string immediately following preamble
// is not "DICM", `found` will be false.
func (df *Dicom) getPreamble() (preamble []byte, found bool) {
	preamble, err := df.elementStream.reader.Peek(132)
	if err != nil || !bytes.Equal(preamble[128:], preambleMagic) {
		return nil, false
	}
	preamble = preamble[:128]
	copy(df.Preamble[:], preamble)
	if err = df.elementStream.skipBytes(132); err != nil {
		return nil, false
	}
	return preamble, true
}

// crawlMeta attempts to retrieve all "meta" elements from the reader.
// The meta group is always Explicit VR Little Endian.
// See ``7.1 DICOM File Meta Information`` for more information.
func (df *Dicom) crawlMeta() error {
	if _, found := df.getPreamble(); found {
		df.HasPreamble = true
	} else {
		if GetConfig().StrictMode {
			return CorruptDicomError("crawlMeta(): missing preamble / \"DICM\" magic")
		}
		Debugf("%s: file is missing preamble (bytes 0-132)", df.FilePath)
	}

	for {
		// check whether meta section has finished
		nextUpper, err := df.elementStream.peekUpperGroup()
		if err != nil || nextUpper != 0x0002 {
			df.TotalMetaBytes = df.elementStream.GetPosition()
			break
		}
		element, err := df.elementStream.GetElement()
		if err != nil {
			return CorruptDicomError("crawlMeta(): %v", err)
		}
		df.Elements[element.Tag] = element
	}
	return nil
}

// guessTransferSyntaxFromBytes is a heuristic for determining the in-use encoding
// 1. If bytes zero to two > 2000, its most likely Big Endian
// 2. if bytes four to six match VR string, it's most likely explicit VR
func guessTransferSyntaxFromBytes(buf []byte) (encoding Encoding, success bool) {
	if len(buf) < 6 {
		return
	}
	firstTwoLE := binary.LittleEndian.Uint16(buf[0:2])
	encoding.LittleEndian = true
	if firstTwoLE > 2000 && firstTwoLE != 0x7FE0 {
		// likely big endian
		encoding.LittleEndian = false
	}
	encoding.ImplicitVR = !isRecognisedVR(string(buf[4:6]))
	success = true
	return
}

// guessTransferSyntax peeks at the next element header and guesses its encoding
func (df *Dicom) guessTransferSyntax() (encoding Encoding, success bool) {
	peeked, err := df.elementStream.reader.Peek(6)
	if err == nil {
		encoding, success = guessTransferSyntaxFromBytes(peeked)
	}
	return
}

// crawlElements attempts to retrieve all remaining elements from the reader.
// See ``7.1 Data Elements`` for more information.
func (df *Dicom) crawlElements() error {
	// change transfer syntax if necessary
	tsElement, found := df.GetElement(dictionary.TransferSyntaxUID)
	if found {
		transfersyntaxuid, ok := tsElement.Value().(string)
		if !ok || transfersyntaxuid == "" {
			return CorruptDicomError("crawlElements(): TransferSyntaxUID is corrupt")
		}
		if err := checkTransferSyntaxSupport(transfersyntaxuid); err != nil {
			return err
		}
		df.elementStream.SetTransferSyntax(transfersyntaxuid)
	} else {
		df.elementStream.SetTransferSyntax(ImplicitVRLittleEndian)
		if encoding, success := df.guessTransferSyntax(); success {
			df.elementStream.TransferSyntax.Encoding = &encoding
			Debugf("%s: guessed transfer syntax encoding: %s", df.FilePath, encoding)
		}
	}
	for df.elementStream.GetRemainingBytes() > 0 {
		element, err := df.elementStream.GetElement()
		if err != nil {
			return CorruptDicomError("crawlElements(): %v", err)
		}
		df.Elements[element.Tag] = element

		if element.Tag == dictionary.SpecificCharacterSet {
			var terms []string
			switch v := element.Value().(type) {
			case string:
				terms = []string{v}
			case []string:
				terms = v
			}
			cs, found := LookupCharacterSet(terms)
			if !found && len(terms) > 0 {
				Debugf("%s: unrecognised character set %q, using default repertoire", df.FilePath, terms)
			}
			df.elementStream.CharacterSet = cs
		}
	}
	return nil
}

// parse reads a dicom from `source` of `size` bytes. The returned `Dicom` holds
// every element read before any error.
func parse(path string, source io.Reader, size int64) (Dicom, error) {
	dcm := Dicom{FilePath: path, Elements: make(map[dictionary.Tag]Element)}
	dcm.reader = ReaderPool.Get(source)
	defer ReaderPool.Put(dcm.reader)
	dcm.elementStream = NewElementStream(dcm.reader, size)
	if err := dcm.crawlMeta(); err != nil {
		return dcm, err
	}
	if err := dcm.crawlElements(); err != nil {
		return dcm, err
	}
	return dcm, nil
}

// ParseFromBytes parses a dicom from a bytestream
func ParseFromBytes(source []byte) (Dicom, error) {
	return parse("", bytes.NewReader(source), int64(len(source)))
}

// ParseDicom takes a relative/absolute path to a dicom file and returns a parsed `Dicom` [+ error]
func ParseDicom(path string) (Dicom, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dicom{FilePath: path}, err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return Dicom{FilePath: path}, err
	}
	return parse(path, f, stat.Size())
}
