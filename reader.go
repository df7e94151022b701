package dicomlite

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

/*
===============================================================================
    Data Types
===============================================================================
*/

// readerPool wraps a `sync.Pool` to allow for custom Get/Put methods
type readerPool struct {
	pool *sync.Pool
}

// ReaderPool is a pool of `bufio.Reader` with a buffer size set to `Config`
var ReaderPool = readerPool{pool: &sync.Pool{
	New: func() interface{} {
		return bufio.NewReaderSize(nil, GetConfig().DicomReadBufferSize)
	},
}}

// Get selects an arbitrary item from the Pool, removes it from the
// Pool, and returns it to the caller.
func (rp *readerPool) Get(src io.Reader) (r *bufio.Reader) {
	r = rp.pool.Get().(*bufio.Reader)
	r.Reset(src)
	return
}

// Put adds `r` to the pool.
func (rp *readerPool) Put(r *bufio.Reader) {
	r.Reset(nil)
	rp.pool.Put(r)
}

// ElementStream provides an abstraction layer around a `*bufio.Reader` to facilitate easier parsing.
type ElementStream struct {
	reader         *bufio.Reader
	readerPos      int64
	readerSize     int64
	TransferSyntax TransferSyntax
	CharacterSet   *CharacterSet
	// depth is the number of sequence items currently open
	depth int
	buffers
}

// buffers holds variables for temporary use
// this is to ease pressure off the GC
type buffers struct {
	ui16b [2]byte
	ui32b [4]byte
	nread int
}

// RecognisedVRs lists all recognised VRs.
// See ``6.2 Value Representation (VR)`` for more information
var RecognisedVRs = []string{
	"AE", "AS", "AT", "CS", "DA", "DS", "DT", "FL", "FD", "IS", "LO", "LT", "OB", "OD",
	"OF", "OL", "OV", "OW", "PN", "SH", "SL", "SQ", "SS", "ST", "SV", "TM", "UC", "UI",
	"UL", "UN", "UR", "US", "UT", "UV",
}

// isRecognisedVR reports whether `vr` is listed in `RecognisedVRs`
func isRecognisedVR(vr string) bool {
	for _, v := range RecognisedVRs {
		if v == vr {
			return true
		}
	}
	return false
}

// hasLongExplicitLength reports whether, in explicit VR mode, `vr` is followed by
// two reserved bytes and a 32 bit length (see: NEMA Table 7.1-1).
func hasLongExplicitLength(vr string) bool {
	switch vr {
	case "OB", "OD", "OF", "OL", "OV", "OW", "SQ", "SV", "UC", "UN", "UR", "UT", "UV":
		return true
	}
	return false
}

const undefinedLength = 0xFFFFFFFF

// MaxSequenceDepth is the deepest nesting of sequence items accepted by `ElementStream`.
const MaxSequenceDepth = 64

/*
===============================================================================
    `ElementStream`: Element Parser
===============================================================================
*/

// GetElement retrives an `Element` from the reader, and an `error` if something went wrong.
func (es *ElementStream) GetElement() (Element, error) {
	element := Element{}
	element.littleEndian = es.TransferSyntax.Encoding.LittleEndian
	element.charset = es.CharacterSet

	startBytePos := es.GetPosition()
	element.FileOffsetStart = startBytePos
	tagUint32, err := es.getTag()
	if err != nil {
		return element, CorruptElementError("GetElement(): %v", err)
	}
	tag := dictionary.Tag(tagUint32)
	entry, _ := dictionary.Lookup(tag)
	element.Tag = tag
	element.Name = entry.NameHuman
	element.VR = entry.VR
	element.VM = entry.VM

	if tag.Group() == 0xFFFE {
		// item / delimitation tags never carry a VR, in any transfer syntax
		element.VR = ""
		element.ValueLength, err = es.getUint32()
		if err != nil {
			return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
		}
	} else if es.TransferSyntax.Encoding.ImplicitVR {
		// implicit VR -- all VR length definitions are 32 bits
		element.ValueLength, err = es.getUint32()
		if err != nil {
			return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
		}
	} else {
		VRbytes, err := es.getBytes(2)
		if err != nil {
			return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
		}
		VRstring := string(VRbytes)
		if isRecognisedVR(VRstring) {
			element.VR = VRstring
		}
		// use *source* VR as basis for deciding whether to skip / size of length integer.
		if hasLongExplicitLength(VRstring) {
			if err := es.skipBytes(2); err != nil {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
			element.ValueLength, err = es.getUint32()
			if err != nil {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
		} else {
			length, err := es.getUint16()
			if err != nil {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
			element.ValueLength = uint32(length)
		}
	}

	switch {
	case element.ValueLength == undefinedLength:
		// encapsulated pixel data fragments are kept as raw bytes; anything else nests datasets
		items, err := es.getUndefinedLength(tag != dictionary.PixelData)
		if err != nil {
			return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
		}
		element.Items = items
	case element.VR == "SQ":
		items, err := es.getDefinedLength(int64(element.ValueLength))
		if err != nil {
			return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
		}
		element.Items = items
	default:
		valuebuf, err := es.getBytes(uint(element.ValueLength))
		if err != nil {
			if _, ok := err.(*InsufficientBytes); !ok {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
			if GetConfig().StrictMode {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
			// not running in strict mode, we can truncate the buffer to remaining bytes
			Warnf("element %s: value length truncated from %d bytes to %d bytes due to reaching end of the file. use with caution.",
				tag, element.ValueLength, es.GetRemainingBytes())
			element.ValueLength = uint32(es.GetRemainingBytes())
			valuebuf, err = es.getBytes(uint(element.ValueLength))
			if err != nil {
				return element, CorruptElementError("GetElement(): [%s] %v", tag, err)
			}
		}
		element.value = valuebuf
	}

	element.ByteLengthTotal = es.GetPosition() - startBytePos
	return element, nil
}

// isDelimiter peeks the next tag, returning whether it equals `tag`.
func (es *ElementStream) isDelimiter(tag dictionary.Tag) (bool, error) {
	check, err := es.reader.Peek(4)
	if err != nil {
		return false, CorruptElementStreamError("isDelimiter(): %v", err)
	}
	return tagFromBytes(check, es.TransferSyntax.Encoding.LittleEndian) == uint32(tag), nil
}

// getItemHeader reads an item tag and its length.
// `end` is true when the sequence delimitation item was read instead.
func (es *ElementStream) getItemHeader() (length uint32, end bool, err error) {
	tagUint32, err := es.getTag()
	if err != nil {
		return 0, false, err
	}
	length, err = es.getUint32()
	if err != nil {
		return 0, false, err
	}
	switch dictionary.Tag(tagUint32) {
	case dictionary.SequenceDelimitationItem:
		return 0, true, nil
	case dictionary.Item:
		return length, false, nil
	}
	return 0, false, CorruptElementStreamError("0x%08X != 0xFFFEE000 (offset %d)", tagUint32, es.GetPosition())
}

// getItemElements reads elements until `length` bytes are consumed, or (for an undefined
// length item) until the item delimitation item is reached.
func (es *ElementStream) getItemElements(length uint32) (map[dictionary.Tag]Element, error) {
	elements := make(map[dictionary.Tag]Element)
	if es.depth >= MaxSequenceDepth {
		return elements, CorruptElementStreamError("items nested deeper than %d levels (offset %d)", MaxSequenceDepth, es.GetPosition())
	}
	es.depth++
	defer func() { es.depth-- }()
	if length == undefinedLength {
		for {
			end, err := es.isDelimiter(dictionary.ItemDelimitationItem)
			if err != nil {
				return elements, err
			}
			if end {
				// skip eight bytes (delimitation item + 0x00{4}) (see: NEMA Table 7.5-3)
				return elements, es.skipBytes(8)
			}
			e, err := es.GetElement()
			if err != nil {
				return elements, err
			}
			elements[e.Tag] = e
		}
	}
	end := es.GetPosition() + int64(length)
	if end > es.readerSize {
		return elements, CorruptElementStreamError("item length (%d) exceeds remaining bytes (%d)", length, es.GetRemainingBytes())
	}
	for es.GetPosition() < end {
		e, err := es.GetElement()
		if err != nil {
			return elements, err
		}
		elements[e.Tag] = e
	}
	if es.GetPosition() != end {
		return elements, CorruptElementStreamError("item overran its length of %d bytes", length)
	}
	return elements, nil
}

// getUndefinedLength retrieves embedded `Item`s in an element of "undefined length" from the reader.
// When `parseElements` is false, item contents are kept unparsed (i.e. pixel data fragments).
func (es *ElementStream) getUndefinedLength(parseElements bool) ([]Item, error) {
	var items []Item
	for {
		length, end, err := es.getItemHeader()
		if err != nil {
			return items, CorruptElementStreamError("getUndefinedLength(): %v", err)
		}
		if end {
			return items, nil
		}
		item := Item{}
		if parseElements {
			item.Elements, err = es.getItemElements(length)
		} else if length == undefinedLength {
			err = CorruptElementStreamError("encapsulated fragment with undefined length")
		} else {
			item.Unparsed, err = es.getBytes(uint(length))
		}
		if err != nil {
			return items, CorruptElementStreamError("getUndefinedLength(): %v", err)
		}
		items = append(items, item)
	}
}

// getDefinedLength retrieves the `Item`s of a sequence whose value length is `length` bytes.
func (es *ElementStream) getDefinedLength(length int64) ([]Item, error) {
	var items []Item
	if length > es.GetRemainingBytes() {
		return items, CorruptElementStreamError("getDefinedLength(): sequence length (%d) exceeds remaining bytes (%d)", length, es.GetRemainingBytes())
	}
	end := es.GetPosition() + length
	for es.GetPosition() < end {
		itemLength, last, err := es.getItemHeader()
		if err != nil {
			return items, CorruptElementStreamError("getDefinedLength(): %v", err)
		}
		if last {
			break
		}
		elements, err := es.getItemElements(itemLength)
		if err != nil {
			return items, CorruptElementStreamError("getDefinedLength(): %v", err)
		}
		items = append(items, Item{Elements: elements})
	}
	return items, nil
}

// skipBytes fast-forwards the reader `num` bytes
func (es *ElementStream) skipBytes(num int) (err error) {
	if num == 0 {
		return nil
	}
	if numRemaining := es.GetRemainingBytes(); numRemaining < int64(num) {
		return CorruptElementStreamError("skipBytes(%d): would exceed buffer size (%d bytes)", num, numRemaining)
	}
	es.nread, err = es.reader.Discard(num)
	es.readerPos += int64(es.nread)
	if err != nil {
		return CorruptElementStreamError("skipBytes(%d): %v", num, err)
	}
	return nil
}

// GetPosition returns the current buffer position
func (es *ElementStream) GetPosition() int64 {
	return es.readerPos
}

// GetRemainingBytes returns the number of remaining unread bytes
func (es *ElementStream) GetRemainingBytes() int64 {
	return es.readerSize - es.readerPos
}

// getUint16 retrieves a uint16 (two bytes) from the reader
func (es *ElementStream) getUint16() (res uint16, err error) {
	if numRemaining := es.GetRemainingBytes(); numRemaining < 2 {
		return 0, CorruptElementStreamError("getUint16(): would exceed buffer size (%d bytes)", numRemaining)
	}
	es.nread, err = io.ReadFull(es.reader, es.ui16b[:])
	es.readerPos += int64(es.nread)
	if err != nil {
		return 0, CorruptElementStreamError("getUint16(): %v", err)
	}
	if es.TransferSyntax.Encoding.LittleEndian {
		res = binary.LittleEndian.Uint16(es.ui16b[:])
	} else {
		res = binary.BigEndian.Uint16(es.ui16b[:])
	}
	return
}

// getUint32 retrieves a uint32 (four bytes) from the reader
func (es *ElementStream) getUint32() (res uint32, err error) {
	if numRemaining := es.GetRemainingBytes(); numRemaining < 4 {
		return 0, CorruptElementStreamError("getUint32(): would exceed buffer size (%d bytes)", numRemaining)
	}
	es.nread, err = io.ReadFull(es.reader, es.ui32b[:])
	es.readerPos += int64(es.nread)
	if err != nil {
		return 0, CorruptElementStreamError("getUint32(): %v", err)
	}
	if es.TransferSyntax.Encoding.LittleEndian {
		res = binary.LittleEndian.Uint32(es.ui32b[:])
	} else {
		res = binary.BigEndian.Uint32(es.ui32b[:])
	}
	return
}

// tagFromBytes returns a tag uint32 from an array of bytes. length should be at least four.
func tagFromBytes(buf []byte, littleEndian bool) uint32 {
	if littleEndian {
		return (uint32(binary.LittleEndian.Uint16(buf[0:2])) << 16) | uint32(binary.LittleEndian.Uint16(buf[2:4]))
	}
	return (uint32(binary.BigEndian.Uint16(buf[0:2])) << 16) | uint32(binary.BigEndian.Uint16(buf[2:4]))
}

// getTag retrieves a tag uint32 from the reader
func (es *ElementStream) getTag() (tag uint32, err error) {
	if numRemaining := es.GetRemainingBytes(); numRemaining < 4 {
		return 0, CorruptElementStreamError("getTag(): would exceed buffer size (%d bytes)", numRemaining)
	}
	es.nread, err = io.ReadFull(es.reader, es.ui32b[:])
	es.readerPos += int64(es.nread)
	if err != nil {
		return 0, CorruptElementStreamError("getTag(): %v", err)
	}
	tag = tagFromBytes(es.ui32b[:], es.TransferSyntax.Encoding.LittleEndian)
	return
}

// getBytes retrieves `num` bytes from the reader
func (es *ElementStream) getBytes(num uint) ([]byte, error) {
	if num == 0 {
		return []byte{}, nil
	}
	if int64(num) > es.GetRemainingBytes() {
		return nil, &InsufficientBytes{fmt.Errorf("getBytes(%d): (offset 0x%X): would exceed buffer size (%d bytes)", num, es.GetPosition(), es.GetRemainingBytes())}
	}
	buf := make([]byte, num)
	nread, err := io.ReadFull(es.reader, buf)
	es.readerPos += int64(nread)
	if err != nil {
		return buf, CorruptElementStreamError("getBytes(%d): %v", num, err)
	}
	return buf, nil
}

// peekUpperGroup returns the group of the next element, read as little endian.
func (es *ElementStream) peekUpperGroup() (uint16, error) {
	b, err := es.reader.Peek(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// NewElementStream sets up a new `ElementStream`
func NewElementStream(readerPtr *bufio.Reader, readerSize int64) (stream ElementStream) {
	stream = ElementStream{TransferSyntax: TransferSyntax{}}
	stream.CharacterSet = CharacterSetMap["Default"]
	stream.reader = readerPtr
	stream.readerSize = readerSize
	stream.SetTransferSyntax(ExplicitVRLittleEndian)
	return
}

// SetTransferSyntax sets the `ElementStream`s TransferSyntax according to uid string.
// Unregistered UIDs keep their UID but decode as Explicit VR Little Endian.
func (es *ElementStream) SetTransferSyntax(transferSyntaxUID string) {
	if err := es.TransferSyntax.SetFromUID(transferSyntaxUID); err != nil {
		Debugf("%v; assuming %s", err, ExplicitVRLittleEndian)
		es.TransferSyntax.UIDEntry = &dictionary.UIDEntry{UID: transferSyntaxUID}
	}
	es.TransferSyntax.Encoding = GetEncodingForTransferSyntax(es.TransferSyntax)
}
