package dicomlite

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// ImplementationClassUID is written to (0002,0012) by `DatasetBuilder`.
const ImplementationClassUID = UIDRoot + "184315372412740355219430637146235946291"

// builtElement is one element held by a `DatasetBuilder`.
type builtElement struct {
	tag   dictionary.Tag
	vr    string
	data  []byte
	items []*DatasetBuilder
	// fragments, when non-nil, are written as encapsulated pixel data
	fragments [][]byte
}

// DatasetBuilder assembles a DICOM part-10 file in memory. The file meta group is
// always written as Explicit VR Little Endian; the dataset uses the encoding of
// the builder's transfer syntax.
//
// For futureproofing, it is suggested to use `NewDatasetBuilder` rather than
// manually creating an instance.
type DatasetBuilder struct {
	TransferSyntaxUID string
	// WritePreamble controls the 128 byte preamble and "DICM" magic. Defaults to true.
	WritePreamble bool
	// WriteMeta controls the file meta group (0002,xxxx). Defaults to true.
	WriteMeta bool
	encoding  Encoding
	elements  map[dictionary.Tag]builtElement
	err       error
}

// NewDatasetBuilder returns an empty builder encoding datasets under `tsuid`.
// Unregistered transfer syntaxes are encoded as Explicit VR Little Endian.
func NewDatasetBuilder(tsuid string) *DatasetBuilder {
	ts := TransferSyntax{}
	if err := ts.SetFromUID(tsuid); err != nil {
		ts.Encoding = GetEncodingForTransferSyntax(ts)
	}
	return &DatasetBuilder{
		TransferSyntaxUID: tsuid,
		WritePreamble:     true,
		WriteMeta:         true,
		encoding:          *ts.Encoding,
		elements:          make(map[dictionary.Tag]builtElement),
	}
}

// newItemBuilder returns a builder for a sequence item, sharing `parent`s encoding.
func newItemBuilder(parent *DatasetBuilder) *DatasetBuilder {
	return &DatasetBuilder{
		TransferSyntaxUID: parent.TransferSyntaxUID,
		encoding:          parent.encoding,
		elements:          make(map[dictionary.Tag]builtElement),
	}
}

func (b *DatasetBuilder) order() binary.ByteOrder {
	if b.encoding.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func vrOf(tag dictionary.Tag) string {
	entry, _ := dictionary.Lookup(tag)
	return entry.VR
}

// padValue pads `data` to an even length: UI with NUL, other text with space, binary with NUL.
func padValue(data []byte, vr string) []byte {
	if len(data)%2 == 0 {
		return data
	}
	pad := byte(0x00)
	if IsCharacterStringVR(vr) && vr != "UI" {
		pad = 0x20
	}
	return append(data, pad)
}

// SetString sets a single text value. The VR is taken from the dictionary.
func (b *DatasetBuilder) SetString(tag dictionary.Tag, value string) *DatasetBuilder {
	return b.SetStrings(tag, value)
}

// SetStrings sets a multi-valued text element, joining `values` with "\".
func (b *DatasetBuilder) SetStrings(tag dictionary.Tag, values ...string) *DatasetBuilder {
	vr := vrOf(tag)
	if vr == "UN" {
		vr = "LO"
	}
	b.elements[tag] = builtElement{tag: tag, vr: vr, data: []byte(strings.Join(values, `\`))}
	return b
}

// SetDecimals sets a DS element from `values`.
func (b *DatasetBuilder) SetDecimals(tag dictionary.Tag, values ...float64) *DatasetBuilder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatDecimal(v)
	}
	return b.SetStrings(tag, parts...)
}

// SetInts sets an IS element from `values`.
func (b *DatasetBuilder) SetInts(tag dictionary.Tag, values ...int) *DatasetBuilder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return b.SetStrings(tag, parts...)
}

// formatDecimal formats `v` for a DS value, which is limited to 16 characters.
func formatDecimal(v float64) string {
	for prec := 10; prec > 0; prec-- {
		s := fmt.Sprintf("%.*g", prec, v)
		if len(s) <= 16 {
			return s
		}
	}
	return fmt.Sprintf("%.0f", v)
}

// SetUint16 sets a US element.
func (b *DatasetBuilder) SetUint16(tag dictionary.Tag, values ...uint16) *DatasetBuilder {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		b.order().PutUint16(data[i*2:], v)
	}
	b.elements[tag] = builtElement{tag: tag, vr: "US", data: data}
	return b
}

// SetUint32 sets a UL element.
func (b *DatasetBuilder) SetUint32(tag dictionary.Tag, values ...uint32) *DatasetBuilder {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		b.order().PutUint32(data[i*4:], v)
	}
	b.elements[tag] = builtElement{tag: tag, vr: "UL", data: data}
	return b
}

// SetFloat64 sets an FD element.
func (b *DatasetBuilder) SetFloat64(tag dictionary.Tag, values ...float64) *DatasetBuilder {
	data := make([]byte, 8*len(values))
	for i, v := range values {
		b.order().PutUint64(data[i*8:], math.Float64bits(v))
	}
	b.elements[tag] = builtElement{tag: tag, vr: "FD", data: data}
	return b
}

// SetBytes sets `tag` to the raw bytes `data` with value representation `vr`.
// The bytes are written as given, without regard for byte order.
func (b *DatasetBuilder) SetBytes(tag dictionary.Tag, vr string, data []byte) *DatasetBuilder {
	if len(vr) != 2 {
		b.err = fmt.Errorf("SetBytes(%s): invalid VR %q", tag, vr)
		return b
	}
	b.elements[tag] = builtElement{tag: tag, vr: vr, data: data}
	return b
}

// SetWords sets an OW element, encoding `words` in the builder's byte order.
func (b *DatasetBuilder) SetWords(tag dictionary.Tag, words []uint16) *DatasetBuilder {
	data := make([]byte, 2*len(words))
	for i, w := range words {
		b.order().PutUint16(data[i*2:], w)
	}
	b.elements[tag] = builtElement{tag: tag, vr: "OW", data: data}
	return b
}

// SetSequence sets an SQ element of undefined length. `fill` is called once per item
// with a builder for that item's elements.
func (b *DatasetBuilder) SetSequence(tag dictionary.Tag, nItems int, fill func(i int, item *DatasetBuilder)) *DatasetBuilder {
	items := make([]*DatasetBuilder, nItems)
	for i := range items {
		items[i] = newItemBuilder(b)
		if fill != nil {
			fill(i, items[i])
		}
	}
	b.elements[tag] = builtElement{tag: tag, vr: "SQ", items: items}
	return b
}

// SetEncapsulatedPixelData sets Pixel Data as encapsulated fragments, preceded by an
// empty basic offset table.
func (b *DatasetBuilder) SetEncapsulatedPixelData(fragments ...[]byte) *DatasetBuilder {
	if fragments == nil {
		fragments = [][]byte{}
	}
	b.elements[dictionary.PixelData] = builtElement{tag: dictionary.PixelData, vr: "OB", fragments: fragments}
	return b
}

// Delete removes `tag`, if set.
func (b *DatasetBuilder) Delete(tag dictionary.Tag) *DatasetBuilder {
	delete(b.elements, tag)
	return b
}

// Has reports whether `tag` is set.
func (b *DatasetBuilder) Has(tag dictionary.Tag) bool {
	_, found := b.elements[tag]
	return found
}

func (b *DatasetBuilder) sorted() []builtElement {
	out := make([]builtElement, 0, len(b.elements))
	for _, e := range b.elements {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].tag < out[j].tag })
	return out
}

// elementWriter encodes elements under one encoding.
type elementWriter struct {
	buf   *bytes.Buffer
	enc   Encoding
	order binary.ByteOrder
}

func newElementWriter(buf *bytes.Buffer, enc Encoding) elementWriter {
	ew := elementWriter{buf: buf, enc: enc, order: binary.LittleEndian}
	if !enc.LittleEndian {
		ew.order = binary.BigEndian
	}
	return ew
}

func (ew elementWriter) writeUint16(v uint16) {
	var b [2]byte
	ew.order.PutUint16(b[:], v)
	ew.buf.Write(b[:])
}

func (ew elementWriter) writeUint32(v uint32) {
	var b [4]byte
	ew.order.PutUint32(b[:], v)
	ew.buf.Write(b[:])
}

func (ew elementWriter) writeTag(tag dictionary.Tag) {
	ew.writeUint16(tag.Group())
	ew.writeUint16(tag.Element())
}

// writeHeader writes the tag, VR (explicit only) and length components.
func (ew elementWriter) writeHeader(tag dictionary.Tag, vr string, length uint32) error {
	ew.writeTag(tag)
	if ew.enc.ImplicitVR {
		// ImplicitVR: all length definitions are 32 bits
		ew.writeUint32(length)
		return nil
	}
	ew.buf.WriteString(vr)
	if hasLongExplicitLength(vr) {
		ew.buf.Write([]byte{0x00, 0x00})
		ew.writeUint32(length)
		return nil
	}
	if length > 0xFFFF {
		return fmt.Errorf("%s: value length %d would overflow uint16", tag, length)
	}
	ew.writeUint16(uint16(length))
	return nil
}

func (ew elementWriter) writeElement(e builtElement) error {
	switch {
	case e.items != nil:
		if err := ew.writeHeader(e.tag, e.vr, undefinedLength); err != nil {
			return err
		}
		for _, item := range e.items {
			ew.writeTag(dictionary.Item)
			ew.writeUint32(undefinedLength)
			for _, sub := range item.sorted() {
				if err := ew.writeElement(sub); err != nil {
					return err
				}
			}
			ew.writeTag(dictionary.ItemDelimitationItem)
			ew.writeUint32(0)
		}
		ew.writeTag(dictionary.SequenceDelimitationItem)
		ew.writeUint32(0)
		return nil
	case e.fragments != nil:
		if err := ew.writeHeader(e.tag, e.vr, undefinedLength); err != nil {
			return err
		}
		ew.writeTag(dictionary.Item) // empty basic offset table
		ew.writeUint32(0)
		for _, fragment := range e.fragments {
			fragment = padValue(append([]byte(nil), fragment...), "OB")
			ew.writeTag(dictionary.Item)
			ew.writeUint32(uint32(len(fragment)))
			ew.buf.Write(fragment)
		}
		ew.writeTag(dictionary.SequenceDelimitationItem)
		ew.writeUint32(0)
		return nil
	}
	data := padValue(append([]byte(nil), e.data...), e.vr)
	if uint64(len(data)) >= undefinedLength {
		return fmt.Errorf("%s: value length would overflow uint32", e.tag)
	}
	if err := ew.writeHeader(e.tag, e.vr, uint32(len(data))); err != nil {
		return err
	}
	ew.buf.Write(data)
	return nil
}

// metaElements returns the file meta group for the dataset held by `b`.
func (b *DatasetBuilder) metaElements() []builtElement {
	meta := newItemBuilder(b)
	meta.SetBytes(dictionary.FileMetaInformationVersion, "OB", []byte{0x00, 0x01})
	if v, found := b.elements[dictionary.SOPClassUID]; found {
		meta.SetBytes(dictionary.MediaStorageSOPClassUID, "UI", v.data)
	}
	if v, found := b.elements[dictionary.SOPInstanceUID]; found {
		meta.SetBytes(dictionary.MediaStorageSOPInstanceUID, "UI", v.data)
	}
	meta.SetBytes(dictionary.TransferSyntaxUID, "UI", []byte(b.TransferSyntaxUID))
	meta.SetBytes(dictionary.ImplementationClassUID, "UI", []byte(ImplementationClassUID))
	meta.SetBytes(dictionary.ImplementationVersionName, "SH", []byte("DICOMLITE_"+Version))
	return meta.sorted()
}

// WriteTo writes the encoded file to `w`.
func (b *DatasetBuilder) WriteTo(w io.Writer) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	var out bytes.Buffer
	if b.WritePreamble {
		out.Write(make([]byte, 128))
		out.Write(preambleMagic)
	}
	if b.WriteMeta {
		var group bytes.Buffer
		metaWriter := newElementWriter(&group, Encoding{ImplicitVR: false, LittleEndian: true})
		for _, e := range b.metaElements() {
			if err := metaWriter.writeElement(e); err != nil {
				return 0, err
			}
		}
		lengthWriter := newElementWriter(&out, Encoding{ImplicitVR: false, LittleEndian: true})
		if err := lengthWriter.writeHeader(dictionary.FileMetaInformationGroupLength, "UL", 4); err != nil {
			return 0, err
		}
		lengthWriter.writeUint32(uint32(group.Len()))
		out.Write(group.Bytes())
	}
	dataWriter := newElementWriter(&out, b.encoding)
	for _, e := range b.sorted() {
		if e.tag.Group() == 0x0002 {
			continue
		}
		if err := dataWriter.writeElement(e); err != nil {
			return 0, err
		}
	}
	n, err := w.Write(out.Bytes())
	return int64(n), err
}

// Bytes returns the encoded file.
func (b *DatasetBuilder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the encoded file to `path`.
func (b *DatasetBuilder) WriteFile(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
