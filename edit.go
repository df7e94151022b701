package dicomlite

import (
	"fmt"
	"os"
	"sort"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// ExtractElement returns the encoded bytes (header and value) of the top-level
// element `tag` in the file at `path`.
func ExtractElement(path string, tag dictionary.Tag) ([]byte, error) {
	dcm, err := ParseDicom(path)
	if err != nil {
		return nil, err
	}
	element, found := dcm.GetElement(tag)
	if !found {
		return nil, fmt.Errorf(`tag %s could not be found in "%s"`, tag, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buffer := make([]byte, element.ByteLengthTotal)
	nread, err := f.ReadAt(buffer, element.FileOffsetStart)
	if err != nil {
		return nil, err
	}
	if int64(nread) != element.ByteLengthTotal {
		return nil, fmt.Errorf("nread = %d (!= %d)", nread, element.ByteLengthTotal)
	}
	return buffer, nil
}

// StripElements returns a copy of the encoded file `buf` with the top-level
// elements `tags` removed, and the number of elements removed. Tags that are not
// present are ignored. Elements of the file meta group cannot be stripped, as
// the group length would no longer hold.
func StripElements(buf []byte, tags ...dictionary.Tag) ([]byte, int, error) {
	dcm, err := ParseFromBytes(buf)
	if err != nil {
		return nil, 0, err
	}
	var strip []Element
	for _, tag := range tags {
		if tag.Group() == 0x0002 {
			return nil, 0, fmt.Errorf("cannot strip file meta element %s", tag)
		}
		if element, found := dcm.GetElement(tag); found {
			strip = append(strip, element)
		}
	}
	sort.Slice(strip, func(i, j int) bool { return strip[i].FileOffsetStart < strip[j].FileOffsetStart })

	out := make([]byte, 0, len(buf))
	pos := int64(0)
	removed := 0
	for _, element := range strip {
		if element.FileOffsetStart < pos {
			// repeated tag
			continue
		}
		out = append(out, buf[pos:element.FileOffsetStart]...)
		pos = element.FileOffsetStart + element.ByteLengthTotal
		removed++
		Debugf("stripped %s at offset %d (length %d)", element.Tag, element.FileOffsetStart, element.ByteLengthTotal)
	}
	out = append(out, buf[pos:]...)
	return out, removed, nil
}
