// Package dictionary maps DICOM tags and UIDs to their registry entries.
package dictionary

import "fmt"

// Tag is a DICOM attribute tag with the group in the upper 16 bits
// and the element in the lower 16 bits.
type Tag uint32

// New returns the Tag for the given group and element.
func New(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// Group returns the group component of the tag.
func (t Tag) Group() uint16 {
	return uint16(t >> 16)
}

// Element returns the element component of the tag.
func (t Tag) Element() uint16 {
	return uint16(t)
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group(), t.Element())
}

// DictEntry describes one registered data element.
type DictEntry struct {
	Tag       Tag
	NameHuman string
	Name      string
	VR        string
	VM        string
	Retired   bool
}

// UIDEntry describes one registered UID.
type UIDEntry struct {
	UID       string
	Type      string
	NameHuman string
}

// Lookup returns the registry entry for `t`. Unknown tags yield a
// synthesized "UN" entry named after the formatted tag, and `found` is false.
func Lookup(t Tag) (entry *DictEntry, found bool) {
	entry, found = DicomDictionary[t]
	if !found {
		name := t.String()
		entry = &DictEntry{Tag: t, Name: name, NameHuman: name, VR: "UN", VM: "1"}
	}
	return
}

// Name returns the human readable name of `t`, or its "(GGGG,EEEE)" form
// when the tag is not registered.
func Name(t Tag) string {
	if e, found := DicomDictionary[t]; found {
		return e.NameHuman
	}
	return t.String()
}

// LookupUID returns the registry entry for `uid`.
func LookupUID(uid string) (entry *UIDEntry, found bool) {
	entry, found = UIDDictionary[uid]
	if !found {
		entry = &UIDEntry{UID: uid}
	}
	return
}
