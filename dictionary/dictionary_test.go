package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagComponents(t *testing.T) {
	t.Parallel()
	tag := New(0x0028, 0x1050)
	assert.Equal(t, WindowCenter, tag)
	assert.Equal(t, uint16(0x0028), tag.Group())
	assert.Equal(t, uint16(0x1050), tag.Element())
}

func TestTagString(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		tag    Tag
		output string
	}{
		{tag: StudyInstanceUID, output: "(0020,000D)"},
		{tag: PixelData, output: "(7FE0,0010)"},
		{tag: New(0x0009, 0x10ab), output: "(0009,10AB)"},
		{tag: 0, output: "(0000,0000)"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.output, testCase.tag.String())
	}
}

func TestLookupKnown(t *testing.T) {
	t.Parallel()
	entry, found := Lookup(ImagePositionPatient)
	assert.True(t, found)
	assert.Equal(t, "DS", entry.VR)
	assert.Equal(t, "3", entry.VM)
	assert.Equal(t, "Image Position (Patient)", entry.NameHuman)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	entry, found := Lookup(New(0x0029, 0x1010))
	assert.False(t, found)
	assert.Equal(t, "UN", entry.VR)
	assert.Equal(t, "(0029,1010)", entry.Name)

	// the synthesized entry must not leak into the dictionary
	_, found = DicomDictionary[New(0x0029, 0x1010)]
	assert.False(t, found)
}

func TestName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Patient's Name", Name(PatientName))
	assert.Equal(t, "(0011,0001)", Name(New(0x0011, 0x0001)))
}

func TestDictionaryKeysMatchEntries(t *testing.T) {
	t.Parallel()
	for tag, entry := range DicomDictionary {
		assert.Equal(t, tag, entry.Tag, "entry %s", entry.Name)
	}
	for uid, entry := range UIDDictionary {
		assert.Equal(t, uid, entry.UID)
	}
}

func TestLookupUID(t *testing.T) {
	t.Parallel()
	entry, found := LookupUID("1.2.840.10008.1.2.1")
	assert.True(t, found)
	assert.Equal(t, "Explicit VR Little Endian", entry.NameHuman)

	entry, found = LookupUID("1.2.3.4")
	assert.False(t, found)
	assert.Equal(t, "1.2.3.4", entry.UID)
}
