package dicomlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnrecognisedSetFromUID tests that, given an unrecognised UID string, `SetFromUID` returns an error
func TestUnrecognisedSetFromUID(t *testing.T) {
	t.Parallel()
	ts := TransferSyntax{}
	assert.Error(t, ts.SetFromUID("1.2.3.4"))
	assert.Nil(t, ts.UIDEntry)
	// registered, but not a transfer syntax
	assert.Error(t, ts.SetFromUID("1.2.840.10008.5.1.4.1.1.2"))
	assert.Nil(t, ts.Encoding)
}

// TestRecognisedSetFromUID tests that, given a recognised UID string, `SetFromUID` sets the correct encoding
func TestRecognisedSetFromUID(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		uid      string
		encoding Encoding
	}{
		{ImplicitVRLittleEndian, Encoding{ImplicitVR: true, LittleEndian: true}},
		{ExplicitVRLittleEndian, Encoding{ImplicitVR: false, LittleEndian: true}},
		{ExplicitVRBigEndian, Encoding{ImplicitVR: false, LittleEndian: false}},
		{jpegBaseline, Encoding{ImplicitVR: false, LittleEndian: true}},
	}
	for _, testCase := range testCases {
		ts := TransferSyntax{}
		require.NoError(t, ts.SetFromUID(testCase.uid))
		assert.Equal(t, testCase.uid, ts.UIDEntry.UID)
		assert.Equal(t, testCase.encoding, *ts.Encoding, testCase.uid)
	}
}

func TestEncodingStringRepresentation(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ImplicitVR + LittleEndian", Encoding{ImplicitVR: true, LittleEndian: true}.String())
	assert.Equal(t, "ExplicitVR + BigEndian", Encoding{ImplicitVR: false, LittleEndian: false}.String())
}

func TestUnrecognisedGetEncodingForTransferSyntax(t *testing.T) {
	t.Parallel()
	encoding := GetEncodingForTransferSyntax(TransferSyntax{})
	assert.Equal(t, Encoding{ImplicitVR: false, LittleEndian: true}, *encoding)
}

func TestIsNativeTransferSyntax(t *testing.T) {
	t.Parallel()
	for _, uid := range append([]string{""}, nativeTransferSyntaxes...) {
		assert.True(t, IsNativeTransferSyntax(uid), uid)
	}
	for _, uid := range []string{jpegBaseline, DeflatedExplicitVRLittleEndian, "1.2.840.10008.1.2.5"} {
		assert.False(t, IsNativeTransferSyntax(uid), uid)
	}
}

func TestLookupCharacterSet(t *testing.T) {
	t.Parallel()
	cs, found := LookupCharacterSet([]string{"ISO_IR 100"})
	assert.True(t, found)
	assert.Equal(t, "ISO_IR 100", cs.Name)

	// code extensions: the first known term wins
	cs, found = LookupCharacterSet([]string{"", " ISO 2022 IR 87 ", "ISO 2022 IR 100"})
	assert.True(t, found)
	assert.Equal(t, "ISO 2022 IR 87", cs.Name)

	cs, found = LookupCharacterSet([]string{"KLINGON"})
	assert.False(t, found)
	assert.Equal(t, "Default", cs.Name)

	cs, found = LookupCharacterSet(nil)
	assert.False(t, found)
	assert.Equal(t, CharacterSetMap["Default"], cs)
}

func TestDecodeBytesEmptyCharset(t *testing.T) {
	t.Parallel()
	// should return string([]byte), so utf-8
	val, err := decodeBytes([]byte("parser"), nil)
	require.NoError(t, err)
	assert.Equal(t, "parser", val)
}

func TestCharsetDecode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		charset string
		in      []byte
		out     string
	}{
		{"ISO_IR 100", []byte{0x4D, 0xFC, 0x6C, 0x6C, 0x65, 0x72}, "Müller"},
		{"ISO_IR 144", []byte{0xB0, 0xE0}, "Ар"},
		{"ISO_IR 192", []byte("Ελληνικά"), "Ελληνικά"},
		{"GB18030", []byte{0xD6, 0xD0}, "中"},
	}
	for _, testCase := range testCases {
		val, err := decodeBytes(testCase.in, CharacterSetMap[testCase.charset])
		require.NoError(t, err, testCase.charset)
		assert.Equal(t, testCase.out, val, testCase.charset)
	}
}

func TestCheckTransferSyntaxSupport(t *testing.T) {
	t.Parallel()
	assert.NoError(t, checkTransferSyntaxSupport(ExplicitVRLittleEndian))
	assert.NoError(t, checkTransferSyntaxSupport(jpegBaseline))
	err := checkTransferSyntaxSupport(DeflatedExplicitVRLittleEndian)
	assert.IsType(t, &UnsupportedDicom{}, err)
}
