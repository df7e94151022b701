package dicomlite

import (
	"path/filepath"
	"testing"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractElement(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "slice.dcm")
	require.NoError(t, newTestDataset(ExplicitVRLittleEndian).WriteFile(path))

	raw, err := ExtractElement(path, dictionary.PatientName)
	require.NoError(t, err)
	expected := append([]byte{0x10, 0x00, 0x10, 0x00, 'P', 'N', 0x08, 0x00}, "DOE^JANE"...)
	assert.Equal(t, expected, raw)

	// the extracted bytes parse back into the same element
	element, err := elementFromBuffer(raw)
	require.NoError(t, err)
	assert.Equal(t, "DOE^JANE", element.Value())

	_, err = ExtractElement(path, dictionary.NumberOfFrames)
	assert.Error(t, err)
	_, err = ExtractElement(filepath.Join(t.TempDir(), "absent.dcm"), dictionary.PatientName)
	assert.Error(t, err)
}

func TestStripElements(t *testing.T) {
	t.Parallel()
	for _, tsuid := range nativeTransferSyntaxes {
		buf := mustEncode(t, newTestDataset(tsuid))
		out, removed, err := StripElements(buf, dictionary.SeriesDescription, dictionary.PatientName, dictionary.PatientName, dictionary.NumberOfFrames)
		require.NoError(t, err, tsuid)
		assert.Equal(t, 2, removed, tsuid)
		assert.Less(t, len(out), len(buf), tsuid)

		rec, err := Decode("stripped.dcm", out)
		require.NoError(t, err, tsuid)
		assert.Empty(t, rec.Study.PatientName, tsuid)
		assert.Empty(t, rec.Series.Description, tsuid)
		_, found := rec.Tags[dictionary.PatientName]
		assert.False(t, found, tsuid)
		assert.Equal(t, testSOPUID, rec.Instance.SOPInstanceUID, tsuid)
		assert.Equal(t, "P-0001", rec.Study.PatientID, tsuid)
	}
}

func TestStripElementsNothing(t *testing.T) {
	t.Parallel()
	buf := mustEncode(t, newTestDataset(ExplicitVRLittleEndian))
	out, removed, err := StripElements(buf, dictionary.NumberOfFrames)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, buf, out)
}

func TestStripElementsMeta(t *testing.T) {
	t.Parallel()
	buf := mustEncode(t, newTestDataset(ExplicitVRLittleEndian))
	_, _, err := StripElements(buf, dictionary.TransferSyntaxUID)
	assert.Error(t, err)
}
