package dicomlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSlice(t *testing.T) {
	t.Parallel()
	opts := SyntheticOptions{Slices: 9, Rows: 16, Columns: 20, SpacingBetweenSlices: 1.25}
	rec := mustDecode(t, "slice.dcm", SyntheticSlice(opts, testStudyUID, testSeriesUID, testSOPUID, 4))

	assert.Equal(t, testStudyUID, rec.Study.UID)
	assert.Equal(t, "SYNTHETIC^PATIENT", rec.Study.PatientName)
	assert.Equal(t, "CT", rec.Series.Modality)
	inst := rec.Instance
	assert.Equal(t, 16, inst.Rows)
	assert.Equal(t, 20, inst.Columns)
	assert.Equal(t, 1, inst.PixelRepresentation)
	assert.Equal(t, ExplicitVRLittleEndian, inst.TransferSyntaxUID)
	require.NotNil(t, inst.ImagePositionPatient)
	assert.Equal(t, -95.0, inst.ImagePositionPatient[2])
	require.NotNil(t, inst.InstanceNumber)
	assert.Equal(t, 5, *inst.InstanceNumber)

	producer, err := NewSampleProducer(inst)
	require.NoError(t, err)
	samples, err := producer.Samples(0)
	require.NoError(t, err)
	require.Len(t, samples, 16*20)
	r := inst.Rescale()
	assert.Equal(t, -1000.0, r.Apply(samples[0]))
	assert.Equal(t, 40.0, r.Apply(samples[8*20+10]))
}

func TestGenerateSeries(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "series")
	written, err := GenerateSeries(SyntheticOptions{Dir: dir, Slices: 4, Rows: 4, Columns: 4, TransferSyntaxUID: ImplicitVRLittleEndian, Seed: 1})
	require.NoError(t, err)
	require.Len(t, written, 4)

	var series string
	for i, path := range written {
		assert.Equal(t, dir, filepath.Dir(path))
		rec, err := DecodeFile(path)
		require.NoError(t, err, path)
		require.NotNil(t, rec.Instance.InstanceNumber)
		assert.Equal(t, i+1, *rec.Instance.InstanceNumber, path)
		if series == "" {
			series = rec.Series.UID
		}
		assert.Equal(t, series, rec.Series.UID)
	}

	// defaults apply to unset options
	written, err = GenerateSeries(SyntheticOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Len(t, written, 16)
}
