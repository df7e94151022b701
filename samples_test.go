package dicomlite

import (
	"math"
	"testing"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPrivateTransferSyntax is not registered in the dictionary, so nothing but the
// tests below installs a decoder for it
const testPrivateTransferSyntax = "1.2.826.0.1.3680043.8.498.1.99"

func mustProducer(t *testing.T, b *DatasetBuilder) SampleProducer {
	t.Helper()
	rec := mustDecode(t, "slice.dcm", b)
	producer, err := NewSampleProducer(rec.Instance)
	require.NoError(t, err)
	return producer
}

func TestNativeSamplesMaskStoredBits(t *testing.T) {
	t.Parallel()
	for _, tsuid := range nativeTransferSyntaxes {
		producer := mustProducer(t, newTestDataset(tsuid))
		assert.Equal(t, 1, producer.Frames(), tsuid)
		samples, err := producer.Samples(0)
		require.NoError(t, err, tsuid)
		// 0xF123 carries bits above the 12 stored
		assert.Equal(t, []int32{0, 1024, 1064, 2048, 4095, 0x123}, samples, tsuid)
	}
}

func TestNativeSamplesSigned(t *testing.T) {
	t.Parallel()
	for _, tsuid := range nativeTransferSyntaxes {
		b := newTestDataset(tsuid)
		b.SetUint16(dictionary.BitsStored, 16)
		b.SetUint16(dictionary.HighBit, 15)
		b.SetUint16(dictionary.PixelRepresentation, 1)
		b.SetWords(dictionary.PixelData, []uint16{0xFFFF, 0x8000, 0x7FFF, 1, 0, 0xFC00})
		samples, err := mustProducer(t, b).Samples(0)
		require.NoError(t, err, tsuid)
		assert.Equal(t, []int32{-1, -32768, 32767, 1, 0, -1024}, samples, tsuid)
	}

	// the sign bit is the highest stored bit
	b := newTestDataset(ExplicitVRLittleEndian)
	b.SetUint16(dictionary.PixelRepresentation, 1)
	b.SetWords(dictionary.PixelData, []uint16{0x0FFF, 0x0800, 0x07FF, 0xF001, 0, 2})
	samples, err := mustProducer(t, b).Samples(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, -2048, 2047, 1, 0, 2}, samples)
}

func TestNativeSamples8Bit(t *testing.T) {
	t.Parallel()
	for _, tsuid := range nativeTransferSyntaxes {
		b := newTestDataset(tsuid)
		b.SetUint16(dictionary.BitsAllocated, 8)
		b.SetUint16(dictionary.BitsStored, 8)
		b.SetUint16(dictionary.HighBit, 7)
		b.SetBytes(dictionary.PixelData, "OB", []byte{0, 127, 128, 255, 10, 20})
		samples, err := mustProducer(t, b).Samples(0)
		require.NoError(t, err, tsuid)
		assert.Equal(t, []int32{0, 127, 128, 255, 10, 20}, samples, tsuid)
	}
}

func TestNativeSamplesMultiFrame(t *testing.T) {
	t.Parallel()
	b := newTestDataset(ExplicitVRLittleEndian)
	b.SetInts(dictionary.NumberOfFrames, 2)
	b.SetWords(dictionary.PixelData, []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	producer := mustProducer(t, b)
	require.Equal(t, 2, producer.Frames())

	first, err := producer.Samples(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, first)
	second, err := producer.Samples(1)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 8, 9, 10, 11, 12}, second)

	for _, frame := range []int{-1, 2} {
		_, err = producer.Samples(frame)
		assert.IsType(t, &CorruptDicom{}, err, "frame %d", frame)
	}
}

func TestNativeSamplesHugeFrameIndex(t *testing.T) {
	t.Parallel()
	inst := &Instance{
		Path:              "huge.dcm",
		Rows:              65535,
		Columns:           65535,
		BitsAllocated:     32,
		BitsStored:        32,
		HighBit:           31,
		SamplesPerPixel:   1,
		NumberOfFrames:    math.MaxInt32,
		TransferSyntaxUID: ExplicitVRLittleEndian,
		pixelData:         make([]byte, 64),
	}
	producer, err := NewNativeSampleProducer(inst)
	require.NoError(t, err)
	for _, frame := range []int{0, 1, math.MaxInt32 - 1} {
		_, err = producer.Samples(frame)
		assert.IsType(t, &CorruptDicom{}, err, "frame %d", frame)
	}
}

func TestNativeSamplesShortPixelData(t *testing.T) {
	t.Parallel()
	b := newTestDataset(ExplicitVRLittleEndian)
	b.SetInts(dictionary.NumberOfFrames, 2)
	producer := mustProducer(t, b)
	_, err := producer.Samples(0)
	assert.NoError(t, err)
	_, err = producer.Samples(1)
	assert.IsType(t, &CorruptDicom{}, err)
}

func TestNativeSampleProducerValidation(t *testing.T) {
	t.Parallel()
	base := mustDecode(t, "slice.dcm", newTestDataset(ExplicitVRLittleEndian)).Instance

	testCases := []struct {
		name    string
		modify  func(inst *Instance)
		errType interface{}
	}{
		{"no rows", func(inst *Instance) { inst.Rows = 0 }, &CorruptDicom{}},
		{"no columns", func(inst *Instance) { inst.Columns = -1 }, &CorruptDicom{}},
		{"colour", func(inst *Instance) { inst.SamplesPerPixel = 3 }, &UnsupportedDicom{}},
		{"12 bits allocated", func(inst *Instance) { inst.BitsAllocated = 12 }, &UnsupportedDicom{}},
	}
	for _, testCase := range testCases {
		inst := *base
		testCase.modify(&inst)
		_, err := NewNativeSampleProducer(&inst)
		assert.IsType(t, testCase.errType, err, testCase.name)
	}
}

func TestSampleProducerNoPixelData(t *testing.T) {
	t.Parallel()
	b := newTestDataset(ExplicitVRLittleEndian)
	b.Delete(dictionary.PixelData)
	rec := mustDecode(t, "empty.dcm", b)
	assert.False(t, rec.Instance.HasPixelData())
	_, err := NewSampleProducer(rec.Instance)
	assert.IsType(t, &CorruptDicom{}, err)
}

func TestSampleProducerEncapsulatedUnsupported(t *testing.T) {
	t.Parallel()
	b := newTestDataset(jpegBaseline)
	b.SetEncapsulatedPixelData([]byte{0xFF, 0xD8, 0xFF, 0xD9})
	rec := mustDecode(t, "jpeg.dcm", b)
	assert.Len(t, rec.Instance.Fragments(), 1)
	_, err := NewSampleProducer(rec.Instance)
	require.IsType(t, &UnsupportedDicom{}, err)
	assert.Contains(t, err.Error(), "JPEG")
}

// byteSamples treats every fragment byte as one sample
type byteSamples struct {
	fragments [][]byte
	length    int
}

func (p byteSamples) Frames() int { return len(p.fragments) }

func (p byteSamples) Samples(frame int) ([]int32, error) {
	out := make([]int32, p.length)
	for i := range out {
		out[i] = int32(p.fragments[frame][i])
	}
	return out, nil
}

func TestRegisterSampleDecoder(t *testing.T) {
	t.Parallel()
	var calls int
	RegisterSampleDecoder(testPrivateTransferSyntax, func(inst *Instance) (SampleProducer, error) {
		calls++
		return byteSamples{fragments: inst.Fragments(), length: inst.FrameLength()}, nil
	})
	t.Cleanup(func() { RegisterSampleDecoder(testPrivateTransferSyntax, nil) })

	b := newTestDataset(testPrivateTransferSyntax)
	b.SetEncapsulatedPixelData([]byte{6, 5, 4, 3, 2, 1})
	rec := mustDecode(t, "private.dcm", b)
	assert.Equal(t, testPrivateTransferSyntax, rec.Instance.TransferSyntaxUID)

	producer, err := NewSampleProducer(rec.Instance)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	samples, err := producer.Samples(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 5, 4, 3, 2, 1}, samples)

	RegisterSampleDecoder(testPrivateTransferSyntax, nil)
	_, err = NewSampleProducer(rec.Instance)
	assert.IsType(t, &UnsupportedDicom{}, err)
}
