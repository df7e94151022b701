package dicomlite

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// SampleProducer yields the raw samples of one frame, after sign interpretation
// according to Pixel Representation (0028,0103).
type SampleProducer interface {
	// Frames returns the number of frames available.
	Frames() int
	// Samples returns the samples of frame `frame` (zero based) in row-major order.
	Samples(frame int) ([]int32, error)
}

// SampleDecoderFunc builds a `SampleProducer` for an instance stored under an
// encapsulated transfer syntax.
type SampleDecoderFunc func(inst *Instance) (SampleProducer, error)

var (
	sampleDecoders   = map[string]SampleDecoderFunc{}
	sampleDecodersMu sync.RWMutex
)

// RegisterSampleDecoder installs `fn` as the decoder for transfer syntax `tsuid`.
// Registering nil removes a decoder.
func RegisterSampleDecoder(tsuid string, fn SampleDecoderFunc) {
	sampleDecodersMu.Lock()
	defer sampleDecodersMu.Unlock()
	if fn == nil {
		delete(sampleDecoders, tsuid)
		return
	}
	sampleDecoders[tsuid] = fn
}

// NewSampleProducer returns a producer for the pixel data of `inst`. Uncompressed
// transfer syntaxes are read natively; encapsulated ones need a registered decoder,
// and yield an `*UnsupportedDicom` error otherwise.
func NewSampleProducer(inst *Instance) (SampleProducer, error) {
	if !inst.HasPixelData() {
		return nil, CorruptDicomError(`"%s" has no pixel data`, inst.Path)
	}
	if IsNativeTransferSyntax(inst.TransferSyntaxUID) && len(inst.pixelFragments) == 0 {
		return NewNativeSampleProducer(inst)
	}
	sampleDecodersMu.RLock()
	fn, found := sampleDecoders[inst.TransferSyntaxUID]
	sampleDecodersMu.RUnlock()
	if found {
		return fn(inst)
	}
	name := inst.TransferSyntaxUID
	if entry, ok := dictionary.LookupUID(name); ok {
		name = entry.NameHuman
	}
	return nil, UnsupportedDicomError(`"%s": no decoder for encapsulated transfer syntax %s`, inst.Path, name)
}

// Fragments returns the encapsulated pixel data fragments of `inst`, excluding the
// basic offset table. It is empty for native pixel data.
func (inst *Instance) Fragments() [][]byte {
	return inst.pixelFragments
}

// NativeSampleProducer reads uncompressed (native) pixel data.
type NativeSampleProducer struct {
	inst       *Instance
	order      binary.ByteOrder
	bytesEach  int
	frameBytes int
	shift      uint
	mask       uint32
	signBit    uint32
}

// NewNativeSampleProducer validates the image pixel attributes of `inst` and returns
// a producer for its native pixel data. Only single-sample (grayscale) pixels with
// 8, 16 or 32 bits allocated are supported.
func NewNativeSampleProducer(inst *Instance) (*NativeSampleProducer, error) {
	if inst.Rows < 1 || inst.Columns < 1 {
		return nil, CorruptDicomError(`"%s": invalid image size %dx%d`, inst.Path, inst.Columns, inst.Rows)
	}
	if inst.SamplesPerPixel != 1 {
		return nil, UnsupportedDicomError(`"%s": %d samples per pixel is unsupported`, inst.Path, inst.SamplesPerPixel)
	}
	p := &NativeSampleProducer{inst: inst, order: binary.BigEndian}
	if inst.pixelLittleEndian || inst.TransferSyntaxUID != ExplicitVRBigEndian {
		p.order = binary.LittleEndian
	}
	switch inst.BitsAllocated {
	case 8, 16, 32:
		p.bytesEach = inst.BitsAllocated / 8
	default:
		return nil, UnsupportedDicomError(`"%s": %d bits allocated is unsupported`, inst.Path, inst.BitsAllocated)
	}
	stored := inst.BitsStored
	if stored < 1 || stored > inst.BitsAllocated {
		stored = inst.BitsAllocated
	}
	lowBit := inst.HighBit + 1 - stored
	if lowBit < 0 || lowBit+stored > inst.BitsAllocated {
		lowBit = 0
	}
	p.shift = uint(lowBit)
	p.mask = uint32((uint64(1) << uint(stored)) - 1)
	if inst.PixelRepresentation == 1 {
		p.signBit = uint32(1) << uint(stored-1)
	}
	p.frameBytes = inst.Rows * inst.Columns * p.bytesEach
	return p, nil
}

// Frames implements `SampleProducer`.
func (p *NativeSampleProducer) Frames() int {
	return p.inst.NumberOfFrames
}

// Samples implements `SampleProducer`.
func (p *NativeSampleProducer) Samples(frame int) ([]int32, error) {
	if frame < 0 || frame >= p.Frames() {
		return nil, CorruptDicomError(`"%s": frame %d out of range (%d frames)`, p.inst.Path, frame, p.Frames())
	}
	if available := len(p.inst.pixelData) / p.frameBytes; frame >= available {
		return nil, CorruptDicomError(`"%s": pixel data holds %d bytes, %d complete frames, frame %d requested`, p.inst.Path, len(p.inst.pixelData), available, frame)
	}
	start := frame * p.frameBytes
	end := start + p.frameBytes
	buf := p.inst.pixelData[start:end]
	out := make([]int32, p.frameBytes/p.bytesEach)
	for i := range out {
		var raw uint32
		switch p.bytesEach {
		case 1:
			raw = uint32(buf[i])
		case 2:
			raw = uint32(p.order.Uint16(buf[i*2:]))
		case 4:
			raw = p.order.Uint32(buf[i*4:])
		}
		out[i] = p.interpret(raw)
	}
	return out, nil
}

// interpret masks `raw` to the stored bits and applies the pixel representation.
func (p *NativeSampleProducer) interpret(raw uint32) int32 {
	v := (raw >> p.shift) & p.mask
	if p.signBit != 0 && v&p.signBit != 0 {
		return int32(int64(v) - int64(p.signBit)<<1)
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
