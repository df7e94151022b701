package dicomlite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var softTissue = WindowLevel{Center: DefaultWindowCenter, Width: DefaultWindowWidth}

func TestWindowBounds(t *testing.T) {
	t.Parallel()
	low, high := softTissue.Bounds()
	assert.Equal(t, -160.0, low)
	assert.Equal(t, 240.0, high)
}

func TestWindowApply(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		modality float64
		display  uint8
	}{
		{-200, 0},
		{-160, 0},
		{300, 255},
		{240, 255},
		{40, 128}, // 127.5 rounds half away from zero
		{-159, 1},
		{239, 254},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.display, softTissue.Apply(testCase.modality), "modality %v", testCase.modality)
	}
}

func TestRescaleThenWindow(t *testing.T) {
	t.Parallel()
	r := NewRescale(2, -1000)
	modality := r.Apply(600)
	assert.Equal(t, 200.0, modality)
	// (200 + 160) * 255 / 400 = 229.5
	assert.Equal(t, uint8(230), softTissue.Apply(modality))
	assert.Equal(t, []uint8{230}, TransformFrame([]int32{600}, r, softTissue))
}

func TestNewRescale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Rescale{Slope: 1, Intercept: -1024}, NewRescale(0, -1024))
	assert.Equal(t, Rescale{Slope: 1, Intercept: 0}, NewRescale(math.NaN(), math.Inf(1)))
	assert.Equal(t, Rescale{Slope: 0.5, Intercept: 3}, NewRescale(0.5, 3))
	// a zero slope is never applied, even when set directly
	assert.Equal(t, 10.0, Rescale{Slope: 0, Intercept: 0}.Apply(10))
}

func TestInvalidWindowUsesDefault(t *testing.T) {
	t.Parallel()
	for _, w := range []WindowLevel{
		{Center: 40, Width: 0},
		{Center: 40, Width: -10},
		{Center: math.NaN(), Width: 400},
		{Center: 40, Width: math.Inf(1)},
	} {
		assert.False(t, w.Valid(), "%+v", w)
		for _, modality := range []float64{-200, 40, 200} {
			assert.Equal(t, softTissue.Apply(modality), w.Apply(modality), "%+v", w)
		}
	}
	assert.True(t, WindowLevel{Center: -600, Width: 1}.Valid())
}

func TestEffectiveWindow(t *testing.T) {
	t.Parallel()
	inst := &Instance{WindowCenter: []float64{-600, 40}, WindowWidth: []float64{1500, 400}}
	assert.Equal(t, WindowLevel{Center: -600, Width: 1500}, EffectiveWindow(inst))

	cfg := GetConfig()
	def := WindowLevel{Center: cfg.DefaultWindowCenter, Width: cfg.DefaultWindowWidth}
	assert.Equal(t, def, EffectiveWindow(&Instance{}))
	assert.Equal(t, def, EffectiveWindow(nil))
	assert.Equal(t, def, EffectiveWindow(&Instance{WindowCenter: []float64{40}, WindowWidth: []float64{0}}))
	assert.Equal(t, def, EffectiveWindow(&Instance{WindowCenter: []float64{40}}))
}

func TestEffectiveWindowConfigured(t *testing.T) {
	withConfig(t, func(c *Config) {
		c.DefaultWindowCenter = -600
		c.DefaultWindowWidth = 1500
	})
	assert.Equal(t, WindowLevel{Center: -600, Width: 1500}, EffectiveWindow(&Instance{}))
}

func TestTransformFrame(t *testing.T) {
	t.Parallel()
	assert.Empty(t, TransformFrame(nil, NewRescale(1, 0), softTissue))

	small := []int32{-200, 40, 300}
	assert.Equal(t, []uint8{0, 128, 255}, TransformFrame(small, NewRescale(1, 0), softTissue))

	// frames above the parallel threshold give the same result as a sample-by-sample transform
	large := make([]int32, parallelThreshold*3+17)
	for i := range large {
		large[i] = int32(i%4096) - 1024
	}
	r := NewRescale(1, -24)
	out := TransformFrame(large, r, softTissue)
	assert.Len(t, out, len(large))
	for i, v := range large {
		if expected := softTissue.Apply(r.Apply(v)); out[i] != expected {
			t.Fatalf("sample %d: got %d (!= %d)", i, out[i], expected)
		}
	}
}

func BenchmarkTransformFrame(b *testing.B) {
	samples := make([]int32, 512*512)
	for i := range samples {
		samples[i] = int32(i % 2048)
	}
	r := NewRescale(1, -1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TransformFrame(samples, r, softTissue)
	}
}
