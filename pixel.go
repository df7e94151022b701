package dicomlite

import (
	"math"
	"runtime"
	"sync"
)

// The soft tissue window, used when an instance carries no usable window.
const (
	DefaultWindowCenter = 40.0
	DefaultWindowWidth  = 400.0
)

// parallelThreshold is the smallest frame split across goroutines by `TransformFrame`.
const parallelThreshold = 1 << 16

// WindowLevel maps the modality range [Center - Width/2, Center + Width/2] onto 0..255.
type WindowLevel struct {
	Center float64
	Width  float64
}

// Rescale converts stored sample values to modality values.
type Rescale struct {
	Slope     float64
	Intercept float64
}

// NewRescale returns a Rescale, replacing a zero or non-finite slope with 1
// and a non-finite intercept with 0.
func NewRescale(slope, intercept float64) Rescale {
	if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
		slope = 1
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		intercept = 0
	}
	return Rescale{Slope: slope, Intercept: intercept}
}

// Apply returns the modality value of `raw`.
func (r Rescale) Apply(raw int32) float64 {
	slope := r.Slope
	if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
		slope = 1
	}
	return float64(raw)*slope + r.Intercept
}

// Valid reports whether the window can be applied (finite center, finite positive width).
func (w WindowLevel) Valid() bool {
	return w.Width > 0 && !math.IsInf(w.Width, 0) && !math.IsNaN(w.Center) && !math.IsInf(w.Center, 0)
}

// Bounds returns the modality values mapped to 0 and 255.
func (w WindowLevel) Bounds() (low, high float64) {
	return w.Center - w.Width/2, w.Center + w.Width/2
}

// Apply maps a modality value to a display intensity. Values at or below the lower
// bound give 0, at or above the upper bound 255; values between are scaled and rounded
// half away from zero. An invalid window is replaced by the default before use.
func (w WindowLevel) Apply(modality float64) uint8 {
	if !w.Valid() {
		w = WindowLevel{Center: DefaultWindowCenter, Width: DefaultWindowWidth}
	}
	low, high := w.Bounds()
	switch {
	case math.IsNaN(modality):
		return 0
	case modality <= low:
		return 0
	case modality >= high:
		return 255
	}
	return uint8(math.Round((modality - low) * 255 / w.Width))
}

// EffectiveWindow returns the window used to display `inst`: its first center / width
// pair when usable, otherwise the configured default.
func EffectiveWindow(inst *Instance) WindowLevel {
	if inst != nil && len(inst.WindowCenter) > 0 && len(inst.WindowWidth) > 0 {
		w := WindowLevel{Center: inst.WindowCenter[0], Width: inst.WindowWidth[0]}
		if w.Valid() {
			return w
		}
		Debugf("%s: unusable window (center %v, width %v), using default", inst.Path, w.Center, w.Width)
	}
	cfg := GetConfig()
	return WindowLevel{Center: cfg.DefaultWindowCenter, Width: cfg.DefaultWindowWidth}
}

// TransformFrame applies `r` then `w` to every sample. Large frames are split
// across up to GOMAXPROCS goroutines.
func TransformFrame(samples []int32, r Rescale, w WindowLevel) []uint8 {
	out := make([]uint8, len(samples))
	transform := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = w.Apply(r.Apply(samples[i]))
		}
	}
	workers := runtime.GOMAXPROCS(0)
	if len(samples) < parallelThreshold || workers < 2 {
		transform(0, len(samples))
		return out
	}
	chunk := (len(samples) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(samples); lo += chunk {
		hi := lo + chunk
		if hi > len(samples) {
			hi = len(samples)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			transform(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return out
}
