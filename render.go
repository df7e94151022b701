package dicomlite

import (
	"image"
)

// RenderInstance renders frame `frame` of `inst` as an 8-bit grayscale image.
// When `window` is nil the instance's own window is used (see `EffectiveWindow`).
// MONOCHROME1 images are inverted so that higher values always display brighter.
func RenderInstance(inst *Instance, frame int, window *WindowLevel) (*image.Gray, error) {
	producer, err := NewSampleProducer(inst)
	if err != nil {
		return nil, err
	}
	samples, err := producer.Samples(frame)
	if err != nil {
		return nil, err
	}
	w := EffectiveWindow(inst)
	if window != nil {
		w = *window
	}
	pix := TransformFrame(samples, inst.Rescale(), w)
	if inst.PhotometricInterpretation == "MONOCHROME1" {
		for i, v := range pix {
			pix[i] = 255 - v
		}
	}
	img := image.NewGray(image.Rect(0, 0, inst.Columns, inst.Rows))
	for y := 0; y < inst.Rows; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+inst.Columns], pix[y*inst.Columns:(y+1)*inst.Columns])
	}
	return img, nil
}
