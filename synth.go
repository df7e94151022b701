package dicomlite

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// SyntheticOptions configures `GenerateSeries`.
type SyntheticOptions struct {
	Dir               string
	Slices            int
	Rows              int
	Columns           int
	TransferSyntaxUID string
	PatientName       string
	PatientID         string
	// SpacingBetweenSlices is the distance between slice positions, in mm.
	SpacingBetweenSlices float64
	// Seed drives the file naming order; slices are written under shuffled names.
	Seed int64
}

func (o *SyntheticOptions) setDefaults() {
	if o.Slices < 1 {
		o.Slices = 16
	}
	if o.Rows < 1 {
		o.Rows = 64
	}
	if o.Columns < 1 {
		o.Columns = 64
	}
	if o.TransferSyntaxUID == "" {
		o.TransferSyntaxUID = ExplicitVRLittleEndian
	}
	if o.PatientName == "" {
		o.PatientName = "SYNTHETIC^PATIENT"
	}
	if o.PatientID == "" {
		o.PatientID = "SYN0001"
	}
	if o.SpacingBetweenSlices <= 0 {
		o.SpacingBetweenSlices = 2.5
	}
}

// SyntheticSlice returns a builder for slice `index` of a CT series: a water-density
// disc in air whose radius follows a sphere across the series. Stored values are
// signed 16 bit with a rescale intercept of -1024.
func SyntheticSlice(opts SyntheticOptions, studyUID, seriesUID, sopUID string, index int) *DatasetBuilder {
	opts.setDefaults()
	z := -100.0 + float64(index)*opts.SpacingBetweenSlices

	b := NewDatasetBuilder(opts.TransferSyntaxUID)
	b.SetString(dictionary.SpecificCharacterSet, "ISO_IR 192")
	b.SetStrings(dictionary.ImageType, "ORIGINAL", "PRIMARY", "AXIAL")
	b.SetString(dictionary.SOPClassUID, "1.2.840.10008.5.1.4.1.1.2")
	b.SetString(dictionary.SOPInstanceUID, sopUID)
	b.SetString(dictionary.StudyDate, "20240101")
	b.SetString(dictionary.StudyTime, "120000")
	b.SetString(dictionary.Modality, "CT")
	b.SetString(dictionary.StudyDescription, "Synthetic phantom")
	b.SetString(dictionary.SeriesDescription, "Axial sphere")
	b.SetString(dictionary.PatientName, opts.PatientName)
	b.SetString(dictionary.PatientID, opts.PatientID)
	b.SetString(dictionary.StudyInstanceUID, studyUID)
	b.SetString(dictionary.SeriesInstanceUID, seriesUID)
	b.SetInts(dictionary.SeriesNumber, 1)
	b.SetInts(dictionary.AcquisitionNumber, 1)
	b.SetInts(dictionary.InstanceNumber, index+1)
	b.SetDecimals(dictionary.ImagePositionPatient, -100, -100, z)
	b.SetDecimals(dictionary.ImageOrientationPatient, 1, 0, 0, 0, 1, 0)
	b.SetDecimals(dictionary.SliceLocation, z)
	b.SetDecimals(dictionary.SliceThickness, opts.SpacingBetweenSlices)
	b.SetUint16(dictionary.SamplesPerPixel, 1)
	b.SetString(dictionary.PhotometricInterpretation, "MONOCHROME2")
	b.SetUint16(dictionary.Rows, uint16(opts.Rows))
	b.SetUint16(dictionary.Columns, uint16(opts.Columns))
	b.SetUint16(dictionary.BitsAllocated, 16)
	b.SetUint16(dictionary.BitsStored, 16)
	b.SetUint16(dictionary.HighBit, 15)
	b.SetUint16(dictionary.PixelRepresentation, 1)
	b.SetDecimals(dictionary.WindowCenter, 40, -600)
	b.SetDecimals(dictionary.WindowWidth, 400, 1500)
	b.SetDecimals(dictionary.RescaleIntercept, -1024)
	b.SetDecimals(dictionary.RescaleSlope, 1)

	// sphere centred on the middle slice
	half := float64(opts.Slices-1) / 2
	sphereRadius := math.Min(float64(opts.Rows), float64(opts.Columns)) * 0.4
	dz := (float64(index) - half) / math.Max(half, 1) * sphereRadius
	discRadius := math.Sqrt(math.Max(sphereRadius*sphereRadius-dz*dz, 0))
	cx, cy := float64(opts.Columns-1)/2, float64(opts.Rows-1)/2

	words := make([]uint16, opts.Rows*opts.Columns)
	for y := 0; y < opts.Rows; y++ {
		for x := 0; x < opts.Columns; x++ {
			hu := -1000.0
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= discRadius {
				hu = 40
			}
			words[y*opts.Columns+x] = uint16(int16(hu + 1024))
		}
	}
	b.SetWords(dictionary.PixelData, words)
	return b
}

// GenerateSeries writes a synthetic CT series to `opts.Dir` and returns the written paths,
// in slice order. File names are shuffled so that name order differs from slice order.
func GenerateSeries(opts SyntheticOptions) ([]string, error) {
	opts.setDefaults()
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, err
	}
	studyUID, err := NewRandInstanceUID()
	if err != nil {
		return nil, err
	}
	seriesUID, err := NewRandInstanceUID()
	if err != nil {
		return nil, err
	}
	names := rand.New(rand.NewSource(opts.Seed)).Perm(opts.Slices)
	paths := make([]string, opts.Slices)
	for i := 0; i < opts.Slices; i++ {
		sopUID, err := NewRandInstanceUID()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("IMG%04d.dcm", names[i]))
		if err := SyntheticSlice(opts, studyUID, seriesUID, sopUID, i).WriteFile(path); err != nil {
			return nil, err
		}
		paths[i] = path
	}
	Infof("wrote %d slices of series %s to %s", opts.Slices, seriesUID, opts.Dir)
	return paths, nil
}
