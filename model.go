package dicomlite

import (
	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// DefaultModality is used when a series carries no Modality (0008,0060).
const DefaultModality = "OT"

// Instance is a single image (SOP instance) belonging to one `Series`.
// Optional attributes are nil when absent from the source file.
type Instance struct {
	Path           string
	SOPInstanceUID string
	SOPClassUID    string

	InstanceNumber       *int
	ImagePositionPatient *[3]float64
	SliceLocation        *float64
	AcquisitionNumber    *int

	Rows                      int
	Columns                   int
	BitsAllocated             int
	BitsStored                int
	HighBit                   int
	PixelRepresentation       int
	SamplesPerPixel           int
	PhotometricInterpretation string

	RescaleSlope     float64
	RescaleIntercept float64
	WindowCenter     []float64
	WindowWidth      []float64
	NumberOfFrames   int

	TransferSyntaxUID string

	// encoded pixel payload: native bytes, or encapsulated fragments
	pixelData         []byte
	pixelFragments    [][]byte
	pixelLittleEndian bool
}

// HasPixelData reports whether the instance carries a pixel payload.
func (inst *Instance) HasPixelData() bool {
	return len(inst.pixelData) > 0 || len(inst.pixelFragments) > 0
}

// Rescale returns the modality rescale of the instance.
func (inst *Instance) Rescale() Rescale {
	return NewRescale(inst.RescaleSlope, inst.RescaleIntercept)
}

// FrameLength returns the number of samples in one frame.
func (inst *Instance) FrameLength() int {
	spp := inst.SamplesPerPixel
	if spp < 1 {
		spp = 1
	}
	return inst.Rows * inst.Columns * spp
}

// Series groups the instances sharing a Series Instance UID.
// `SortedInstances` is always a permutation of `Instances`.
type Series struct {
	UID             string
	StudyUID        string
	Number          *int
	Description     string
	Modality        string
	Instances       []*Instance
	SortedInstances []*Instance

	// first instance seen per SOP Instance UID
	bySOP map[string]*Instance
}

// Study groups the series sharing a Study Instance UID.
// Descriptive fields come from the first file seen for the study.
type Study struct {
	UID              string
	PatientName      string
	PatientID        string
	PatientBirthDate string
	PatientSex       string
	StudyDate        string
	StudyTime        string
	Description      string
	AccessionNumber  string
	Series           map[string]*Series
}

// StudyInfo holds the study-level attributes of one decoded file.
type StudyInfo struct {
	UID              string
	PatientName      string
	PatientID        string
	PatientBirthDate string
	PatientSex       string
	StudyDate        string
	StudyTime        string
	Description      string
	AccessionNumber  string
}

// SeriesInfo holds the series-level attributes of one decoded file.
type SeriesInfo struct {
	UID         string
	Number      *int
	Description string
	Modality    string
}

// Record is the result of decoding one file.
type Record struct {
	Path     string
	Study    StudyInfo
	Series   SeriesInfo
	Instance *Instance
	Tags     map[dictionary.Tag]TagValue
}
