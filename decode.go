package dicomlite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// requiredTags must be present and non-empty for a file to yield a `Record`.
var requiredTags = []dictionary.Tag{
	dictionary.StudyInstanceUID,
	dictionary.SeriesInstanceUID,
	dictionary.SOPInstanceUID,
}

// Decode parses the DICOM bytes in `buf` into a `Record`. `path` is carried through
// unchanged and is used only in the record and in error messages.
//
// Missing optional fields are absent in the result. The call fails with a
// `*MissingRequiredField` when the study, series or SOP instance UID is absent or empty,
// with an `*UnsupportedDicom` for transfer syntaxes that cannot be read, and with a
// `*CorruptDicom` when the stream became unreadable before the required UIDs.
// Outside of `StrictMode`, elements read before a corruption are kept.
func Decode(path string, buf []byte) (*Record, error) {
	dcm, parseErr := parse(path, bytes.NewReader(buf), int64(len(buf)))
	if parseErr != nil {
		var unsupported *UnsupportedDicom
		if errors.As(parseErr, &unsupported) {
			return nil, UnsupportedDicomError(`the file "%s" is unsupported: %v`, filepath.Base(path), parseErr)
		}
		if GetConfig().StrictMode || len(dcm.Elements) == 0 {
			return nil, CorruptDicomError(`the file "%s" is corrupt: %v`, filepath.Base(path), parseErr)
		}
	}

	var missing []dictionary.Tag
	for _, tag := range requiredTags {
		if _, found := dcm.GetString(tag); !found {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		if parseErr != nil {
			return nil, CorruptDicomError(`the file "%s" is corrupt: %v`, filepath.Base(path), parseErr)
		}
		return nil, MissingRequiredFieldError(path, missing...)
	}
	if parseErr != nil {
		Warnf(`"%s": continuing with %d elements read before: %v`, filepath.Base(path), len(dcm.Elements), parseErr)
	}

	return newRecord(path, dcm), nil
}

// DecodeFile reads `path` from disk and decodes it.
func DecodeFile(path string) (*Record, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, buf)
}

func newRecord(path string, dcm Dicom) *Record {
	str := func(tag dictionary.Tag) string {
		s, _ := dcm.GetString(tag)
		return s
	}
	optInt := func(tag dictionary.Tag) *int {
		if v, ok := dcm.GetInt(tag); ok {
			return &v
		}
		return nil
	}

	rec := &Record{Path: path, Tags: dcm.TagMap()}
	rec.Study = StudyInfo{
		UID:              str(dictionary.StudyInstanceUID),
		PatientName:      str(dictionary.PatientName),
		PatientID:        str(dictionary.PatientID),
		PatientBirthDate: str(dictionary.PatientBirthDate),
		PatientSex:       str(dictionary.PatientSex),
		StudyDate:        str(dictionary.StudyDate),
		StudyTime:        str(dictionary.StudyTime),
		Description:      str(dictionary.StudyDescription),
		AccessionNumber:  str(dictionary.AccessionNumber),
	}
	rec.Series = SeriesInfo{
		UID:         str(dictionary.SeriesInstanceUID),
		Number:      optInt(dictionary.SeriesNumber),
		Description: str(dictionary.SeriesDescription),
		Modality:    str(dictionary.Modality),
	}
	if rec.Series.Modality == "" {
		rec.Series.Modality = DefaultModality
	}

	inst := &Instance{
		Path:                      path,
		SOPInstanceUID:            str(dictionary.SOPInstanceUID),
		SOPClassUID:               str(dictionary.SOPClassUID),
		InstanceNumber:            optInt(dictionary.InstanceNumber),
		AcquisitionNumber:         optInt(dictionary.AcquisitionNumber),
		PhotometricInterpretation: str(dictionary.PhotometricInterpretation),
		RescaleSlope:              1,
	}
	if ipp, ok := dcm.GetFloats(dictionary.ImagePositionPatient); ok && len(ipp) == 3 {
		inst.ImagePositionPatient = &[3]float64{ipp[0], ipp[1], ipp[2]}
	}
	if loc, ok := dcm.GetFloat(dictionary.SliceLocation); ok {
		inst.SliceLocation = &loc
	}
	inst.Rows, _ = dcm.GetInt(dictionary.Rows)
	inst.Columns, _ = dcm.GetInt(dictionary.Columns)
	inst.BitsAllocated, _ = dcm.GetInt(dictionary.BitsAllocated)
	inst.PixelRepresentation, _ = dcm.GetInt(dictionary.PixelRepresentation)
	var ok bool
	if inst.BitsStored, ok = dcm.GetInt(dictionary.BitsStored); !ok || inst.BitsStored < 1 {
		inst.BitsStored = inst.BitsAllocated
	}
	if inst.HighBit, ok = dcm.GetInt(dictionary.HighBit); !ok {
		inst.HighBit = inst.BitsStored - 1
	}
	if inst.SamplesPerPixel, ok = dcm.GetInt(dictionary.SamplesPerPixel); !ok || inst.SamplesPerPixel < 1 {
		inst.SamplesPerPixel = 1
	}
	if inst.NumberOfFrames, ok = dcm.GetInt(dictionary.NumberOfFrames); !ok || inst.NumberOfFrames < 1 {
		inst.NumberOfFrames = 1
	}
	if slope, ok := dcm.GetFloat(dictionary.RescaleSlope); ok && slope != 0 {
		inst.RescaleSlope = slope
	}
	inst.RescaleIntercept, _ = dcm.GetFloat(dictionary.RescaleIntercept)
	inst.WindowCenter, _ = dcm.GetFloats(dictionary.WindowCenter)
	inst.WindowWidth, _ = dcm.GetFloats(dictionary.WindowWidth)

	if ts, found := dcm.GetString(dictionary.TransferSyntaxUID); found {
		inst.TransferSyntaxUID = ts
	} else if entry := dcm.TransferSyntax().UIDEntry; entry != nil {
		inst.TransferSyntaxUID = entry.UID
	}

	if px, found := dcm.GetElement(dictionary.PixelData); found {
		inst.pixelLittleEndian = px.littleEndian
		if len(px.Items) > 0 {
			// the first item is the basic offset table
			for _, item := range px.Items[1:] {
				inst.pixelFragments = append(inst.pixelFragments, item.Unparsed)
			}
		} else {
			inst.pixelData = px.value
		}
	}
	rec.Instance = inst
	return rec
}
