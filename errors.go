package dicomlite

import (
	"fmt"
	"strings"

	"github.com/Kerim-Sabic/dicomlite/dictionary"
)

// UnsupportedDicom is an error indicating that the input uses an encoding this package cannot read
type UnsupportedDicom struct {
	error
}

// NotADicom is an error indicating that the input is not recognised as a valid dicom
type NotADicom struct {
	error
}

// CorruptDicom is an error indicating that a `Dicom` is corrupt
type CorruptDicom struct {
	error
}

// InsufficientBytes is an error indicating that there are not enough bytes left in a buffer
type InsufficientBytes struct {
	error
}

// CorruptElement is an error indicating that an `Element` is corrupt
type CorruptElement struct {
	error
}

// CorruptElementStream is an error indicating that the `ElementStream` encountered a general problem
type CorruptElementStream struct {
	error
}

// MissingRequiredField is an error indicating that a dataset lacks one of the
// identifiers needed to place it in the study hierarchy.
type MissingRequiredField struct {
	error
	Tags []dictionary.Tag
}

// CorruptDicomError raises a `CorruptDicom` error
func CorruptDicomError(format string, a ...interface{}) *CorruptDicom {
	return &CorruptDicom{fmt.Errorf(format, a...)}
}

// CorruptElementError raises a `CorruptElement` error
func CorruptElementError(format string, a ...interface{}) *CorruptElement {
	return &CorruptElement{fmt.Errorf(format, a...)}
}

// CorruptElementStreamError raises a `CorruptElementStream` error
func CorruptElementStreamError(format string, a ...interface{}) *CorruptElementStream {
	return &CorruptElementStream{fmt.Errorf(format, a...)}
}

// UnsupportedDicomError raises a `UnsupportedDicom` error
func UnsupportedDicomError(format string, a ...interface{}) *UnsupportedDicom {
	return &UnsupportedDicom{fmt.Errorf(format, a...)}
}

// NotADicomError raises a `NotADicom` error
func NotADicomError(format string, a ...interface{}) *NotADicom {
	return &NotADicom{fmt.Errorf(format, a...)}
}

// MissingRequiredFieldError raises a `MissingRequiredField` error for `tags`
func MissingRequiredFieldError(path string, tags ...dictionary.Tag) *MissingRequiredField {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, fmt.Sprintf("%s %s", t, dictionary.Name(t)))
	}
	return &MissingRequiredField{
		error: fmt.Errorf(`"%s" is missing required field(s): %s`, path, strings.Join(names, ", ")),
		Tags:  tags,
	}
}
