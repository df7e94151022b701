package dicomlite

import (
	"math"
	"sort"
	"strings"
)

// PositionTolerance is the largest difference between two positions (mm) treated as equal.
const PositionTolerance = 0.001

// instanceComparator compares two instances on a single key. `ok` is false when
// either side lacks the key, in which case the next comparator decides.
type instanceComparator func(a, b *Instance) (cmp int, ok bool)

// instanceOrdering is applied left to right until a comparator reports a difference.
// The last comparator is total.
var instanceOrdering = []instanceComparator{
	byPositionZ,
	bySliceLocation,
	byInstanceNumber,
	byAcquisitionNumber,
	byPath,
}

func compareWithTolerance(a, b float64) int {
	if math.Abs(a-b) < PositionTolerance {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func byPositionZ(a, b *Instance) (int, bool) {
	if a.ImagePositionPatient == nil || b.ImagePositionPatient == nil {
		return 0, false
	}
	return compareWithTolerance(a.ImagePositionPatient[2], b.ImagePositionPatient[2]), true
}

func bySliceLocation(a, b *Instance) (int, bool) {
	if a.SliceLocation == nil || b.SliceLocation == nil {
		return 0, false
	}
	return compareWithTolerance(*a.SliceLocation, *b.SliceLocation), true
}

func byInstanceNumber(a, b *Instance) (int, bool) {
	if a.InstanceNumber == nil || b.InstanceNumber == nil {
		return 0, false
	}
	return compareInts(*a.InstanceNumber, *b.InstanceNumber), true
}

func byAcquisitionNumber(a, b *Instance) (int, bool) {
	if a.AcquisitionNumber == nil || b.AcquisitionNumber == nil {
		return 0, false
	}
	return compareInts(*a.AcquisitionNumber, *b.AcquisitionNumber), true
}

func byPath(a, b *Instance) (int, bool) {
	return strings.Compare(a.Path, b.Path), true
}

// CompareInstances orders `a` relative to `b`: negative when `a` comes first,
// positive when `b` does, zero when no key tells them apart.
//
// The result is a strict weak ordering only among instances carrying the same set
// of optional keys (position, slice location, instance and acquisition number).
// Mixing key sets can produce cycles: A(z=30, #1) < B(#2) < C(z=10, #3) < A.
func CompareInstances(a, b *Instance) int {
	for _, compare := range instanceOrdering {
		if cmp, ok := compare(a, b); ok && cmp != 0 {
			return cmp
		}
	}
	return 0
}

// SortInstances returns a new slice holding `instances` in anatomical / acquisition order.
// The input is not modified. Instances that compare equal keep their input order.
// When the instances carry different key sets (see `CompareInstances`) the result is
// still a permutation of the input, but may depend on the input order.
func SortInstances(instances []*Instance) []*Instance {
	sorted := make([]*Instance, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareInstances(sorted[i], sorted[j]) < 0
	})
	return sorted
}
