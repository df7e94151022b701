package dicomlite

import (
	"sort"
	"sync"
)

// Hierarchy accumulates decoded records into a Study -> Series -> Instance tree.
// Folds are serialised; readers may run concurrently with each other.
type Hierarchy struct {
	mu      sync.RWMutex
	studies map[string]*Study
	count   int
}

// Duplicate describes an instance folded into a series that already held its SOP Instance UID.
type Duplicate struct {
	SOPInstanceUID string
	SeriesUID      string
	Path           string
	// FirstPath is the file the UID was first seen in
	FirstPath string
}

// FoldReport summarises one call to `Fold`.
type FoldReport struct {
	Added         int
	NewStudies    int
	NewSeries     int
	TouchedSeries int
	Duplicates    []Duplicate
}

// NewHierarchy returns an empty `Hierarchy`.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{studies: make(map[string]*Study)}
}

// Fold adds `records` to the tree. Studies and series are created on first sight, taking
// their descriptive fields from that record; later records never overwrite them.
// Every series that gained an instance is re-sorted once, after the whole batch.
//
// Instances whose SOP Instance UID is already present in the series are kept, and
// listed in the report's `Duplicates`.
func (h *Hierarchy) Fold(records []*Record) FoldReport {
	var report FoldReport
	if len(records) == 0 {
		return report
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.studies == nil {
		h.studies = make(map[string]*Study)
	}

	touched := make(map[*Series]bool)
	for _, rec := range records {
		if rec == nil || rec.Instance == nil {
			continue
		}
		study, found := h.studies[rec.Study.UID]
		if !found {
			study = newStudy(rec.Study)
			h.studies[study.UID] = study
			report.NewStudies++
		}
		series, found := study.Series[rec.Series.UID]
		if !found {
			series = newSeries(rec.Series, study.UID)
			study.Series[series.UID] = series
			report.NewSeries++
		}
		if series.bySOP == nil {
			series.bySOP = make(map[string]*Instance)
		}
		if existing, found := series.bySOP[rec.Instance.SOPInstanceUID]; found {
			dup := Duplicate{
				SOPInstanceUID: rec.Instance.SOPInstanceUID,
				SeriesUID:      series.UID,
				Path:           rec.Instance.Path,
				FirstPath:      existing.Path,
			}
			Warnf("duplicate SOP Instance UID %s in series %s: %q (first seen in %q)", dup.SOPInstanceUID, dup.SeriesUID, dup.Path, dup.FirstPath)
			report.Duplicates = append(report.Duplicates, dup)
		} else {
			series.bySOP[rec.Instance.SOPInstanceUID] = rec.Instance
		}
		series.Instances = append(series.Instances, rec.Instance)
		touched[series] = true
		report.Added++
		h.count++
	}
	for series := range touched {
		series.SortedInstances = SortInstances(series.Instances)
	}
	report.TouchedSeries = len(touched)
	return report
}

func newStudy(info StudyInfo) *Study {
	return &Study{
		UID:              info.UID,
		PatientName:      info.PatientName,
		PatientID:        info.PatientID,
		PatientBirthDate: info.PatientBirthDate,
		PatientSex:       info.PatientSex,
		StudyDate:        info.StudyDate,
		StudyTime:        info.StudyTime,
		Description:      info.Description,
		AccessionNumber:  info.AccessionNumber,
		Series:           make(map[string]*Series),
	}
}

func newSeries(info SeriesInfo, studyUID string) *Series {
	modality := info.Modality
	if modality == "" {
		modality = DefaultModality
	}
	var number *int
	if info.Number != nil {
		n := *info.Number
		number = &n
	}
	return &Series{
		UID:             info.UID,
		StudyUID:        studyUID,
		Number:          number,
		Description:     info.Description,
		Modality:        modality,
		Instances:       []*Instance{},
		SortedInstances: []*Instance{},
		bySOP:           make(map[string]*Instance),
	}
}

// Studies returns a snapshot of the tree: studies ordered by UID, each with its own
// copy of the series map and instance slices.
func (h *Hierarchy) Studies() []*Study {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Study, 0, len(h.studies))
	for _, study := range h.studies {
		out = append(out, copyStudy(study))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out
}

// Study returns a snapshot of the study with `uid`.
func (h *Hierarchy) Study(uid string) (*Study, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	study, found := h.studies[uid]
	if !found {
		return nil, false
	}
	return copyStudy(study), true
}

// Len returns the number of instances folded so far.
func (h *Hierarchy) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Reset empties the tree.
func (h *Hierarchy) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.studies = make(map[string]*Study)
	h.count = 0
}

func copyStudy(src *Study) *Study {
	dst := *src
	dst.Series = make(map[string]*Series, len(src.Series))
	for uid, series := range src.Series {
		s := *series
		s.Instances = append([]*Instance(nil), series.Instances...)
		s.SortedInstances = append([]*Instance(nil), series.SortedInstances...)
		s.bySOP = nil
		dst.Series[uid] = &s
	}
	return &dst
}

// SortedSeries returns the series of `study` ordered by series number, then UID.
// Series without a number come last.
func (study *Study) SortedSeries() []*Series {
	out := make([]*Series, 0, len(study.Series))
	for _, s := range study.Series {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Number != nil && b.Number != nil && *a.Number != *b.Number:
			return *a.Number < *b.Number
		case a.Number != nil && b.Number == nil:
			return true
		case a.Number == nil && b.Number != nil:
			return false
		}
		return a.UID < b.UID
	})
	return out
}

// KeyInstance returns the middle instance of the series in slice order, or nil
// for an empty series.
func (s *Series) KeyInstance() *Instance {
	if len(s.SortedInstances) == 0 {
		return nil
	}
	return s.SortedInstances[len(s.SortedInstances)/2]
}
