package dicomlite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// defaultBatchSize is the number of records folded into the hierarchy at once.
const defaultBatchSize = 64

// ScanProgress is reported after each file a `Scanner` visits.
type ScanProgress struct {
	Path string
	// Done counts files visited so far, including skipped and failed ones.
	Done int
	Err  error
}

// ScanResult lists the outcome of a scan. Paths are sorted.
type ScanResult struct {
	Records []*Record
	// Failed holds files that carried the DICM signature but could not be decoded.
	Failed []string
	// Skipped holds files without the DICM signature.
	Skipped []string
	// Errors holds the reason for every failed or skipped file.
	Errors map[string]error
}

// Scanner discovers and decodes the DICOM files below a directory.
type Scanner struct {
	// Hierarchy, when set, receives every decoded record.
	Hierarchy *Hierarchy
	// Progress, when set, is called from a single goroutine after each file.
	Progress func(ScanProgress)
	// BatchSize is the number of records folded into Hierarchy at once.
	BatchSize int
}

// NewScanner returns a Scanner folding into `h` (which may be nil).
func NewScanner(h *Hierarchy) *Scanner {
	return &Scanner{Hierarchy: h, BatchSize: defaultBatchSize}
}

type scanOutcome struct {
	path      string
	record    *Record
	err       error
	skipped   bool
	cancelled bool
}

// Scan walks `root`, decoding files concurrently (bounded by `Config.OpenFileLimit`).
// Cancelling `ctx` stops new files from being started; the partial result is returned
// together with the context error. Files not yet opened when `ctx` is cancelled appear
// nowhere in the result. A file that fails to decode never aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (ScanResult, error) {
	result := ScanResult{Errors: make(map[string]error)}
	outcomes := make(chan scanOutcome)
	batchSize := s.BatchSize
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	var collector sync.WaitGroup
	collector.Add(1)
	go func() {
		defer collector.Done()
		var batch []*Record
		done := 0
		for o := range outcomes {
			if o.cancelled {
				continue
			}
			done++
			switch {
			case o.skipped:
				result.Skipped = append(result.Skipped, o.path)
				result.Errors[o.path] = o.err
			case o.err != nil:
				result.Failed = append(result.Failed, o.path)
				result.Errors[o.path] = o.err
			default:
				result.Records = append(result.Records, o.record)
				batch = append(batch, o.record)
			}
			if s.Hierarchy != nil && len(batch) >= batchSize {
				s.Hierarchy.Fold(batch)
				batch = nil
			}
			if s.Progress != nil {
				s.Progress(ScanProgress{Path: o.path, Done: done, Err: o.err})
			}
		}
		if s.Hierarchy != nil && len(batch) > 0 {
			s.Hierarchy.Fold(batch)
		}
	}()

	err := ConcurrentlyWalkDir(ctx, root, func(path string) {
		outcomes <- scanFile(ctx, path)
	})
	close(outcomes)
	collector.Wait()

	sort.Slice(result.Records, func(i, j int) bool { return result.Records[i].Path < result.Records[j].Path })
	sort.Strings(result.Failed)
	sort.Strings(result.Skipped)
	Debugf("scanned %s: %d records, %d failed, %d skipped", root, len(result.Records), len(result.Failed), len(result.Skipped))
	return result, err
}

func scanFile(ctx context.Context, path string) scanOutcome {
	if err := ctx.Err(); err != nil {
		return scanOutcome{path: path, cancelled: true}
	}
	isDicom, err := SniffFile(path)
	if err != nil {
		return scanOutcome{path: path, err: err}
	}
	if !isDicom {
		return scanOutcome{path: path, skipped: true, err: NotADicomError(`"%s" lacks the DICM signature`, path)}
	}
	rec, err := DecodeFile(path)
	if err != nil {
		Debugf("%v", err)
	}
	return scanOutcome{path: path, record: rec, err: err}
}

// SniffFile reports whether the file at `path` starts with a 128 byte preamble and "DICM".
func SniffFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	var header [132]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return HasSignature(header[:]), nil
}

// ReduceDir scans `inDir` and copies the key instance (see `Series.KeyInstance`) of every
// series found to `outDir`, named after its Series Instance UID. Existing files in `outDir`
// are left untouched. The written paths are returned sorted.
func ReduceDir(ctx context.Context, inDir, outDir string) ([]string, error) {
	for _, dir := range []string{inDir, outDir} {
		stat, err := os.Stat(dir)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			return nil, fmt.Errorf(`"%s" is not a directory`, dir)
		}
	}
	h := NewHierarchy()
	if _, err := NewScanner(h).Scan(ctx, inDir); err != nil {
		return nil, err
	}
	var written []string
	for _, study := range h.Studies() {
		for _, series := range study.Series {
			key := series.KeyInstance()
			if key == nil {
				continue
			}
			dst := filepath.Join(outDir, series.UID+".dcm")
			if _, err := os.Stat(dst); err == nil {
				Infof(`skip "%s": file exists`, dst)
				continue
			} else if !os.IsNotExist(err) {
				return written, err
			}
			if err := CopyFile(key.Path, dst); err != nil {
				return written, err
			}
			Debugf("%s -> %s", key.Path, dst)
			written = append(written, dst)
		}
	}
	sort.Strings(written)
	return written, nil
}
