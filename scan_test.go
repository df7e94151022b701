package dicomlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanFixture writes a synthetic series plus one file that is not a DICOM and one
// that claims to be but is not decodable
func scanFixture(t *testing.T, slices int) (dir string, series []string, notDicom, corrupt string) {
	t.Helper()
	dir = t.TempDir()
	series, err := GenerateSeries(SyntheticOptions{Dir: filepath.Join(dir, "ct"), Slices: slices, Rows: 8, Columns: 8, Seed: 3})
	require.NoError(t, err)

	notDicom = filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notDicom, []byte("not an image"), 0644))

	corrupt = filepath.Join(dir, "broken.dcm")
	buf := append(make([]byte, 128), []byte("DICM")...)
	buf = append(buf, 0x02, 0x00, 0x10, 0x00, 'U', 'I', 0xFF, 0x7F)
	require.NoError(t, os.WriteFile(corrupt, buf, 0644))
	return dir, series, notDicom, corrupt
}

func TestScan(t *testing.T) {
	t.Parallel()
	dir, series, notDicom, corrupt := scanFixture(t, 6)

	h := NewHierarchy()
	scanner := NewScanner(h)
	scanner.BatchSize = 4
	var progress []ScanProgress
	scanner.Progress = func(p ScanProgress) { progress = append(progress, p) }

	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Len(t, result.Records, 6)
	assert.Equal(t, []string{notDicom}, result.Skipped)
	assert.Equal(t, []string{corrupt}, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.IsType(t, &NotADicom{}, result.Errors[notDicom])
	assert.Error(t, result.Errors[corrupt])
	for i := 1; i < len(result.Records); i++ {
		assert.Less(t, result.Records[i-1].Path, result.Records[i].Path)
	}

	require.Len(t, progress, 8)
	for i, p := range progress {
		assert.Equal(t, i+1, p.Done)
	}

	studies := h.Studies()
	require.Len(t, studies, 1)
	require.Len(t, studies[0].Series, 1)
	for _, s := range studies[0].Series {
		assert.Equal(t, "CT", s.Modality)
		assert.Equal(t, series, paths(s.SortedInstances))
	}
}

func TestScanWithoutHierarchy(t *testing.T) {
	t.Parallel()
	dir, _, _, _ := scanFixture(t, 3)
	result, err := NewScanner(nil).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, result.Records, 3)
}

func TestScanCancelled(t *testing.T) {
	t.Parallel()
	dir, _, _, _ := scanFixture(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHierarchy()
	result, err := NewScanner(h).Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Zero(t, h.Len())
}

func TestScanCancelledFromProgress(t *testing.T) {
	withConfig(t, func(c *Config) { c.OpenFileLimit = 1 })
	dir, series, _, corrupt := scanFixture(t, 40)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scanner := NewScanner(NewHierarchy())
	calls := 0
	scanner.Progress = func(p ScanProgress) {
		calls++
		if calls == 3 {
			cancel()
		}
	}
	result, err := scanner.Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)

	// only files that were actually visited are reported
	assert.Equal(t, calls, len(result.Records)+len(result.Failed)+len(result.Skipped))
	assert.Less(t, len(result.Records), len(series))
	for _, path := range result.Failed {
		assert.Equal(t, corrupt, path)
	}
	for path, reason := range result.Errors {
		assert.NotErrorIs(t, reason, context.Canceled, path)
	}
}

func TestScanEmptyDir(t *testing.T) {
	t.Parallel()
	h := NewHierarchy()
	scanner := NewScanner(h)
	calls := 0
	scanner.Progress = func(ScanProgress) { calls++ }

	result, err := scanner.Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Zero(t, calls)
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Studies())
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()
	_, err := NewScanner(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestSniffFile(t *testing.T) {
	t.Parallel()
	dir, series, notDicom, corrupt := scanFixture(t, 1)

	for path, expected := range map[string]bool{series[0]: true, corrupt: true, notDicom: false} {
		isDicom, err := SniffFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, isDicom, path)
	}

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	isDicom, err := SniffFile(empty)
	assert.NoError(t, err)
	assert.False(t, isDicom)

	_, err = SniffFile(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}

func TestReduceDir(t *testing.T) {
	t.Parallel()
	in, out := t.TempDir(), t.TempDir()
	first, err := GenerateSeries(SyntheticOptions{Dir: filepath.Join(in, "a"), Slices: 5, Rows: 4, Columns: 4})
	require.NoError(t, err)
	second, err := GenerateSeries(SyntheticOptions{Dir: filepath.Join(in, "b"), Slices: 2, Rows: 4, Columns: 4})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("not an image"), 0644))

	written, err := ReduceDir(context.Background(), in, out)
	require.NoError(t, err)
	require.Len(t, written, 2)

	// each output is a byte-identical copy of the middle slice of its series
	copies := make(map[string]bool)
	for _, path := range written {
		rec, err := DecodeFile(path)
		require.NoError(t, err)
		assert.Equal(t, rec.Series.UID+".dcm", filepath.Base(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		copies[string(data)] = true
	}
	for _, key := range []string{first[2], second[1]} {
		data, err := os.ReadFile(key)
		require.NoError(t, err)
		assert.Contains(t, copies, string(data), key)
	}

	// existing outputs are kept
	written, err = ReduceDir(context.Background(), in, out)
	require.NoError(t, err)
	assert.Empty(t, written)

	_, err = ReduceDir(context.Background(), in, filepath.Join(in, "notes.txt"))
	assert.Error(t, err)
	_, err = ReduceDir(context.Background(), filepath.Join(in, "absent"), out)
	assert.Error(t, err)
}
