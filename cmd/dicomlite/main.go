package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	dl "github.com/Kerim-Sabic/dicomlite"
	"github.com/Kerim-Sabic/dicomlite/dictionary"
	"golang.org/x/image/tiff"
)

var baseFile = filepath.Base(os.Args[0])

var modes = []string{"view", "tags", "tree", "render", "synth", "reduce", "extract", "strip", "simulate"}

func check(err error) {
	if err != nil {
		dl.Fatalf("error: %v", err)
	}
}

func usage() {
	fmt.Printf("dicomlite version %s\n", dl.Version)
	fmt.Printf("usage: %s [%s] [flags] args\n", baseFile, strings.Join(modes, " / "))
	os.Exit(1)
}

func main() {
	dl.GetConfig()
	if len(os.Args) < 2 || os.Args[1] == "--help" || os.Args[1] == "-h" {
		usage()
	}
	args := os.Args[2:]
	switch os.Args[1] {
	case "view":
		startView(args)
	case "tags":
		startTags(args)
	case "tree":
		startTree(args)
	case "render":
		startRender(args)
	case "synth":
		startSynth(args)
	case "reduce":
		startReduce(args)
	case "extract":
		startExtract(args)
	case "strip":
		startStrip(args)
	case "simulate":
		startSimulate(args)
	default:
		usage()
	}
}

/*
===============================================================================
    Mode: View DICOM File
===============================================================================
*/

// startView lists the elements of a file, or checks that every file below a directory parses.
func startView(args []string) {
	if len(args) != 1 {
		fmt.Printf("usage: %s view file_or_dir\n", baseFile)
		os.Exit(1)
	}
	stat, err := os.Stat(args[0])
	check(err)
	if !stat.IsDir() {
		dcm, err := dl.ParseDicom(args[0])
		check(err)
		for _, element := range dcm.SortedElements() {
			for _, line := range element.Describe(0) {
				fmt.Println(line)
			}
		}
		return
	}

	var errorCount, successCount int64
	err = dl.ConcurrentlyWalkDir(context.Background(), args[0], func(path string) {
		basePath := filepath.Base(path)
		if _, err := dl.ParseDicom(path); err != nil {
			dl.Errorf(`error parsing "%s": %v`, basePath, err)
			atomic.AddInt64(&errorCount, 1)
			return
		}
		atomic.AddInt64(&successCount, 1)
		dl.Debugf(`parsed "%s"`, basePath)
	})
	check(err)
	if errorCount == 0 {
		dl.Infof("parsed %d files without errors", successCount)
	} else {
		dl.Infof("parsed %d files without errors, and failed to parse %d files", successCount, errorCount)
	}
}

/*
===============================================================================
    Mode: Print Tag Map
===============================================================================
*/

func startTags(args []string) {
	if len(args) != 1 {
		fmt.Printf("usage: %s tags file\n", baseFile)
		os.Exit(1)
	}
	rec, err := dl.DecodeFile(args[0])
	check(err)
	tags := make([]dictionary.Tag, 0, len(rec.Tags))
	for tag := range rec.Tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	for _, tag := range tags {
		v := rec.Tags[tag]
		fmt.Printf("%s [%s] %s: %s\n", v.Tag, v.VR, v.Name, v)
	}
}

/*
===============================================================================
    Mode: Scan Directory Into Study Tree
===============================================================================
*/

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func startTree(args []string) {
	if len(args) != 1 {
		fmt.Printf("usage: %s tree dir\n", baseFile)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h := dl.NewHierarchy()
	scanner := dl.NewScanner(h)
	scanner.Progress = func(p dl.ScanProgress) {
		if p.Done%100 == 0 {
			dl.Infof("scanned %d files", p.Done)
		}
	}
	result, err := scanner.Scan(ctx, args[0])
	if err != nil && ctx.Err() == nil {
		check(err)
	}
	for _, path := range result.Failed {
		dl.Warnf("failed: %v", result.Errors[path])
	}

	for _, study := range h.Studies() {
		fmt.Printf("Study %s  %s (%s)  %s %s\n", study.UID, study.PatientName, study.PatientID, study.StudyDate, study.Description)
		for _, series := range study.SortedSeries() {
			fmt.Printf("    Series %s  #%s  %s  %s  (%d instances)\n", series.UID, optInt(series.Number), series.Modality, series.Description, len(series.Instances))
			for i, inst := range series.SortedInstances {
				z := "-"
				if inst.ImagePositionPatient != nil {
					z = fmt.Sprintf("%.3f", inst.ImagePositionPatient[2])
				}
				fmt.Printf("        %4d  z=%s  n=%s  %s\n", i+1, z, optInt(inst.InstanceNumber), inst.Path)
			}
		}
	}
	dl.Infof("%d records, %d failed, %d skipped", len(result.Records), len(result.Failed), len(result.Skipped))
}

/*
===============================================================================
    Mode: Render Frame
===============================================================================
*/

func startRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	frame := fs.Int("frame", 0, "frame number (zero based)")
	center := fs.Float64("center", 0, "window center (requires -width)")
	width := fs.Float64("width", 0, "window width; the file's window is used when unset")
	format := fs.String("format", "", `output format, "png" or "tiff" (default: from the output extension)`)
	fs.Usage = func() {
		fmt.Printf("usage: %s render [flags] file out\n", baseFile)
		fs.PrintDefaults()
	}
	check(fs.Parse(args))
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}
	in, out := fs.Arg(0), fs.Arg(1)

	rec, err := dl.DecodeFile(in)
	check(err)
	var window *dl.WindowLevel
	if *width > 0 {
		window = &dl.WindowLevel{Center: *center, Width: *width}
	}
	img, err := dl.RenderInstance(rec.Instance, *frame, window)
	check(err)

	if *format == "" {
		*format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	check(writeImage(out, *format, img))
	dl.Infof("wrote %s (%dx%d)", out, img.Rect.Dx(), img.Rect.Dy())
}

func writeImage(path string, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch format {
	case "png":
		err = png.Encode(f, img)
	case "tif", "tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

/*
===============================================================================
    Mode: Write Synthetic Series
===============================================================================
*/

func startSynth(args []string) {
	fs := flag.NewFlagSet("synth", flag.ExitOnError)
	opts := dl.SyntheticOptions{}
	fs.IntVar(&opts.Slices, "n", 16, "number of slices")
	fs.IntVar(&opts.Rows, "rows", 64, "rows per slice")
	fs.IntVar(&opts.Columns, "cols", 64, "columns per slice")
	fs.StringVar(&opts.TransferSyntaxUID, "ts", dl.ExplicitVRLittleEndian, "transfer syntax UID")
	fs.Int64Var(&opts.Seed, "seed", 1, "seed for file naming order")
	fs.Usage = func() {
		fmt.Printf("usage: %s synth [flags] dir\n", baseFile)
		fs.PrintDefaults()
	}
	check(fs.Parse(args))
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	opts.Dir = fs.Arg(0)
	if !dl.IsNativeTransferSyntax(opts.TransferSyntaxUID) {
		check(fmt.Errorf("synthetic series can only be written with a native transfer syntax"))
	}
	_, err := dl.GenerateSeries(opts)
	check(err)
}

/*
===============================================================================
    Mode: Reduce Directory To One File Per Series
===============================================================================
*/

func startReduce(args []string) {
	if len(args) != 2 {
		fmt.Printf("usage: %s reduce in_dir out_dir\n", baseFile)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	written, err := dl.ReduceDir(ctx, args[0], args[1])
	check(err)
	dl.Infof("wrote %d files to %s", len(written), args[1])
}

/*
===============================================================================
    Mode: Extract Element Bytes
===============================================================================
*/

// parseTag reads "(gggg,eeee)", "gggg,eeee" or "ggggeeee".
func parseTag(s string) (dictionary.Tag, error) {
	s = strings.NewReplacer("(", "", ")", "", ",", "").Replace(s)
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: %v", s, err)
	}
	return dictionary.Tag(v), nil
}

// startExtract prints the encoded bytes of one element as a Go byte slice literal.
func startExtract(args []string) {
	if len(args) != 2 {
		fmt.Printf("usage: %s extract file (gggg,eeee)\n", baseFile)
		os.Exit(1)
	}
	tag, err := parseTag(args[1])
	check(err)
	raw, err := dl.ExtractElement(args[0], tag)
	check(err)
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	fmt.Printf("[]byte{%s}\n", strings.Join(parts, ", "))
}

/*
===============================================================================
    Mode: Strip Elements
===============================================================================
*/

func startStrip(args []string) {
	fs := flag.NewFlagSet("strip", flag.ExitOnError)
	outDir := fs.String("out", ".", "output directory; files are named after the SHA-256 of their contents")
	fs.Usage = func() {
		fmt.Printf("usage: %s strip [flags] file (gggg,eeee) [(gggg,eeee) ...]\n", baseFile)
		fs.PrintDefaults()
	}
	check(fs.Parse(args))
	if fs.NArg() < 2 {
		fs.Usage()
		os.Exit(1)
	}
	var tags []dictionary.Tag
	for _, arg := range fs.Args()[1:] {
		tag, err := parseTag(arg)
		check(err)
		tags = append(tags, tag)
	}
	in, err := os.ReadFile(fs.Arg(0))
	check(err)
	out, removed, err := dl.StripElements(in, tags...)
	check(err)
	outPath := filepath.Join(*outDir, fmt.Sprintf("%x.dcm", sha256.Sum256(out)))
	check(os.WriteFile(outPath, out, 0644))
	dl.Infof("removed %d elements (%d bytes), wrote %s", removed, len(in)-len(out), outPath)
}

/*
===============================================================================
    Mode: Simulate Load Over Time
===============================================================================
*/

// startSimulate decodes randomly chosen files below a directory until interrupted or
// until -duration has passed, logging throughput and memory use.
func startSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	duration := fs.Duration("duration", 0, "stop after this long (default: run until interrupted)")
	interval := fs.Duration("interval", 3*time.Second, "reporting interval")
	fs.Usage = func() {
		fmt.Printf("usage: %s simulate [flags] dir\n", baseFile)
		fs.PrintDefaults()
	}
	check(fs.Parse(args))
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	var files []string
	var mu sync.Mutex
	check(dl.ConcurrentlyWalkDir(context.Background(), fs.Arg(0), func(file string) {
		mu.Lock()
		files = append(files, file)
		mu.Unlock()
	}))
	if len(files) == 0 {
		dl.Fatalf("no files found in %s", fs.Arg(0))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	var decoded, failed int64
	start := time.Now()
	report := func() {
		elapsed := time.Since(start).Seconds()
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		dl.Infof("decoded %d files (%d failed), %.0f files/s, memory: %d kB / %d kB",
			atomic.LoadInt64(&decoded), atomic.LoadInt64(&failed), float64(atomic.LoadInt64(&decoded))/elapsed,
			memStats.Alloc/1024, memStats.Sys/1024)
	}
	go func() {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				report()
			}
		}
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for ctx.Err() == nil {
		if _, err := dl.DecodeFile(files[rng.Intn(len(files))]); err != nil {
			atomic.AddInt64(&failed, 1)
		}
		atomic.AddInt64(&decoded, 1)
	}
	report()
}
