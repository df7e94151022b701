package dicomlite

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

/*
===============================================================================
    Configuration
===============================================================================
*/

// UIDRoot is the UUID-derived root used for generated UIDs (see PS3.5 B.2).
const UIDRoot = "2.25."

// Version equals the current (or aimed for) version of the software.
// It is written to ImplementationVersionName(0002,0013) by `DatasetBuilder`.
const Version = "0.3"

// Config represents the application configuration
type Config struct {
	OpenFileLimit int
	LogLevel      string
	/* By enabling `StrictMode`, the decoder will reject inputs which either:
	   - Contain an element with a value length exceeding the remaining file size. For example incomplete Pixel Data.
	   - Become unreadable part way through, even when the required identifiers were read beforehand.
	*/
	StrictMode bool

	// DicomReadBufferSize is the number of bytes buffered by each `ElementStream`
	DicomReadBufferSize int

	// DefaultWindowCenter and DefaultWindowWidth replace a missing or unusable
	// window in `EffectiveWindow`.
	DefaultWindowCenter float64
	DefaultWindowWidth  float64

	// do not access / write `_set`. It is used internally.
	_set bool
}

// intFromEnv retrieves `key` from the OS environment.
// if the key is not found, or cannot be expressed as an integer,
// `found` will be false.
func intFromEnv(key string) (val int, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		found = false
	}
	return
}

func intFromEnvDefault(key string, def int) (val int) {
	val, found := intFromEnv(key)
	if !found {
		val = def
	}
	return
}

func floatFromEnv(key string) (val float64, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		found = false
	}
	return
}

func floatFromEnvDefault(key string, def float64) (val float64) {
	val, found := floatFromEnv(key)
	if !found {
		val = def
	}
	return
}

func strFromEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func strFromEnvDefault(key string, def string) (val string) {
	val, found := strFromEnv(key)
	if !found {
		val = def
	}
	return
}

func boolFromEnv(key string) (val bool, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		found = false
	}
	return
}

func boolFromEnvDefault(key string, def bool) (val bool) {
	val, found := boolFromEnv(key)
	if !found {
		val = def
	}
	return
}

var (
	config   Config
	configMu sync.Mutex
)

// GetConfig returns the application configuration.
// Will set from environment if not already set.
func GetConfig() Config {
	configMu.Lock()
	defer configMu.Unlock()
	if !config._set {
		config.OpenFileLimit = intFromEnvDefault("DICOMLITE_OPENFILELIMIT", 64)
		if config.OpenFileLimit < 1 {
			config.OpenFileLimit = 1
		}
		config.StrictMode = boolFromEnvDefault("DICOMLITE_STRICTMODE", false)
		config.DicomReadBufferSize = intFromEnvDefault("DICOMLITE_BUFFERSIZE", 64*1024)
		config.DefaultWindowCenter = floatFromEnvDefault("DICOMLITE_WINDOWCENTER", DefaultWindowCenter)
		config.DefaultWindowWidth = floatFromEnvDefault("DICOMLITE_WINDOWWIDTH", DefaultWindowWidth)
		if config.DefaultWindowWidth <= 0 {
			config.DefaultWindowWidth = DefaultWindowWidth
		}
		config.LogLevel = strings.ToLower(strFromEnvDefault("DICOMLITE_LOGLEVEL", "info"))
		if err := SetLoggingLevel(config.LogLevel); err != nil {
			Warnf("%v; falling back to \"info\"", err)
			config.LogLevel = "info"
			SetLoggingLevel(config.LogLevel)
		}
		config._set = true
	}
	return config
}

// OverrideConfig overrides the configuration parsed from environment with the one provided
func OverrideConfig(newconfig Config) {
	configMu.Lock()
	defer configMu.Unlock()
	newconfig._set = true // to prevent being reverted with subsequent calls to `GetConfig`
	if newconfig.OpenFileLimit < 1 {
		newconfig.OpenFileLimit = 1
	}
	if newconfig.DicomReadBufferSize < 16 {
		newconfig.DicomReadBufferSize = 64 * 1024
	}
	if newconfig.DefaultWindowWidth <= 0 {
		newconfig.DefaultWindowCenter = DefaultWindowCenter
		newconfig.DefaultWindowWidth = DefaultWindowWidth
	}
	if newconfig.LogLevel != "" {
		if err := SetLoggingLevel(newconfig.LogLevel); err != nil {
			Warnf("%v", err)
		}
	}
	config = newconfig
}

/*
===============================================================================
    Misc
===============================================================================
*/

// ConcurrentlyWalkDir recursively traverses a directory and calls `onFile` for each found file inside a goroutine.
// At most `Config.OpenFileLimit` calls run at once. Walking stops early once `ctx` is done,
// in which case the context error is returned after in-flight calls finish.
func ConcurrentlyWalkDir(ctx context.Context, dirPath string, onFile func(file string)) error {
	guard := make(chan bool, GetConfig().OpenFileLimit) // limits number of concurrently open files
	var files []string
	wg := sync.WaitGroup{}

	err := filepath.Walk(dirPath, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, filePath)
		return nil
	})
	if err != nil {
		return err
	}

	// now goroutine each file
	for _, filePath := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		guard <- true // would block if guard channel is already filled
		go func(path string) {
			defer wg.Done()
			onFile(path)
			<-guard
		}(filePath)
	}
	wg.Wait()
	return ctx.Err()
}

// NewRandInstanceUID generates a random UID below `UIDRoot`
func NewRandInstanceUID() (string, error) {
	max := new(big.Int).Lsh(big.NewInt(1), 128)
	randval, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s", UIDRoot, randval.String()), nil
}

// CopyFile copies the contents of `src` to `dst`. An existing `dst` is overwritten;
// file attributes are not copied.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
