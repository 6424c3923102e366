package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/evidenceworks/go-exif-harvest/internal/config"
	"github.com/evidenceworks/go-exif-harvest/internal/exiftool"
	"github.com/evidenceworks/go-exif-harvest/internal/logger"
	"github.com/evidenceworks/go-exif-harvest/internal/storage"
	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// Precondition failures, each its own kind so callers can tell them apart
var (
	ErrRootNotFound     = errors.New("root directory does not exist")
	ErrOutputExists     = errors.New("output file already exists")
	ErrExifToolNotFound = errors.New("exiftool executable not found on PATH")
)

// Result reports what a completed dump wrote
type Result struct {
	OutputFile string
	Command    []string
	RowCount   int64
	SizeBytes  int64
	SHA3Hash   string
}

// Run validates the dump preconditions, invokes ExifTool through the given
// runner, and streams its CSV output straight into the destination file. The
// checks run in a fixed order: root directory, destination parent, executable
// lookup, then the overwrite conflict. On a child-process failure whatever
// was already flushed stays on disk.
func Run(cfg config.DumpConfig, runner exiftool.Runner) (*Result, error) {
	info, err := os.Stat(cfg.RootDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, cfg.RootDir)
	}

	output, err := filepath.Abs(cfg.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if _, err := runner.LookPath(cfg.ExifTool); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrExifToolNotFound, cfg.ExifTool)
	}

	if _, err := os.Stat(output); err == nil {
		if !cfg.Force {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, output)
		}
		if err := os.Remove(output); err != nil {
			return nil, fmt.Errorf("failed to remove existing output: %w", err)
		}
	}

	extensions, err := exiftool.NormalizeExtensions(cfg.Extensions)
	if err != nil {
		return nil, err
	}
	command, err := exiftool.BuildCommand(cfg.RootDir, extensions, exiftool.Options{
		RequestAll:       cfg.RequestAll,
		LargeFileSupport: cfg.LargeFileSupport,
		Recursive:        cfg.Recursive,
		Executable:       cfg.ExifTool,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Running ExifTool... this can take a while on large trees.")
	logger.Infof("Command: %s", strings.Join(command, " "))

	file, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	hash := sha3.New256()
	counter := &csvCounter{}
	runErr := runner.Run(command, io.MultiWriter(file, hash, counter))
	closeErr := file.Close()
	if runErr != nil {
		return nil, fmt.Errorf("exiftool failed: %w", runErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close output file: %w", closeErr)
	}

	result := &Result{
		OutputFile: output,
		Command:    command,
		RowCount:   counter.DataRows(),
		SizeBytes:  counter.bytes,
		SHA3Hash:   fmt.Sprintf("%x", hash.Sum(nil)),
	}

	if cfg.WriteManifest {
		manifestPath := output + ".manifest.json"
		manifest := types.DumpManifest{
			GeneratedAt:      time.Now(),
			RootDir:          cfg.RootDir,
			OutputFile:       output,
			Command:          command,
			Extensions:       extensions,
			RequestAll:       cfg.RequestAll,
			LargeFileSupport: cfg.LargeFileSupport,
			Recursive:        cfg.Recursive,
			RowCount:         result.RowCount,
			FileSizeBytes:    result.SizeBytes,
			SHA3Hash:         result.SHA3Hash,
		}
		if err := storage.WriteManifest(manifestPath, manifest); err != nil {
			return nil, err
		}
		logger.Infof("Wrote dump manifest to: %s", manifestPath)
	}

	return result, nil
}

// csvCounter tracks bytes and newline-terminated lines streamed to disk
type csvCounter struct {
	bytes int64
	lines int64
}

func (c *csvCounter) Write(p []byte) (int, error) {
	c.bytes += int64(len(p))
	c.lines += int64(bytes.Count(p, []byte{'\n'}))
	return len(p), nil
}

// DataRows is the line count excluding the CSV header
func (c *csvCounter) DataRows() int64 {
	if c.lines == 0 {
		return 0
	}
	return c.lines - 1
}
