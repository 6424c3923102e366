package exiftool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoExtensions is returned when normalization leaves nothing to filter on
var ErrNoExtensions = errors.New("at least one file extension must be provided")

// Options control how the ExifTool invocation is assembled
type Options struct {
	RequestAll       int
	LargeFileSupport bool
	Recursive        bool
	Executable       string
}

// NormalizeExtensions lowercases extensions, trims whitespace, strips one
// leading dot, and drops empty entries. Duplicates are kept as given.
func NormalizeExtensions(extensions []string) ([]string, error) {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		normalized = append(normalized, ext)
	}
	if len(normalized) == 0 {
		return nil, ErrNoExtensions
	}
	return normalized, nil
}

// BuildCommand assembles the full ExifTool argument vector for a metadata
// dump: completeness level, optional large-file support, grouped tag names in
// CSV form, optional recursion, one -ext filter per extension, and the root
// directory last. Pure construction, no side effects.
func BuildCommand(rootDir string, extensions []string, opts Options) ([]string, error) {
	normalized, err := NormalizeExtensions(extensions)
	if err != nil {
		return nil, err
	}

	cmd := []string{opts.Executable, "-api", fmt.Sprintf("RequestAll=%d", opts.RequestAll)}
	if opts.LargeFileSupport {
		cmd = append(cmd, "-api", "largefilesupport=1")
	}
	cmd = append(cmd, "-G1", "-csv")
	if opts.Recursive {
		cmd = append(cmd, "-r")
	}
	for _, ext := range normalized {
		cmd = append(cmd, "-ext", ext)
	}
	cmd = append(cmd, rootDir)

	return cmd, nil
}
