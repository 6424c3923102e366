package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// WriteManifest writes the dump manifest next to the metadata CSV so a run
// can be audited later: what was scanned, with which command, and the digest
// of the bytes that landed on disk.
func WriteManifest(path string, manifest types.DumpManifest) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	return encoder.Encode(manifest)
}
