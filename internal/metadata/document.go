package metadata

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/xi2/xz"

	"github.com/evidenceworks/go-exif-harvest/internal/logger"
)

// ErrInvalidDocument is returned when the top-level JSON value is not an
// object or an array of objects.
var ErrInvalidDocument = errors.New("invalid metadata document")

// Record is one file's metadata as decoded from ExifTool JSON output
type Record map[string]interface{}

// Magic numbers for the compression formats metadata dumps travel in
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{'B', 'Z', 'h'}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// LoadDocuments reads ExifTool JSON output from path and normalizes it to a
// record list: a top-level array is returned element by element, a single
// object is wrapped into a one-element list, and anything else fails with the
// actual JSON type named. Compressed dumps (gzip, bzip2, xz, zstd) are
// detected by content and decompressed transparently.
func LoadDocuments(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	header, err := buffered.Peek(len(xzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var reader io.Reader = buffered

	// Handle different compression formats
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		logger.Debugf("Detected gzip-compressed input: %s", path)
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip input %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	case bytes.HasPrefix(header, bzip2Magic):
		logger.Debugf("Detected bzip2-compressed input: %s", path)
		reader = bzip2.NewReader(buffered)
	case bytes.HasPrefix(header, xzMagic):
		logger.Debugf("Detected xz-compressed input: %s", path)
		xzReader, err := xz.NewReader(buffered, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to read xz input %s: %w", path, err)
		}
		reader = xzReader
	case bytes.HasPrefix(header, zstdMagic):
		logger.Debugf("Detected zstd-compressed input: %s", path)
		zstdReader, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("failed to read zstd input %s: %w", path, err)
		}
		defer zstdReader.Close()
		reader = zstdReader
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var payload interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON in %s: %w", path, err)
	}

	switch doc := payload.(type) {
	case []interface{}:
		records := make([]Record, 0, len(doc))
		for i, element := range doc {
			object, ok := element.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: element %d of %s is a %s, not an object",
					ErrInvalidDocument, i, path, jsonTypeName(element))
			}
			records = append(records, Record(object))
		}
		return records, nil
	case map[string]interface{}:
		return []Record{Record(doc)}, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or array of objects in %s, got %s",
			ErrInvalidDocument, path, jsonTypeName(payload))
	}
}

// jsonTypeName names the JSON type of a decoded value for error messages
func jsonTypeName(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
