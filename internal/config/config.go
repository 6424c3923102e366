package config

// Defaults for the dump pipeline
const (
	DefaultOutputFile = "metadata_master.csv"
	DefaultRequestAll = 3
	DefaultExifTool   = "exiftool"
)

// MediaType groups the file extensions that are surveyed together
type MediaType struct {
	Name       string
	Extensions []string
}

// Media types covered by the default dump
var knownMediaTypes = []MediaType{
	{
		Name:       "document",
		Extensions: []string{"pdf"},
	},
	{
		Name:       "image",
		Extensions: []string{"jpg", "jpeg", "png", "tif", "tiff", "heic"},
	},
	{
		Name:       "video",
		Extensions: []string{"mp4", "mov", "avi", "mkv"},
	},
}

// DefaultExtensions returns the extension list covering all known media types.
// Callers get a fresh slice so defaults are never mutated in place.
func DefaultExtensions() []string {
	var extensions []string
	for _, mt := range knownMediaTypes {
		extensions = append(extensions, mt.Extensions...)
	}
	return extensions
}

// DumpConfig holds the settings for one ExifTool metadata dump
type DumpConfig struct {
	// Main settings
	RootDir    string
	OutputFile string
	Extensions []string

	// ExifTool settings
	RequestAll       int
	LargeFileSupport bool
	Recursive        bool
	ExifTool         string

	// Output handling
	Force         bool
	WriteManifest bool
}

// SummaryConfig holds the settings for one summarize run
type SummaryConfig struct {
	JSONPath    string
	SummaryPath string // optional CSV destination for the computed summary
	ComparePath string // optional summary CSV from a previous run
	Head        int    // preview row count, 0 disables
}
