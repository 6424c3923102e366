package types

import (
	"time"
)

// ColumnSummary holds the derived statistics for one tag column: how many
// records carry the tag and how many distinct values were observed.
type ColumnSummary struct {
	Tag          string
	NonNullCount int
	UniqueValues int
}

// SummaryDiff is one tag whose statistics disagree between two summaries.
// A nil pointer means the tag was absent on that side.
type SummaryDiff struct {
	Tag             string
	OldNonNullCount *int
	OldUniqueValues *int
	NewNonNullCount *int
	NewUniqueValues *int
}

// DumpManifest describes a completed metadata dump
type DumpManifest struct {
	GeneratedAt      time.Time `json:"generated_at"`
	RootDir          string    `json:"root_dir"`
	OutputFile       string    `json:"output_file"`
	Command          []string  `json:"command"`
	Extensions       []string  `json:"extensions"`
	RequestAll       int       `json:"request_all"`
	LargeFileSupport bool      `json:"largefile_support"`
	Recursive        bool      `json:"recursive"`
	RowCount         int64     `json:"row_count"`
	FileSizeBytes    int64     `json:"file_size_bytes"`
	SHA3Hash         string    `json:"sha3_hash"`
}
