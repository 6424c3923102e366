package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

func TestSummaryCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	summaries := []types.ColumnSummary{
		{Tag: "IFD0:Make", NonNullCount: 12, UniqueValues: 3},
		{Tag: "QuickTime:Duration", NonNullCount: 4, UniqueValues: 4},
	}

	require.NoError(t, WriteSummaryCSV(path, summaries))

	loaded, err := ReadSummaryCSV(path)
	require.NoError(t, err)
	assert.Equal(t, summaries, loaded)
}

func TestWriteSummaryCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummaryCSV(path, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Tag,NonNullCount,UniqueValues\n", string(content))
}

func TestReadSummaryCSVRejectsUnknownHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, os.WriteFile(path, []byte("Tag,Count\none,1\n"), 0644))

	_, err := ReadSummaryCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected summary header")
}

func TestReadSummaryCSVRejectsBadCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, os.WriteFile(path, []byte("Tag,NonNullCount,UniqueValues\nx,five,3\n"), 0644))

	_, err := ReadSummaryCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "NonNullCount")
}

func TestReadSummaryCSVRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ReadSummaryCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadSummaryCSVMissingFile(t *testing.T) {
	_, err := ReadSummaryCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
