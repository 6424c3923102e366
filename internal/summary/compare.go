package summary

import (
	"sort"

	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// Compare full-outer-joins two summaries on tag name and keeps the tags whose
// statistics disagree. A tag present on only one side always counts as a
// difference; the missing side's statistics come back nil. The result is
// sorted ascending by tag name, empty when no drift was detected.
func Compare(current, existing []types.ColumnSummary) []types.SummaryDiff {
	currentByTag := make(map[string]types.ColumnSummary, len(current))
	for _, s := range current {
		currentByTag[s.Tag] = s
	}
	existingByTag := make(map[string]types.ColumnSummary, len(existing))
	for _, s := range existing {
		existingByTag[s.Tag] = s
	}

	tags := make(map[string]bool, len(currentByTag)+len(existingByTag))
	for tag := range currentByTag {
		tags[tag] = true
	}
	for tag := range existingByTag {
		tags[tag] = true
	}

	var diffs []types.SummaryDiff
	for tag := range tags {
		diff := types.SummaryDiff{Tag: tag}
		if s, ok := existingByTag[tag]; ok {
			diff.OldNonNullCount = intPtr(s.NonNullCount)
			diff.OldUniqueValues = intPtr(s.UniqueValues)
		}
		if s, ok := currentByTag[tag]; ok {
			diff.NewNonNullCount = intPtr(s.NonNullCount)
			diff.NewUniqueValues = intPtr(s.UniqueValues)
		}
		if statsEqual(diff.OldNonNullCount, diff.NewNonNullCount) &&
			statsEqual(diff.OldUniqueValues, diff.NewUniqueValues) {
			continue
		}
		diffs = append(diffs, diff)
	}

	sort.Slice(diffs, func(i, j int) bool {
		return diffs[i].Tag < diffs[j].Tag
	})
	return diffs
}

func intPtr(v int) *int {
	return &v
}

// statsEqual treats a missing statistic as unequal to any present one
func statsEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
