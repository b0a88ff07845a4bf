package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTag(t *testing.T) {
	bookmark := &Bookmark{Tags: []string{"reading", TagProcessed}}

	assert.True(t, bookmark.HasTag("reading"))
	assert.True(t, bookmark.HasTag(TagProcessed))
	assert.False(t, bookmark.HasTag("missing"))
	assert.False(t, (&Bookmark{}).HasTag("anything"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&BatchTask{Status: StatusPending}).IsTerminal())
	assert.False(t, (&BatchTask{Status: StatusInProgress}).IsTerminal())
	assert.True(t, (&BatchTask{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&BatchTask{Status: StatusFailed}).IsTerminal())
}

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name     string
		tagSets  [][]string
		expected []string
	}{
		{
			name:     "DeduplicatesAcrossSets",
			tagSets:  [][]string{{"go", "http"}, {"http", "web"}},
			expected: []string{"go", "http", "web"},
		},
		{
			name:     "SortsResult",
			tagSets:  [][]string{{"zebra", "alpha"}},
			expected: []string{"alpha", "zebra"},
		},
		{
			name:     "DropsEmptyTags",
			tagSets:  [][]string{{"", "go", ""}},
			expected: []string{"go"},
		},
		{
			name:     "MarkersSortBeforeWords",
			tagSets:  [][]string{{"existing"}, {TagProcessed, TagVideoSummarized}},
			expected: []string{TagProcessed, TagVideoSummarized, "existing"},
		},
		{
			name:     "NoInput",
			tagSets:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeTags(tt.tagSets...))
		})
	}
}
