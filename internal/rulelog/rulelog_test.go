package rulelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(action Action, category, keyword string) Entry {
	return Entry{
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Action:    action,
		Category:  category,
		Keyword:   keyword,
	}
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	err := Append(root, []Entry{
		entry(ActionCreateCategory, "Food", ""),
		entry(ActionLearn, "Food", "starbucks"),
	})
	require.NoError(t, err)

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionCreateCategory, entries[0].Action)
	assert.Equal(t, "Food", entries[0].Category)
	assert.Equal(t, ActionLearn, entries[1].Action)
	assert.Equal(t, "starbucks", entries[1].Keyword)
}

func TestAppend_IsAppendOnly(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, Append(root, []Entry{entry(ActionLearn, "Food", "starbucks")}))
	require.NoError(t, Append(root, []Entry{entry(ActionLearn, "Transport", "uber")}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Food", entries[0].Category)
	assert.Equal(t, "Transport", entries[1].Category)

	// Header appears exactly once.
	data, err := os.ReadFile(filepath.Join(root, "logs", "rule-changes.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_NoLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"not-a-time", "learn", "Food", "starbucks"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"a", "b"})
	require.Error(t, err)
}
