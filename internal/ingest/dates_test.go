package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_ISO(t *testing.T) {
	want := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseDate("2026-12-31"))
}

func TestParseDate_USSlash(t *testing.T) {
	want := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseDate("12/31/2026"))
	assert.Equal(t, want, ParseDate("2026/12/31"))
}

func TestParseDate_Worded(t *testing.T) {
	want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseDate("Jan 2, 2026"))
	assert.Equal(t, want, ParseDate("January 2, 2026"))
	assert.Equal(t, want, ParseDate("2-Jan-2026"))
}

func TestParseDate_Sentinels(t *testing.T) {
	for _, s := range []string{"", "nan", "None", "N/A", "Not specified"} {
		assert.True(t, ParseDate(s).IsZero(), "input %q", s)
	}
}

func TestParseDate_Garbage(t *testing.T) {
	assert.True(t, ParseDate("next quarter").IsZero())
}
