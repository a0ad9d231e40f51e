package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumeric_Plain(t *testing.T) {
	assert.Equal(t, 1234.5, ExtractNumeric("1234.5"))
	assert.Equal(t, -42.0, ExtractNumeric("-42"))
}

func TestExtractNumeric_CurrencySymbols(t *testing.T) {
	assert.Equal(t, 1500.0, ExtractNumeric("$1,500"))
	assert.Equal(t, 2000.5, ExtractNumeric("€2,000.50"))
	assert.Equal(t, 750.0, ExtractNumeric("£750"))
}

func TestExtractNumeric_ThousandsSeparators(t *testing.T) {
	assert.Equal(t, 1234567.89, ExtractNumeric("1,234,567.89"))
}

func TestExtractNumeric_EmbeddedText(t *testing.T) {
	assert.Equal(t, 12.0, ExtractNumeric("approx 12 per year"))
}

func TestExtractNumeric_NullArtifacts(t *testing.T) {
	for _, s := range []string{"", "  ", "nan", "NaN", "null", "None", "N/A"} {
		assert.Equal(t, 0.0, ExtractNumeric(s), "input %q", s)
	}
}

func TestExtractNumeric_Garbage(t *testing.T) {
	assert.Equal(t, 0.0, ExtractNumeric("no numbers here"))
	assert.Equal(t, 0.0, ExtractNumeric("---"))
}
