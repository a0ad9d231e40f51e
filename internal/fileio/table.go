package fileio

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadTable dispatches on file extension to the matching reader.
// Supported formats: .csv, .xlsx.
func ReadTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("fileio: unsupported file format %q", filepath.Ext(path))
	}
}

// SourceTag derives a source identifier from a file path: the base name
// without extension, lowercased, spaces collapsed to underscores.
func SourceTag(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(strings.TrimSpace(base))
	return strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == ' ' || r == '-'
	}), "_")
}
