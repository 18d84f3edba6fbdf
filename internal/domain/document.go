package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CorrectedDocument is a rewritten document ready to be handed back to the
// caller, in the same container format it arrived in.
type CorrectedDocument struct {
	Data        []byte
	Format      Format
	ContentType string
	Filename    string
}

// NewCorrectedDocument wraps data with the media type and suggested
// filename of format.
func NewCorrectedDocument(format Format, data []byte) *CorrectedDocument {
	return &CorrectedDocument{
		Data:        data,
		Format:      format,
		ContentType: format.ContentType(),
		Filename:    format.CorrectedFilename(),
	}
}

// FormatFromFilename resolves the container format from a file name's
// extension (case-insensitive). Unknown extensions yield ErrUnsupportedFormat.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(strings.TrimSpace(name))), ".")
	f := Format(ext)
	if !f.IsValid() {
		if ext == "" {
			return "", fmt.Errorf("%w: %q has no extension, upload a .docx or .txt file", ErrUnsupportedFormat, name)
		}
		return "", fmt.Errorf("%w: .%s, upload a .docx or .txt file", ErrUnsupportedFormat, ext)
	}
	return f, nil
}
