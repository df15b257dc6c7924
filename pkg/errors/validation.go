package errors

import (
	"strings"
	"unicode"
)

// ValidateExporterName checks that an exporter name from a configuration
// file is a plain identifier: ASCII letters, digits, '-' and '_'.
func ValidateExporterName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "exporter name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "exporter name too long (max 64 characters)")
	}
	for _, r := range name {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return New(ErrCodeInvalidConfig, "exporter name %q contains invalid character %q", name, r)
		}
	}
	return nil
}

// ValidateFilename checks that an export filename is a simple basename:
// no path separators, no traversal and no control characters.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if len(filename) > 255 {
		return New(ErrCodeInvalidPath, "filename too long (max 255 characters)")
	}
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}
	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidPath, "filename cannot be %q", filename)
	}
	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid control characters")
		}
	}
	return nil
}
