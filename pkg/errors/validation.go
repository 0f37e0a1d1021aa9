package errors

import (
	"strings"
	"unicode"
)

// ValidateSeriesID validates a series identifier from an untrusted dataset.
// Series IDs key every placed circle back to its source point and end up in
// JSON documents, cache keys, and SVG metadata, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateSeriesID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDataset, "series id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidDataset, "series id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "series id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidDataset, "series id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateLabel validates a point label from an untrusted dataset. Labels
// are rendered into SVG text nodes; the sinks escape markup, but control
// characters are rejected up front because no escaping makes them safe.
// Empty labels are allowed and render as unlabelled bubbles.
func ValidateLabel(label string) error {
	const maxLabelLength = 500
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidDataset, "label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a render output path supplied by a caller.
// It prevents writing through null bytes or control characters and rejects
// directories masquerading as files.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path cannot be a directory")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
