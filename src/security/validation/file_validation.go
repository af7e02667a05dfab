package validation

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/username/vendadash/backend/src/logger"
)

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types for CSV uploads.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true, // older Excel often declares CSV this way
	"text/plain":               true,
	"application/octet-stream": true,
}

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	if !AllowedClientContentTypes[strings.ToLower(contentType)] {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type '%s' is not allowed for CSV upload", contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes sniffs the actual file content signature.
// It returns the detected content type and an error if the content is not
// consistent with a text-based CSV file.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	// Reset the read pointer so the parser sees the full file.
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	detected := http.DetectContentType(buffer[:n])
	detected = strings.ToLower(strings.Split(detected, ";")[0])

	allowedDetectedTypes := map[string]bool{
		"text/plain":               true,
		"text/csv":                 true,
		"application/csv":          true,
		"application/octet-stream": true, // generic fallback; strict parsing happens downstream
	}
	if !allowedDetectedTypes[detected] {
		logger.L.Warn("Disallowed detected file content type (magic bytes)", "detectedContentType", detected)
		return detected, fmt.Errorf("detected file content type '%s' is not consistent with a CSV file", detected)
	}

	logger.L.Debug("File content type (magic bytes) validated", "detectedContentType", detected)
	return detected, nil
}
