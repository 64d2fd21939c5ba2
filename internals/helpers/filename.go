package helper

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename strips everything but letters, digits, dot, dash, underscore.
func SanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

// GenerateObjectName builds a collision-resistant storage key that keeps the
// original extension: <unix-millis>-<short-uuid><ext>.
func GenerateObjectName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	ext = SanitizeFilename(ext)
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
