package util

import (
	"path/filepath"
	"strings"
)

// ExtensionOrDefault returns the lowercased extension of name including the
// leading dot, or def when name carries no usable extension.
func ExtensionOrDefault(name, def string) string {
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(name)))
	if ext == "" || ext == "." {
		return def
	}
	return ext
}
