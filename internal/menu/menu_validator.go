package menu

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".json": true,
}

// ValidateMenuFile checks that a menu file or object key names a JSON document.
func ValidateMenuFile(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
