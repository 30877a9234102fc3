package todo

import (
	"path/filepath"
	"strings"
)

// FileExtension is the suffix every todo list file carries.
const FileExtension = ".json"

// ValidateFilename checks that name is a bare, visible file name ending in
// FileExtension so it cannot escape the todo directory.
func ValidateFilename(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidFilename
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidFilename
	}
	if strings.HasPrefix(name, ".") || strings.ContainsRune(name, 0) {
		return ErrInvalidFilename
	}
	if !strings.HasSuffix(name, FileExtension) {
		return ErrInvalidFilename
	}
	return nil
}
