package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
)

// ValidatePath rejects empty paths, null bytes and overlong paths
func ValidatePath(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// common filesystem limit
	if len(p) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateBase checks that base is a relative directory reference that
// stays inside the project root.
func ValidateBase(base string) error {
	if err := ValidatePath(base); err != nil {
		return err
	}
	if isAbs(base) {
		return errors.Newf(errors.ErrInvalidInput, "fixture base must be relative: %s", base).
			WithDetail("base", base)
	}
	if escapes(base) {
		return errors.Newf(errors.ErrInvalidInput, "fixture base escapes the project root: %s", base).
			WithDetail("base", base)
	}
	return nil
}

// Resolve joins a slash separated fixture name onto base. The name must be
// relative and must not climb out of base.
func Resolve(base, name string) (string, error) {
	if err := ValidatePath(name); err != nil {
		return "", err
	}
	if isAbs(name) {
		return "", errors.Newf(errors.ErrInvalidInput, "fixture name must be relative: %s", name).
			WithDetail("name", name)
	}
	if escapes(name) {
		return "", errors.Newf(errors.ErrInvalidInput, "fixture name escapes the base: %s", name).
			WithDetail("name", name)
	}
	return filepath.Join(base, filepath.FromSlash(path.Clean(name))), nil
}

// Ext returns the lowercased extension of a fixture name, including the dot
func Ext(name string) string {
	return strings.ToLower(path.Ext(name))
}

func isAbs(p string) bool {
	return filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`)
}

func escapes(p string) bool {
	cleaned := path.Clean(filepath.ToSlash(p))
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}
