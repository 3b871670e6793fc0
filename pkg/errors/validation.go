package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePresetName validates a preset name for safety and correctness.
// Preset names become file names in the file-backed store, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPreset, "preset name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPreset, "preset name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPreset, "preset name cannot be a hidden file")
	}

	return nil
}

// ValidateOutputPath validates a user-supplied artifact output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}

// groupNameRegex matches valid scene group names. Host applications are
// picky about object names, so only a conservative identifier charset is
// accepted.
var groupNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateGroupName validates a scene group name.
func ValidateGroupName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayout, "group name cannot be empty")
	}

	if !groupNameRegex.MatchString(name) {
		return New(ErrCodeInvalidLayout, "invalid group name: %q", name)
	}

	return nil
}
