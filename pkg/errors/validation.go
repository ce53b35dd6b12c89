package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// MaxDimension bounds viewport sides accepted from users (CLI flags, HTTP
// query parameters). Textures are width*height*4 bytes, so unbounded
// dimensions would let a single request allocate arbitrary memory.
const MaxDimension = 8192

// ValidateDimension validates one side of a viewport.
// It must be a finite number in (0, MaxDimension].
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidViewport, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidViewport, "%s must be positive, got %g", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidViewport, "%s too large (max %d), got %g", name, MaxDimension, v)
	}
	return nil
}

// ValidateScale validates a raster scale factor.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || scale <= 0 || scale > 8 {
		return New(ErrCodeInvalidInput, "scale must be in (0, 8], got %g", scale)
	}
	return nil
}

// ValidateCanvas validates the raster size of a viewport drawn at scale.
// Each scaled side must stay within MaxDimension.
func ValidateCanvas(width, height, scale float64) error {
	if err := ValidateScale(scale); err != nil {
		return err
	}
	w, h := math.Ceil(width*scale), math.Ceil(height*scale)
	if w > MaxDimension || h > MaxDimension {
		return New(ErrCodeInvalidViewport,
			"canvas %gx%g at scale %g is too large (max %d per side)", width, height, scale, MaxDimension)
	}
	return nil
}

// sceneNameRegex matches scene names (lowercase words joined by dashes).
var sceneNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateSceneName validates the syntax of a scene name before lookup.
// It rejects names that could be used for path traversal when scene names
// become output file names.
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidScene, "scene name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}
	if !sceneNameRegex.MatchString(name) {
		return New(ErrCodeInvalidScene, "invalid scene name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output base path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	return nil
}
