package asciiart

import "errors"

// Errors returned by the catalog, tiler, matcher and renderer. Callers
// test for them with errors.Is; the returned errors wrap these with
// detail about the failing input.
var (
	// ErrFontLoad reports a font that cannot be read or parsed, or a glyph
	// cell size that cannot be rendered.
	ErrFontLoad = errors.New("font load failed")

	// ErrInputFileNotFound reports a missing input image.
	ErrInputFileNotFound = errors.New("input file not found")

	// ErrInvalidTileSize reports a non-positive tile width or height.
	ErrInvalidTileSize = errors.New("invalid tile size")

	// ErrDimensionMismatch reports glyph and tile vectors of different
	// lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyCatalog reports a match attempted against zero glyphs.
	ErrEmptyCatalog = errors.New("empty glyph catalog")
)
