package asciiart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// GoMono names the embedded Go Mono font, usable anywhere a font path
	// is accepted.
	GoMono = "gomono"

	// bilevelThreshold is the coverage at which an anti-aliased pixel
	// becomes foreground. Coverage below it becomes background.
	bilevelThreshold = 128

	fontDPI = 72
)

// Rasterizer renders single characters into grayscale glyph cells.
//
// RenderGlyph returns a cellWidth x cellHeight image anchored at the
// origin with a black (0) background and the character drawn at full
// intensity (255). Rendering is bilevel: no pixel holds an intermediate
// value. The font's pixel size is cellHeight and the glyph is left-aligned
// with the top of the font's ascender on the first row. Implementations
// must be safe for concurrent use.
type Rasterizer interface {
	RenderGlyph(r rune, cellWidth, cellHeight int) (*image.Gray, error)
	Name() string
}

// DefaultFontPath returns the monospace system font used when no font is
// configured.
func DefaultFontPath() string {
	switch runtime.GOOS {
	case "windows":
		return "C:/Windows/Fonts/consola.ttf"
	case "darwin":
		return "/System/Library/Fonts/Supplemental/Courier New.ttf"
	default:
		return "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf"
	}
}

// LoadFont loads a TrueType or OpenType font from path. The name GoMono
// selects the embedded Go Mono font instead of reading a file.
func LoadFont(path string) (Rasterizer, error) {
	if path == GoMono {
		return ParseFont(GoMono, gomono.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return ParseFont(filepath.Base(path), data)
}

// ParseFont parses font data. TrueType outlines are rasterized with
// freetype; fonts freetype rejects, such as CFF-flavoured OpenType, fall
// back to the x/image OpenType rasterizer.
func ParseFont(name string, data []byte) (Rasterizer, error) {
	ttf, err := freetype.ParseFont(data)
	if err == nil {
		return &truetypeRasterizer{font: ttf, name: name}, nil
	}

	otf, otErr := opentype.Parse(data)
	if otErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, name, err)
	}
	return &opentypeRasterizer{font: otf, name: name}, nil
}

// truetypeRasterizer renders glyphs with a freetype context. A fresh
// context and face are created per glyph; the parsed font is only read.
type truetypeRasterizer struct {
	font *truetype.Font
	name string
}

func (tr *truetypeRasterizer) Name() string {
	return tr.name
}

func (tr *truetypeRasterizer) RenderGlyph(r rune, cellWidth, cellHeight int) (*image.Gray, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: invalid cell size %dx%d", ErrFontLoad, cellWidth, cellHeight)
	}
	size := float64(cellHeight)

	face := truetype.NewFace(tr.font, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	// Baseline sits one ascent below the cell top
	ascent := face.Metrics().Ascent.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, cellWidth, cellHeight))
	ctx := freetype.NewContext()
	ctx.SetDPI(fontDPI)
	ctx.SetFont(tr.font)
	ctx.SetFontSize(size)
	ctx.SetClip(mask.Bounds())
	ctx.SetDst(mask)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, ascent)); err != nil {
		return nil, fmt.Errorf("%w: %s: rendering %q: %w", ErrFontLoad, tr.name, r, err)
	}
	return bilevel(mask), nil
}

// opentypeRasterizer renders glyphs through an x/image OpenType face.
// Faces are not safe for concurrent use, so one is opened per glyph.
type opentypeRasterizer struct {
	font *opentype.Font
	name string
}

func (ot *opentypeRasterizer) Name() string {
	return ot.name
}

func (ot *opentypeRasterizer) RenderGlyph(r rune, cellWidth, cellHeight int) (*image.Gray, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: invalid cell size %dx%d", ErrFontLoad, cellWidth, cellHeight)
	}

	face, err := opentype.NewFace(ot.font, &opentype.FaceOptions{
		Size:    float64(cellHeight),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, ot.name, err)
	}
	defer face.Close()

	mask := image.NewAlpha(image.Rect(0, 0, cellWidth, cellHeight))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(string(r))
	return bilevel(mask), nil
}

// bilevel quantizes an anti-aliased coverage mask to a 0/255 grayscale
// image.
func bilevel(mask *image.Alpha) *image.Gray {
	b := mask.Bounds()
	gray := image.NewGray(b)
	for i, a := range mask.Pix {
		if a >= bilevelThreshold {
			gray.Pix[i] = 255
		}
	}
	return gray
}
