package asciiart

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/wbrown/asciiart/imageutil"
)

const (
	// DefaultTileWidth and DefaultTileHeight define the default character
	// cell size in pixels.
	DefaultTileWidth  = 6
	DefaultTileHeight = 12
)

// Renderer converts images to text. It holds the configuration of a
// conversion and the glyph catalog built from it, so repeated renders with
// the same font, tile size and charset only rasterize the font once.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Configuration options
	FontPath   string
	TileWidth  int
	TileHeight int
	Charset    []rune
	Columns    int // resize the input to this many tiles wide; 0 keeps it
	Workers    int // goroutines for rendering and matching; 0 = GOMAXPROCS
	Logger     *log.Logger

	// Font and catalog state (private)
	rasterizer     Rasterizer
	rasterizerPath string
	catalog        *Catalog
	catalogKey     string
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: FontPath=DefaultFontPath(), 6x12 tiles, printable ASCII
// charset, no resizing, GOMAXPROCS workers, logging discarded.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		FontPath:   DefaultFontPath(),
		TileWidth:  DefaultTileWidth,
		TileHeight: DefaultTileHeight,
		Charset:    DefaultCharset(),
		Logger:     log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithFont sets the font file, or GoMono for the embedded font.
func WithFont(path string) RendererOption {
	return func(r *Renderer) {
		r.FontPath = path
	}
}

// WithRasterizer uses an already loaded font instead of FontPath.
func WithRasterizer(rasterizer Rasterizer) RendererOption {
	return func(r *Renderer) {
		r.rasterizer = rasterizer
		r.FontPath = rasterizer.Name()
		r.rasterizerPath = r.FontPath
	}
}

// WithTileSize sets the tile and glyph cell size in pixels.
func WithTileSize(width, height int) RendererOption {
	return func(r *Renderer) {
		r.TileWidth = width
		r.TileHeight = height
	}
}

// WithCharset sets the characters matched against.
func WithCharset(charset []rune) RendererOption {
	return func(r *Renderer) {
		r.Charset = charset
	}
}

// WithColumns resizes inputs so the output is the given number of
// characters wide, preserving aspect ratio. Zero disables resizing.
func WithColumns(columns int) RendererOption {
	return func(r *Renderer) {
		r.Columns = columns
	}
}

// WithWorkers bounds the goroutines used for glyph rendering and matching.
func WithWorkers(workers int) RendererOption {
	return func(r *Renderer) {
		r.Workers = workers
	}
}

// WithLogger sets the logger progress is reported to.
func WithLogger(logger *log.Logger) RendererOption {
	return func(r *Renderer) {
		r.Logger = logger
	}
}

// Result is the outcome of one conversion.
type Result struct {
	Lines   []string
	Grid    *TileGrid
	Catalog *Catalog
	Indices []int
}

// String returns the text with every line newline-terminated.
func (res *Result) String() string {
	if len(res.Lines) == 0 {
		return ""
	}
	return strings.Join(res.Lines, "\n") + "\n"
}

// Image renders the matched glyphs as a grayscale preview image.
func (res *Result) Image() (*imageutil.GrayImage, error) {
	return RenderImage(res.Grid, res.Catalog, res.Indices)
}

// RenderFile loads the image at path and converts it. A path that does not
// name an existing file fails with ErrInputFileNotFound before any font or
// image work is done.
func (r *Renderer) RenderFile(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputFileNotFound, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputFileNotFound, path)
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return r.Render(img)
}

// Render converts an image to text: grayscale, optional resize, tiling,
// matching and line assembly.
func (r *Renderer) Render(img image.Image) (*Result, error) {
	if r.TileWidth <= 0 || r.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, r.TileWidth, r.TileHeight)
	}

	catalog, err := r.Catalog()
	if err != nil {
		return nil, err
	}

	gray := imageutil.ToGrayscale(img)
	r.logf("image: %dx%d", gray.Width(), gray.Height())
	if r.Columns > 0 {
		gray = imageutil.ResizeGrayToWidth(gray, r.Columns*r.TileWidth, imageutil.InterpolationArea)
		r.logf("resized to %dx%d for %d columns", gray.Width(), gray.Height(), r.Columns)
	}

	grid, err := NewTileGrid(gray, r.TileWidth, r.TileHeight)
	if err != nil {
		return nil, err
	}
	r.logf("grid: %dx%d tiles of %dx%d", grid.Cols, grid.Rows, grid.TileWidth, grid.TileHeight)

	begin := time.Now()
	indices, err := Match(grid.Matrix, catalog.Matrix, r.Workers)
	if err != nil {
		return nil, err
	}
	r.logf("matched %d tiles against %d glyphs in %v", grid.Len(), catalog.Len(), time.Since(begin))

	lines, err := Lines(grid, catalog, indices)
	if err != nil {
		return nil, err
	}

	return &Result{
		Lines:   lines,
		Grid:    grid,
		Catalog: catalog,
		Indices: indices,
	}, nil
}

// Catalog returns the glyph catalog for the current configuration,
// loading the font and rendering the charset on first use or after the
// configuration changed.
func (r *Renderer) Catalog() (*Catalog, error) {
	key := fmt.Sprintf("%s|%dx%d|%s", r.FontPath, r.TileWidth, r.TileHeight, string(r.Charset))
	if r.catalog != nil && r.catalogKey == key {
		return r.catalog, nil
	}

	if r.rasterizer == nil || r.rasterizerPath != r.FontPath {
		rasterizer, err := LoadFont(r.FontPath)
		if err != nil {
			return nil, err
		}
		r.rasterizer = rasterizer
		r.rasterizerPath = r.FontPath
	}

	begin := time.Now()
	catalog, err := buildCatalog(r.rasterizer, r.TileWidth, r.TileHeight, r.Charset, r.Workers)
	if err != nil {
		return nil, err
	}
	r.logf("catalog: %d glyphs from %s at %dx%d in %v",
		catalog.Len(), r.rasterizer.Name(), r.TileWidth, r.TileHeight, time.Since(begin))

	r.catalog = catalog
	r.catalogKey = key
	return catalog, nil
}

func (r *Renderer) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
