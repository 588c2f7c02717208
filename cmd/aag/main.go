// Command aag renders an image as monospace text, choosing for every tile
// of the image the character whose glyph is closest pixel for pixel.
//
// Usage:
//
//	aag [flags] <image>
//
// The text is written to stdout, one line per row of tiles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wbrown/asciiart"
	"github.com/wbrown/asciiart/imageutil"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"
)

// tileSize is a flag.Value holding a width and a height. It accepts
// "6x12", "6,12" or "6 12".
type tileSize struct {
	width, height int
}

func (ts *tileSize) String() string {
	return fmt.Sprintf("%dx%d", ts.width, ts.height)
}

func (ts *tileSize) Set(s string) error {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == ',' || r == ' '
	})
	if len(parts) != 2 {
		return fmt.Errorf("want width and height, got %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("bad width: %w", err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("bad height: %w", err)
	}
	ts.width, ts.height = w, h
	return nil
}

// joinTileSizeArgs rewrites "-tile-size W H" into "-tile-size W,H" so the
// two-integer form parses as a single flag value.
func joinTileSizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		name := strings.TrimLeft(a, "-")
		if (name == "tile-size" || name == "tile_size") && strings.HasPrefix(a, "-") && i+2 < len(args) {
			if _, err := strconv.Atoi(args[i+1]); err == nil {
				if _, err := strconv.Atoi(args[i+2]); err == nil {
					out = append(out, "-tile-size", args[i+1]+","+args[i+2])
					i += 2
					continue
				}
			}
		}
		out = append(out, a)
	}
	return out
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: aag [flags] <image>")
		fs.PrintDefaults()
	}

	size := tileSize{asciiart.DefaultTileWidth, asciiart.DefaultTileHeight}
	fontPath := fs.String("font", asciiart.DefaultFontPath(),
		"Path to the TrueType/OpenType font, or \""+asciiart.GoMono+"\" for the embedded font")
	fs.Var(&size, "tile-size", "Tile `width and height` in pixels, e.g. 6x12")
	columns := fs.Int("columns", 0,
		"Resize the image to this many characters wide (0 keeps the image size)")
	fit := fs.Bool("fit", false,
		"Resize the image to the terminal width when stdout is a terminal")
	charset := fs.String("charset", "",
		"Characters to match against (default printable ASCII)")
	workers := fs.Int("workers", 0,
		"Goroutines for glyph rendering and matching (0 = GOMAXPROCS)")
	pngPath := fs.String("png", "",
		"Also write a preview image of the matched glyphs to this path")
	listCatalog := fs.Bool("catalog", false,
		"Print the density-ordered glyph catalog and exit")
	verbose := fs.Bool("v", false, "Log progress to stderr")

	// Flags may follow the image path
	if err := fs.Parse(joinTileSizeArgs(args)); err != nil {
		return 2
	}
	var input string
	if fs.NArg() > 0 {
		input = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return 2
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "aag: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return 2
		}
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "aag: ", log.Ltime)
	}

	opts := []asciiart.RendererOption{
		asciiart.WithFont(*fontPath),
		asciiart.WithTileSize(size.width, size.height),
		asciiart.WithWorkers(*workers),
		asciiart.WithLogger(logger),
	}
	if *charset != "" {
		opts = append(opts, asciiart.WithCharset(asciiart.ParseCharset(*charset)))
	}
	if *columns > 0 {
		opts = append(opts, asciiart.WithColumns(*columns))
	} else if *fit {
		if w, ok := terminalWidth(); ok {
			opts = append(opts, asciiart.WithColumns(w))
		}
	}
	renderer := asciiart.NewRenderer(opts...)

	if *listCatalog {
		if err := printCatalog(stdout, renderer); err != nil {
			fmt.Fprintf(stderr, "aag: %v\n", err)
			return 1
		}
		return 0
	}

	if input == "" {
		fs.Usage()
		return 2
	}

	res, err := renderer.RenderFile(input)
	if err != nil {
		if errors.Is(err, asciiart.ErrInputFileNotFound) {
			fmt.Fprintf(stderr, "Error: Input image '%s' does not exist.\n", input)
		} else {
			fmt.Fprintf(stderr, "aag: %v\n", err)
		}
		return 1
	}

	if _, err := io.WriteString(stdout, res.String()); err != nil {
		fmt.Fprintf(stderr, "aag: %v\n", err)
		return 1
	}

	if *pngPath != "" {
		preview, err := res.Image()
		if err == nil {
			err = imageutil.SaveImage(preview.Gray, *pngPath)
		}
		if err != nil {
			fmt.Fprintf(stderr, "aag: writing preview: %v\n", err)
			return 1
		}
		logger.Printf("preview written to %s", *pngPath)
	}
	return 0
}

// terminalWidth reports the width of the terminal attached to stdout.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// printCatalog lists every glyph with its catalog index, density and
// Unicode name.
func printCatalog(w io.Writer, renderer *asciiart.Renderer) error {
	catalog, err := renderer.Catalog()
	if err != nil {
		return err
	}
	for i, g := range catalog.Glyphs {
		if _, err := fmt.Fprintf(w, "%3d %7.2f  %c  U+%04X %s\n",
			i, g.Density, g.Rune, g.Rune, runenames.Name(g.Rune)); err != nil {
			return err
		}
	}
	return nil
}
