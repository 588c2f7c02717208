package asciiart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wbrown/asciiart/imageutil"
)

func TestLines(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune(" |^#"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	grid, err := NewTileGrid(imageutil.NewGrayImage(18, 24), 6, 12)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}

	got, err := Lines(grid, catalog, []int{0, 1, 2, 3, 3, 0})
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if diff := cmp.Diff([]string{" |^", "## "}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesZeroWidthGrid(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune(" #"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	grid, err := NewTileGrid(imageutil.NewGrayImage(5, 36), 6, 12)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}

	got, err := Lines(grid, catalog, nil)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if diff := cmp.Diff([]string{"", "", ""}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesErrors(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune(" #"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	grid, err := NewTileGrid(imageutil.NewGrayImage(12, 12), 6, 12)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}

	if _, err := Lines(grid, catalog, []int{0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch for short result, got %v", err)
	}
	if _, err := Lines(grid, catalog, []int{0, 2}); err == nil {
		t.Error("Expected error for out of range glyph index")
	}
}

func TestRenderImage(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune(" |^#"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	grid, err := NewTileGrid(imageutil.NewGrayImage(13, 12), 6, 12)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}

	img, err := RenderImage(grid, catalog, []int{3, 1})
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if img.Width() != 12 || img.Height() != 12 {
		t.Fatalf("Expected 12x12 preview, got %dx%d", img.Width(), img.Height())
	}
	// Left cell is '#', right cell is '|'
	if v := img.GetGray(3, 7); v != 255 {
		t.Errorf("Full glyph pixel = %d, want 255", v)
	}
	if v := img.GetGray(6, 11); v != 255 {
		t.Errorf("Bar glyph column pixel = %d, want 255", v)
	}
	if v := img.GetGray(7, 0); v != 0 {
		t.Errorf("Bar glyph background pixel = %d, want 0", v)
	}

	// Tiling the preview reproduces the matched glyphs exactly
	regrid, err := NewTileGrid(img, 6, 12)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}
	for k, idx := range []int{3, 1} {
		if d := SquaredDistance(regrid.Tiles[k].Vector, catalog.Glyphs[idx].Vector); d != 0 {
			t.Errorf("Tile %d differs from glyph %d by %f", k, idx, d)
		}
	}
}

func TestRenderImageCellMismatch(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune(" #"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	grid, err := NewTileGrid(imageutil.NewGrayImage(16, 16), 8, 16)
	if err != nil {
		t.Fatalf("NewTileGrid failed: %v", err)
	}
	if _, err := RenderImage(grid, catalog, []int{0, 0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}
