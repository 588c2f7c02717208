package asciiart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCharset(t *testing.T) {
	charset := DefaultCharset()
	if len(charset) != 95 {
		t.Fatalf("Expected 95 printable ASCII characters, got %d", len(charset))
	}
	if charset[0] != ' ' || charset[len(charset)-1] != '~' {
		t.Errorf("Expected charset from ' ' to '~', got %q to %q",
			charset[0], charset[len(charset)-1])
	}
}

func TestParseCharset(t *testing.T) {
	got := ParseCharset(" .:-=+*#%@.\t\n#é")
	want := []rune(" .:-=+*#%@é")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseCharset mismatch (-want +got):\n%s", diff)
	}
	if got := ParseCharset(""); len(got) != 0 {
		t.Errorf("Empty string should give empty charset, got %q", got)
	}
}

func TestCatalogSortedByDensity(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune("#|^ "))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	if diff := cmp.Diff([]rune(" |^#"), catalog.Runes()); diff != "" {
		t.Errorf("Catalog order mismatch (-want +got):\n%s", diff)
	}
	// '|' lights one column of six, '^' half the rows, '#' everything
	want := []float64{0, 255.0 / 6, 127.5, 255}
	if diff := cmp.Diff(want, catalog.Densities()); diff != "" {
		t.Errorf("Densities mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogGoMonoDensityNonDecreasing(t *testing.T) {
	font, err := LoadFont(GoMono)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	catalog, err := NewCatalog(font, 6, 12, DefaultCharset())
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	if catalog.Len() != 95 {
		t.Fatalf("Expected 95 glyphs, got %d", catalog.Len())
	}
	densities := catalog.Densities()
	for i := 1; i < len(densities); i++ {
		if densities[i] < densities[i-1] {
			t.Errorf("Density decreases at %d: %f < %f", i, densities[i], densities[i-1])
		}
	}
	if catalog.Glyphs[0].Rune != ' ' {
		t.Errorf("Expected space to sort first, got %q", catalog.Glyphs[0].Rune)
	}
	if densities[len(densities)-1] == 0 {
		t.Error("Densest glyph should not be blank")
	}
}

func TestCatalogStableForEqualDensity(t *testing.T) {
	// 'a' and 'b' have no pattern and render identical blank cells
	r := newPatternRasterizer()

	forward, err := NewCatalog(r, 6, 12, []rune("a#b"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	if diff := cmp.Diff([]rune("ab#"), forward.Runes()); diff != "" {
		t.Errorf("Forward order mismatch (-want +got):\n%s", diff)
	}

	permuted, err := NewCatalog(r, 6, 12, []rune("b#a"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	if diff := cmp.Diff([]rune("ba#"), permuted.Runes()); diff != "" {
		t.Errorf("Permuted order mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogStableUnderParallelRendering(t *testing.T) {
	r := newPatternRasterizer()
	charset := []rune("abcdefghij#klmnop")

	sequential, err := buildCatalog(r, 6, 12, charset, 1)
	if err != nil {
		t.Fatalf("buildCatalog failed: %v", err)
	}
	parallel, err := buildCatalog(r, 6, 12, charset, 8)
	if err != nil {
		t.Fatalf("buildCatalog failed: %v", err)
	}
	if diff := cmp.Diff(sequential.Runes(), parallel.Runes()); diff != "" {
		t.Errorf("Worker count changed catalog order (-seq +par):\n%s", diff)
	}
}

func TestCatalogVectors(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, []rune("^#"))
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	if catalog.Matrix.Rows != 2 || catalog.Matrix.Cols != 72 {
		t.Fatalf("Expected 2x72 matrix, got %dx%d", catalog.Matrix.Rows, catalog.Matrix.Cols)
	}
	for i, g := range catalog.Glyphs {
		if len(g.Vector) != 72 {
			t.Errorf("Glyph %q vector length %d, want 72", g.Rune, len(g.Vector))
		}
		if diff := cmp.Diff(catalog.Matrix.Row(i), g.Vector); diff != "" {
			t.Errorf("Glyph %q vector differs from matrix row %d:\n%s", g.Rune, i, diff)
		}
	}

	half := catalog.Glyphs[0]
	if half.Rune != '^' {
		t.Fatalf("Expected '^' first, got %q", half.Rune)
	}
	// Row-major: the first 6 rows are lit, the rest dark
	for k, v := range half.Vector {
		want := 0.0
		if k/6 < 6 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("Vector[%d] = %f, want %f", k, v, want)
		}
	}
}

func TestCatalogEmptyCharset(t *testing.T) {
	catalog, err := NewCatalog(newPatternRasterizer(), 6, 12, nil)
	if err != nil {
		t.Fatalf("Empty charset should not fail at catalog time: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Expected empty catalog, got %d glyphs", catalog.Len())
	}
	if catalog.Matrix.Cols != 72 {
		t.Errorf("Empty catalog should keep vector length 72, got %d", catalog.Matrix.Cols)
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		r      Rasterizer
		width  int
		height int
		want   error
	}{
		{"nil font", nil, 6, 12, ErrFontLoad},
		{"zero width", newPatternRasterizer(), 0, 12, ErrFontLoad},
		{"negative height", newPatternRasterizer(), 6, -1, ErrFontLoad},
		{"render failure", &patternRasterizer{fail: 'x'}, 6, 12, ErrFontLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.r, tt.width, tt.height, []rune("axb"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}
