// Package imageutil provides the image plumbing around the glyph matcher:
// decoding, grayscale conversion, resizing and encoding, all in pure Go.
package imageutil

import (
	"image"
	"image/color"
)

// GrayImage wraps image.Gray for the single-channel images the tiler and
// the glyph catalog work on.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new all-black GrayImage with the specified
// dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y), relative to the image
// bounds origin.
func (img *GrayImage) GetGray(x, y int) uint8 {
	b := img.Bounds()
	return img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
}

// SetGrayValue sets the grayscale value at (x, y), relative to the image
// bounds origin.
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	b := img.Bounds()
	img.Gray.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
}

// Row returns the raw pixels of row y, relative to the image bounds
// origin. The slice aliases the image buffer.
func (img *GrayImage) Row(y int) []uint8 {
	b := img.Bounds()
	start := img.PixOffset(b.Min.X, b.Min.Y+y)
	return img.Pix[start : start+b.Dx()]
}

// Clone creates a deep copy of the image, anchored at the origin.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		copy(clone.Row(y), img.Row(y))
	}
	return clone
}
