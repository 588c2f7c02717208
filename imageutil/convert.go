package imageutil

import (
	"image"
	"image/color"
)

// ToGrayscale converts an image to grayscale using the ITU-R BT.601 luma
// weights: Y = 0.299*R + 0.587*G + 0.114*B. Alpha is discarded rather
// than composited against a background. The result is anchored at the
// origin.
func ToGrayscale(img image.Image) *GrayImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := NewGrayImage(width, height)

	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(gray.Row(y), src.Pix[start:start+width])
		}
		return gray
	}
	if src, ok := img.(*GrayImage); ok {
		return src.Clone()
	}

	for y := 0; y < height; y++ {
		row := gray.Row(y)
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			// Integer math, rounded to nearest
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			row[x] = uint8(lum)
		}
	}

	return gray
}
