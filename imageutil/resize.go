package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGrayToWidth resizes a grayscale image to the specified width while
// maintaining aspect ratio. The height is rounded to the nearest pixel and
// is never less than one.
func ResizeGrayToWidth(img *GrayImage, width int, interp Interpolation) *GrayImage {
	if img.Width() == 0 || img.Height() == 0 {
		return NewGrayImage(0, 0)
	}
	height := (img.Height()*width + img.Width()/2) / img.Width()
	if height < 1 {
		height = 1
	}
	return ResizeGray(img, width, height, interp)
}
