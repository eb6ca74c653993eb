package render

import (
	"image"
	"math"
)

// blurAlpha approximates a Gaussian blur of the given standard deviation
// with three box blur passes.
func blurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	dst := image.NewAlpha(src.Bounds())
	copy(dst.Pix, src.Pix)

	radius := boxRadius(sigma)
	if radius < 1 {
		return dst
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := make([]uint8, len(dst.Pix))
	for pass := 0; pass < 3; pass++ {
		boxBlurH(dst.Pix, tmp, w, h, dst.Stride, radius)
		boxBlurV(tmp, dst.Pix, w, h, dst.Stride, radius)
	}
	return dst
}

// boxRadius returns r such that three passes of a (2r+1) box filter have a
// variance close to sigma^2 (each pass adds (r^2+r)/3).
func boxRadius(sigma float64) int {
	return int(math.Round((math.Sqrt(1+4*sigma*sigma) - 1) / 2))
}

// Pixels outside the image count as transparent.
func boxBlurH(src, dst []uint8, w, h, stride, r int) {
	div := 2*r + 1
	for y := 0; y < h; y++ {
		row := y * stride
		sum := 0
		for x := 0; x <= r && x < w; x++ {
			sum += int(src[row+x])
		}
		for x := 0; x < w; x++ {
			dst[row+x] = uint8((sum + div/2) / div)
			if in := x + r + 1; in < w {
				sum += int(src[row+in])
			}
			if out := x - r; out >= 0 {
				sum -= int(src[row+out])
			}
		}
	}
}

func boxBlurV(src, dst []uint8, w, h, stride, r int) {
	div := 2*r + 1
	for x := 0; x < w; x++ {
		sum := 0
		for y := 0; y <= r && y < h; y++ {
			sum += int(src[y*stride+x])
		}
		for y := 0; y < h; y++ {
			dst[y*stride+x] = uint8((sum + div/2) / div)
			if in := y + r + 1; in < h {
				sum += int(src[in*stride+x])
			}
			if out := y - r; out >= 0 {
				sum -= int(src[out*stride+x])
			}
		}
	}
}
