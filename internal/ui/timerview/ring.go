package timerview

import (
	"image"
	"image/color"
	"math"

	"focusring/internal/core/model"

	"fyne.io/fyne/v2/canvas"
)

const ringThickness = 0.12

// Gradient is the start and end color of the filled arc.
type Gradient struct {
	Start color.NRGBA
	End   color.NRGBA
}

var (
	focusGradient = Gradient{
		Start: color.NRGBA{R: 255, G: 94, B: 98, A: 255},
		End:   color.NRGBA{R: 255, G: 153, B: 102, A: 255},
	}
	breakGradient = Gradient{
		Start: color.NRGBA{R: 67, G: 206, B: 162, A: 255},
		End:   color.NRGBA{R: 24, G: 90, B: 157, A: 255},
	}
	trackColor = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
)

func gradientFor(phase model.Phase) Gradient {
	if phase == model.PhaseBreak {
		return breakGradient
	}
	return focusGradient
}

// ring draws the countdown progress as a gradient arc starting at twelve
// o'clock and growing clockwise.
type ring struct {
	raster   *canvas.Raster
	progress float64
	gradient Gradient
}

func newRing() *ring {
	r := &ring{gradient: focusGradient}
	r.raster = canvas.NewRaster(func(width, height int) image.Image {
		return drawRing(width, height, r.progress, r.gradient)
	})
	return r
}

func (r *ring) set(progress float64, gradient Gradient) {
	if progress == r.progress && gradient == r.gradient {
		return
	}
	r.progress = progress
	r.gradient = gradient
	r.raster.Refresh()
}

func drawRing(width, height int, progress float64, gradient Gradient) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	centerX := float64(width) / 2
	centerY := float64(height) / 2
	outer := math.Min(centerX, centerY)
	inner := outer * (1 - ringThickness*2)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			distance := math.Hypot(dx, dy)
			if distance > outer || distance < inner {
				continue
			}

			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			fraction := angle / (2 * math.Pi)
			if fraction <= progress && progress > 0 {
				img.SetNRGBA(x, y, lerpColor(gradient.Start, gradient.End, fraction))
				continue
			}
			img.SetNRGBA(x, y, trackColor)
		}
	}
	return img
}

func lerpColor(from, to color.NRGBA, t float64) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.NRGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
