package signal

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// Plot colors. The chart is deliberately plain: white background, a
// grey zero axis, and the waveform polyline.
var (
	plotBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	plotAxis       = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	plotTrace      = color.RGBA{R: 220, G: 60, B: 60, A: 255}
)

// RenderWaveformPNG draws the sample set as a line chart and returns it
// as PNG-encoded bytes.
//
// The chart is first drawn at a fixed working resolution and then
// scaled to width×height with Catmull-Rom interpolation, which keeps
// the trace smooth at any configured output size.
//
// The vertical scale spans ±A of the signal description, so the trace
// position reflects the true amplitude even when the samples happen to
// stay near zero.
func RenderWaveformPNG(desc Description, samples []Sample, width, height int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("signal: no samples to plot")
	}
	if width < 16 || height < 16 {
		return nil, fmt.Errorf("signal: plot size %dx%d too small", width, height)
	}

	// Working canvas; generous enough that downscaling stays crisp.
	const workW, workH = 1024, 512
	src := image.NewRGBA(image.Rect(0, 0, workW, workH))
	draw.Draw(src, src.Bounds(), image.NewUniform(plotBackground), image.Point{}, draw.Src)

	// Zero axis.
	midY := workH / 2
	for x := 0; x < workW; x++ {
		src.Set(x, midY, plotAxis)
	}

	// Map sample k of n across the x range and ±A across the y range.
	toPoint := func(k int, x float64) (int, int) {
		px := 0
		if len(samples) > 1 {
			px = k * (workW - 1) / (len(samples) - 1)
		}
		py := midY - int(x/desc.Amplitude*float64(midY-1))
		if py < 0 {
			py = 0
		}
		if py >= workH {
			py = workH - 1
		}
		return px, py
	}

	prevX, prevY := toPoint(0, samples[0].X)
	for k := 1; k < len(samples); k++ {
		x, y := toPoint(k, samples[k].X)
		drawLine(src, prevX, prevY, x, y, plotTrace)
		prevX, prevY = x, y
	}

	// Scale to the requested output size.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("signal: encode plot: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLine draws a straight segment with the integer Bresenham walk.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
