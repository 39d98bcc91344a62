// Package plot rasterizes sampled curves into images.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Guide      = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	Ink        = color.RGBA{0x1f, 0x4e, 0x9a, 0xff}
)

// Options controls the canvas of Render.
type Options struct {
	Width  int
	Height int
	Stroke float32
	// Margin is the blank border, in pixels, around the curve.
	Margin float32
}

// Extents2D is the axis-aligned box holding a set of points.
type Extents2D struct {
	Min math.Vec2
	Max math.Vec2
}

// Bounds returns the extents of points, grown so that the [0, 1] square used
// by easing curves is always visible.
func Bounds(points []math.Vec2) Extents2D {
	e := Extents2D{Min: math.NewVec2Zero(), Max: math.NewVec2One()}
	for _, p := range points {
		e.Min.X = min(e.Min.X, p.X)
		e.Min.Y = min(e.Min.Y, p.Y)
		e.Max.X = max(e.Max.X, p.X)
		e.Max.Y = max(e.Max.Y, p.Y)
	}
	return e
}

// toCanvas maps a curve point into pixel space, y growing downwards.
func toCanvas(p math.Vec2, e Extents2D, o Options) math.Vec2 {
	w := float32(o.Width) - 2*o.Margin
	h := float32(o.Height) - 2*o.Margin
	return math.NewVec2(
		o.Margin+math.InvLerp(e.Min.X, e.Max.X, p.X)*w,
		o.Margin+(1-math.InvLerp(e.Min.Y, e.Max.Y, p.Y))*h,
	)
}

// segment adds the quad covering the stroke from a to b. Degenerate
// segments are skipped since they have no direction.
func segment(r *vector.Rasterizer, a, b math.Vec2, stroke float32) {
	d := b.Sub(a)
	if d.LengthSquared() == 0 {
		return
	}
	dir := d.Normalize()
	n := math.NewVec2(-dir.Y, dir.X).MulScalar(stroke / 2)

	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	r.MoveTo(p0.X, p0.Y)
	r.LineTo(p1.X, p1.Y)
	r.LineTo(p2.X, p2.Y)
	r.LineTo(p3.X, p3.Y)
	r.ClosePath()
}

func polyline(dst draw.Image, points []math.Vec2, stroke float32, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := 1; i < len(points); i++ {
		segment(r, points[i-1], points[i], stroke)
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Render draws the curve through points, plus the y=0 and y=1 guides, on a
// fresh canvas.
func Render(points []math.Vec2, o Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	e := Bounds(points)
	for _, y := range []float32{0, 1} {
		guide := []math.Vec2{
			toCanvas(math.NewVec2(e.Min.X, y), e, o),
			toCanvas(math.NewVec2(e.Max.X, y), e, o),
		}
		polyline(img, guide, 1, Guide)
	}

	mapped := make([]math.Vec2, len(points))
	for i, p := range points {
		mapped[i] = toCanvas(p, e, o)
	}
	polyline(img, mapped, o.Stroke, Ink)
	return img
}

// WritePNG renders points and stores the image as dir/name.png.
func WritePNG(dir, name string, points []math.Vec2, o Options) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, Render(points, o)); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	core.LogDebug("plot: wrote %s (%dx%d, %d points)", path, o.Width, o.Height, len(points))
	return path, f.Close()
}
