// SPDX-License-Identifier: MIT

// Package render draws the consensus tour. PNG implements solver.Renderer
// with gonum/plot; the image format follows the file extension.
package render

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/crowdtsp/tsp"
)

const (
	// DefaultWidthCm and DefaultHeightCm size the image when unset.
	DefaultWidthCm  = 16.0
	DefaultHeightCm = 16.0
)

var (
	// ErrNoWaypoints is returned for an empty polyline.
	ErrNoWaypoints = errors.New("render: no waypoints")

	// ErrNoPath is returned when PNG.Path is empty.
	ErrNoPath = errors.New("render: output path is empty")
)

// PNG renders a tour polyline to an image file.
type PNG struct {
	Path     string
	Title    string
	WidthCm  float64
	HeightCm float64
}

// NewPNG returns a renderer for path with the default size.
func NewPNG(path string) *PNG {
	return &PNG{
		Path:     path,
		Title:    "Consensus tour",
		WidthCm:  DefaultWidthCm,
		HeightCm: DefaultHeightCm,
	}
}

// Render draws waypoints as a line with point markers and saves the image.
func (r *PNG) Render(ctx context.Context, waypoints []tsp.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Path == "" {
		return ErrNoPath
	}
	if len(waypoints) == 0 {
		return ErrNoWaypoints
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	xys := make(plotter.XYs, len(waypoints))
	for i := range waypoints {
		xys[i].X = waypoints[i].X
		xys[i].Y = waypoints[i].Y
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)

	var (
		w = r.WidthCm
		h = r.HeightCm
	)
	if w <= 0 {
		w = DefaultWidthCm
	}
	if h <= 0 {
		h = DefaultHeightCm
	}
	if err = p.Save(vg.Length(w)*vg.Centimeter, vg.Length(h)*vg.Centimeter, r.Path); err != nil {
		return fmt.Errorf("render: save %q: %w", r.Path, err)
	}

	return nil
}
