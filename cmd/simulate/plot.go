package main

import (
	"image/color"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/frontier"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	committedColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	provisionalColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	pointColor       = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// plotFrontier draws the matched path over the raw trajectory, longitude on X.
func plotFrontier(state frontier.State, points []entity.TrajectoryPoint, path string) error {
	p := plot.New()
	p.Title.Text = "Map matched trajectory"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	if err := addSubroutes(p, "committed", state.Committed, committedColor, nil); err != nil {
		return err
	}
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	if err := addSubroutes(p, "provisional", state.Provisional, provisionalColor, dashes); err != nil {
		return err
	}

	if len(points) > 0 {
		pts := make(plotter.XYs, 0, len(points))
		for _, pt := range points {
			pts = append(pts, plotter.XY{X: pt.Longitude, Y: pt.Latitude})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.WithStack(err)
		}
		scatter.GlyphStyle.Color = pointColor
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		p.Legend.Add("trajectory", scatter)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return errors.Wrap(p.Save(8*vg.Inch, 8*vg.Inch, path), "failed to save plot")
}

func addSubroutes(p *plot.Plot, label string, subs []entity.Subroute, c color.Color, dashes []vg.Length) error {
	for i, sub := range subs {
		if len(sub.Coords) < 2 {
			continue
		}
		xys := make(plotter.XYs, 0, len(sub.Coords))
		for _, pt := range sub.Coords {
			xys = append(xys, plotter.XY{X: pt.Lon(), Y: pt.Lat()})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.WithStack(err)
		}
		line.Color = c
		line.Width = vg.Points(2)
		line.Dashes = dashes
		p.Add(line)
		if i == 0 {
			p.Legend.Add(label, line)
		}
	}

	return nil
}
