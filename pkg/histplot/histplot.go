// Copyright 2025 the sample-rng-plot authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package histplot renders sample sequences as probability-density
// histograms and hands the result to an image viewer.
package histplot

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Config struct {
	Title       string
	Annotation  string
	FillColor   color.Color
	Bins        int
	AnnotationX float64
	AnnotationY float64
	XMin        float64
	XMax        float64
	YMin        float64
	YMax        float64
	Width       vg.Length
	Height      vg.Length
	Grid        bool
}

func DefaultConfig() Config {
	return Config{
		Bins:       50,
		Title:      "sample-rng-plot histogram",
		Annotation: "mu=100, sigma=15",
		// Annotation position and axis bounds frame the default
		// normal(100, 225) sample cloud.
		AnnotationX: 60,
		AnnotationY: 0.025,
		XMin:        40,
		XMax:        160,
		YMin:        0,
		YMax:        0.03,
		// Green at 0.75 alpha.
		FillColor: color.NRGBA{G: 0x80, A: 0xbf},
		Grid:      true,
		Width:     8 * vg.Inch,
		Height:    6 * vg.Inch,
	}
}

// Render builds a histogram normalized to unit area over the given values.
func Render(values []float64, cfg Config) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, errors.New("no values to plot")
	}

	if cfg.Bins < 1 {
		return nil, errors.Errorf("bin count must be positive, got %d", cfg.Bins)
	}

	p := plot.New()
	p.Title.Text = cfg.Title

	hist, err := plotter.NewHist(plotter.Values(values), cfg.Bins)
	if err != nil {
		return nil, errors.Wrap(err, "failed to bin samples")
	}

	hist.Normalize(1)
	if cfg.FillColor != nil {
		hist.FillColor = cfg.FillColor
	}

	p.Add(hist)

	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	if cfg.Annotation != "" {
		labels, lerr := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: cfg.AnnotationX, Y: cfg.AnnotationY}},
			Labels: []string{cfg.Annotation},
		})
		if lerr != nil {
			return nil, errors.Wrap(lerr, "failed to place annotation")
		}

		p.Add(labels)
	}

	// Fixed bounds override whatever range the data suggested.
	p.X.Min, p.X.Max = cfg.XMin, cfg.XMax
	p.Y.Min, p.Y.Max = cfg.YMin, cfg.YMax

	return p, nil
}

// Save writes the rendered figure as a PNG.
func Save(p *plot.Plot, path string, cfg Config) error {
	w, err := p.WriterTo(cfg.Width, cfg.Height, "png")
	if err != nil {
		return errors.Wrap(err, "failed to rasterize histogram")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	_, werr := w.WriteTo(f)

	return multierr.Append(errors.Wrapf(werr, "failed to write %s", path), f.Close())
}
