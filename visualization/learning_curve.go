// Package visualization renders evaluation results as images.
package visualization

import (
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/sklearn/tree"
)

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// LearningCurvePlot builds a plot of accuracy against training-set size.
func LearningCurvePlot(points []tree.LearningCurvePoint, title string) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, errors.NewModelError("LearningCurvePlot", "no points to plot", errors.ErrEmptyData)
	}

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.TrainingSize)
		xys[i].Y = p.Accuracy
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "training instances"
	p.Y.Label.Text = "accuracy"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, errors.Wrap(err, "building learning curve line")
	}
	p.Add(line, marks)
	return p, nil
}

// WriteLearningCurve renders the curve to w in format ("png", "svg", "pdf",
// ...).
func WriteLearningCurve(w io.Writer, points []tree.LearningCurvePoint, title, format string) error {
	p, err := LearningCurvePlot(points, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return errors.Wrapf(err, "rendering learning curve as %s", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "writing learning curve")
}

// SaveLearningCurve renders the curve to path. The image format follows the
// file extension.
func SaveLearningCurve(path string, points []tree.LearningCurvePoint, title string) error {
	p, err := LearningCurvePlot(points, title)
	if err != nil {
		return err
	}
	if strings.TrimPrefix(filepath.Ext(path), ".") == "" {
		return errors.NewValueError("SaveLearningCurve", "path needs an image extension such as .png")
	}
	return errors.Wrapf(p.Save(DefaultWidth, DefaultHeight, path), "saving learning curve to %s", path)
}
