// Package plotting renders diagnostic charts for fitted models with gonum/plot.
package plotting

import (
	"image/color"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/goregress/linear"
	"github.com/YuminosukeSato/goregress/pkg/errors"
)

// Default size used by Save.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

func pairs(op string, x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, errors.NewLengthMismatchError(op, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, errors.NewEmptyInputError(op, "nothing to plot")
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

func scatter(xys plotter.XYs) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scatter")
	}
	s.GlyphStyle.Color = pointColor
	s.GlyphStyle.Radius = vg.Points(3)
	return s, nil
}

// FitPlot draws the training points and the fitted line across their x range.
func FitPlot(m *linear.SimpleLinearRegression, x, y []float64) (*plot.Plot, error) {
	const op = "plotting.FitPlot"
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.ModelName(), "FitPlot")
	}
	xys, err := pairs(op, x, y)
	if err != nil {
		return nil, err
	}
	if err := errors.CheckNumericalStability(op, []float64{m.Slope(), m.Intercept()}, -1); err != nil {
		return nil, err
	}

	points, err := scatter(xys)
	if err != nil {
		return nil, err
	}

	lo, hi := floats.Min(x), floats.Max(x)
	fit, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: m.Predict(lo)},
		{X: hi, Y: m.Predict(hi)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build fitted line")
	}
	fit.LineStyle.Color = lineColor
	fit.LineStyle.Width = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = "Least squares fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid(), points, fit)
	p.Legend.Add("data", points)
	p.Legend.Add("fit (R² = "+formatR2(m.RSquared())+")", fit)
	p.Legend.Top = true
	return p, nil
}

// ResidualPlot draws the stored residuals of m against x, which must be the
// x values m was fitted on, with a dashed reference line at zero.
func ResidualPlot(m *linear.SimpleLinearRegression, x []float64) (*plot.Plot, error) {
	const op = "plotting.ResidualPlot"
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.ModelName(), "ResidualPlot")
	}
	residuals := m.Residuals()
	if len(x) != len(residuals) {
		return nil, errors.NewDimensionError(op, len(residuals), len(x), 0)
	}
	xys, err := pairs(op, x, residuals)
	if err != nil {
		return nil, err
	}

	points, err := scatter(xys)
	if err != nil {
		return nil, err
	}
	zero, err := plotter.NewLine(plotter.XYs{
		{X: floats.Min(x), Y: 0},
		{X: floats.Max(x), Y: 0},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build reference line")
	}
	zero.LineStyle.Color = color.Gray{Y: 96}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p := plot.New()
	p.Title.Text = "Residuals"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y - ŷ"
	p.Add(plotter.NewGrid(), zero, points)
	return p, nil
}

// ProbabilityPlot draws the labelled samples of a single-feature logistic
// model together with its probability curve.
func ProbabilityPlot(m *linear.LogisticRegression, x, y []float64) (*plot.Plot, error) {
	const op = "plotting.ProbabilityPlot"
	if m.NumFeatures() != 1 {
		return nil, errors.NewDimensionError(op, 1, m.NumFeatures(), 1)
	}
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(m.ModelName(), "ProbabilityPlot")
	}
	xys, err := pairs(op, x, y)
	if err != nil {
		return nil, err
	}

	points, err := scatter(xys)
	if err != nil {
		return nil, err
	}

	curve := plotter.NewFunction(func(v float64) float64 {
		return m.PredictProba([][]float64{{v}})[0]
	})
	curve.XMin, curve.XMax = floats.Min(x), floats.Max(x)
	curve.Samples = 200
	curve.LineStyle.Color = lineColor
	curve.LineStyle.Width = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = "P(y = 1 | x)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "probability"
	p.Add(plotter.NewGrid(), points, curve)
	p.Y.Min, p.Y.Max = -0.05, 1.05
	return p, nil
}

// Save writes p to path at DefaultWidth×DefaultHeight. The image format
// follows the file extension (png, svg, pdf, ...).
func Save(p *plot.Plot, path string) error {
	return SaveSized(p, DefaultWidth, DefaultHeight, path)
}

// SaveSized writes p to path with the given size.
func SaveSized(p *plot.Plot, w, h vg.Length, path string) error {
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}

func formatR2(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
