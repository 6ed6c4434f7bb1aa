// Package goregress provides two small supervised-learning models for Go:
// ordinary least-squares regression with a single predictor and binary
// logistic regression trained by per-sample gradient ascent.
//
// # Packages
//
//   - linear: SimpleLinearRegression and LogisticRegression
//   - metrics: MSE, RMSE, MAE, R² and accuracy over slices or gonum vectors
//   - core/model: estimator state, model interfaces and the JSON save format
//   - plotting: fit, residual and probability charts rendered with gonum/plot
//   - pkg/errors: typed errors with stack traces and the warning hook
//   - pkg/log: the Logger interface with zerolog and slog backends
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goregress/linear"
//	)
//
//	func main() {
//	    model := linear.NewSimpleLinearRegression()
//	    if err := model.Fit([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(model.Slope(), model.Intercept(), model.RSquared())
//
//	    clf := linear.NewLogisticRegression(1)
//	    clf.Fit([][]float64{{0}, {0.2}, {5}, {5.2}}, []float64{0, 0, 1, 1}, 0.1, 1000)
//	    fmt.Println(clf.Predict([][]float64{{0.1}, {5.1}}))
//	}
//
// # Error Handling
//
// Fit on SimpleLinearRegression rejects inputs of different lengths and
// empty inputs. Both errors can be checked with errors.Is:
//
//	err := model.Fit(x, y)
//	if errors.Is(err, errors.ErrLengthMismatch) {
//	    // x and y differ in length; the model is unchanged
//	}
//
// Degenerate data (all x equal) is not an error by default; the fitted slope
// is NaN or ±Inf and a warning is raised through errors.Warn. Pass
// linear.WithDegenerateCheck(true) to reject it instead.
//
// LogisticRegression.Fit does not validate its input. Use ValidateShape or
// FitChecked when the rows may be malformed.
//
// # Logging
//
// Models log through the pkg/log Logger interface. The default logger
// discards everything; call log.SetupLogger("debug") or pass
// linear.WithLogger to see fit summaries.
package goregress
