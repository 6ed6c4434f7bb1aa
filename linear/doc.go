// Package linear provides linear models: ordinary least squares with a single
// predictor and binary logistic regression trained by stochastic gradient
// ascent.
package linear

import "github.com/YuminosukeSato/goregress/core/model"

var (
	_ model.ScalarRegressor  = (*SimpleLinearRegression)(nil)
	_ model.ResidualReporter = (*SimpleLinearRegression)(nil)
	_ model.Persistable      = (*SimpleLinearRegression)(nil)
	_ model.BinaryClassifier = (*LogisticRegression)(nil)
	_ model.Persistable      = (*LogisticRegression)(nil)
)
