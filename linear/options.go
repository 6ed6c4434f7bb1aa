package linear

import "github.com/YuminosukeSato/goregress/pkg/log"

// SimpleOption is a function that configures SimpleLinearRegression
type SimpleOption func(*SimpleLinearRegression)

// WithLogger sets the logger used for fit summaries. Without it the
// package-level logger from log.GetLogger is used.
func WithLogger(l log.Logger) SimpleOption {
	return func(lr *SimpleLinearRegression) {
		lr.lg = l
	}
}

// WithDegenerateCheck makes Fit return an error matching
// errors.ErrDegenerateInput when all x values are identical, instead of
// storing a non-finite slope.
func WithDegenerateCheck(enabled bool) SimpleOption {
	return func(lr *SimpleLinearRegression) {
		lr.degenerateCheck = enabled
	}
}

// LogisticOption is a functional option for LogisticRegression
type LogisticOption func(*LogisticRegression)

// WithLogisticLogger sets the logger used for fit summaries.
func WithLogisticLogger(l log.Logger) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.lg = l
	}
}
