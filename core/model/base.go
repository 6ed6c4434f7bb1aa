// Package model holds what both goregress models share: fitted state, the
// interfaces they satisfy and the JSON save format.
package model

// EstimatorState is whether a model holds learned parameters.
type EstimatorState int

const (
	NotFitted EstimatorState = iota
	Fitted
)

func (s EstimatorState) String() string {
	switch s {
	case Fitted:
		return "fitted"
	default:
		return "not_fitted"
	}
}

// BaseEstimator is embedded in every model to track EstimatorState. It has
// no lock; a model shared between goroutines must be serialized by the caller.
type BaseEstimator struct {
	state EstimatorState
}

func (e *BaseEstimator) IsFitted() bool        { return e.state == Fitted }
func (e *BaseEstimator) State() EstimatorState { return e.state }

// SetFitted marks the model as fitted. Models call it only after all learned
// values have been stored.
func (e *BaseEstimator) SetFitted() { e.state = Fitted }

// Reset returns the model to NotFitted without touching learned values.
func (e *BaseEstimator) Reset() { e.state = NotFitted }
