package linear

import (
	"context"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goregress/core/model"
	"github.com/YuminosukeSato/goregress/metrics"
	"github.com/YuminosukeSato/goregress/pkg/errors"
	"github.com/YuminosukeSato/goregress/pkg/log"
)

const logisticModelName = "LogisticRegression"

// LogisticRegression is a binary classifier trained by per-sample gradient
// ascent on the logistic log-likelihood.
//
// coefficients[0] is the bias and coefficients[j+1] is the weight of
// feature j. The length is fixed at construction.
type LogisticRegression struct {
	model.BaseEstimator

	coefficients []float64
	lg           log.Logger
}

// NewLogisticRegression creates a model for numFeatures features with all
// coefficients at zero. It panics if numFeatures is negative.
func NewLogisticRegression(numFeatures int, opts ...LogisticOption) *LogisticRegression {
	lr := &LogisticRegression{
		coefficients: make([]float64, numFeatures+1),
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// ModelName returns the name recorded in saved models.
func (lr *LogisticRegression) ModelName() string {
	return logisticModelName
}

func (lr *LogisticRegression) logger() log.Logger {
	if lr.lg != nil {
		return lr.lg
	}
	return log.GetLogger()
}

// NumFeatures returns the number of features the model was built for.
func (lr *LogisticRegression) NumFeatures() int {
	return len(lr.coefficients) - 1
}

// Coefficients returns a copy of the coefficients, bias first.
func (lr *LogisticRegression) Coefficients() []float64 {
	out := make([]float64, len(lr.coefficients))
	copy(out, lr.coefficients)
	return out
}

// Fit runs epochs passes over the samples in order. Each sample updates the
// coefficients in place before the next sample is scored:
//
//	error = y[i] - sigmoid(c0 + Σ c[j+1]*X[i][j])
//	c0     += learningRate * error
//	c[j+1] += learningRate * error * X[i][j]
//
// Fit does not validate its input. Every row must have NumFeatures values and
// len(y) must be at least len(X); short rows or labels panic with an index
// error, extra row values are ignored. Use FitChecked to validate first.
func (lr *LogisticRegression) Fit(X [][]float64, y []float64, learningRate float64, epochs int) {
	coef := lr.coefficients
	nFeatures := len(coef) - 1

	for epoch := 0; epoch < epochs; epoch++ {
		for i, row := range X {
			prediction := sigmoid(lr.decision(row))
			step := float64(learningRate * (y[i] - prediction))

			coef[0] += step
			for j := 0; j < nFeatures; j++ {
				coef[j+1] += float64(step * row[j])
			}
		}
	}
	lr.SetFitted()

	logger := lr.logger()
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("fit completed",
			log.ModelNameKey, logisticModelName,
			log.OperationKey, log.OperationFit,
			log.SamplesKey, len(X),
			log.FeaturesKey, nFeatures,
			log.EpochsKey, epochs,
			log.LearningRateKey, learningRate,
			log.CoefficientsKey, lr.Coefficients(),
		)
	}
}

// FitChecked validates the shapes of X and y with ValidateShape and then
// calls Fit.
func (lr *LogisticRegression) FitChecked(X [][]float64, y []float64, learningRate float64, epochs int) error {
	if err := lr.ValidateShape(X, y); err != nil {
		lr.logger().Debug("fit rejected", err, log.ModelNameKey, logisticModelName)
		return err
	}
	lr.Fit(X, y, learningRate, epochs)
	return nil
}

// ValidateShape checks that X and y have the same number of samples and
// that every row of X has NumFeatures values.
func (lr *LogisticRegression) ValidateShape(X [][]float64, y []float64) error {
	if len(X) != len(y) {
		return errors.NewLengthMismatchError("LogisticRegression.ValidateShape", len(X), len(y))
	}
	return lr.validateRows("training", X)
}

func (lr *LogisticRegression) validateRows(phase string, X [][]float64) error {
	nFeatures := lr.NumFeatures()
	for i, row := range X {
		if len(row) != nFeatures {
			return errors.NewInputShapeError(phase, i, []int{len(X), nFeatures}, []int{len(X), len(row)})
		}
	}
	return nil
}

// decision computes c0 + Σ c[j+1]*row[j].
func (lr *LogisticRegression) decision(row []float64) float64 {
	coef := lr.coefficients
	z := coef[0]
	for j := 1; j < len(coef); j++ {
		// explicit conversion keeps the product from being fused into an FMA
		z += float64(coef[j] * row[j-1])
	}
	return z
}

// PredictProba returns the probability of class 1 for each row of X.
func (lr *LogisticRegression) PredictProba(X [][]float64) []float64 {
	probas := make([]float64, len(X))
	for i, row := range X {
		probas[i] = sigmoid(lr.decision(row))
	}
	return probas
}

// Predict returns 1 where PredictProba is at least 0.5 and 0 elsewhere.
func (lr *LogisticRegression) Predict(X [][]float64) []uint8 {
	probas := lr.PredictProba(X)
	labels := make([]uint8, len(probas))
	for i, p := range probas {
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels
}

// Score returns the mean accuracy of Predict(X) against y.
func (lr *LogisticRegression) Score(X [][]float64, y []float64) (float64, error) {
	if err := lr.validateRows("prediction", X); err != nil {
		return 0, err
	}
	acc, err := metrics.Accuracy(y, lr.Predict(X))
	if err != nil {
		return 0, err
	}
	lr.logger().Debug("scored",
		log.ModelNameKey, logisticModelName,
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(X),
		log.AccuracyKey, acc,
	)
	return acc, nil
}

// FitDense is Fit for gonum inputs. X must be n×NumFeatures and y of length n.
func (lr *LogisticRegression) FitDense(X mat.Matrix, y mat.Vector, learningRate float64, epochs int) error {
	const op = "LogisticRegression.FitDense"
	r, c := X.Dims()
	if c != lr.NumFeatures() {
		return errors.NewDimensionError(op, lr.NumFeatures(), c, 1)
	}
	if y.Len() != r {
		return errors.NewLengthMismatchError(op, r, y.Len())
	}

	rows := denseRows(X)
	labels := make([]float64, r)
	for i := range labels {
		labels[i] = y.AtVec(i)
	}
	lr.Fit(rows, labels, learningRate, epochs)
	return nil
}

// PredictProbaDense is PredictProba for gonum inputs.
func (lr *LogisticRegression) PredictProbaDense(X mat.Matrix) (*mat.VecDense, error) {
	r, c := X.Dims()
	if c != lr.NumFeatures() {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProbaDense", lr.NumFeatures(), c, 1)
	}
	if r == 0 {
		return nil, errors.NewValueError("LogisticRegression.PredictProbaDense", "empty matrix")
	}
	return mat.NewVecDense(r, lr.PredictProba(denseRows(X))), nil
}

func denseRows(X mat.Matrix) [][]float64 {
	r, _ := X.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}
	return rows
}

// logisticParams is the saved form of a LogisticRegression.
type logisticParams struct {
	NFeatures    int       `json:"n_features"`
	Coefficients []float64 `json:"coefficients"`
}

// Save writes the model as JSON to w.
func (lr *LogisticRegression) Save(w io.Writer) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError(logisticModelName, "Save")
	}
	return model.Encode(w, lr, logisticParams{
		NFeatures:    lr.NumFeatures(),
		Coefficients: lr.coefficients,
	})
}

// Load reads a model written by Save. The saved feature count must match
// NumFeatures; the coefficient slice is never resized.
func (lr *LogisticRegression) Load(r io.Reader) error {
	const op = "LogisticRegression.Load"
	var params logisticParams
	if err := model.Decode(r, lr, &params); err != nil {
		lr.logger().Error("load failed", err, log.ModelNameKey, logisticModelName, log.OperationKey, log.OperationLoad)
		return err
	}
	if params.NFeatures != lr.NumFeatures() {
		return errors.NewDimensionError(op, lr.NumFeatures(), params.NFeatures, 1)
	}
	if len(params.Coefficients) != params.NFeatures+1 {
		return errors.NewValidationError("coefficients", "length must be n_features+1", len(params.Coefficients))
	}

	copy(lr.coefficients, params.Coefficients)
	lr.SetFitted()
	return nil
}

// sigmoid computes the sigmoid function
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
