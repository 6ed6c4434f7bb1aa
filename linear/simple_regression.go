package linear

import (
	"context"
	"io"
	"math"

	"github.com/YuminosukeSato/goregress/core/model"
	"github.com/YuminosukeSato/goregress/metrics"
	"github.com/YuminosukeSato/goregress/pkg/errors"
	"github.com/YuminosukeSato/goregress/pkg/log"
)

const simpleModelName = "SimpleLinearRegression"

// SimpleLinearRegression は説明変数が1つの最小二乗線形回帰 y = slope*x + intercept
//
// ゼロ値のまま使える。Fit が成功するまで全てのパラメータは0、残差は空。
type SimpleLinearRegression struct {
	model.BaseEstimator // BaseEstimatorを埋め込み

	slope     float64
	intercept float64
	rSquared  float64
	residuals []float64 // 学習データと同じ順序の残差 y - ŷ

	degenerateCheck bool
	lg              log.Logger
}

// NewSimpleLinearRegression は新しい線形回帰モデルを作成する
func NewSimpleLinearRegression(opts ...SimpleOption) *SimpleLinearRegression {
	lr := &SimpleLinearRegression{}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// ModelName は保存形式に記録されるモデル名を返す
func (lr *SimpleLinearRegression) ModelName() string {
	return simpleModelName
}

func (lr *SimpleLinearRegression) logger() log.Logger {
	if lr.lg != nil {
		return lr.lg
	}
	return log.GetLogger()
}

// Fit は正規方程式の閉形式でモデルを学習させる
//
//	slope     = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	intercept = (Σy - slope*Σx) / n
//
// x と y の長さが異なる場合は errors.ErrLengthMismatch、空の場合は errors.ErrEmptyInput に
// 一致するエラーを返す。どちらの検証も計算の前に行い、失敗時は状態を変更しない。
//
// x が全て同じ値の場合、分母が0になり slope は NaN/Inf になる（エラーにはならない）。
// WithDegenerateCheck(true) の場合のみ errors.ErrDegenerateInput を返す。
func (lr *SimpleLinearRegression) Fit(x, y []float64) error {
	const op = "SimpleLinearRegression.Fit"
	logger := lr.logger()

	// 入力の検証
	if len(x) != len(y) {
		err := errors.NewLengthMismatchError(op, len(x), len(y))
		logger.Debug("fit rejected", err, log.ErrorCodeKey, log.ErrorLengthMismatch)
		return err
	}
	if len(x) == 0 {
		err := errors.NewEmptyInputError(op, "input sequences cannot be empty")
		logger.Debug("fit rejected", err, log.ErrorCodeKey, log.ErrorEmptyInput)
		return err
	}

	n := float64(len(x))
	sumX, sumY, sumXY, sumXSquared := sums(x, y)

	denominator := float64(n*sumXSquared) - float64(sumX*sumX)
	if lr.degenerateCheck && denominator == 0 {
		err := errors.NewModelError(op, "x has zero variance", errors.ErrDegenerateInput)
		logger.Debug("fit rejected", err, log.ErrorCodeKey, log.ErrorDegenerate)
		return err
	}

	slope := (float64(n*sumXY) - float64(sumX*sumY)) / denominator
	intercept := (sumY - float64(slope*sumX)) / n

	// 決定係数と残差を同じ走査で計算する
	meanY := sumY / n
	residuals := make([]float64, len(x))
	var residualVariance, totalVariance float64
	for i := range x {
		r := y[i] - line(slope, intercept, x[i])
		residuals[i] = r
		residualVariance += float64(r * r)

		d := y[i] - meanY
		totalVariance += float64(d * d)
	}
	rSquared := 1.0 - residualVariance/totalVariance

	// 全ての値が揃ってから状態を更新する
	lr.slope = slope
	lr.intercept = intercept
	lr.rSquared = rSquared
	lr.residuals = residuals
	lr.SetFitted()

	lr.warnNonFinite(op)
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("fit completed",
			log.ModelNameKey, simpleModelName,
			log.OperationKey, log.OperationFit,
			log.SamplesKey, len(x),
			log.SlopeKey, slope,
			log.InterceptKey, intercept,
			log.R2ScoreKey, rSquared,
			log.MSEKey, lr.MeanSquaredError(),
		)
	}
	return nil
}

// warnNonFinite は学習済みパラメータのうち有限でないものを警告として通知する
func (lr *SimpleLinearRegression) warnNonFinite(op string) {
	for _, q := range []struct {
		name  string
		value float64
	}{
		{"slope", lr.slope},
		{"intercept", lr.intercept},
		{"r_squared", lr.rSquared},
	} {
		if !errors.IsFinite(q.value) {
			errors.Warn(errors.NewDegenerateInputWarning(op, q.name, q.value))
		}
	}
}

// line は slope*x + intercept を計算する。
// 積を明示的に丸めて FMA への融合を防ぎ、Predict と残差が常に同じ値になるようにする。
func line(slope, intercept, x float64) float64 {
	return float64(slope*x) + intercept
}

// sums は Σx, Σy, Σxy, Σx² を先頭から順に1回の走査で加算する
func sums(x, y []float64) (sumX, sumY, sumXY, sumXSquared float64) {
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += float64(x[i] * y[i])
		sumXSquared += float64(x[i] * x[i])
	}
	return sumX, sumY, sumXY, sumXSquared
}

// Predict は slope*x + intercept を返す。未学習の場合は 0
func (lr *SimpleLinearRegression) Predict(x float64) float64 {
	return line(lr.slope, lr.intercept, x)
}

// PredictBatch は各入力に対する予測値を返す
func (lr *SimpleLinearRegression) PredictBatch(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = lr.Predict(xi)
	}
	return out
}

// Slope は学習された傾きを返す
func (lr *SimpleLinearRegression) Slope() float64 {
	return lr.slope
}

// Intercept は学習された切片を返す
func (lr *SimpleLinearRegression) Intercept() float64 {
	return lr.intercept
}

// RSquared は学習データに対する決定係数（R²）を返す
func (lr *SimpleLinearRegression) RSquared() float64 {
	return lr.rSquared
}

// Residuals は学習データに対する残差のコピーを返す
func (lr *SimpleLinearRegression) Residuals() []float64 {
	if lr.residuals == nil {
		return nil
	}
	out := make([]float64, len(lr.residuals))
	copy(out, lr.residuals)
	return out
}

// MeanSquaredError は残差の二乗平均を返す。未学習の場合は NaN (0/0)
func (lr *SimpleLinearRegression) MeanSquaredError() float64 {
	var sum float64
	for _, r := range lr.residuals {
		sum += float64(r * r)
	}
	return sum / float64(len(lr.residuals))
}

// RootMeanSquaredError は MeanSquaredError の平方根を返す
func (lr *SimpleLinearRegression) RootMeanSquaredError() float64 {
	return math.Sqrt(lr.MeanSquaredError())
}

// Score は与えられたデータに対する決定係数（R²）を計算する
func (lr *SimpleLinearRegression) Score(x, y []float64) (float64, error) {
	if !lr.IsFitted() {
		err := errors.NewNotFittedError(simpleModelName, "Score")
		lr.logger().Debug("score rejected", err, log.ErrorCodeKey, log.ErrorNotFitted)
		return 0, err
	}
	if len(x) != len(y) {
		return 0, errors.NewLengthMismatchError("SimpleLinearRegression.Score", len(x), len(y))
	}
	return metrics.R2ScoreSlice(y, lr.PredictBatch(x))
}

// simpleParams は保存形式のパラメータ
type simpleParams struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	RSquared  float64   `json:"r_squared"`
	Residuals []float64 `json:"residuals"`
}

// Save は学習済みモデルをJSONとして w に書き出す
//
// 戻り値:
//   - error: 未学習の場合は NotFittedError。NaN/Inf を含む場合はエンコードエラー
func (lr *SimpleLinearRegression) Save(w io.Writer) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError(simpleModelName, "Save")
	}
	err := model.Encode(w, lr, simpleParams{
		Slope:     lr.slope,
		Intercept: lr.intercept,
		RSquared:  lr.rSquared,
		Residuals: lr.residuals,
	})
	if err != nil {
		lr.logger().Error("save failed", err, log.ModelNameKey, simpleModelName, log.OperationKey, log.OperationSave)
	}
	return err
}

// Load は Save で書き出したモデルを r から読み込む。失敗時は状態を変更しない
func (lr *SimpleLinearRegression) Load(r io.Reader) error {
	var params simpleParams
	if err := model.Decode(r, lr, &params); err != nil {
		lr.logger().Error("load failed", err, log.ModelNameKey, simpleModelName, log.OperationKey, log.OperationLoad)
		return err
	}

	lr.slope = params.Slope
	lr.intercept = params.Intercept
	lr.rSquared = params.RSquared
	lr.residuals = params.Residuals
	if lr.residuals == nil {
		lr.residuals = []float64{}
	}
	lr.SetFitted()
	return nil
}
