// Package metrics は回帰と分類の評価指標を提供する。
// ベクトル版は *mat.VecDense、スライス版は []float64 を受け取る。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goregress/pkg/errors"
)

// checkPair は空の入力と長さの不一致を検出する
func checkPair(op string, nTrue, nPred int) error {
	if nTrue == 0 {
		return errors.NewValueError(op, "empty vector")
	}
	if nPred != nTrue {
		return errors.NewDimensionError(op, nTrue, nPred, 0)
	}
	return nil
}

// vecLen は nil や空の VecDense に対しても 0 を返す
func vecLen(v *mat.VecDense) int {
	if v == nil || v.IsEmpty() {
		return 0
	}
	return v.Len()
}

// residual は yTrue - yPred を返す
func residual(op string, yTrue, yPred *mat.VecDense) (*mat.VecDense, error) {
	if err := checkPair(op, vecLen(yTrue), vecLen(yPred)); err != nil {
		return nil, err
	}
	var diff mat.VecDense
	diff.SubVec(yTrue, yPred)
	return &diff, nil
}

// MSE: (1/n)·Σ(yTrue − yPred)²
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residual("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return mat.Dot(diff, diff) / float64(diff.Len()), nil
}

// RMSE: √MSE
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE: (1/n)·Σ|yTrue − yPred|
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residual("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Norm(diff.RawVector().Data, 1) / float64(diff.Len()), nil
}

// R2Score は決定係数 1 − RSS/TSS を返す。
// yTrue が定数（TSS = 0）の場合は R² が定義できないため ValueError を返す。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residual("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	n := diff.Len()

	centered := mat.NewVecDense(n, nil)
	centered.CopyVec(yTrue)
	mean := mat.Sum(yTrue) / float64(n)
	for i := 0; i < n; i++ {
		centered.SetVec(i, centered.AtVec(i)-mean)
	}

	tss := mat.Dot(centered, centered)
	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "yTrue has zero variance")
	}
	return 1 - mat.Dot(diff, diff)/tss, nil
}

// MSESlice はスライス版の MSE
func MSESlice(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MSE", len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return MSE(mat.NewVecDense(len(yTrue), yTrue), mat.NewVecDense(len(yPred), yPred))
}

// R2ScoreSlice はスライス版の R2Score
func R2ScoreSlice(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("R2Score", len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return R2Score(mat.NewVecDense(len(yTrue), yTrue), mat.NewVecDense(len(yPred), yPred))
}
