package linear

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(rows, cols int) ([][]float64, []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	X := make([][]float64, rows)
	y := make([]float64, rows)
	for i := range X {
		row := make([]float64, cols)
		var z float64
		for j := range row {
			// -1.0 から 1.0 の範囲のランダムな値
			row[j] = rng.Float64()*2.0 - 1.0
			z += float64(j+1) * row[j]
		}
		X[i] = row
		if z+rng.NormFloat64()*0.1 > 0 {
			y[i] = 1
		}
	}
	return X, y
}

// createSimpleBenchmarkData は y = 3x + 1 + ノイズ のデータを生成する
func createSimpleBenchmarkData(n int) ([]float64, []float64) {
	rng := rand.New(rand.NewPCG(42, 42))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * 100
		y[i] = 3*x[i] + 1 + rng.NormFloat64()
	}
	return x, y
}

func BenchmarkSimpleLinearRegression_Fit(b *testing.B) {
	for _, n := range []int{100, 1000, 10000, 100000} {
		x, y := createSimpleBenchmarkData(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			lr := NewSimpleLinearRegression()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := lr.Fit(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSimpleLinearRegression_PredictBatch(b *testing.B) {
	x, y := createSimpleBenchmarkData(10000)
	lr := NewSimpleLinearRegression()
	if err := lr.Fit(x, y); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lr.PredictBatch(x)
	}
}

func BenchmarkLogisticRegression_Fit(b *testing.B) {
	sizes := []struct {
		rows, cols, epochs int
	}{
		{100, 2, 100},
		{1000, 10, 10},
		{10000, 10, 1},
	}

	for _, size := range sizes {
		X, y := createBenchmarkData(size.rows, size.cols)
		b.Run(fmt.Sprintf("%dx%d/epochs=%d", size.rows, size.cols, size.epochs), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				lr := NewLogisticRegression(size.cols)
				lr.Fit(X, y, 0.01, size.epochs)
			}
		})
	}
}

func BenchmarkLogisticRegression_PredictProba(b *testing.B) {
	X, y := createBenchmarkData(10000, 10)
	lr := NewLogisticRegression(10)
	lr.Fit(X, y, 0.01, 5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lr.PredictProba(X)
	}
}
