package model

// ScalarRegressor は1変数の回帰モデルのインターフェース
type ScalarRegressor interface {
	// Fit は x, y の組でモデルを学習させる
	Fit(x, y []float64) error
	// Predict は1つの入力に対する予測値を返す
	Predict(x float64) float64
}

// ResidualReporter は直近の学習の残差を公開するモデルのインターフェース
type ResidualReporter interface {
	// Residuals は学習データに対する残差 y - ŷ のコピーを返す
	Residuals() []float64
}

// BinaryClassifier は2値分類モデルのインターフェース
type BinaryClassifier interface {
	// PredictProba は各サンプルが陽性クラスである確率を返す
	PredictProba(X [][]float64) []float64
	// Predict は各サンプルのクラスラベル（0 または 1）を返す
	Predict(X [][]float64) []uint8
}

// Persistable は保存・読み込みが可能なモデルのインターフェース
type Persistable interface {
	// ModelName は保存形式に記録されるモデル名を返す
	ModelName() string
}
