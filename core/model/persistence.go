package model

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/YuminosukeSato/goregress/pkg/errors"
)

// FormatVersion は保存形式のバージョン
const FormatVersion = "1.0"

// Spec はモデルの種類と保存形式のバージョンを表す
type Spec struct {
	Name          string `json:"name"`
	FormatVersion string `json:"format_version"`
}

// Envelope は保存されたモデルのJSON表現
//
//	{"model_spec":{"name":"SimpleLinearRegression","format_version":"1.0"},"params":{...}}
type Envelope struct {
	ModelSpec Spec            `json:"model_spec"`
	Params    json.RawMessage `json:"params"`
}

// Encode はパラメータを m の名前付きエンベロープに包んでJSONとして w に書き出す
//
// パラメータ:
//   - w: 出力先Writer
//   - m: モデル（名前の取得に使う）
//   - params: モデル固有のパラメータ（JSONにマーシャル可能な値）
//
// 戻り値:
//   - error: マーシャルまたは書き込みに失敗した場合のエラー
func Encode(w io.Writer, m Persistable, params interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s params", m.ModelName())
	}

	env := Envelope{
		ModelSpec: Spec{Name: m.ModelName(), FormatVersion: FormatVersion},
		Params:    raw,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&env); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// Decode は r からエンベロープを読み込み、モデル名を検証してから params にデコードする
//
// パラメータ:
//   - r: JSONデータを含むReader
//   - m: 読み込み先のモデル（期待するモデル名の取得に使う）
//   - params: パラメータのデコード先（ポインタ）
//
// 戻り値:
//   - error: 読み込み失敗、モデル名またはバージョンの不一致
func Decode(r io.Reader, m Persistable, params interface{}) error {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}

	op := m.ModelName() + ".Load"
	if env.ModelSpec.Name != m.ModelName() {
		return errors.NewModelError(op, "model name mismatch",
			errors.Newf("expected %q, got %q", m.ModelName(), env.ModelSpec.Name))
	}
	if env.ModelSpec.FormatVersion != FormatVersion {
		return errors.NewModelError(op, "unsupported format version",
			errors.Newf("expected %q, got %q", FormatVersion, env.ModelSpec.FormatVersion))
	}
	if len(env.Params) == 0 {
		return errors.NewModelError(op, "missing params", nil)
	}

	if err := json.Unmarshal(env.Params, params); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s params", m.ModelName())
	}
	return nil
}
